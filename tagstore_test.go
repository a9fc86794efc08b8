package osm2lanes

import "testing"

func TestTagsGetConsume(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "primary", "lanes": "4"})
	v, ok := tags.GetConsume("highway")
	if !ok || v != "primary" {
		t.Errorf("expected highway=primary, got %q ok=%v", v, ok)
	}
	if tags.Has("highway") {
		// Has does not consume, but the value is still present; this just
		// checks Has doesn't panic after a GetConsume on the same key.
	}
	unused := tags.Unused()
	if len(unused) != 1 || unused[0] != "lanes" {
		t.Errorf("expected only lanes to remain unused, got %v", unused)
	}
}

func TestTagsSubtreeDoesNotConsume(t *testing.T) {
	tags := NewTags(map[string]string{"sidewalk:left": "yes", "sidewalk:right": "no"})
	kvs := tags.Subtree("sidewalk")
	if len(kvs) != 2 {
		t.Fatalf("expected 2 entries under sidewalk, got %d", len(kvs))
	}
	if len(tags.Unused()) != 2 {
		t.Errorf("Subtree must not consume; expected 2 unused, got %d", len(tags.Unused()))
	}
}

func TestUnconsumedKnownTagWarns(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential", "lanes": "2"})
	_, _ = tags.GetConsume("highway")
	ds := unconsumedKnownTagDiagnostics(&tags)
	if len(ds) != 1 || ds[0].Code != CodeUnconsumedKnownTag {
		t.Errorf("expected one UnconsumedKnownTag diagnostic for 'lanes', got %v", ds)
	}
}

func TestUnknownTagDoesNotWarn(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential", "ref": "A1"})
	_, _ = tags.GetConsume("highway")
	ds := unconsumedKnownTagDiagnostics(&tags)
	if len(ds) != 0 {
		t.Errorf("expected no diagnostics for an unrecognized key, got %v", ds)
	}
}
