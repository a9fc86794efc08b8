package osm2lanes

import (
	"strings"

	"github.com/paulmach/osm"
)

// Tags is the dotted-hierarchical key/value store described in spec.md
// §4.1. It wraps osm.Tags — the same tag vocabulary the teacher repo's
// Way.TagMap already uses — and layers the "tree consumption" discipline
// spec.md calls for on top: a parser must explicitly consume every key it
// inspects so that post-assembly diagnostics can flag anything recognized
// but left untouched.
type Tags struct {
	raw      osm.Tags
	consumed map[string]struct{}
}

// NewTags builds a Tags store from an unordered key/value map. Iteration
// order of the input is irrelevant; Tags itself never exposes iteration
// order guarantees either.
func NewTags(m map[string]string) Tags {
	raw := make(osm.Tags, 0, len(m))
	for k, v := range m {
		raw = append(raw, osm.Tag{Key: k, Value: v})
	}
	return Tags{raw: raw, consumed: make(map[string]struct{}, len(m))}
}

// Get returns the raw value for key, without marking it consumed.
func (t *Tags) Get(key string) (string, bool) {
	v := t.raw.Find(key)
	if v == "" {
		return "", false
	}
	return v, true
}

// GetConsume returns the raw value for key and marks it consumed.
func (t *Tags) GetConsume(key string) (string, bool) {
	v, ok := t.Get(key)
	if ok {
		t.consume(key)
	}
	return v, ok
}

// GetConsumeTrimmed is GetConsume with whitespace trimmed, the
// normalization spec.md §4.2 requires of every scheme parser before
// comparing against an enumerated value.
func (t *Tags) GetConsumeTrimmed(key string) (string, bool) {
	v, ok := t.GetConsume(key)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Has reports whether key is present, without consuming it.
func (t *Tags) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

func (t *Tags) consume(key string) {
	if t.consumed == nil {
		t.consumed = make(map[string]struct{})
	}
	t.consumed[key] = struct{}{}
}

// ConsumePrefix marks every key under the dotted/colon prefix as consumed
// without returning their values, for a parser that has already inspected
// a subtree's shape through Subtree and now wants to own the whole thing
// (e.g. after detecting a conflict and choosing the more specific key).
func (t *Tags) ConsumePrefix(prefix string) {
	for _, tag := range t.raw {
		if tag.Key == prefix || strings.HasPrefix(tag.Key, prefix+":") {
			t.consume(tag.Key)
		}
	}
}

// Subtree iterates every (key, value) pair whose key is prefix itself or
// is rooted at prefix via a ':' path separator. It does not consume
// anything; the caller decides which of the returned keys to consume.
func (t *Tags) Subtree(prefix string) []KeyValue {
	var out []KeyValue
	for _, tag := range t.raw {
		if tag.Key == prefix || strings.HasPrefix(tag.Key, prefix+":") {
			out = append(out, KeyValue{Key: tag.Key, Value: tag.Value})
		}
	}
	return out
}

// KeyValue is one entry returned by Tags.Subtree.
type KeyValue struct {
	Key   string
	Value string
}

// Unused returns every key that was present at construction and has never
// been consumed.
func (t *Tags) Unused() []string {
	var out []string
	for _, tag := range t.raw {
		if _, ok := t.consumed[tag.Key]; !ok {
			out = append(out, tag.Key)
		}
	}
	return out
}

// UnusedMap returns the key/value pairs for every tag nothing consumed, so
// the projector can preserve them verbatim for round-trip fidelity.
func (t *Tags) UnusedMap() map[string]string {
	out := make(map[string]string)
	for _, tag := range t.raw {
		if _, ok := t.consumed[tag.Key]; !ok {
			out[tag.Key] = tag.Value
		}
	}
	return out
}

// Len reports the total number of tags originally present.
func (t *Tags) Len() int {
	return len(t.raw)
}

// asMap renders the store back into a plain map. It does not reflect
// consumption state.
func (t *Tags) asMap() map[string]string {
	out := make(map[string]string, len(t.raw))
	for _, tag := range t.raw {
		out[tag.Key] = tag.Value
	}
	return out
}

// knownTagPrefixes lists the key roots every scheme parser in this module
// declares ownership of, used to decide whether an unused key deserves
// Warning(UnconsumedKnownTag) or silent toleration, per spec.md §4.1.
var knownTagPrefixes = []string{
	"highway", "oneway", "lanes", "sidewalk", "cycleway", "busway",
	"parking", "access", "bicycle", "foot", "motor_vehicle", "bus", "psv",
	"vehicle", "maxspeed", "width", "turn", "centre_turn_lane", "lit",
	"shoulder",
}

func isKnownTagKey(key string) bool {
	for _, prefix := range knownTagPrefixes {
		if key == prefix || strings.HasPrefix(key, prefix+":") {
			return true
		}
	}
	return false
}

// unconsumedKnownTagDiagnostics builds the Warning(UnconsumedKnownTag)
// diagnostics spec.md §4.1 calls for: any key recognized as meaningful
// that no parser consumed.
func unconsumedKnownTagDiagnostics(t *Tags) Diagnostics {
	var ds Diagnostics
	for _, key := range t.Unused() {
		if isKnownTagKey(key) {
			ds = append(ds, warningf(CodeUnconsumedKnownTag, []string{key},
				"tag %q is recognized but was not consumed by any scheme", key))
		}
	}
	return ds
}
