package osm2lanes

import "testing"

func rightLocale() Locale { return NewLocale("US", "", DrivingSideRight) }
func leftLocale() Locale  { return NewLocale("GB", "", DrivingSideLeft) }

func TestParseLaneCountsNothingTagged(t *testing.T) {
	tags := NewTags(map[string]string{})
	oneway, _ := parseOneway(&tags)
	counts, ds := parseLaneCounts(&tags, oneway, rightLocale(), HighwayResidential)
	if ds.HasErrors() {
		t.Fatalf("unexpected errors: %v", ds)
	}
	if counts.Forward != 1 || counts.Backward != 1 || counts.Centre {
		t.Errorf("expected a default two-way 1/1 split, got %+v", counts)
	}
}

func TestParseLaneCountsBareOneIsSingleBidirectionalLane(t *testing.T) {
	tags := NewTags(map[string]string{"lanes": "1"})
	oneway, _ := parseOneway(&tags)
	counts, ds := parseLaneCounts(&tags, oneway, rightLocale(), HighwayResidential)
	if ds.HasErrors() {
		t.Fatalf("unexpected errors: %v", ds)
	}
	if counts.Forward != 0 || counts.Backward != 0 || !counts.Centre {
		t.Errorf("expected a two-way lanes=1 to fold into a single shared lane, got %+v", counts)
	}
}

func TestParseLaneCountsCentreTurnLane(t *testing.T) {
	tags := NewTags(map[string]string{"lanes": "3", "centre_turn_lane": "yes"})
	oneway, _ := parseOneway(&tags)
	counts, ds := parseLaneCounts(&tags, oneway, rightLocale(), HighwayTertiary)
	if ds.HasErrors() {
		t.Fatalf("unexpected errors: %v", ds)
	}
	if counts.Forward != 2 || counts.Backward != 1 || !counts.Centre {
		t.Errorf("expected forward=2 backward=1 centre=true (lanes=3 is travel-only), got %+v", counts)
	}
}

func TestParseLaneCountsBothWaysSubtractsFromTotal(t *testing.T) {
	tags := NewTags(map[string]string{"lanes": "3", "lanes:both_ways": "1"})
	oneway, _ := parseOneway(&tags)
	counts, ds := parseLaneCounts(&tags, oneway, rightLocale(), HighwayTertiary)
	if ds.HasErrors() {
		t.Fatalf("unexpected errors: %v", ds)
	}
	if counts.Forward+counts.Backward != 2 || !counts.Centre {
		t.Errorf("expected the centre lane folded into lanes=3 leaving 2 travel lanes, got %+v", counts)
	}
}

func TestParseLaneCountsLeftDrivingSplit(t *testing.T) {
	tags := NewTags(map[string]string{"lanes": "3"})
	oneway, _ := parseOneway(&tags)
	counts, ds := parseLaneCounts(&tags, oneway, leftLocale(), HighwayTertiary)
	if ds.HasErrors() {
		t.Fatalf("unexpected errors: %v", ds)
	}
	if counts.Backward != 2 || counts.Forward != 1 {
		t.Errorf("left-driving lanes=3 should ceil to backward, got %+v", counts)
	}
}

func TestParseLaneCountsOnewayIgnoresBackward(t *testing.T) {
	tags := NewTags(map[string]string{"oneway": "yes", "lanes": "2", "lanes:backward": "1"})
	oneway, _ := parseOneway(&tags)
	counts, ds := parseLaneCounts(&tags, oneway, rightLocale(), HighwayPrimary)
	if !ds.HasErrors() && len(ds) == 0 {
		t.Errorf("expected a warning about the inconsistent lanes:backward tag")
	}
	if counts.Forward != 2 || counts.Backward != 0 {
		t.Errorf("expected a pure forward count on a oneway, got %+v", counts)
	}
}

func TestParseLaneCountsZeroIsError(t *testing.T) {
	tags := NewTags(map[string]string{"lanes": "0"})
	oneway, _ := parseOneway(&tags)
	_, ds := parseLaneCounts(&tags, oneway, rightLocale(), HighwayResidential)
	if !ds.HasErrors() {
		t.Errorf("expected lanes=0 to produce an Error")
	}
}

func TestParseOnewayReversed(t *testing.T) {
	tags := NewTags(map[string]string{"oneway": "-1"})
	oneway, ds := parseOneway(&tags)
	if ds.HasErrors() {
		t.Fatalf("unexpected errors: %v", ds)
	}
	if !oneway.MotorVehicle || !oneway.Reversed {
		t.Errorf("expected oneway=-1 to set MotorVehicle and Reversed, got %+v", oneway)
	}
}
