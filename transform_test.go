package osm2lanes

import "testing"

func TestTagsToLanesEmptyTagSetDefaultsToTwoWay(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential"})
	road, diag, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v (%v)", err, diag)
	}
	if road.MotorVehicleTravelLaneCount() != 2 {
		t.Errorf("expected 2 motor vehicle travel lanes, got %d: %s", road.MotorVehicleTravelLaneCount(), Render(road.Lanes))
	}
}

func TestTagsToLanesLaneCountZeroIsError(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential", "lanes": "0"})
	_, _, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err == nil {
		t.Fatalf("expected an error for lanes=0")
	}
	if err.Code != CodeMalformedLaneCount {
		t.Errorf("expected MalformedLaneCount, got %s", err.Code)
	}
}

func TestTagsToLanesNegativeWidthIsError(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential", "width": "-2"})
	_, _, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err == nil {
		t.Fatalf("expected an error for width=-2")
	}
	if err.Code != CodeNegativeWidth {
		t.Errorf("expected NegativeWidth, got %s", err.Code)
	}
}

func TestTagsToLanesOnewayWithBackwardCountWarns(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "primary", "oneway": "yes", "lanes": "2", "lanes:backward": "1"})
	road, diag, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, d := range diag {
		if d.Code == CodeInconsistentOneway {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an InconsistentOneway warning, got %v", diag)
	}
	if road.MotorVehicleTravelLaneCount() != 2 {
		t.Errorf("expected the oneway's forward count to win, got %d", road.MotorVehicleTravelLaneCount())
	}
}

func TestTagsToLanesCentreTurnLaneScenario(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "tertiary", "lanes": "3", "centre_turn_lane": "yes"})
	road, diag, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v (%v)", err, diag)
	}
	if road.MotorVehicleTravelLaneCount() != 4 {
		t.Errorf("expected 3 travel lanes + 1 centre lane = 4 motor vehicle lanes, got %d: %s",
			road.MotorVehicleTravelLaneCount(), Render(road.Lanes))
	}
	centreSeen := false
	for _, l := range road.Lanes {
		if l.Kind == LaneTravel && l.Direction == DirectionBoth {
			centreSeen = true
		}
	}
	if !centreSeen {
		t.Errorf("expected a Both-direction centre lane in %s", Render(road.Lanes))
	}
}

func TestTagsToLanesBusDesignatedLaneScenario(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "primary", "lanes": "2", "bus:lanes": "designated|no"})
	road, diag, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v (%v)", err, diag)
	}
	var backwardLane *Lane
	for i := range road.Lanes {
		if road.Lanes[i].Kind == LaneTravel && road.Lanes[i].Direction == DirectionBackward {
			backwardLane = &road.Lanes[i]
		}
	}
	if backwardLane == nil {
		t.Fatalf("expected a backward travel lane in %s", Render(road.Lanes))
	}
	if backwardLane.Designated != DesignatedBus {
		t.Errorf("expected the leftmost (backward) lane to be bus-designated, got %s", backwardLane.Designated)
	}
}

func TestTagsToLanesParkingBothSidesIsMotorDesignated(t *testing.T) {
	tags := NewTags(map[string]string{
		"highway": "residential", "lanes": "4", "sidewalk": "none", "parking:lane:both": "parallel",
	})
	road, diag, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v (%v)", err, diag)
	}
	parkingSeen := 0
	for _, l := range stripSeparators(road.Lanes) {
		if l.Kind == LaneParking {
			parkingSeen++
			if l.Designated != DesignatedMotorVehicle {
				t.Errorf("expected parking(*, motor), got designated=%s in %s", l.Designated, Render(road.Lanes))
			}
		}
	}
	if parkingSeen != 2 {
		t.Errorf("expected a parking lane on each side, got %d in %s", parkingSeen, Render(road.Lanes))
	}
}

func TestTagsToLanesConstructionShortCircuits(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "construction", "lanes": "4", "oneway": "yes"})
	road, _, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count := 0
	for _, l := range road.Lanes {
		if l.Kind == LaneConstruction {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one Construction lane, got %d in %s", count, Render(road.Lanes))
	}
}

func TestTagsToLanesFootwayIsSingleBidirectionalLane(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "footway"})
	road, _, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	travel := stripSeparators(road.Lanes)
	if len(travel) != 1 || travel[0].Designated != DesignatedFoot {
		t.Errorf("expected a single foot lane, got %s", Render(road.Lanes))
	}
}

func TestTagsToLanesOnewayReversedFlipsDirection(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential", "oneway": "-1", "lanes": "1"})
	road, _, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, l := range stripSeparators(road.Lanes) {
		if l.Kind == LaneTravel && l.Direction != DirectionBackward {
			t.Errorf("expected oneway=-1 to leave only Backward travel lanes, got %s in %s",
				l.Direction, Render(road.Lanes))
		}
	}
}

func TestTagsToLanesWarningsPromotedToErrors(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential", "lit": "sort-of"})
	_, _, err := TagsToLanes(tags, rightLocale(), NewConfig(WithWarningsAsErrors(true)))
	if err == nil {
		t.Fatalf("expected the unrecognized lit value's warning to be promoted to an error")
	}
	if err.Code != CodeWarningsPromoted {
		t.Errorf("expected WarningsPromoted, got %s", err.Code)
	}
}

func TestTagsToLanesRoadInvariantsHold(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "primary", "lanes": "4", "sidewalk": "both", "cycleway": "lane"})
	road, _, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if problems := road.checkInvariants(); len(problems) != 0 {
		t.Errorf("invariant violations: %v in %s", problems, Render(road.Lanes))
	}
}

func TestRoadMirrorReversesAndFlips(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "primary", "lanes": "3"})
	road, _, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mirrored := road.Mirror()
	if len(mirrored.Lanes) != len(road.Lanes) {
		t.Fatalf("mirror must preserve lane count")
	}
	back := mirrored.Mirror()
	for i := range road.Lanes {
		if road.Lanes[i].Kind != back.Lanes[i].Kind || road.Lanes[i].Direction != back.Lanes[i].Direction {
			t.Errorf("mirroring twice should be the identity at lane %d", i)
		}
	}
}

func TestLanesToTagsRoundTripsLaneCount(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "primary", "lanes": "4"})
	road, _, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	projected, _ := LanesToTags(road, rightLocale(), NewConfig())
	road2, _, err := TagsToLanes(projected, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error on round trip: %v", err)
	}
	if road.MotorVehicleTravelLaneCount() != road2.MotorVehicleTravelLaneCount() {
		t.Errorf("round trip changed the lane count: %d vs %d",
			road.MotorVehicleTravelLaneCount(), road2.MotorVehicleTravelLaneCount())
	}
}
