package osm2lanes

import "testing"

func TestPlaceSeparatorsAddsEdgesAndBetweenEveryPair(t *testing.T) {
	lanes := []Lane{
		Travel(DirectionBackward, DesignatedMotorVehicle),
		Travel(DirectionForward, DesignatedMotorVehicle),
	}
	out := placeSeparators(lanes, rightLocale(), NewConfig())
	// edge, lane, sep, lane, edge
	if len(out) != 5 {
		t.Fatalf("expected 5 entries (2 edges + 1 between + 2 lanes), got %d: %s", len(out), Render(out))
	}
	if out[0].Kind != LaneSeparator || out[0].Semantic != SeparatorEdge {
		t.Errorf("expected an edge separator first, got %+v", out[0])
	}
	if out[len(out)-1].Kind != LaneSeparator || out[len(out)-1].Semantic != SeparatorEdge {
		t.Errorf("expected an edge separator last, got %+v", out[len(out)-1])
	}
	if out[2].Kind != LaneSeparator {
		t.Errorf("expected a separator between the two travel lanes, got %+v", out[2])
	}
}

func TestPlaceSeparatorsDisabledReturnsUnchanged(t *testing.T) {
	lanes := []Lane{Travel(DirectionForward, DesignatedMotorVehicle)}
	cfg := NewConfig(WithSeparators(false))
	out := placeSeparators(lanes, rightLocale(), cfg)
	if len(out) != 1 {
		t.Errorf("expected no separators inserted when disabled, got %s", Render(out))
	}
}

func TestSeparatorBetweenShoulderWins(t *testing.T) {
	left := Travel(DirectionForward, DesignatedMotorVehicle)
	right := Shoulder()
	sep := separatorBetween(left, right, rightLocale())
	if sep.Semantic != SeparatorShoulder {
		t.Errorf("expected a shoulder separator, got %s", sep.Semantic)
	}
}

func TestSeparatorBetweenCentreBoundaryGetsDoubleLine(t *testing.T) {
	left := Travel(DirectionBackward, DesignatedMotorVehicle)
	right := Travel(DirectionForward, DesignatedMotorVehicle)
	sep := separatorBetween(left, right, rightLocale())
	if sep.Semantic != SeparatorCentre {
		t.Errorf("expected a centre separator between opposing flows, got %s", sep.Semantic)
	}
	if len(sep.Markings) != 3 {
		t.Errorf("expected a double line marking (solid, gap, solid) at the centre, got %v", sep.Markings)
	}
}

func TestSeparatorBetweenModalMismatchGetsDashedLine(t *testing.T) {
	left := Travel(DirectionForward, DesignatedMotorVehicle)
	right := Travel(DirectionForward, DesignatedBus)
	sep := separatorBetween(left, right, rightLocale())
	if sep.Semantic != SeparatorModal {
		t.Errorf("expected a modal separator between a travel lane and a bus lane, got %s", sep.Semantic)
	}
	if len(sep.Markings) != 1 || sep.Markings[0].Style != MarkingDashedLine {
		t.Errorf("expected a single dashed line, got %v", sep.Markings)
	}
}

func TestSeparatorBetweenPlainLaneSplitGetsBrokenLine(t *testing.T) {
	left := Travel(DirectionForward, DesignatedMotorVehicle)
	right := Travel(DirectionForward, DesignatedMotorVehicle)
	sep := separatorBetween(left, right, rightLocale())
	if sep.Semantic != SeparatorLane {
		t.Errorf("expected a plain lane separator between two same-direction travel lanes, got %s", sep.Semantic)
	}
	if len(sep.Markings) != 1 || sep.Markings[0].Style != MarkingBrokenLine {
		t.Errorf("expected a single broken line, got %v", sep.Markings)
	}
}

func TestSeparatorBetweenConstructionWins(t *testing.T) {
	left := Construction()
	right := Travel(DirectionForward, DesignatedMotorVehicle)
	sep := separatorBetween(left, right, rightLocale())
	if sep.Semantic != SeparatorModal {
		t.Errorf("expected a modal separator next to a construction lane, got %s", sep.Semantic)
	}
}

func TestIsCentreBoundaryRecognizesBothDirectionLane(t *testing.T) {
	centre := Travel(DirectionBoth, DesignatedMotorVehicle)
	forward := Travel(DirectionForward, DesignatedMotorVehicle)
	if !isCentreBoundary(centre, forward) {
		t.Errorf("expected a Both-direction centre lane to count as a centre boundary on either side")
	}
	if isCentreBoundary(forward, forward) {
		t.Errorf("expected two same-direction lanes to not be a centre boundary")
	}
}
