package osm2lanes

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// This file wires every enum-like type in the data model into
// github.com/goccy/go-json's Marshaler/Unmarshaler interfaces (the same
// pair encoding/json looks for, so the struct tags added in lane.go,
// marking.go, road.go and diagnostics.go just work), so the wire format
// spec.md §6 describes uses the stable string names ("travel", "forward",
// "motor_vehicle", ...) rather than the underlying uint8 values.

func marshalNamed(name string) ([]byte, error) {
	return json.Marshal(name)
}

func unmarshalNamed(data []byte, table map[string]uint8, kind string) (uint8, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, err
	}
	v, ok := table[s]
	if !ok {
		return 0, fmt.Errorf("osm2lanes: unrecognized %s %q", kind, s)
	}
	return v, nil
}

func (d Direction) MarshalJSON() ([]byte, error) { return marshalNamed(d.String()) }
func (d *Direction) UnmarshalJSON(data []byte) error {
	v, err := unmarshalNamed(data, directionByName, "direction")
	if err != nil {
		return err
	}
	*d = Direction(v)
	return nil
}

var directionByName = map[string]uint8{
	"forward": uint8(DirectionForward), "backward": uint8(DirectionBackward),
	"both": uint8(DirectionBoth), "none": uint8(DirectionNone),
}

func (d Designated) MarshalJSON() ([]byte, error) { return marshalNamed(d.String()) }
func (d *Designated) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := designatedFromString(s)
	if !ok {
		return fmt.Errorf("osm2lanes: unrecognized designated %q", s)
	}
	*d = v
	return nil
}

func (o ParkingOrientation) MarshalJSON() ([]byte, error) { return marshalNamed(o.String()) }
func (o *ParkingOrientation) UnmarshalJSON(data []byte) error {
	v, err := unmarshalNamed(data, parkingOrientationByName, "parking orientation")
	if err != nil {
		return err
	}
	*o = ParkingOrientation(v)
	return nil
}

var parkingOrientationByName = map[string]uint8{
	"parallel": uint8(ParkingParallel), "diagonal": uint8(ParkingDiagonal),
	"perpendicular": uint8(ParkingPerpendicular),
}

func (t TurnMark) MarshalJSON() ([]byte, error) { return marshalNamed(t.String()) }
func (t *TurnMark) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := turnMarkByName[s]
	if !ok {
		return fmt.Errorf("osm2lanes: unrecognized turn mark %q", s)
	}
	*t = v
	return nil
}

func (a Access) MarshalJSON() ([]byte, error) { return marshalNamed(a.String()) }
func (a *Access) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := accessByName[s]
	if !ok {
		return fmt.Errorf("osm2lanes: unrecognized access %q", s)
	}
	*a = v
	return nil
}

func (u SpeedUnit) MarshalJSON() ([]byte, error) { return marshalNamed(u.String()) }
func (u *SpeedUnit) UnmarshalJSON(data []byte) error {
	v, err := unmarshalNamed(data, speedUnitByName, "speed unit")
	if err != nil {
		return err
	}
	*u = SpeedUnit(v)
	return nil
}

var speedUnitByName = map[string]uint8{"km/h": uint8(SpeedKPH), "mph": uint8(SpeedMPH)}

func (k LaneKind) MarshalJSON() ([]byte, error) { return marshalNamed(k.String()) }
func (k *LaneKind) UnmarshalJSON(data []byte) error {
	v, err := unmarshalNamed(data, laneKindByName, "lane type")
	if err != nil {
		return err
	}
	*k = LaneKind(v)
	return nil
}

var laneKindByName = map[string]uint8{
	"travel": uint8(LaneTravel), "parking": uint8(LaneParking),
	"shoulder": uint8(LaneShoulder), "separator": uint8(LaneSeparator),
	"construction": uint8(LaneConstruction),
}

func (s MarkingStyle) MarshalJSON() ([]byte, error) { return marshalNamed(s.String()) }
func (s *MarkingStyle) UnmarshalJSON(data []byte) error {
	v, err := unmarshalNamed(data, markingStyleByName, "marking style")
	if err != nil {
		return err
	}
	*s = MarkingStyle(v)
	return nil
}

var markingStyleByName = map[string]uint8{
	"solid_line": uint8(MarkingSolidLine), "broken_line": uint8(MarkingBrokenLine),
	"dashed_line": uint8(MarkingDashedLine), "dotted_line": uint8(MarkingDottedLine),
	"double_solid": uint8(MarkingDoubleSolid), "gore_chevron": uint8(MarkingGoreChevron),
	"diagonal_hatched": uint8(MarkingDiagonalHatched), "criss_cross": uint8(MarkingCrissCross),
	"no_fill": uint8(MarkingNoFill),
}

func (c Color) MarshalJSON() ([]byte, error) { return marshalNamed(c.String()) }
func (c *Color) UnmarshalJSON(data []byte) error {
	v, err := unmarshalNamed(data, colorByName, "color")
	if err != nil {
		return err
	}
	*c = Color(v)
	return nil
}

var colorByName = map[string]uint8{
	"white": uint8(ColorWhite), "yellow": uint8(ColorYellow), "red": uint8(ColorRed),
	"blue": uint8(ColorBlue), "green": uint8(ColorGreen),
}

func (s SeparatorSemantic) MarshalJSON() ([]byte, error) { return marshalNamed(s.String()) }
func (s *SeparatorSemantic) UnmarshalJSON(data []byte) error {
	v, err := unmarshalNamed(data, separatorSemanticByName, "separator semantic")
	if err != nil {
		return err
	}
	*s = SeparatorSemantic(v)
	return nil
}

var separatorSemanticByName = map[string]uint8{
	"shoulder": uint8(SeparatorShoulder), "lane": uint8(SeparatorLane),
	"modal": uint8(SeparatorModal), "centre": uint8(SeparatorCentre), "edge": uint8(SeparatorEdge),
}

func (h HighwayClass) MarshalJSON() ([]byte, error) { return marshalNamed(h.String()) }
func (h *HighwayClass) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := highwayClassByName[s]
	if !ok {
		return fmt.Errorf("osm2lanes: unrecognized highway class %q", s)
	}
	*h = v
	return nil
}

func (s Severity) MarshalJSON() ([]byte, error) { return marshalNamed(s.String()) }
func (s *Severity) UnmarshalJSON(data []byte) error {
	v, err := unmarshalNamed(data, severityByName, "severity")
	if err != nil {
		return err
	}
	*s = Severity(v)
	return nil
}

var severityByName = map[string]uint8{"warning": uint8(SeverityWarning), "error": uint8(SeverityError)}

// MarshalRoad renders a Road as JSON using the field names above, the
// caller-facing entry point spec.md §6 describes for embedding a
// TagsToLanes result in a larger document.
func MarshalRoad(r Road) ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalRoad parses JSON previously produced by MarshalRoad.
func UnmarshalRoad(data []byte) (Road, error) {
	var r Road
	err := json.Unmarshal(data, &r)
	return r, err
}
