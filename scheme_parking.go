package osm2lanes

import "strings"

// ParkingSides is the per-side result of the Parking scheme from
// spec.md §4.2.
type ParkingSides struct {
	Left  *ParkingOrientation
	Right *ParkingOrientation
}

// parseParking consumes `parking:lane:left`, `parking:lane:right` and
// `parking:lane:both`, recognizing `parallel`, `diagonal`, `perpendicular`.
func parseParking(tags *Tags) (ParkingSides, Diagnostics) {
	var ds Diagnostics
	var out ParkingSides

	both, bothOK, d := consumeParkingValue(tags, "parking:lane:both")
	ds = append(ds, d...)
	left, leftOK, d := consumeParkingValue(tags, "parking:lane:left")
	ds = append(ds, d...)
	right, rightOK, d := consumeParkingValue(tags, "parking:lane:right")
	ds = append(ds, d...)

	if bothOK {
		out.Left, out.Right = &both, &both
	}
	if leftOK {
		out.Left = &left
	}
	if rightOK {
		out.Right = &right
	}
	return out, ds
}

func consumeParkingValue(tags *Tags, key string) (ParkingOrientation, bool, Diagnostics) {
	raw, ok := tags.GetConsumeTrimmed(key)
	if !ok {
		return 0, false, nil
	}
	switch strings.ToLower(raw) {
	case "parallel":
		return ParkingParallel, true, nil
	case "diagonal":
		return ParkingDiagonal, true, nil
	case "perpendicular":
		return ParkingPerpendicular, true, nil
	case "no":
		return 0, false, nil
	default:
		return 0, false, Diagnostics{warningf(CodeUnknownValue, []string{key},
			"unrecognized %s=%q", key, raw)}
	}
}
