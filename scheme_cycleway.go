package osm2lanes

import "strings"

// CyclewaySide is one side's outcome of the Cycleway scheme.
type CyclewaySide struct {
	Present    bool
	Contraflow bool // direction opposite the side's convention direction
	TwoWay     bool // a track wide enough to carry both directions itself
}

// CyclewayScheme is the per-side result of the Cycleway scheme from
// spec.md §4.2.
type CyclewayScheme struct {
	Left  CyclewaySide
	Right CyclewaySide
}

// parseCycleway consumes `cycleway`, `cycleway:left`, `cycleway:right` and
// `cycleway:both`, recognizing `lane`, `track`, `opposite_lane`,
// `opposite_track`, `shared_lane`, `no`. It does not consult
// `oneway:bicycle` (parseOneway stores it in Oneway.Bicycle); a contraflow
// bicycle lane comes only from the `opposite_*` values.
// `track` on a oneway way is treated as a two-way track per spec.md §4.3
// ("paired contraflow track"), since a single unidirectional track would
// leave contraflow cyclists nowhere to go on a oneway street.
func parseCycleway(tags *Tags, oneway Oneway) (CyclewayScheme, Diagnostics) {
	var ds Diagnostics
	var out CyclewayScheme

	generic, genericOK, d := consumeCyclewayValue(tags, "cycleway", oneway)
	ds = append(ds, d...)
	both, bothOK, d := consumeCyclewayValue(tags, "cycleway:both", oneway)
	ds = append(ds, d...)
	left, leftOK, d := consumeCyclewayValue(tags, "cycleway:left", oneway)
	ds = append(ds, d...)
	right, rightOK, d := consumeCyclewayValue(tags, "cycleway:right", oneway)
	ds = append(ds, d...)

	if genericOK {
		out.Left, out.Right = generic, generic
	}
	if bothOK {
		if genericOK {
			ds = append(ds, warningf(CodeTagConflict, []string{"cycleway", "cycleway:both"},
				"cycleway and cycleway:both both set; cycleway:both wins"))
		}
		out.Left, out.Right = both, both
	}
	if leftOK {
		if genericOK || bothOK {
			ds = append(ds, warningf(CodeTagConflict, []string{"cycleway:left"},
				"cycleway:left overrides the less specific cycleway tag"))
		}
		out.Left = left
	}
	if rightOK {
		if genericOK || bothOK {
			ds = append(ds, warningf(CodeTagConflict, []string{"cycleway:right"},
				"cycleway:right overrides the less specific cycleway tag"))
		}
		out.Right = right
	}
	return out, ds
}

func consumeCyclewayValue(tags *Tags, key string, oneway Oneway) (CyclewaySide, bool, Diagnostics) {
	raw, ok := tags.GetConsumeTrimmed(key)
	if !ok {
		return CyclewaySide{}, false, nil
	}
	switch strings.ToLower(raw) {
	case "no", "none":
		return CyclewaySide{}, false, nil
	case "lane", "shared_lane":
		return CyclewaySide{Present: true}, true, nil
	case "track":
		return CyclewaySide{Present: true, TwoWay: oneway.MotorVehicle}, true, nil
	case "opposite_lane":
		return CyclewaySide{Present: true, Contraflow: true}, true, nil
	case "opposite_track":
		return CyclewaySide{Present: true, Contraflow: true, TwoWay: oneway.MotorVehicle}, true, nil
	default:
		return CyclewaySide{}, false, Diagnostics{warningf(CodeUnknownValue, []string{key},
			"unrecognized %s=%q", key, raw)}
	}
}
