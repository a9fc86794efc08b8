package osm2lanes

import "strings"

// SidewalkState is the per-side outcome of the Sidewalk scheme.
type SidewalkState uint8

const (
	SidewalkUnset = SidewalkState(iota) // no tag said anything about this side
	SidewalkPresent
	SidewalkExplicitNone // "none": produces a Shoulder, per spec.md §4.2
)

// SidewalkSides is the per-side result of the Sidewalk scheme from
// spec.md §4.2.
type SidewalkSides struct {
	Left  SidewalkState
	Right SidewalkState
}

// parseSidewalk consumes `sidewalk`, `sidewalk:left`, `sidewalk:right` and
// `sidewalk:both`, applying spec.md §4.2's specificity rule: "When mutually
// exclusive keys appear (e.g. sidewalk=both together with sidewalk:left=no),
// the more specific (longer key path) wins; emit Warning(TagConflict)."
func parseSidewalk(tags *Tags) (SidewalkSides, Diagnostics) {
	var ds Diagnostics
	var out SidewalkSides

	generic, genericOK := consumeSidewalkValue(tags, "sidewalk", &ds)
	both, bothOK := consumeSidewalkValue(tags, "sidewalk:both", &ds)
	left, leftOK := consumeSidewalkValue(tags, "sidewalk:left", &ds)
	right, rightOK := consumeSidewalkValue(tags, "sidewalk:right", &ds)

	if genericOK {
		out.Left, out.Right = generic, generic
	}
	if bothOK {
		if genericOK {
			ds = append(ds, warningf(CodeTagConflict, []string{"sidewalk", "sidewalk:both"},
				"sidewalk and sidewalk:both both set; sidewalk:both wins"))
		}
		out.Left, out.Right = both, both
	}
	if leftOK {
		if genericOK || bothOK {
			ds = append(ds, warningf(CodeTagConflict, []string{"sidewalk:left"},
				"sidewalk:left overrides the less specific sidewalk tag"))
		}
		out.Left = left
	}
	if rightOK {
		if genericOK || bothOK {
			ds = append(ds, warningf(CodeTagConflict, []string{"sidewalk:right"},
				"sidewalk:right overrides the less specific sidewalk tag"))
		}
		out.Right = right
	}
	return out, ds
}

func consumeSidewalkValue(tags *Tags, key string, ds *Diagnostics) (SidewalkState, bool) {
	raw, ok := tags.GetConsumeTrimmed(key)
	if !ok {
		return SidewalkUnset, false
	}
	switch strings.ToLower(raw) {
	case "yes", "separate":
		return SidewalkPresent, true
	case "no", "none":
		return SidewalkExplicitNone, true
	case "both", "left", "right":
		// Only meaningful on the bare `sidewalk` key; sidewalk:left/:right
		// with these values is a dialect we still accept permissively.
		return SidewalkPresent, true
	default:
		*ds = append(*ds, warningf(CodeUnknownValue, []string{key},
			"unrecognized %s=%q", key, raw))
		return SidewalkUnset, false
	}
}
