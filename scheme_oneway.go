package osm2lanes

import "strings"

// Oneway is the result of the Oneway scheme from spec.md §4.2: a per-mode
// boolean plus whether the `-1` reversal rewrite applies.
type Oneway struct {
	MotorVehicle bool
	Bicycle      *bool // nil means "follow MotorVehicle"
	Reversed     bool  // oneway=-1: Forward/Backward get swapped at the end
}

// parseOneway consumes `oneway` and `oneway:bicycle`, normalizing `-1` to
// Reversed=true per spec.md §4.2's value-normalization rule: "Reversed
// direction via oneway=-1 is rewritten to oneway=yes with all Forwards
// replaced by Backwards in the final lane list."
func parseOneway(tags *Tags) (Oneway, Diagnostics) {
	var ds Diagnostics
	var result Oneway

	raw, ok := tags.GetConsumeTrimmed("oneway")
	if ok {
		switch strings.ToLower(raw) {
		case "yes", "true", "1":
			result.MotorVehicle = true
		case "-1", "reverse":
			result.MotorVehicle = true
			result.Reversed = true
		case "no", "false", "0":
			result.MotorVehicle = false
		default:
			if _, reversible := onewayReversible[strings.ToLower(raw)]; reversible {
				result.MotorVehicle = false
			} else {
				ds = append(ds, warningf(CodeUnknownValue, []string{"oneway"},
					"unrecognized oneway=%q, treating as no", raw))
			}
		}
	}

	if raw, ok := tags.GetConsumeTrimmed("oneway:bicycle"); ok {
		switch strings.ToLower(raw) {
		case "yes", "true", "1":
			v := true
			result.Bicycle = &v
		case "no", "false", "0":
			v := false
			result.Bicycle = &v
		default:
			ds = append(ds, warningf(CodeUnknownValue, []string{"oneway:bicycle"},
				"unrecognized oneway:bicycle=%q", raw))
		}
	}

	return result, ds
}

// onewayReversible lists OSM's oneway=reversible/alternating values, which
// are neither a clean one-way nor a clean two-way; treated as two-way here
// since lane geometry cannot represent time-varying direction.
var onewayReversible = map[string]struct{}{
	"reversible":  {},
	"alternating": {},
}
