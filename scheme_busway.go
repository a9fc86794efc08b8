package osm2lanes

import "strings"

// BuswaySides is the per-side result of the Busway scheme from
// spec.md §4.2: whether that side carries a dedicated bus travel lane.
type BuswaySides struct {
	Left  bool
	Right bool
}

// parseBusway consumes `busway`, `busway:left`, `busway:right`,
// `busway:both`; the only recognized value is `lane`.
func parseBusway(tags *Tags) (BuswaySides, Diagnostics) {
	var ds Diagnostics
	var out BuswaySides

	generic, genericOK, d := consumeBuswayValue(tags, "busway")
	ds = append(ds, d...)
	both, bothOK, d := consumeBuswayValue(tags, "busway:both")
	ds = append(ds, d...)
	left, leftOK, d := consumeBuswayValue(tags, "busway:left")
	ds = append(ds, d...)
	right, rightOK, d := consumeBuswayValue(tags, "busway:right")
	ds = append(ds, d...)

	if genericOK {
		out.Left, out.Right = generic, generic
	}
	if bothOK {
		out.Left, out.Right = both, both
	}
	if leftOK {
		out.Left = left
	}
	if rightOK {
		out.Right = right
	}
	return out, ds
}

func consumeBuswayValue(tags *Tags, key string) (bool, bool, Diagnostics) {
	raw, ok := tags.GetConsumeTrimmed(key)
	if !ok {
		return false, false, nil
	}
	if strings.ToLower(raw) == "lane" {
		return true, true, nil
	}
	return false, false, Diagnostics{warningf(CodeUnknownValue, []string{key},
		"unrecognized %s=%q", key, raw)}
}
