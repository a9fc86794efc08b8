package osm2lanes

import "strings"

// parseLit consumes `lit`, yielding nil when absent or unrecognized
// ("unknown" per spec.md §3's `Lit: boolean or unknown`).
func parseLit(tags *Tags) (*bool, Diagnostics) {
	raw, ok := tags.GetConsumeTrimmed("lit")
	if !ok {
		return nil, nil
	}
	switch strings.ToLower(raw) {
	case "yes":
		v := true
		return &v, nil
	case "no":
		v := false
		return &v, nil
	default:
		return nil, Diagnostics{warningf(CodeUnknownValue, []string{"lit"}, "unrecognized lit=%q", raw)}
	}
}
