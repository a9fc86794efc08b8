package osm2lanes

import "strings"

// parseHighwayClass implements the Highway class scheme from spec.md §4.2:
// consumes `highway` and classifies it, or yields a structural
// Error(UnknownHighwayClass) per spec.md §7.
func parseHighwayClass(tags *Tags) (HighwayClass, Diagnostics) {
	raw, ok := tags.GetConsumeTrimmed("highway")
	if !ok {
		// Absence is not an error: spec.md's boundary test treats the empty
		// tag set as a default two-way road.
		return HighwayUnclassified, nil
	}
	class, ok := highwayClassByName[strings.ToLower(raw)]
	if !ok {
		return 0, Diagnostics{errorf(CodeUnknownHighwayClass, []string{"highway"},
			"unrecognized highway=%q", raw)}
	}
	return class, nil
}
