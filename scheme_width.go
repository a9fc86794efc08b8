package osm2lanes

import (
	"regexp"
	"strconv"
	"strings"
)

var widthValueRegexp = regexp.MustCompile(`-?\d+\.?\d*`)

// parseWidthMetres parses an OSM width value ("3.5", "3.5 m", "11'6\"") into
// metres. Only the bare-metres and explicit "m"-suffixed forms are
// supported; anything else yields Error(UnitParseFailure) per spec.md §7.
// A negative width yields Error(NegativeWidth).
func parseWidthMetres(raw string, key string) (float64, Diagnostics) {
	trimmed := strings.TrimSpace(raw)
	numeric := strings.TrimSpace(strings.TrimSuffix(trimmed, "m"))
	match := widthValueRegexp.FindString(numeric)
	if match == "" || match != numeric {
		return 0, Diagnostics{errorf(CodeUnitParseFailure, []string{key},
			"could not parse width from %s=%q", key, raw)}
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, Diagnostics{errorf(CodeUnitParseFailure, []string{key},
			"could not parse width from %s=%q", key, raw)}
	}
	if value < 0 {
		return 0, Diagnostics{errorf(CodeNegativeWidth, []string{key},
			"%s=%q is negative", key, raw)}
	}
	return value, nil
}

// WidthScheme is the result of the Width scheme from spec.md §4.2.
type WidthScheme struct {
	RoadWide  *float64   // bare `width`, applies to every travel lane
	PerLane   []*float64 // `width:lanes`, indexed from the leftmost overall travel lane
	Cycleway  *float64
	Sidewalk  *float64
}

func parseWidth(tags *Tags) (WidthScheme, Diagnostics) {
	var ds Diagnostics
	var out WidthScheme

	if raw, ok := tags.GetConsume("width"); ok {
		v, d := parseWidthMetres(raw, "width")
		ds = append(ds, d...)
		if !d.HasErrors() {
			out.RoadWide = &v
		}
	}
	if raw, ok := tags.GetConsume("width:lanes"); ok {
		for _, field := range splitBarString(raw) {
			if field == "" {
				out.PerLane = append(out.PerLane, nil)
				continue
			}
			v, d := parseWidthMetres(field, "width:lanes")
			ds = append(ds, d...)
			if d.HasErrors() {
				out.PerLane = append(out.PerLane, nil)
				continue
			}
			out.PerLane = append(out.PerLane, &v)
		}
	}
	if raw, ok := tags.GetConsume("cycleway:width"); ok {
		v, d := parseWidthMetres(raw, "cycleway:width")
		ds = append(ds, d...)
		if !d.HasErrors() {
			out.Cycleway = &v
		}
	}
	if raw, ok := tags.GetConsume("sidewalk:width"); ok {
		v, d := parseWidthMetres(raw, "sidewalk:width")
		ds = append(ds, d...)
		if !d.HasErrors() {
			out.Sidewalk = &v
		}
	}
	return out, ds
}
