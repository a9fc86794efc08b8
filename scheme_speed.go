package osm2lanes

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	mphSpeedRegexp = regexp.MustCompile(`^(\d+\.?\d*)\s*mph$`)
	kphSpeedRegexp = regexp.MustCompile(`^(\d+\.?\d*)\s*(km/h)?$`)
)

// parseSpeed parses an OSM maxspeed value ("50", "30 mph", "50 km/h") into
// a unit-aware Speed, grounded on way_raw.go's mph/kmh regexp handling in
// the teacher repo.
func parseSpeed(raw string, key string) (Speed, Diagnostics) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if m := mphSpeedRegexp.FindStringSubmatch(trimmed); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Speed{}, Diagnostics{errorf(CodeUnitParseFailure, []string{key}, "%s=%q", key, raw)}
		}
		return Speed{Unit: SpeedMPH, Value: v}, nil
	}
	if m := kphSpeedRegexp.FindStringSubmatch(trimmed); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Speed{}, Diagnostics{errorf(CodeUnitParseFailure, []string{key}, "%s=%q", key, raw)}
		}
		return Speed{Unit: SpeedKPH, Value: v}, nil
	}
	return Speed{}, Diagnostics{errorf(CodeUnitParseFailure, []string{key},
		"could not parse speed from %s=%q", key, raw)}
}

// SpeedScheme is the result of the Max speed scheme from spec.md §4.2.
type SpeedScheme struct {
	RoadWide *Speed
	Forward  *Speed
	Backward *Speed
	PerLane  []*Speed
}

func parseMaxSpeed(tags *Tags) (SpeedScheme, Diagnostics) {
	var ds Diagnostics
	var out SpeedScheme

	if raw, ok := tags.GetConsume("maxspeed"); ok {
		if strings.EqualFold(strings.TrimSpace(raw), "none") ||
			strings.EqualFold(strings.TrimSpace(raw), "signals") ||
			strings.EqualFold(strings.TrimSpace(raw), "walk") {
			// Unbounded/contextual limits carry no numeric value we can
			// represent; tolerate rather than abort.
		} else {
			v, d := parseSpeed(raw, "maxspeed")
			ds = append(ds, d...)
			if !d.HasErrors() {
				out.RoadWide = &v
			}
		}
	}
	if raw, ok := tags.GetConsume("maxspeed:forward"); ok {
		v, d := parseSpeed(raw, "maxspeed:forward")
		ds = append(ds, d...)
		if !d.HasErrors() {
			out.Forward = &v
		}
	}
	if raw, ok := tags.GetConsume("maxspeed:backward"); ok {
		v, d := parseSpeed(raw, "maxspeed:backward")
		ds = append(ds, d...)
		if !d.HasErrors() {
			out.Backward = &v
		}
	}
	if raw, ok := tags.GetConsume("maxspeed:lanes"); ok {
		for _, field := range splitBarString(raw) {
			if field == "" || field == "none" {
				out.PerLane = append(out.PerLane, nil)
				continue
			}
			v, d := parseSpeed(field, "maxspeed:lanes")
			ds = append(ds, d...)
			if d.HasErrors() {
				out.PerLane = append(out.PerLane, nil)
				continue
			}
			out.PerLane = append(out.PerLane, &v)
		}
	}
	return out, ds
}
