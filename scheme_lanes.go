package osm2lanes

import "strconv"

// LaneCounts is the parsed result of the Lane count scheme from spec.md
// §4.2: forward/backward/centre integer counts.
type LaneCounts struct {
	Forward int
	Backward int
	Centre   bool
}

// parseLaneCounts consumes `lanes`, `lanes:forward`, `lanes:backward`,
// `lanes:both_ways`, `centre_turn_lane` and implements spec.md §4.2's
// splitting rule and defaults, plus §4.2's centre-turn-lane rule and §9's
// resolved open question ("do not infer a centre lane from the count
// alone; require centre_turn_lane=yes or lanes:both_ways>=1").
func parseLaneCounts(tags *Tags, oneway Oneway, locale Locale, highway HighwayClass) (LaneCounts, Diagnostics) {
	var ds Diagnostics

	total, totalOK, d := getConsumeInt(tags, "lanes")
	ds = append(ds, d...)
	forward, forwardOK, d := getConsumeInt(tags, "lanes:forward")
	ds = append(ds, d...)
	backward, backwardOK, d := getConsumeInt(tags, "lanes:backward")
	ds = append(ds, d...)
	bothWays, bothWaysOK, d := getConsumeInt(tags, "lanes:both_ways")
	ds = append(ds, d...)

	centre := bothWaysOK && bothWays >= 1
	if raw, ok := tags.GetConsumeTrimmed("centre_turn_lane"); ok {
		switch raw {
		case "yes":
			centre = true
		case "no":
			// explicit no: leave as whatever lanes:both_ways decided
		default:
			ds = append(ds, warningf(CodeUnknownValue, []string{"centre_turn_lane"},
				"unrecognized centre_turn_lane=%q", raw))
		}
		ds = append(ds, warningf(CodeDeprecatedTagForm, []string{"centre_turn_lane"},
			"centre_turn_lane is deprecated in favour of lanes:both_ways"))
	}

	if totalOK && total <= 0 {
		return LaneCounts{}, append(ds, errorf(CodeMalformedLaneCount, []string{"lanes"},
			"lanes=%d must be positive", total))
	}

	if oneway.MotorVehicle {
		if bothWaysOK || backwardOK {
			ds = append(ds, warningf(CodeInconsistentOneway, []string{"oneway", "lanes:both_ways", "lanes:backward"},
				"oneway=yes but lanes:both_ways/lanes:backward were set; ignoring them"))
		}
		switch {
		case forwardOK:
			return LaneCounts{Forward: forward}, ds
		case totalOK:
			return LaneCounts{Forward: total}, ds
		default:
			return LaneCounts{Forward: 1}, ds
		}
	}

	// Two-way. Whether the centre lane is already folded into `lanes` depends
	// on which tag produced it: lanes:both_ways is part of the wiki's `lanes`
	// arithmetic, but the deprecated centre_turn_lane tag is not — per the
	// note attached to spec.md §8 scenario 3, "spec mandates that lanes
	// includes or excludes the centre per the lanes:both_ways key if
	// present." So only subtract the centre lane from `lanes` when
	// lanes:both_ways itself is what's present.
	centreAdjust := 0
	if bothWaysOK {
		centreAdjust = boolToInt(centre)
	}

	switch {
	case forwardOK && backwardOK:
		if totalOK && total != forward+backward+centreAdjust {
			ds = append(ds, warningf(CodeLaneCountMismatch, []string{"lanes", "lanes:forward", "lanes:backward"},
				"lanes=%d does not match lanes:forward+lanes:backward(+centre)=%d", total, forward+backward+centreAdjust))
		}
		return LaneCounts{Forward: forward, Backward: backward, Centre: centre}, ds
	case forwardOK && totalOK:
		return LaneCounts{Forward: forward, Backward: total - forward - centreAdjust, Centre: centre}, ds
	case backwardOK && totalOK:
		return LaneCounts{Forward: total - backward - centreAdjust, Backward: backward, Centre: centre}, ds
	case totalOK:
		remaining := total - centreAdjust
		if remaining <= 0 {
			return LaneCounts{}, append(ds, errorf(CodeMalformedLaneCount, []string{"lanes"},
				"lanes=%d leaves no room for travel lanes once the centre lane is accounted for", total))
		}
		if remaining == 1 && !centre {
			// A single remaining lane on a two-way street has no room for
			// a one-way-each split; it is one lane shared by both
			// directions, not a lone Forward lane with the opposing
			// direction silently dropped.
			return LaneCounts{Centre: true}, ds
		}
		return splitEvenly(remaining, locale, centre), ds
	default:
		// Nothing tagged at all.
		if locale.hasSplitLanes(highway) {
			return LaneCounts{Forward: 1, Backward: 1, Centre: centre}, ds
		}
		return LaneCounts{Forward: 1, Centre: centre}, ds
	}
}

// splitEvenly implements the driving-side split for a bare `lanes=N` with no
// directional suffix: right-driving gives ceil(N/2) forward and floor(N/2)
// backward; left-driving gives ceil(N/2) backward and floor(N/2) forward.
func splitEvenly(remaining int, locale Locale, centre bool) LaneCounts {
	if locale.IsLeftHandDriving() {
		backward := (remaining + 1) / 2 // ceil
		forward := remaining / 2        // floor
		return LaneCounts{Forward: forward, Backward: backward, Centre: centre}
	}
	forward := (remaining + 1) / 2 // ceil
	backward := remaining / 2      // floor
	return LaneCounts{Forward: forward, Backward: backward, Centre: centre}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// getConsumeInt consumes a tag and parses it as a non-negative integer,
// yielding Error(MalformedLaneCount) on a malformed value (never a panic,
// per spec.md §7).
func getConsumeInt(tags *Tags, key string) (int, bool, Diagnostics) {
	raw, ok := tags.GetConsumeTrimmed(key)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, Diagnostics{errorf(CodeMalformedLaneCount, []string{key},
			"%s=%q is not an integer", key, raw)}
	}
	return n, true, nil
}
