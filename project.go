package osm2lanes

import (
	"fmt"
	"strconv"
	"strings"
)

// LanesToTags implements the Lanes-to-Tags Projector from spec.md §4.5: the
// inverse of TagsToLanes, good enough that re-running TagsToLanes on its
// output reproduces the same Road up to locale/highway defaults (spec.md
// §8's round-trip property). Separators carry no tagged information and
// are dropped; any tag TagsToLanes never consumed (Road.OtherAttrs) is
// copied back in verbatim.
func LanesToTags(road Road, locale Locale, cfg *Config) (Tags, Diagnostics) {
	if cfg == nil {
		cfg = NewConfig()
	}
	out := make(map[string]string, len(road.OtherAttrs)+8)
	var diag Diagnostics

	for k, v := range road.OtherAttrs {
		out[k] = v
	}
	if road.Name != "" {
		out["name"] = road.Name
	}
	if road.Lit != nil {
		out["lit"] = yesNo(*road.Lit)
	}

	lanes := stripSeparators(road.Lanes)

	switch {
	case road.HighwayClass == HighwayConstruction:
		out["highway"] = "construction"
	case road.HighwayClass.isFootOnly():
		out["highway"] = road.HighwayClass.String()
	default:
		out["highway"] = road.HighwayClass.String()
		diag = append(diag, projectMotorized(lanes, locale, out)...)
	}

	return NewTags(out), diag
}

func stripSeparators(lanes []Lane) []Lane {
	out := make([]Lane, 0, len(lanes))
	for _, l := range lanes {
		if l.Kind != LaneSeparator {
			out = append(out, l)
		}
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// isMainTravelLane reports whether l belongs to the motor-vehicle seed run
// rather than a bus/parking/cycleway/sidewalk attachment. A per-lane modal
// override can repaint a seed lane's Designated to Bus/Psv/Taxi/Any, so
// those count too; Bicycle is deliberately excluded even though
// bicycle:lanes can in principle repaint a seed lane the same way, because
// a standalone Designated-Bicycle Travel lane attached beside the seed is
// the far more common shape and must not be folded into the lane count.
func isMainTravelLane(l Lane) bool {
	if l.Kind != LaneTravel {
		return false
	}
	switch l.Designated {
	case DesignatedMotorVehicle, DesignatedBus, DesignatedPsv, DesignatedTaxi, DesignatedAny:
		return true
	default:
		return false
	}
}

// projectMotorized finds the contiguous seed block of main travel lanes
// and everything attached to either side of it, and emits the lane-count,
// oneway, per-side and per-lane tags spec.md §4.2's schemes read.
func projectMotorized(lanes []Lane, locale Locale, out map[string]string) Diagnostics {
	var diag Diagnostics

	start, end := mainTravelRange(lanes)
	seed := lanes[start:end]
	leftExtras := reverseLanes(lanes[:start])
	rightExtras := lanes[end:]

	var backwardIdx, forwardIdx []int
	centre := false
	for i, l := range seed {
		switch l.Direction {
		case DirectionBackward:
			backwardIdx = append(backwardIdx, i)
		case DirectionForward:
			forwardIdx = append(forwardIdx, i)
		case DirectionBoth:
			centre = true
		}
	}

	oneway := len(backwardIdx) == 0 && !centre
	if oneway {
		out["oneway"] = "yes"
		out["lanes"] = strconv.Itoa(len(forwardIdx))
	} else {
		total := len(forwardIdx) + len(backwardIdx)
		if centre {
			total++
			out["lanes:both_ways"] = "1"
		}
		out["lanes"] = strconv.Itoa(total)
		out["lanes:forward"] = strconv.Itoa(len(forwardIdx))
		out["lanes:backward"] = strconv.Itoa(len(backwardIdx))
	}

	projectSide("left", leftExtras, locale, !oneway, out)
	projectSide("right", rightExtras, locale, !oneway, out)

	projectPerLaneModal(seed, out)
	projectPerLaneTurns(seed, out)
	projectWidths(seed, locale, out)
	projectSpeeds(seed, out)
	projectAccess(seed, out)

	return diag
}

// mainTravelRange finds the first and one-past-last index of the
// contiguous run of seed travel lanes the assembler built, identified as
// the longest run of Travel lanes whose Designated is a seed designation.
// Bus/bicycle lanes attached on either side are also Travel, but they sit
// outside this contiguous run because the assembler always places the
// motor-vehicle seed directly adjacent to at most one bus lane per side,
// never interleaved with it.
func mainTravelRange(lanes []Lane) (int, int) {
	bestStart, bestEnd := 0, 0
	i := 0
	for i < len(lanes) {
		if !isMainTravelLane(lanes[i]) {
			i++
			continue
		}
		j := i
		for j < len(lanes) && isMainTravelLane(lanes[j]) {
			j++
		}
		if j-i > bestEnd-bestStart {
			bestStart, bestEnd = i, j
		}
		i = j
	}
	return bestStart, bestEnd
}

func projectSide(side string, extras []Lane, locale Locale, twoWay bool, out map[string]string) {
	i := 0
	for i < len(extras) {
		l := extras[i]
		switch {
		case l.Kind == LaneTravel && l.Designated == DesignatedBus:
			out["busway:"+side] = "lane"
			i++
		case l.Kind == LaneParking:
			out["parking:lane:"+side] = l.Orientation.String()
			i++
		case l.Kind == LaneTravel && l.Designated == DesignatedBicycle:
			if i+1 < len(extras) && extras[i+1].Kind == LaneTravel && extras[i+1].Designated == DesignatedBicycle &&
				extras[i+1].Direction == l.Direction.opposite() {
				out["cycleway:"+side] = "track"
				i += 2
				continue
			}
			conventional := Side(0)
			if side == "left" {
				conventional = SideLeft
			} else {
				conventional = SideRight
			}
			expected := conventional.conventionDirection(locale)
			if !twoWay {
				expected = DirectionForward
			}
			if l.Direction == expected {
				out["cycleway:"+side] = "lane"
			} else {
				out["cycleway:"+side] = "opposite_lane"
			}
			i++
		case l.Kind == LaneTravel && l.Designated == DesignatedFoot:
			out["sidewalk:"+side] = "yes"
			i++
		default:
			i++
		}
	}
}

// projectPerLaneModal emits bus:lanes when a per-lane modal override
// repainted one of the seed travel lanes to DesignatedBus or DesignatedPsv;
// a seed lane repainted to any other designation is written as "no".
func projectPerLaneModal(seed []Lane, out map[string]string) {
	if len(seed) == 0 {
		return
	}
	any := false
	fields := make([]string, 0, len(seed))
	for _, l := range seed {
		if l.Direction == DirectionBoth {
			continue
		}
		switch l.Designated {
		case DesignatedBus, DesignatedPsv:
			fields = append(fields, "designated")
			any = true
		default:
			fields = append(fields, "no")
		}
	}
	if any {
		out["bus:lanes"] = strings.Join(fields, "|")
	}
}

func projectPerLaneTurns(seed []Lane, out map[string]string) {
	if len(seed) == 0 {
		return
	}
	any := false
	fields := make([]string, 0, len(seed))
	for _, l := range seed {
		if l.Direction == DirectionBoth {
			continue
		}
		if len(l.Turns) == 0 {
			fields = append(fields, "none")
			continue
		}
		any = true
		names := make([]string, len(l.Turns))
		for i, t := range l.Turns {
			names[i] = t.String()
		}
		fields = append(fields, strings.Join(names, ";"))
	}
	if any {
		out["turn:lanes"] = strings.Join(fields, "|")
	}
}

func projectWidths(seed []Lane, locale Locale, out map[string]string) {
	if len(seed) == 0 {
		return
	}
	values := make([]*float64, 0, len(seed))
	for _, l := range seed {
		if l.Direction == DirectionBoth {
			continue
		}
		values = append(values, l.WidthM)
	}
	if len(values) == 0 {
		return
	}
	allSame := values[0] != nil
	for _, v := range values[1:] {
		if v == nil || *v != *values[0] {
			allSame = false
			break
		}
	}
	if allSame {
		out["width"] = formatMetres(*values[0])
		return
	}
	any := false
	fields := make([]string, len(values))
	for i, v := range values {
		if v == nil {
			fields[i] = ""
			continue
		}
		any = true
		fields[i] = formatMetres(*v)
	}
	if any {
		out["width:lanes"] = strings.Join(fields, "|")
	}
}

func formatMetres(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func projectSpeeds(seed []Lane, out map[string]string) {
	if len(seed) == 0 {
		return
	}
	var uniform *Speed
	allSame := true
	for _, l := range seed {
		if l.Direction == DirectionBoth {
			continue
		}
		if uniform == nil {
			uniform = l.MaxSpeed
			continue
		}
		if l.MaxSpeed == nil || *l.MaxSpeed != *uniform {
			allSame = false
		}
	}
	if allSame && uniform != nil {
		out["maxspeed"] = formatSpeed(*uniform)
	}
}

func formatSpeed(s Speed) string {
	if s.Unit == SpeedMPH {
		return fmt.Sprintf("%s mph", formatMetres(s.Value))
	}
	return formatMetres(s.Value)
}

func projectAccess(seed []Lane, out map[string]string) {
	for _, l := range seed {
		if l.Access == nil {
			continue
		}
		if l.Access.Bicycle != nil {
			out["bicycle"] = l.Access.Bicycle.Access.String()
		}
		if l.Access.Foot != nil {
			out["foot"] = l.Access.Foot.Access.String()
		}
		if l.Access.Motor != nil {
			out["motor_vehicle"] = l.Access.Motor.Access.String()
		}
		if l.Access.Bus != nil {
			out["bus"] = l.Access.Bus.Access.String()
		}
		return
	}
}
