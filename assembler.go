package osm2lanes

// assembled carries the Road's lane list alongside the index ranges the
// per-lane override step (spec.md §4.3 step 3) needs: the main seeded
// travel lanes' position within the final slice, split by direction, since
// bus/parking/cycleway/sidewalk lanes were prepended/appended around them.
type assembled struct {
	lanes []Lane

	// indices, in Lanes order, of the seeded motor-vehicle travel lanes.
	backwardSeedIdx []int
	forwardSeedIdx  []int
}

// assembleRoad runs the inside-out construction algorithm from spec.md
// §4.3: seed the motor-vehicle travel lanes, then for each side attach
// bus/parking/cycleway/sidewalk lanes outward in the tie-break order
// travel → bus → parking → cycleway → shoulder/sidewalk.
func assembleRoad(
	counts LaneCounts,
	oneway Oneway,
	sidewalk SidewalkSides,
	cycleway CyclewayScheme,
	busway BuswaySides,
	parking ParkingSides,
	locale Locale,
	highway HighwayClass,
	cfg *Config,
) assembled {
	lanes := make([]Lane, 0, counts.Backward+counts.Forward+1)
	var backwardSeedIdx, forwardSeedIdx []int

	for i := 0; i < counts.Backward; i++ {
		backwardSeedIdx = append(backwardSeedIdx, len(lanes))
		lanes = append(lanes, Travel(DirectionBackward, DesignatedMotorVehicle))
	}
	if counts.Centre {
		lanes = append(lanes, Travel(DirectionBoth, DesignatedMotorVehicle))
	}
	for i := 0; i < counts.Forward; i++ {
		forwardSeedIdx = append(forwardSeedIdx, len(lanes))
		lanes = append(lanes, Travel(DirectionForward, DesignatedMotorVehicle))
	}

	leftExtras := sideExtras(SideLeft, oneway, sidewalk.Left, cycleway.Left, busway.Left, parking.Left, locale, highway, cfg)
	rightExtras := sideExtras(SideRight, oneway, sidewalk.Right, cycleway.Right, busway.Right, parking.Right, locale, highway, cfg)

	leftSegment := reverseLanes(leftExtras)
	final := make([]Lane, 0, len(leftSegment)+len(lanes)+len(rightExtras))
	final = append(final, leftSegment...)
	final = append(final, lanes...)
	final = append(final, rightExtras...)

	offset := len(leftSegment)
	for i := range backwardSeedIdx {
		backwardSeedIdx[i] += offset
	}
	for i := range forwardSeedIdx {
		forwardSeedIdx[i] += offset
	}

	return assembled{lanes: final, backwardSeedIdx: backwardSeedIdx, forwardSeedIdx: forwardSeedIdx}
}

// sideExtras builds one side's attachments in innermost-to-outermost order
// (bus, parking, cycleway, sidewalk/shoulder), per spec.md §4.3's tie-break
// table read outward from the travel lanes.
func sideExtras(
	side Side,
	oneway Oneway,
	sidewalk SidewalkState,
	cycleway CyclewaySide,
	hasBusway bool,
	parkingOrientation *ParkingOrientation,
	locale Locale,
	highway HighwayClass,
	cfg *Config,
) []Lane {
	var extras []Lane

	normalDir := sideAttachmentDirection(side, locale, oneway)

	if hasBusway {
		extras = append(extras, Travel(normalDir, DesignatedBus))
	}
	if parkingOrientation != nil {
		extras = append(extras, Parking(normalDir, DesignatedMotorVehicle, *parkingOrientation))
	}
	if cycleway.Present {
		if cycleway.TwoWay {
			extras = append(extras, Travel(DirectionForward, DesignatedBicycle))
			extras = append(extras, Travel(DirectionBackward, DesignatedBicycle))
		} else if cycleway.Contraflow {
			extras = append(extras, Travel(normalDir.opposite(), DesignatedBicycle))
		} else {
			extras = append(extras, Travel(normalDir, DesignatedBicycle))
		}
	}

	switch sidewalk {
	case SidewalkPresent:
		extras = append(extras, Travel(DirectionNone, DesignatedFoot))
	case SidewalkExplicitNone:
		if cfg.IncludeShoulders {
			extras = append(extras, Shoulder())
		}
	case SidewalkUnset:
		if cfg.InferDefaults && cfg.IncludeShoulders && shoulderDefaultByHighway(highway) {
			extras = append(extras, Shoulder())
		}
	}

	return extras
}

// sideAttachmentDirection is the direction a non-contraflow lane attached
// to this side takes: on a oneway road every attachment runs with the
// single permitted direction regardless of side (there is no oncoming
// traffic to be "away from"); on a two-way road it follows the side
// convention (spec.md §3 invariant 4).
func sideAttachmentDirection(side Side, locale Locale, oneway Oneway) Direction {
	if oneway.MotorVehicle {
		return DirectionForward
	}
	return side.conventionDirection(locale)
}

func reverseLanes(lanes []Lane) []Lane {
	out := make([]Lane, len(lanes))
	for i, l := range lanes {
		out[len(lanes)-1-i] = l
	}
	return out
}

// applyModalOverrides assigns the i-th bar-string entry's designation to
// the i-th main travel lane, per spec.md §4.3 step 3. Undirected entries
// count from the leftmost main travel lane overall; :forward/:backward
// entries count from the leftmost lane sharing that direction.
func applyModalOverrides(lanes []Lane, a assembled, overrides ModalOverrides) Diagnostics {
	var ds Diagnostics
	allSeedIdx := append(append([]int{}, a.backwardSeedIdx...), a.forwardSeedIdx...)

	apply := func(mo ModalOverride, key string) {
		ds = append(ds, checkOverrideLength(mo.Undirected, len(allSeedIdx), key+":lanes")...)
		applyDesignationByIndex(lanes, allSeedIdx, mo.Undirected)
		ds = append(ds, checkOverrideLength(mo.Forward, len(a.forwardSeedIdx), key+":lanes:forward")...)
		applyDesignationByIndex(lanes, a.forwardSeedIdx, mo.Forward)
		ds = append(ds, checkOverrideLength(mo.Backward, len(a.backwardSeedIdx), key+":lanes:backward")...)
		applyDesignationByIndex(lanes, a.backwardSeedIdx, mo.Backward)
	}

	apply(overrides.Bus, "bus")
	apply(overrides.Psv, "psv")
	apply(overrides.Bicycle, "bicycle")
	apply(overrides.Vehicle, "vehicle")
	return ds
}

func applyDesignationByIndex(lanes []Lane, seedIdx []int, entries []string) {
	for i, raw := range entries {
		if i >= len(seedIdx) {
			break
		}
		if raw == "" {
			continue
		}
		d, ok := barStringDesignation(raw)
		if !ok || d == DesignatedAny {
			continue
		}
		lanes[seedIdx[i]].Designated = d
	}
}

// barStringDesignation resolves one field of a bus:lanes/psv:lanes/
// bicycle:lanes/vehicle:lanes bar string to a Designated. These accept the
// §3 enum spellings plus OSM's own "designated" shorthand (e.g.
// bus:lanes=designated|no); that shorthand is deliberately kept out of
// designatedByName so it can't leak into Designated's wire format.
func barStringDesignation(raw string) (Designated, bool) {
	if d, ok := designatedFromString(raw); ok {
		return d, true
	}
	if raw == "designated" {
		return DesignatedBus, true
	}
	return 0, false
}

// applyTurnLanes assigns turn markings to the main travel lanes by the same
// indexing rule as applyModalOverrides.
func applyTurnLanes(lanes []Lane, a assembled, scheme TurnLanesScheme) Diagnostics {
	var ds Diagnostics
	allSeedIdx := append(append([]int{}, a.backwardSeedIdx...), a.forwardSeedIdx...)

	ds = append(ds, checkTurnLength(scheme.Undirected, len(allSeedIdx), "turn:lanes")...)
	applyTurnsByIndex(lanes, allSeedIdx, scheme.Undirected)
	ds = append(ds, checkTurnLength(scheme.Forward, len(a.forwardSeedIdx), "turn:lanes:forward")...)
	applyTurnsByIndex(lanes, a.forwardSeedIdx, scheme.Forward)
	ds = append(ds, checkTurnLength(scheme.Backward, len(a.backwardSeedIdx), "turn:lanes:backward")...)
	applyTurnsByIndex(lanes, a.backwardSeedIdx, scheme.Backward)
	return ds
}

func checkTurnLength(entries [][]TurnMark, lanesAvailable int, key string) Diagnostics {
	if len(entries) > lanesAvailable {
		return Diagnostics{warningf(CodeLaneCountMismatch, []string{key},
			"%s has %d entries but there are only %d lanes to apply them to", key, len(entries), lanesAvailable)}
	}
	return nil
}

func applyTurnsByIndex(lanes []Lane, seedIdx []int, entries [][]TurnMark) {
	for i, marks := range entries {
		if i >= len(seedIdx) || len(marks) == 0 {
			continue
		}
		lanes[seedIdx[i]].Turns = marks
	}
}

// applyWidths applies the Width scheme's road-wide and per-lane values to
// the main travel lanes, and the cycleway/sidewalk widths to those lanes,
// per spec.md §4.3 step 4 ("by key specificity": the more specific
// per-lane value always wins over the road-wide one).
func applyWidths(lanes []Lane, a assembled, w WidthScheme) {
	allSeedIdx := append(append([]int{}, a.backwardSeedIdx...), a.forwardSeedIdx...)
	if w.RoadWide != nil {
		for _, idx := range allSeedIdx {
			lanes[idx].WidthM = w.RoadWide
		}
	}
	for i, v := range w.PerLane {
		if i >= len(allSeedIdx) || v == nil {
			continue
		}
		lanes[allSeedIdx[i]].WidthM = v
	}
	for i := range lanes {
		switch {
		case lanes[i].Kind == LaneTravel && lanes[i].Designated == DesignatedBicycle && w.Cycleway != nil:
			lanes[i].WidthM = w.Cycleway
		case lanes[i].Kind == LaneTravel && lanes[i].Designated == DesignatedFoot && w.Sidewalk != nil:
			lanes[i].WidthM = w.Sidewalk
		}
	}
}

// applySpeeds applies the Max speed scheme to the main travel lanes, per
// spec.md §4.3 step 4.
func applySpeeds(lanes []Lane, a assembled, s SpeedScheme) {
	if s.RoadWide != nil {
		for _, idx := range append(append([]int{}, a.backwardSeedIdx...), a.forwardSeedIdx...) {
			lanes[idx].MaxSpeed = s.RoadWide
		}
	}
	if s.Forward != nil {
		for _, idx := range a.forwardSeedIdx {
			lanes[idx].MaxSpeed = s.Forward
		}
	}
	if s.Backward != nil {
		for _, idx := range a.backwardSeedIdx {
			lanes[idx].MaxSpeed = s.Backward
		}
	}
	allSeedIdx := append(append([]int{}, a.backwardSeedIdx...), a.forwardSeedIdx...)
	for i, v := range s.PerLane {
		if i >= len(allSeedIdx) || v == nil {
			continue
		}
		lanes[allSeedIdx[i]].MaxSpeed = v
	}
}

// applyAccess applies the Access scheme's baseline to every travel/parking
// lane. The Access scheme carries no per-lane values, so every lane gets the
// same baseline.
func applyAccess(lanes []Lane, a assembled, acc AccessScheme) {
	hasBaseline := acc.Baseline.Foot != nil || acc.Baseline.Bicycle != nil || acc.Baseline.Bus != nil || acc.Baseline.Motor != nil
	if hasBaseline {
		for i := range lanes {
			if lanes[i].IsTravelOrParking() {
				baseline := acc.Baseline
				lanes[i].Access = &baseline
			}
		}
	}
}

// reverseOneway flips every lane's Forward/Backward direction in place,
// implementing spec.md §4.2's normalization: "oneway=-1 is rewritten to
// oneway=yes with all Forwards replaced by Backwards in the final lane
// list." Both/None directions, and separator semantics, are untouched.
func reverseOneway(lanes []Lane) {
	for i := range lanes {
		if lanes[i].IsTravelOrParking() {
			lanes[i].Direction = lanes[i].Direction.opposite()
		}
	}
}
