package osm2lanes

// placeSeparators implements the Separator Placer from spec.md §4.4: walk
// the assembled lane list and insert exactly one Separator between every
// adjacent pair of non-separator lanes, plus one edge Separator at each end
// of the road, choosing a semantic and marking sequence from the pair's
// kinds. When Config.IncludeSeparators is false, the lane list is returned
// unchanged — no separators at all, not even at the edges.
func placeSeparators(lanes []Lane, locale Locale, cfg *Config) []Lane {
	if !cfg.IncludeSeparators {
		return lanes
	}
	if len(lanes) == 0 {
		return lanes
	}

	out := make([]Lane, 0, len(lanes)*2+1)
	out = append(out, edgeSeparator())
	for i, l := range lanes {
		out = append(out, l)
		if i < len(lanes)-1 {
			out = append(out, separatorBetween(l, lanes[i+1], locale))
		}
	}
	out = append(out, edgeSeparator())
	return out
}

func edgeSeparator() Lane {
	return NewSeparator(SeparatorEdge, singleLine(MarkingSolidLine, ColorWhite))
}

// separatorBetween picks the marking for the boundary between two adjacent
// non-separator lanes, per spec.md §4.4's left-neighbor/right-neighbor
// table: shoulder edges get a solid edge line, a change of travel mode gets
// a dashed modal line, two opposing motor-vehicle flows (or either side of
// a centre turn lane) get the double centre line, and everything else
// (same-direction lane split) gets a plain broken lane line.
func separatorBetween(left, right Lane, locale Locale) Lane {
	switch {
	case left.Kind == LaneShoulder || right.Kind == LaneShoulder:
		return NewSeparator(SeparatorShoulder, singleLine(MarkingSolidLine, ColorWhite))
	case left.Kind == LaneConstruction || right.Kind == LaneConstruction:
		return NewSeparator(SeparatorModal, singleLine(MarkingSolidLine, ColorWhite))
	case isCentreBoundary(left, right):
		color := ColorWhite
		if locale.usesYellowCentreLine() {
			color = ColorYellow
		}
		return NewSeparator(SeparatorCentre, doubleLine(color))
	case left.IsTravelOrParking() && right.IsTravelOrParking() && left.Designated != right.Designated:
		return NewSeparator(SeparatorModal, singleLine(MarkingDashedLine, ColorWhite))
	case left.Kind != right.Kind:
		return NewSeparator(SeparatorModal, singleLine(MarkingDashedLine, ColorWhite))
	default:
		return NewSeparator(SeparatorLane, singleLine(MarkingBrokenLine, ColorWhite))
	}
}

// isCentreBoundary reports whether this pair straddles the road's motor
// vehicle centreline: opposing Forward/Backward travel, or either lane is
// the Both-direction centre turn lane itself.
func isCentreBoundary(left, right Lane) bool {
	if left.Kind != LaneTravel || right.Kind != LaneTravel {
		return false
	}
	if left.Designated != DesignatedMotorVehicle || right.Designated != DesignatedMotorVehicle {
		return false
	}
	if left.Direction == DirectionBoth || right.Direction == DirectionBoth {
		return true
	}
	return left.Direction == DirectionBackward && right.Direction == DirectionForward
}
