package osm2lanes

// MarkingStyle is the paint/texture style of one stripe within a Separator.
type MarkingStyle uint8

const (
	MarkingSolidLine = MarkingStyle(iota + 1)
	MarkingBrokenLine
	MarkingDashedLine
	MarkingDottedLine
	MarkingDoubleSolid
	MarkingGoreChevron
	MarkingDiagonalHatched
	MarkingCrissCross
	MarkingNoFill
)

func (s MarkingStyle) String() string {
	switch s {
	case MarkingSolidLine:
		return "solid_line"
	case MarkingBrokenLine:
		return "broken_line"
	case MarkingDashedLine:
		return "dashed_line"
	case MarkingDottedLine:
		return "dotted_line"
	case MarkingDoubleSolid:
		return "double_solid"
	case MarkingGoreChevron:
		return "gore_chevron"
	case MarkingDiagonalHatched:
		return "diagonal_hatched"
	case MarkingCrissCross:
		return "criss_cross"
	case MarkingNoFill:
		return "no_fill"
	default:
		return "unknown"
	}
}

// Color is the paint colour of a Marking stripe.
type Color uint8

const (
	ColorWhite = Color(iota + 1)
	ColorYellow
	ColorRed
	ColorBlue
	ColorGreen
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorYellow:
		return "yellow"
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	default:
		return "unknown"
	}
}

// Marking is one stripe within a Separator's marking sequence.
type Marking struct {
	Style  MarkingStyle `json:"style"`
	WidthM *float64     `json:"width,omitempty"`
	Color  *Color       `json:"color,omitempty"`
}

// WithWidth returns a copy of the marking with WidthM set.
func (m Marking) WithWidth(metres float64) Marking {
	m.WidthM = &metres
	return m
}

// WithColor returns a copy of the marking with Color set.
func (m Marking) WithColor(c Color) Marking {
	m.Color = &c
	return m
}

func (m Marking) effectiveWidth() float64 {
	if m.WidthM != nil {
		return *m.WidthM
	}
	return defaultSeparatorWidthMetres
}

// SeparatorSemantic classifies why a Separator exists between two lanes.
type SeparatorSemantic uint8

const (
	SeparatorShoulder = SeparatorSemantic(iota + 1)
	SeparatorLane
	SeparatorModal
	SeparatorCentre
	SeparatorEdge
)

func (s SeparatorSemantic) String() string {
	switch s {
	case SeparatorShoulder:
		return "shoulder"
	case SeparatorLane:
		return "lane"
	case SeparatorModal:
		return "modal"
	case SeparatorCentre:
		return "centre"
	case SeparatorEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// doubleLine builds the classic "solid, gap, solid" double line used for
// centre separators, per spec.md §4.4's worked example.
func doubleLine(color Color) []Marking {
	gap := defaultSeparatorWidthMetres / 2
	return []Marking{
		(Marking{Style: MarkingSolidLine, Color: &color}).WithWidth(defaultSeparatorWidthMetres),
		(Marking{Style: MarkingNoFill}).WithWidth(gap),
		(Marking{Style: MarkingSolidLine, Color: &color}).WithWidth(defaultSeparatorWidthMetres),
	}
}

func singleLine(style MarkingStyle, color Color) []Marking {
	return []Marking{(Marking{Style: style, Color: &color}).WithWidth(defaultSeparatorWidthMetres)}
}

// flipMarkings reverses a marking sequence, used when mirroring a Road between
// driving sides, per Lane::mirror in
// original_source/osm2lanes/src/road/lane.rs.
func flipMarkings(markings []Marking) []Marking {
	out := make([]Marking, len(markings))
	for i, m := range markings {
		out[len(markings)-1-i] = m
	}
	return out
}
