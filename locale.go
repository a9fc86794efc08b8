package osm2lanes

import "strings"

// DrivingSide is the side of the roadway forward traffic travels on.
type DrivingSide uint8

const (
	DrivingSideRight = DrivingSide(iota + 1)
	DrivingSideLeft
)

func (s DrivingSide) String() string {
	switch s {
	case DrivingSideRight:
		return "right"
	case DrivingSideLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Locale is an immutable set of geocoded preferences injected into the
// pipeline: country, optional subdivision and driving side.
// Build one with NewLocale; it is never mutated afterwards, so a single
// Locale value may be shared freely across concurrent transform calls.
type Locale struct {
	Country      string // ISO-3166 alpha-2, uppercase
	Subdivision  string
	DrivingSide  DrivingSide
}

// NewLocale builds a Locale, normalizing the country code to uppercase.
// Driving side defaults to right when unset.
func NewLocale(country string, subdivision string, side DrivingSide) Locale {
	if side == 0 {
		side = DrivingSideRight
	}
	return Locale{
		Country:     strings.ToUpper(strings.TrimSpace(country)),
		Subdivision: strings.TrimSpace(subdivision),
		DrivingSide: side,
	}
}

// Mirror returns the Locale with driving side flipped, for the mirror
// symmetry property: swapping driving side and mirror-reversing a Road's
// lane list should match what this Locale would have produced directly.
func (l Locale) Mirror() Locale {
	m := l
	if l.DrivingSide == DrivingSideLeft {
		m.DrivingSide = DrivingSideRight
	} else {
		m.DrivingSide = DrivingSideLeft
	}
	return m
}

// IsLeftHandDriving reports whether this locale drives on the left.
func (l Locale) IsLeftHandDriving() bool {
	return l.DrivingSide == DrivingSideLeft
}

// usesYellowCentreLine reports whether this locale paints centre lines
// yellow instead of white, per spec.md §4.4 ("double yellow in US locale").
func (l Locale) usesYellowCentreLine() bool {
	switch l.Country {
	case "US", "CA", "MX", "PH":
		return true
	default:
		return false
	}
}

// hasSplitLanes reports whether, absent any lane-count tagging, this
// locale's convention for the given highway class still implies separate
// forward/backward lanes rather than a single undivided lane. Grounded on
// Locale::has_split_lanes in original_source/osm2lanes/src/locale.rs: most
// classed roads split, tracks and service roads typically do not.
func (l Locale) hasSplitLanes(h HighwayClass) bool {
	switch h {
	case HighwayService, HighwayTrack, HighwayPath, HighwayFootway, HighwayPedestrian, HighwayCycleway:
		return false
	default:
		return true
	}
}

// travelWidth returns the locale default width (metres) for a travel lane
// of the given designation on the given highway class, used whenever a
// scheme is silent about width. Grounded on Lane::DEFAULT_WIDTH in
// original_source/osm2lanes/src/road/lane.rs: 3.5m is the "EUROPEAN
// AGREEMENT ON MAIN INTERNATIONAL TRAFFIC ARTERIES (AGR) 1975 III.1.1.1"
// default; narrower classes get narrower defaults.
func (l Locale) travelWidth(d Designated, h HighwayClass) float64 {
	switch d {
	case DesignatedFoot:
		return 1.5
	case DesignatedBicycle:
		return 2.0
	default:
		switch h {
		case HighwayMotorway, HighwayTrunk:
			return 3.75
		case HighwayService, HighwayTrack:
			return 2.75
		default:
			return defaultLaneWidthMetres
		}
	}
}

// defaultLaneWidthMetres is Lane::DEFAULT_WIDTH from the source this spec
// was distilled from: the EUROPEAN AGREEMENT ON MAIN INTERNATIONAL TRAFFIC
// ARTERIES (AGR) 1975 III.1.1.1 default lane width.
const defaultLaneWidthMetres = 3.5

// defaultSeparatorWidthMetres is the width a Separator's marking defaults
// to when unspecified (spec.md §4.4).
const defaultSeparatorWidthMetres = 0.2

// shoulderDefaultByHighway answers the include_shoulders open question from
// spec.md §9: true for motorized road classes, false for footway/cycleway
// classes, absent an explicit shoulder tag.
func shoulderDefaultByHighway(h HighwayClass) bool {
	switch h {
	case HighwayFootway, HighwayPedestrian, HighwayCycleway, HighwayPath, HighwaySteps:
		return false
	default:
		return true
	}
}
