package osm2lanes

// HighwayClass enumerates the `highway=*` values this module recognizes,
// grounded on highway_type.go's HighwayType enumeration in the teacher
// repo, trimmed to the classes spec.md's Highway-class scheme names.
type HighwayClass uint8

const (
	HighwayMotorway = HighwayClass(iota + 1)
	HighwayTrunk
	HighwayPrimary
	HighwaySecondary
	HighwayTertiary
	HighwayUnclassified
	HighwayResidential
	HighwayLivingStreet
	HighwayService
	HighwayPedestrian
	HighwayTrack
	HighwayFootway
	HighwayCycleway
	HighwayPath
	HighwaySteps
	HighwayConstruction
)

func (h HighwayClass) String() string {
	name, ok := highwayClassNames[h]
	if !ok {
		return "unknown"
	}
	return name
}

var highwayClassNames = map[HighwayClass]string{
	HighwayMotorway:      "motorway",
	HighwayTrunk:         "trunk",
	HighwayPrimary:       "primary",
	HighwaySecondary:     "secondary",
	HighwayTertiary:      "tertiary",
	HighwayUnclassified:  "unclassified",
	HighwayResidential:   "residential",
	HighwayLivingStreet:  "living_street",
	HighwayService:       "service",
	HighwayPedestrian:    "pedestrian",
	HighwayTrack:         "track",
	HighwayFootway:       "footway",
	HighwayCycleway:      "cycleway",
	HighwayPath:          "path",
	HighwaySteps:         "steps",
	HighwayConstruction:  "construction",
}

var highwayClassByName = func() map[string]HighwayClass {
	m := make(map[string]HighwayClass, len(highwayClassNames))
	for k, v := range highwayClassNames {
		m[v] = k
	}
	// link variants collapse onto their parent class for this transform;
	// lane geometry does not differ for a _link way.
	m["motorway_link"] = HighwayMotorway
	m["trunk_link"] = HighwayTrunk
	m["primary_link"] = HighwayPrimary
	m["secondary_link"] = HighwaySecondary
	m["tertiary_link"] = HighwayTertiary
	return m
}()

// isFootOnly reports whether this class produces only a bidirectional foot
// lane per spec.md §4.3's edge cases (footway/pedestrian/path).
func (h HighwayClass) isFootOnly() bool {
	switch h {
	case HighwayFootway, HighwayPedestrian, HighwayPath, HighwaySteps:
		return true
	default:
		return false
	}
}

// Road is the canonical ordered cross-section produced by TagsToLanes and
// consumed by LanesToTags.
type Road struct {
	Name         string            `json:"name,omitempty"`
	HighwayClass HighwayClass      `json:"highway"`
	Lanes        []Lane            `json:"lanes"`
	Lit          *bool             `json:"lit,omitempty"`
	OtherAttrs   map[string]string `json:"tags,omitempty"`
}

// checkInvariants validates Road invariants 2 and 3 from spec.md §3: a
// Separator never opens or closes the list unless it represents a road
// edge, and exactly one Separator sits between any two non-separator lanes.
// It is used by tests and is deliberately not called from the assembler's
// happy path, since the assembler is constructed to satisfy it by
// construction; this is a cross-check, not a runtime guard.
func (r Road) checkInvariants() []string {
	var problems []string
	prevWasLane := false
	sepSinceLastLane := 0
	for i, l := range r.Lanes {
		if l.Kind == LaneSeparator {
			sepSinceLastLane++
			if i == 0 && l.Semantic != SeparatorEdge {
				problems = append(problems, "leading separator is not an edge separator")
			}
			if i == len(r.Lanes)-1 && l.Semantic != SeparatorEdge {
				problems = append(problems, "trailing separator is not an edge separator")
			}
			continue
		}
		if prevWasLane && sepSinceLastLane != 1 {
			problems = append(problems, "adjacent non-separator lanes without exactly one separator")
		}
		prevWasLane = true
		sepSinceLastLane = 0
	}
	return problems
}

// MotorVehicleTravelLaneCount counts Travel lanes designated MotorVehicle,
// the quantity spec.md §8's "lane count invariant" is stated over.
func (r Road) MotorVehicleTravelLaneCount() int {
	n := 0
	for _, l := range r.Lanes {
		if l.Kind == LaneTravel && l.Designated == DesignatedMotorVehicle {
			n++
		}
	}
	return n
}

// Mirror reverses the lane order and flips every lane's direction and every
// separator's markings, producing the Road that the mirrored Locale would
// have assembled directly, for tag sets using only side-symmetric keys
// (spec.md §8 mirror-symmetry property).
func (r Road) Mirror() Road {
	out := r
	out.Lanes = make([]Lane, len(r.Lanes))
	for i, l := range r.Lanes {
		m := l
		if l.Kind == LaneSeparator {
			m.Markings = flipMarkings(l.Markings)
		} else {
			m.Direction = l.Direction.opposite()
		}
		out.Lanes[len(r.Lanes)-1-i] = m
	}
	return out
}
