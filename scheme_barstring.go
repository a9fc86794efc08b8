package osm2lanes

import "strings"

// splitBarString splits an OSM per-lane bar-separated string ("designated|no",
// "left;through|through|through;right") into its per-lane fields, without
// further interpreting each field.
func splitBarString(raw string) []string {
	parts := strings.Split(raw, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// ModalOverride is a per-lane override scheme's parsed bar-string, kept
// separate for the undirected form and the :forward/:backward suffixed
// forms, since spec.md §4.3 step 3 indexes each independently ("counting
// from the leftmost travel lane if the scheme is undirected or from the
// forward-direction lanes if suffixed :forward").
type ModalOverride struct {
	Undirected []string
	Forward    []string
	Backward   []string
}

func (m ModalOverride) isZero() bool {
	return len(m.Undirected) == 0 && len(m.Forward) == 0 && len(m.Backward) == 0
}

// consumeModalOverride consumes `<prefix>:lanes`, `<prefix>:lanes:forward`
// and `<prefix>:lanes:backward`.
func consumeModalOverride(tags *Tags, prefix string) ModalOverride {
	var out ModalOverride
	if raw, ok := tags.GetConsume(prefix + ":lanes"); ok {
		out.Undirected = splitBarString(raw)
	}
	if raw, ok := tags.GetConsume(prefix + ":lanes:forward"); ok {
		out.Forward = splitBarString(raw)
	}
	if raw, ok := tags.GetConsume(prefix + ":lanes:backward"); ok {
		out.Backward = splitBarString(raw)
	}
	return out
}

// ModalOverrides is the result of the Per-lane modal scheme from
// spec.md §4.2: `bus:lanes`, `psv:lanes`, `bicycle:lanes`, `vehicle:lanes`.
type ModalOverrides struct {
	Bus     ModalOverride
	Psv     ModalOverride
	Bicycle ModalOverride
	Vehicle ModalOverride
}

func parseModalOverrides(tags *Tags) ModalOverrides {
	return ModalOverrides{
		Bus:     consumeModalOverride(tags, "bus"),
		Psv:     consumeModalOverride(tags, "psv"),
		Bicycle: consumeModalOverride(tags, "bicycle"),
		Vehicle: consumeModalOverride(tags, "vehicle"),
	}
}

// TurnLanesScheme is the result of the Turn markings scheme from
// spec.md §4.2: `turn:lanes`, `turn:lanes:forward`, `turn:lanes:backward`.
type TurnLanesScheme struct {
	Undirected [][]TurnMark
	Forward    [][]TurnMark
	Backward   [][]TurnMark
}

func parseTurnLanes(tags *Tags) (TurnLanesScheme, Diagnostics) {
	var ds Diagnostics
	var out TurnLanesScheme
	if raw, ok := tags.GetConsume("turn:lanes"); ok {
		out.Undirected, ds = parseTurnBarString(raw, "turn:lanes", ds)
	}
	if raw, ok := tags.GetConsume("turn:lanes:forward"); ok {
		out.Forward, ds = parseTurnBarString(raw, "turn:lanes:forward", ds)
	}
	if raw, ok := tags.GetConsume("turn:lanes:backward"); ok {
		out.Backward, ds = parseTurnBarString(raw, "turn:lanes:backward", ds)
	}
	return out, ds
}

func parseTurnBarString(raw string, key string, ds Diagnostics) ([][]TurnMark, Diagnostics) {
	fields := splitBarString(raw)
	out := make([][]TurnMark, len(fields))
	for i, field := range fields {
		if field == "" || field == "none" {
			continue
		}
		for _, part := range strings.Split(field, ";") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			mark, ok := turnMarkByName[part]
			if !ok || mark == 0 {
				ds = append(ds, warningf(CodeUnknownValue, []string{key},
					"unrecognized turn marking %q in %s", part, key))
				continue
			}
			out[i] = append(out[i], mark)
		}
	}
	return out, ds
}

// checkOverrideLength returns Warning(LaneCountMismatch) when a per-lane
// bar-string has more entries than there are lanes to apply them to. It
// applies nothing itself; when there are fewer entries than lanes, the lanes
// past the last entry keep the designation the assembler gave them.
func checkOverrideLength(entries []string, lanesAvailable int, key string) Diagnostics {
	if len(entries) > lanesAvailable {
		return Diagnostics{warningf(CodeLaneCountMismatch, []string{key},
			"%s has %d entries but there are only %d lanes to apply them to", key, len(entries), lanesAvailable)}
	}
	return nil
}
