package osm2lanes

import "fmt"

// TagsToLanes runs the full pipeline described in spec.md §2 — Tag Store
// → Scheme Parsers → Road Assembler → Separator Placer — producing a Road
// and the Diagnostics accumulated along the way. It returns a non-nil
// *Error, and no Road, the moment any step would need one to proceed
// (spec.md §7: "an Error aborts the whole transform; its accumulated
// Diagnostics up to that point are still returned to the caller").
func TagsToLanes(tags Tags, locale Locale, cfg *Config) (Road, Diagnostics, *Error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	var diag Diagnostics

	highway, d := parseHighwayClass(&tags)
	diag = append(diag, d...)
	if diag.HasErrors() {
		return Road{}, diag, newError(diag.Errors()[0], diag)
	}

	name, _ := tags.GetConsume("name")

	if highway == HighwayConstruction {
		diag = append(diag, unconsumedKnownTagDiagnostics(&tags)...)
		road := Road{
			Name:         name,
			HighwayClass: highway,
			Lanes:        placeSeparators([]Lane{Construction()}, locale, cfg),
			OtherAttrs:   tags.UnusedMap(),
		}
		return finishTransform(road, diag, cfg)
	}

	if highway.isFootOnly() {
		diag = append(diag, unconsumedKnownTagDiagnostics(&tags)...)
		road := Road{
			Name:         name,
			HighwayClass: highway,
			Lanes:        placeSeparators([]Lane{Travel(DirectionNone, DesignatedFoot)}, locale, cfg),
			OtherAttrs:   tags.UnusedMap(),
		}
		return finishTransform(road, diag, cfg)
	}

	oneway, d := parseOneway(&tags)
	diag = append(diag, d...)

	counts, d := parseLaneCounts(&tags, oneway, locale, highway)
	diag = append(diag, d...)
	if diag.HasErrors() {
		return Road{}, diag, newError(diag.Errors()[len(diag.Errors())-1], diag)
	}

	sidewalk, d := parseSidewalk(&tags)
	diag = append(diag, d...)
	cycleway, d := parseCycleway(&tags, oneway)
	diag = append(diag, d...)
	busway, d := parseBusway(&tags)
	diag = append(diag, d...)
	parking, d := parseParking(&tags)
	diag = append(diag, d...)
	overrides := parseModalOverrides(&tags)
	turns, d := parseTurnLanes(&tags)
	diag = append(diag, d...)
	width, d := parseWidth(&tags)
	diag = append(diag, d...)
	speed, d := parseMaxSpeed(&tags)
	diag = append(diag, d...)
	access, d := parseAccess(&tags)
	diag = append(diag, d...)
	lit, d := parseLit(&tags)
	diag = append(diag, d...)

	if diag.HasErrors() {
		errs := diag.Errors()
		return Road{}, diag, newError(errs[len(errs)-1], diag)
	}

	asm := assembleRoad(counts, oneway, sidewalk, cycleway, busway, parking, locale, highway, cfg)
	diag = append(diag, applyModalOverrides(asm.lanes, asm, overrides)...)
	diag = append(diag, applyTurnLanes(asm.lanes, asm, turns)...)
	applyWidths(asm.lanes, asm, width)
	applySpeeds(asm.lanes, asm, speed)
	applyAccess(asm.lanes, asm, access)

	if oneway.Reversed {
		reverseOneway(asm.lanes)
	}

	diag = append(diag, unconsumedKnownTagDiagnostics(&tags)...)

	road := Road{
		Name:         name,
		HighwayClass: highway,
		Lanes:        placeSeparators(asm.lanes, locale, cfg),
		Lit:          lit,
		OtherAttrs:   tags.UnusedMap(),
	}
	return finishTransform(road, diag, cfg)
}

// finishTransform applies Config.ErrorOnWarnings (spec.md §6: "promote
// warnings to errors") and returns the assembled Road.
func finishTransform(road Road, diag Diagnostics, cfg *Config) (Road, Diagnostics, *Error) {
	if cfg.ErrorOnWarnings {
		for _, d := range diag {
			if d.Severity == SeverityWarning {
				promoted := d
				promoted.Severity = SeverityError
				promoted.Code = CodeWarningsPromoted
				return Road{}, diag, newError(promoted, diag)
			}
		}
	}
	if cfg.Verbose {
		fmt.Printf("osm2lanes: assembled %s: %s\n", road.HighwayClass, Render(road.Lanes))
	}
	return road, diag, nil
}
