package osm2lanes

import "strings"

// AccessScheme is the result of the Access scheme from spec.md §4.2: one
// whole-road AccessByType baseline applied to every travel/parking lane.
// Per-lane access is not separately tagged in OSM practice beyond the
// `<mode>:lanes` designation keys, which the Per-lane modal scheme already
// owns, so this scheme does not compete with it for those tags.
type AccessScheme struct {
	Baseline AccessByType
}

// parseAccess consumes `access`, `bicycle`, `foot`, `motor_vehicle`, `bus`
// and `psv`. It reads no `:lanes` variant; `bus:lanes`, `psv:lanes` and
// `bicycle:lanes` are consumed by parseModalOverrides instead.
func parseAccess(tags *Tags) (AccessScheme, Diagnostics) {
	var ds Diagnostics
	var out AccessScheme

	general, ok := consumeAccessValue(tags, "access", &ds)
	_ = ok // general access applies to every mode unless overridden below

	foot, fok := consumeAccessValue(tags, "foot", &ds)
	bicycle, bok := consumeAccessValue(tags, "bicycle", &ds)
	motor, mok := consumeAccessValue(tags, "motor_vehicle", &ds)
	bus, busok := consumeAccessValue(tags, "bus", &ds)
	psv, pok := consumeAccessValue(tags, "psv", &ds)

	out.Baseline.Foot = accessOrGeneral(foot, fok, general, ok)
	out.Baseline.Bicycle = accessOrGeneral(bicycle, bok, general, ok)
	out.Baseline.Motor = accessOrGeneral(motor, mok, general, ok)
	bestBus := accessOrGeneral(bus, busok, general, ok)
	if pok {
		bestBus = &AccessAndDirection{Access: psv}
	}
	out.Baseline.Bus = bestBus

	return out, ds
}

func accessOrGeneral(specific Access, specificOK bool, general Access, generalOK bool) *AccessAndDirection {
	if specificOK {
		return &AccessAndDirection{Access: specific}
	}
	if generalOK {
		return &AccessAndDirection{Access: general}
	}
	return nil
}

func consumeAccessValue(tags *Tags, key string, ds *Diagnostics) (Access, bool) {
	raw, ok := tags.GetConsumeTrimmed(key)
	if !ok {
		return 0, false
	}
	a, ok := accessByName[strings.ToLower(raw)]
	if !ok {
		*ds = append(*ds, warningf(CodeUnknownValue, []string{key}, "unrecognized %s=%q", key, raw))
		return 0, false
	}
	return a, true
}
