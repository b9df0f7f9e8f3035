// Package spellcost derives a spell's MP/EN costs, power category, and
// spell type from its axis choices and resolved effects. All functions
// are pure; callers resolve effect and school ids before invoking.
package spellcost

import (
	"github.com/spellwright/grimoire-api/internal/engine/tables"
	"github.com/spellwright/grimoire-api/internal/entities"
	"github.com/spellwright/grimoire-api/internal/errors"
)

// MP surcharge per extra distinct school beyond the first
const schoolSurchargePerExtra = 5

// escalationFor scans the attached effects and picks the cost column for
// one axis. C dominates and stops the scan; otherwise any B escalates
// from the base class A.
func escalationFor(effects []entities.ResolvedEffect, classOf func(entities.School) entities.EscalationClass) entities.EscalationClass {
	class := entities.ClassA
	for _, re := range effects {
		switch classOf(re.School) {
		case entities.ClassC:
			return entities.ClassC
		case entities.ClassB:
			class = entities.ClassB
		}
	}
	return class
}

// ResolveRangeCost returns the MP cost of the chosen range value under the
// escalation class the effects force
func ResolveRangeCost(rangeValue int, effects []entities.ResolvedEffect) (int, error) {
	class := escalationFor(effects, func(s entities.School) entities.EscalationClass { return s.RangeClass })
	cost, ok := tables.RangeCost(class, rangeValue)
	if !ok {
		return 0, errors.InvalidAxisValue("range", rangeValue)
	}
	return cost, nil
}

// ResolveAoECost returns the MP cost of the chosen AoE bucket under the
// escalation class the effects force
func ResolveAoECost(aoe string, effects []entities.ResolvedEffect) (int, error) {
	class := escalationFor(effects, func(s entities.School) entities.EscalationClass { return s.AoEClass })
	cost, ok := tables.AoECost(class, aoe)
	if !ok {
		return 0, errors.InvalidAxisValue("aoe", aoe)
	}
	return cost, nil
}

// ResolveDurationCost returns the MP cost of the chosen duration
func ResolveDurationCost(duration int) (int, error) {
	cost, ok := tables.DurationCost(duration)
	if !ok {
		return 0, errors.InvalidAxisValue("duration", duration)
	}
	return cost, nil
}

// ResolveActivationCost returns the MP cost of the chosen activation mode
func ResolveActivationCost(activation string) (int, error) {
	cost, ok := tables.ActivationCost(activation)
	if !ok {
		return 0, errors.InvalidAxisValue("activation", activation)
	}
	return cost, nil
}

// ResolveSchoolSurcharge counts the distinct non-upgrade schools among the
// effects and prices the extras. Schools flagged upgrade are exempt from
// the count. Returns (extra school count, MP surcharge).
func ResolveSchoolSurcharge(effects []entities.ResolvedEffect) (int, int) {
	distinct := make(map[string]struct{})
	for _, re := range effects {
		if re.School.Upgrade {
			continue
		}
		distinct[re.School.ID] = struct{}{}
	}

	count := len(distinct)
	if count < 1 {
		count = 1
	}
	extra := count - 1
	return extra, schoolSurchargePerExtra * extra
}

// Resolve computes the full derived block for a spell input against its
// resolved effects. The school surcharge is additive to the MP cost.
// Resolving the same inputs twice yields identical results.
func Resolve(input entities.SpellInput, effects []entities.ResolvedEffect) (entities.SpellComputed, error) {
	var computed entities.SpellComputed

	rangeMP, err := ResolveRangeCost(input.Range, effects)
	if err != nil {
		return computed, err
	}
	aoeMP, err := ResolveAoECost(input.AoE, effects)
	if err != nil {
		return computed, err
	}
	durationMP, err := ResolveDurationCost(input.Duration)
	if err != nil {
		return computed, err
	}
	activationMP, err := ResolveActivationCost(input.Activation)
	if err != nil {
		return computed, err
	}

	effectsMP, effectsEN := 0, 0
	spellType := entities.SchoolSimple
	for _, re := range effects {
		effectsMP += re.Effect.MPCost
		effectsEN += re.Effect.ENCost
		if re.School.Type == entities.SchoolComplex {
			spellType = entities.SchoolComplex
		}
	}

	extraSchools, surchargeMP := ResolveSchoolSurcharge(effects)

	mpCost := rangeMP + aoeMP + durationMP + activationMP + effectsMP + surchargeMP

	computed = entities.SpellComputed{
		MPCost:           mpCost,
		ENCost:           effectsEN,
		Category:         CategoryForMP(mpCost),
		MPToNextCategory: MPToNextCategory(mpCost),
		SpellType:        spellType,
		Breakdown: entities.CostBreakdown{
			RangeMP:      rangeMP,
			AoEMP:        aoeMP,
			DurationMP:   durationMP,
			ActivationMP: activationMP,
			EffectsMP:    effectsMP,
			ExtraSchools: extraSchools,
			SurchargeMP:  surchargeMP,
		},
	}
	return computed, nil
}
