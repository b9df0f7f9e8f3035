// Package chardev derives a character's totals, modifiers, milestones,
// skill base values, and resource pools from invested points and level.
// Compute is pure: it takes already-fetched records and never touches
// storage.
package chardev

import (
	"sort"

	"github.com/spellwright/grimoire-api/internal/engine/tables"
	"github.com/spellwright/grimoire-api/internal/entities"
	"github.com/spellwright/grimoire-api/internal/errors"
)

// Input is everything the derivation needs. Missing map entries read as
// zero; Level outside [1,100] clamps.
type Input struct {
	Level        int
	Invested     map[entities.Characteristic]int
	Mods         map[entities.Characteristic]int
	Skills       map[string]entities.SkillInput
	Sublimations []entities.Sublimation
	// CapModToInvested clamps each skill's external mod to its invested
	// points before it contributes to the base value.
	CapModToInvested bool
}

// CharacteristicBlock is the derived state of one characteristic
type CharacteristicBlock struct {
	Total      int `json:"total"`
	Mod        int `json:"mod"`
	Milestones int `json:"milestones"`
}

// Derived is the bundle of resource pools computed from level, milestones,
// sublimation bonuses, and specific skill base values
type Derived struct {
	HPMax               int `json:"hp_max"`
	SPMax               int `json:"sp_max"`
	ENMax               int `json:"en_max"`
	FOMax               int `json:"fo_max"`
	MO                  int `json:"mo"`
	ET                  int `json:"et"`
	TXMax               int `json:"tx_max"`
	EncumbranceMax      int `json:"encumbrance_max"`
	ConditionDC         int `json:"condition_dc"`
	SublimationSlotsMax int `json:"sublimation_slots_max"`
}

// Computed is the full derivation result
type Computed struct {
	Level             int                                              `json:"level"`
	TotalXPForLevel   int                                              `json:"total_xp_for_level"`
	NextLevelXPCost   int                                              `json:"next_level_xp_cost"`
	Characteristics   map[entities.Characteristic]CharacteristicBlock  `json:"characteristics"`
	SkillBaseValues   map[string]int                                   `json:"skill_base_values"`
	CharacteristicCap int                                              `json:"characteristic_cap"`
	SkillCap          int                                              `json:"skill_cap"`
	Derived           Derived                                          `json:"derived"`
}

// floorDiv is integer division rounding toward negative infinity, which
// the modifier formula needs for totals below 10
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Mod returns the modifier for a characteristic total: floor((total-10)/2)
func Mod(total int) int {
	return floorDiv(total-10, 2)
}

// skillNames returns the skill keys in stable order so cap violations
// always report the same offender
func skillNames(skills map[string]entities.SkillInput) []string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compute runs the full derivation. It fails with CapExceeded when any
// invested value is above its level cap, when sublimation slot usage is
// above the slot maximum, or when a sublimation tier needs a higher
// level; and with InvalidSublimationTarget when an Excellence sublimation
// names a skill the character does not have.
func Compute(input Input) (*Computed, error) {
	level := ClampLevel(input.Level)
	charCap := tables.MaxCharacteristicCap(level)
	skillCap := tables.MaxSkillCap(level)

	for _, c := range entities.AllCharacteristics() {
		if invested := input.Invested[c]; invested > charCap {
			return nil, errors.CapExceeded("characteristic", string(c), invested, charCap)
		}
	}
	for _, name := range skillNames(input.Skills) {
		if invested := input.Skills[name].Invested; invested > skillCap {
			return nil, errors.CapExceeded("skill", name, invested, skillCap)
		}
	}

	// Characteristic totals, mods, milestones. External mods default to 0.
	characteristics := make(map[entities.Characteristic]CharacteristicBlock, len(entities.AllCharacteristics()))
	for _, c := range entities.AllCharacteristics() {
		total := input.Invested[c] + input.Mods[c]
		characteristics[c] = CharacteristicBlock{
			Total:      total,
			Mod:        Mod(total),
			Milestones: tables.MilestoneCount(total),
		}
	}
	mile := func(c entities.Characteristic) int { return characteristics[c].Milestones }

	// Sublimation validation needs PRE milestones for the slot maximum.
	slotsMax := 2*mile(entities.PRE) + level/10
	slotsUsed := 0
	maxTier := 1 + (level-1)/10
	bonus := struct{ hp, en, mo, fo, conditionDC int }{}
	excellence := make(map[string]int)

	for _, sub := range input.Sublimations {
		if sub.Tier < 1 {
			continue
		}
		if tables.SublimationTierMinLevel(sub.Tier) > level {
			return nil, errors.CapExceeded("sublimation tier", string(sub.Type), sub.Tier, maxTier)
		}
		slotsUsed += sub.Tier

		switch sub.Type {
		case entities.SublimationDefense:
			bonus.hp += 12 * sub.Tier
		case entities.SublimationEndurance:
			bonus.en += 2 * sub.Tier
		case entities.SublimationSpeed:
			bonus.mo += sub.Tier
		case entities.SublimationClarity:
			bonus.fo += sub.Tier
		case entities.SublimationDevastation:
			bonus.conditionDC += sub.Tier
		case entities.SublimationExcellence:
			if _, ok := input.Skills[sub.Skill]; !ok {
				return nil, errors.InvalidSublimationTarget(sub.Skill)
			}
			excellence[sub.Skill] += sub.Tier
		}
	}
	if slotsUsed > slotsMax {
		return nil, errors.CapExceeded("sublimation slots", "slots", slotsUsed, slotsMax)
	}

	// Skill base values: invested + (clamped) mod + linked characteristic
	// mod + Excellence bonus.
	baseValues := make(map[string]int, len(input.Skills))
	for name, skill := range input.Skills {
		mod := skill.Mod
		if input.CapModToInvested && mod > skill.Invested {
			mod = skill.Invested
		}
		baseValues[name] = skill.Invested + mod + characteristics[skill.Linked].Mod + excellence[name]
	}
	bv := func(name string) int { return baseValues[name] }

	hpMax := 100 + (level - 1) + 12*mile(entities.BOD) + 6*mile(entities.WIL) + bonus.hp

	derived := Derived{
		HPMax:               hpMax,
		SPMax:               hpMax / 10,
		ENMax:               5 + level/5 + mile(entities.WIL) + 2*mile(entities.MAG) + bonus.en,
		FOMax:               2 + level/5 + mile(entities.WIL) + mile(entities.PRE) + bonus.fo,
		MO:                  4 + mile(entities.DEX) + mile(entities.REF) + bonus.mo,
		ET:                  1 + level/10 + mile(entities.MAG),
		TXMax:               bv("Resistance") + bv("Alchemy"),
		EncumbranceMax:      10 + bv("Athletics") + bv("Spirit"),
		ConditionDC:         6 + level/10 + bonus.conditionDC,
		SublimationSlotsMax: slotsMax,
	}

	return &Computed{
		Level:             level,
		TotalXPForLevel:   TotalXPForLevel(level),
		NextLevelXPCost:   NextLevelXPCost(level),
		Characteristics:   characteristics,
		SkillBaseValues:   baseValues,
		CharacteristicCap: charCap,
		SkillCap:          skillCap,
		Derived:           derived,
	}, nil
}
