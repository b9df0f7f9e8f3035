package entities

import "time"

// SpellInput is the author-controlled half of a spell: axis choices and
// effect references. It carries no derived fields; resolving it against
// the catalog produces a SpellComputed.
type SpellInput struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	AuthorID   string   `json:"author_id"`
	Activation string   `json:"activation"`
	Range      int      `json:"range"`
	AoE        string   `json:"aoe"`
	Duration   int      `json:"duration"`
	EffectIDs  []string `json:"effect_ids"`
}

// CostBreakdown itemizes how a spell's MP cost was assembled
type CostBreakdown struct {
	RangeMP      int `json:"range_mp"`
	AoEMP        int `json:"aoe_mp"`
	DurationMP   int `json:"duration_mp"`
	ActivationMP int `json:"activation_mp"`
	EffectsMP    int `json:"effects_mp"`
	ExtraSchools int `json:"extra_schools"`
	SurchargeMP  int `json:"surcharge_mp"`
}

// SpellComputed is everything derived from a SpellInput and its resolved
// effects. It only ever exists as the output of a recompute; stale derived
// state cannot occur because inputs never carry it.
type SpellComputed struct {
	MPCost           int           `json:"mp_cost"`
	ENCost           int           `json:"en_cost"`
	Category         string        `json:"category"`
	MPToNextCategory int           `json:"mp_to_next_category"`
	SpellType        SchoolType    `json:"spell_type"`
	Breakdown        CostBreakdown `json:"breakdown"`
}

// SpellDoc is the persisted spell document: the input plus the computed
// block derived from it at write time. Repositories store it as a unit;
// orchestrators recompute before every write.
type SpellDoc struct {
	Input     SpellInput    `json:"input"`
	Computed  SpellComputed `json:"computed"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
