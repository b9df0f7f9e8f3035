// Package entities defines the typed records shared by the rules engines,
// repositories, and orchestrators. Records are plain values; anything
// derived from them lives in the computed structs the engines return.
package entities

// SchoolType distinguishes simple from complex schools of magic
type SchoolType string

// School types
const (
	SchoolSimple  SchoolType = "Simple"
	SchoolComplex SchoolType = "Complex"
)

// EscalationClass is the per-school severity class that selects which
// cost-table column an axis uses. Ordered A < B < C; C dominates.
type EscalationClass string

// Escalation classes
const (
	ClassA EscalationClass = "A"
	ClassB EscalationClass = "B"
	ClassC EscalationClass = "C"
)

// School is a school of magic authored by a game master
type School struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       SchoolType      `json:"type"`
	Upgrade    bool            `json:"upgrade"`
	RangeClass EscalationClass `json:"range_class"`
	AoEClass   EscalationClass `json:"aoe_class"`
	CostMode   string          `json:"cost_mode,omitempty"`
}

// SkillRoll is optional skill-check metadata attached to an effect
type SkillRoll struct {
	Skill string `json:"skill"`
	DC    int    `json:"dc"`
}

// Effect is a catalog effect referenced by spells. MP/EN costs are fixed
// at authoring time; a spell aggregates them, it never mutates them.
type Effect struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	SchoolID    string     `json:"school_id"`
	Description string     `json:"description,omitempty"`
	MPCost      int        `json:"mp_cost"`
	ENCost      int        `json:"en_cost"`
	Roll        *SkillRoll `json:"roll,omitempty"`
}

// ResolvedEffect pairs an effect with its school record. The engines take
// resolved values only; id lookups stay in the calling layer.
type ResolvedEffect struct {
	Effect Effect
	School School
}

// Constraint is an apotheosis constraint record. Accepting a constraint
// raises the ritual's difficulty in exchange for stability and amplitude
// adjustments.
type Constraint struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Difficulty     int    `json:"difficulty"`
	StabilityDelta int    `json:"stability_delta"`
	AmplitudeBonus int    `json:"amplitude_bonus"`
	ForbidP2S      bool   `json:"forbid_p2s,omitempty"`
}
