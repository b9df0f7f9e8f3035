package entities

import "time"

// Characteristic is one of the eight base characteristics
type Characteristic string

// Characteristics
const (
	REF Characteristic = "REF"
	DEX Characteristic = "DEX"
	BOD Characteristic = "BOD"
	WIS Characteristic = "WIS"
	PRE Characteristic = "PRE"
	MAG Characteristic = "MAG"
	WIL Characteristic = "WIL"
	TEC Characteristic = "TEC"
)

// AllCharacteristics lists the characteristics in display order
func AllCharacteristics() []Characteristic {
	return []Characteristic{REF, DEX, BOD, WIS, PRE, MAG, WIL, TEC}
}

// SublimationType is the kind of tiered perk a character has taken
type SublimationType string

// Sublimation types
const (
	SublimationDefense     SublimationType = "Defense"
	SublimationEndurance   SublimationType = "Endurance"
	SublimationSpeed       SublimationType = "Speed"
	SublimationClarity     SublimationType = "Clarity"
	SublimationExcellence  SublimationType = "Excellence"
	SublimationDevastation SublimationType = "Devastation"
)

// Sublimation is a tiered perk entry embedded in a character document.
// Skill is set only for Excellence.
type Sublimation struct {
	Type  SublimationType `json:"type"`
	Tier  int             `json:"tier"`
	Skill string          `json:"skill,omitempty"`
}

// SkillInput is a character's investment in one skill
type SkillInput struct {
	Invested int            `json:"invested"`
	Mod      int            `json:"mod"`
	Linked   Characteristic `json:"linked"`
}

// CharacterSheet is the persisted character document. Everything on it is
// player-authored input; derived pools come out of the derivation engine
// and are never stored.
type CharacterSheet struct {
	ID           string                 `json:"id"`
	PlayerID     string                 `json:"player_id"`
	CampaignID   string                 `json:"campaign_id,omitempty"`
	Name         string                 `json:"name"`
	XPTotal      int                    `json:"xp_total"`
	Level        int                    `json:"level"`
	Invested     map[Characteristic]int `json:"invested"`
	Mods         map[Characteristic]int `json:"mods,omitempty"`
	Skills       map[string]SkillInput  `json:"skills"`
	Sublimations []Sublimation          `json:"sublimations,omitempty"`
	Wallet       Wallet                 `json:"wallet,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}
