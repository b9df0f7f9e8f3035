// Package apotheosis derives an apotheosis ritual's power, stability,
// amplitude, diameter, and tier from a characteristic value, a stage, a
// type, and the accepted constraint records. Compute is pure; constraint
// records arrive already fetched.
package apotheosis

import (
	"fmt"

	"github.com/spellwright/grimoire-api/internal/engine/tables"
	"github.com/spellwright/grimoire-api/internal/entities"
)

// Input is one apotheosis computation request
type Input struct {
	CharacteristicValue int
	Stage               string
	Type                string
	Constraints         []entities.Constraint
	// Requested trade conversion steps, applied in the fixed order
	// power->stability, power->amplitude, stability->amplitude.
	TradeP2S int
	TradeP2A int
	TradeS2A int
}

// Flags records how the computation actually unfolded
type Flags struct {
	StageParsed  int  `json:"stage_parsed"`
	P2SForbidden bool `json:"p2s_forbidden"`
	P2SApplied   int  `json:"p2s_applied"`
	P2AApplied   int  `json:"p2a_applied"`
	S2AApplied   int  `json:"s2a_applied"`
}

// Result is the derived ritual state
type Result struct {
	Stability       int    `json:"stability"`
	Power           int    `json:"power"`
	Amplitude       int    `json:"amplitude"`
	Diameter        int    `json:"diameter"`
	TotalDifficulty int    `json:"total_difficulty"`
	Tier            string `json:"tier"`
	Flags           Flags  `json:"flags"`
}

// trade runs one greedy conversion loop: up to steps conversions, each
// spending cost from the source pool and granting gain to the target.
// The loop stops at the first step the source cannot afford; there are
// no partial conversions.
func trade(source, target *int, steps, cost, gain int) int {
	applied := 0
	for i := 0; i < steps; i++ {
		if *source < cost {
			break
		}
		*source -= cost
		*target += gain
		applied++
	}
	return applied
}

// Compute derives the ritual result. Base stability comes from the stage
// table, power from the characteristic value plus constraint difficulty,
// then the type bonus and per-constraint deltas apply, then the trade
// conversions in fixed order. Any constraint's forbid flag suppresses the
// whole power->stability trade. Final pools floor at 0.
func Compute(input Input) Result {
	stage := ParseStage(input.Stage)

	totalDifficulty := 0
	for _, c := range input.Constraints {
		totalDifficulty += c.Difficulty
	}

	stability := tables.StageStability(stage)
	power := input.CharacteristicValue + totalDifficulty
	amplitude := 0

	bonus := tables.ApotheosisTypeBonus(input.Type)
	power += bonus.Power
	stability += bonus.Stability
	amplitude += bonus.Amplitude

	forbidden := false
	for _, c := range input.Constraints {
		stability += c.StabilityDelta
		amplitude += c.AmplitudeBonus
		forbidden = forbidden || c.ForbidP2S
	}

	flags := Flags{StageParsed: stage, P2SForbidden: forbidden}
	if !forbidden {
		flags.P2SApplied = trade(&power, &stability, input.TradeP2S, tables.P2SCost, tables.P2SGain)
	}
	flags.P2AApplied = trade(&power, &amplitude, input.TradeP2A, tables.P2ACost, tables.P2AGain)
	flags.S2AApplied = trade(&stability, &amplitude, input.TradeS2A, tables.S2ACost, tables.S2AGain)

	if power < 0 {
		power = 0
	}
	if stability < 0 {
		stability = 0
	}
	if amplitude < 0 {
		amplitude = 0
	}

	return Result{
		Stability:       stability,
		Power:           power,
		Amplitude:       amplitude,
		Diameter:        17 + 2*amplitude,
		TotalDifficulty: totalDifficulty,
		Tier:            fmt.Sprintf("Tier %d", 1+floorDiv(totalDifficulty, 5)),
		Flags:           flags,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
