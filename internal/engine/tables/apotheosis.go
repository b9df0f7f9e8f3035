package tables

import "strings"

// MaxApotheosisStage is the highest stage the stage table knows
const MaxApotheosisStage = 15

// StageStability returns the base stability contributed by an apotheosis
// stage. Stage 0 (unparsed) contributes nothing.
func StageStability(stage int) int {
	if stage < 1 || stage > MaxApotheosisStage {
		return 0
	}
	return 5 * stage
}

// TypeBonus is the flat adjustment an apotheosis type applies
type TypeBonus struct {
	Power     int
	Stability int
	Amplitude int
}

// typeBonuses keys are compared case-insensitively. Unknown types apply
// no bonus.
var typeBonuses = map[string]TypeBonus{
	"terrain":   {Power: 2},
	"ephemeral": {Stability: 2},
	"personal":  {Amplitude: 1},
}

// ApotheosisTypeBonus returns the bonus for an apotheosis type
func ApotheosisTypeBonus(apoType string) TypeBonus {
	return typeBonuses[strings.ToLower(strings.TrimSpace(apoType))]
}

// Trade conversion unit costs and gains. Each trade step spends the cost
// from the source pool; P2S grants +2 stability, P2A and S2A +1 amplitude.
const (
	P2SCost = 5
	P2ACost = 2
	S2ACost = 2

	P2SGain = 2
	P2AGain = 1
	S2AGain = 1
)

// romanNumerals maps i-xv for tolerant stage parsing
var romanNumerals = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5,
	"vi": 6, "vii": 7, "viii": 8, "ix": 9, "x": 10,
	"xi": 11, "xii": 12, "xiii": 13, "xiv": 14, "xv": 15,
}

// RomanNumeral returns the stage index for a roman numeral word i-xv
func RomanNumeral(word string) (int, bool) {
	n, ok := romanNumerals[strings.ToLower(word)]
	return n, ok
}

// StageKey returns the canonical stage-table key for an index, for exact
// key matching ("Stage I" .. "Stage XV").
func StageKey(stage int) (string, bool) {
	for word, n := range romanNumerals {
		if n == stage {
			return "Stage " + strings.ToUpper(word), true
		}
	}
	return "", false
}
