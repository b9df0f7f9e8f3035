package tables

// capStep is one step of a monotonic level-gated cap
type capStep struct {
	MinLevel int
	Cap      int
}

// Characteristic investment caps. Cap 4 from level 1, stepping up at
// levels 10/19/28/37/46/55.
var characteristicCaps = []capStep{
	{MinLevel: 55, Cap: 10},
	{MinLevel: 46, Cap: 9},
	{MinLevel: 37, Cap: 8},
	{MinLevel: 28, Cap: 7},
	{MinLevel: 19, Cap: 6},
	{MinLevel: 10, Cap: 5},
	{MinLevel: 1, Cap: 4},
}

// Skill investment caps. Cap 3 from level 1, stepping up at levels
// 10/20/30/40/50.
var skillCaps = []capStep{
	{MinLevel: 50, Cap: 8},
	{MinLevel: 40, Cap: 7},
	{MinLevel: 30, Cap: 6},
	{MinLevel: 20, Cap: 5},
	{MinLevel: 10, Cap: 4},
	{MinLevel: 1, Cap: 3},
}

func lookupCap(steps []capStep, level int) int {
	for _, s := range steps {
		if level >= s.MinLevel {
			return s.Cap
		}
	}
	return steps[len(steps)-1].Cap
}

// MaxCharacteristicCap returns the highest invested value a characteristic
// may hold at the given level
func MaxCharacteristicCap(level int) int {
	return lookupCap(characteristicCaps, level)
}

// MaxSkillCap returns the highest invested value a skill may hold at the
// given level
func MaxSkillCap(level int) int {
	return lookupCap(skillCaps, level)
}

// MilestoneThresholds are the characteristic totals that each unlock one
// milestone
var milestoneThresholds = []int{4, 6, 8, 10, 12, 14, 16}

// MilestoneCount returns how many milestone thresholds the given
// characteristic total has reached
func MilestoneCount(total int) int {
	count := 0
	for _, t := range milestoneThresholds {
		if total >= t {
			count++
		}
	}
	return count
}

// SublimationTierMinLevel returns the minimum character level required to
// hold a sublimation of the given tier. Tier 1 is available from level 1;
// each further tier unlocks ten levels later.
func SublimationTierMinLevel(tier int) int {
	if tier <= 1 {
		return 1
	}
	return 1 + 10*(tier-1)
}
