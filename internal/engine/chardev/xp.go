package chardev

import "math"

// Level bounds. Inputs outside the band clamp rather than error, since
// authors routinely type garbage mid-edit.
const (
	MinLevel = 1
	MaxLevel = 100
)

// xpPerStep is the multiplier on the triangular progression: reaching
// level L costs 100 * n(n+1)/2 total XP with n = L-1.
const xpPerStep = 100

// ClampLevel forces a level into [1, 100]
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// TotalXPForLevel returns the total XP required to hold the given level
func TotalXPForLevel(level int) int {
	level = ClampLevel(level)
	n := level - 1
	return xpPerStep * n * (n + 1) / 2
}

// NextLevelXPCost returns the XP needed to advance from the given level to
// the next one, or 0 at the level ceiling
func NextLevelXPCost(level int) int {
	level = ClampLevel(level)
	if level == MaxLevel {
		return 0
	}
	return TotalXPForLevel(level+1) - TotalXPForLevel(level)
}

// LevelFromTotalXP inverts TotalXPForLevel: the highest level whose total
// XP requirement the given amount covers, clamped to [1, 100]. The
// closed-form triangular inverse seeds the answer; the integer walk after
// it absorbs any float rounding so the two functions are exact inverses
// across the whole level band.
func LevelFromTotalXP(xp int) int {
	if xp <= 0 {
		return MinLevel
	}

	// level = floor((-1 + sqrt(1 + 4*xp/50)) / 2) + 1
	level := int((-1+math.Sqrt(1+float64(4*xp)/50))/2) + 1

	for level < MaxLevel && TotalXPForLevel(level+1) <= xp {
		level++
	}
	for level > MinLevel && TotalXPForLevel(level) > xp {
		level--
	}
	return ClampLevel(level)
}
