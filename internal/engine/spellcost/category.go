package spellcost

import "github.com/spellwright/grimoire-api/internal/engine/tables"

// deltaSearchCap bounds the next-category search. An MP cost this far past
// the last threshold is already in the overflow category, so a larger
// sentinel would never find a boundary anyway.
const deltaSearchCap = 100000

// CategoryForMP maps an MP cost to its power category name. The table is
// scanned ascending; the first threshold covering mp wins. Costs beyond
// every threshold land in the overflow category. Never errors: garbage
// (negative) values coerce to the overflow category, since authors see
// those mid-edit.
func CategoryForMP(mp int) string {
	if mp < 0 {
		return tables.OverflowCategory
	}
	for _, t := range tables.CategoryThresholds() {
		if mp <= t.MaxMP {
			return t.Name
		}
	}
	return tables.OverflowCategory
}

// MPToNextCategory returns the smallest delta >= 0 such that mp+delta
// falls in a different category, or 0 when no boundary exists within the
// search cap (the cost is already at the ceiling category).
//
// Doubles an upper bound until the category changes, then binary-searches
// the exact boundary inside (lo, hi].
func MPToNextCategory(mp int) int {
	current := CategoryForMP(mp)

	hi := 1
	for CategoryForMP(mp+hi) == current {
		hi *= 2
		if hi >= deltaSearchCap {
			hi = deltaSearchCap
			break
		}
	}
	if CategoryForMP(mp+hi) == current {
		return 0
	}

	lo := 0 // delta 0 keeps the category by definition
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		if CategoryForMP(mp+mid) == current {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}
