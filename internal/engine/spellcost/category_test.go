package spellcost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/spellwright/grimoire-api/internal/engine/spellcost"
	"github.com/spellwright/grimoire-api/internal/engine/tables"
)

func TestCategoryForMP(t *testing.T) {
	testCases := []struct {
		mp       int
		category string
	}{
		{mp: 0, category: "Cantrip"},
		{mp: 5, category: "Cantrip"},
		{mp: 6, category: "Lesser"},
		{mp: 15, category: "Lesser"},
		{mp: 16, category: "Adept"},
		{mp: 30, category: "Adept"},
		{mp: 50, category: "Greater"},
		{mp: 75, category: "Exalted"},
		{mp: 110, category: "Mythic"},
		{mp: 111, category: tables.OverflowCategory},
		{mp: 99999, category: tables.OverflowCategory},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.category, spellcost.CategoryForMP(tc.mp), "mp=%d", tc.mp)
	}
}

func TestCategoryForMPGarbageCoercion(t *testing.T) {
	// Negative costs show up while an author is mid-edit; they coerce to
	// the overflow category rather than erroring.
	assert.Equal(t, tables.OverflowCategory, spellcost.CategoryForMP(-1))
	assert.Equal(t, tables.OverflowCategory, spellcost.CategoryForMP(-500))
}

func TestMPToNextCategoryBoundaries(t *testing.T) {
	assert.Equal(t, 6, spellcost.MPToNextCategory(0))
	assert.Equal(t, 1, spellcost.MPToNextCategory(5))
	assert.Equal(t, 10, spellcost.MPToNextCategory(6))
	assert.Equal(t, 1, spellcost.MPToNextCategory(110))
	assert.Equal(t, 0, spellcost.MPToNextCategory(111), "already at ceiling category")
}

func TestMPToNextCategoryLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mp := rapid.IntRange(0, 200000).Draw(t, "mp")

		delta := spellcost.MPToNextCategory(mp)
		category := spellcost.CategoryForMP(mp)

		if delta == 0 {
			if category != tables.OverflowCategory {
				t.Fatalf("delta 0 at mp=%d but category %q is not the ceiling", mp, category)
			}
			return
		}

		if next := spellcost.CategoryForMP(mp + delta); next == category {
			t.Fatalf("mp=%d delta=%d did not change category %q", mp, delta, category)
		}
		if prev := spellcost.CategoryForMP(mp + delta - 1); prev != category {
			t.Fatalf("mp=%d delta=%d is not minimal: category already %q one step earlier", mp, delta, prev)
		}
	})
}
