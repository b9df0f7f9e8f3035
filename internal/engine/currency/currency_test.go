package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/spellwright/grimoire-api/internal/engine/currency"
	"github.com/spellwright/grimoire-api/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMajorToMinor(t *testing.T) {
	testCases := []struct {
		name     string
		currency string
		amount   string
		rounding currency.Rounding
		want     int64
	}{
		{name: "kabuto whole major", currency: "Kabuto", amount: "1", rounding: currency.RoundHalfUp, want: 100},
		{name: "kabuto half up rounds up on tie", currency: "Kabuto", amount: "1.005", rounding: currency.RoundHalfUp, want: 101},
		{name: "kabuto floor drops the tie", currency: "Kabuto", amount: "1.005", rounding: currency.RoundFloor, want: 100},
		{name: "kabuto ceil lifts fractions", currency: "Kabuto", amount: "1.001", rounding: currency.RoundCeil, want: 101},
		{name: "default rounding is half up", currency: "Kabuto", amount: "2.495", rounding: "", want: 250},
		{name: "base unit is one to one", currency: "Crown", amount: "2.5", rounding: currency.RoundHalfUp, want: 3},
		{name: "base unit floor", currency: "Crown", amount: "2.5", rounding: currency.RoundFloor, want: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := currency.MajorToMinor(tc.currency, dec(tc.amount), tc.rounding)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMinorToMajorExact(t *testing.T) {
	major, err := currency.MinorToMajor("Kabuto", 150)
	require.NoError(t, err)
	assert.True(t, major.Equal(dec("1.5")), "got %s", major)

	major, err = currency.MinorToMajor("Crown", 42)
	require.NoError(t, err)
	assert.True(t, major.Equal(dec("42")), "got %s", major)
}

func TestMinorToGC(t *testing.T) {
	// Kabuto: 100 minor = 1 major = 0.5 gc exactly.
	gc, err := currency.MinorToGC("Kabuto", 100)
	require.NoError(t, err)
	assert.True(t, gc.Equal(dec("0.5")), "got %s", gc)

	// 37 bronze = 0.37 major = 0.185 gc, no drift allowed.
	gc, err = currency.MinorToGC("Kabuto", 37)
	require.NoError(t, err)
	assert.True(t, gc.Equal(dec("0.185")), "got %s", gc)

	gc, err = currency.MinorToGC("Sovereign", 250)
	require.NoError(t, err)
	assert.True(t, gc.Equal(dec("5")), "got %s", gc)
}

func TestGCToMinor(t *testing.T) {
	minor, err := currency.GCToMinor("Kabuto", dec("0.5"), currency.RoundHalfUp)
	require.NoError(t, err)
	assert.Equal(t, int64(100), minor)

	minor, err = currency.GCToMinor("Drachma", dec("1"), currency.RoundHalfUp)
	require.NoError(t, err)
	assert.Equal(t, int64(400), minor)

	// 1 gc in Talon (rate 1.5): 66.66... minor, mode decides.
	minor, err = currency.GCToMinor("Talon", dec("1"), currency.RoundFloor)
	require.NoError(t, err)
	assert.Equal(t, int64(66), minor)

	minor, err = currency.GCToMinor("Talon", dec("1"), currency.RoundCeil)
	require.NoError(t, err)
	assert.Equal(t, int64(67), minor)
}

func TestUnsupportedCurrency(t *testing.T) {
	_, err := currency.MajorToMinor("Doubloon", dec("1"), currency.RoundHalfUp)
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedCurrency(err))

	_, err = currency.MinorToGC("Doubloon", 100)
	assert.True(t, errors.IsUnsupportedCurrency(err))
}

func TestUnknownRoundingMode(t *testing.T) {
	_, err := currency.MajorToMinor("Kabuto", dec("1"), "banker")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestBreakdownCoins(t *testing.T) {
	breakdown, err := currency.BreakdownCoins("Kabuto", 3776)
	require.NoError(t, err)
	assert.Equal(t, int64(3), breakdown.Platinum)
	assert.Equal(t, int64(7), breakdown.Gold)
	assert.Equal(t, int64(7), breakdown.Silver)
	assert.Equal(t, int64(6), breakdown.Bronze)
	assert.Equal(t, int64(23), breakdown.TotalCoins())
}

func TestBreakdownRejectsBaseUnit(t *testing.T) {
	_, err := currency.BreakdownCoins("Crown", 100)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestBreakdownRejectsNegative(t *testing.T) {
	_, err := currency.BreakdownCoins("Kabuto", -1)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestBreakdownRecomposes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		minor := rapid.Int64Range(0, 10_000_000).Draw(t, "minor")

		b, err := currency.BreakdownCoins("Kabuto", minor)
		if err != nil {
			t.Fatalf("breakdown failed: %v", err)
		}
		recomposed := b.Platinum*1000 + b.Gold*100 + b.Silver*10 + b.Bronze
		if recomposed != minor {
			t.Fatalf("breakdown of %d recomposed to %d", minor, recomposed)
		}
		if b.Gold >= 10 || b.Silver >= 10 || b.Bronze >= 10 {
			t.Fatalf("non-canonical breakdown %+v", b)
		}
	})
}

func TestRoundTripMajorMinor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		major := rapid.Int64Range(0, 1_000_000).Draw(t, "major")

		minor, err := currency.MajorToMinor("Kabuto", decimal.NewFromInt(major), currency.RoundHalfUp)
		if err != nil {
			t.Fatalf("to minor failed: %v", err)
		}
		back, err := currency.MinorToMajor("Kabuto", minor)
		if err != nil {
			t.Fatalf("to major failed: %v", err)
		}
		if !back.Equal(decimal.NewFromInt(major)) {
			t.Fatalf("round trip %d -> %d -> %s", major, minor, back)
		}
	})
}
