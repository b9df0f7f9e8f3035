// Package currency converts between each currency's major and minor units
// and the canonical gold-crown reference unit, using exact decimal
// arithmetic end to end. Binary floats never appear: amounts arrive and
// leave as decimals or integers, and the chosen rounding mode applies
// only in the final integer conversion step.
package currency

import (
	"github.com/shopspring/decimal"

	"github.com/spellwright/grimoire-api/internal/engine/tables"
	"github.com/spellwright/grimoire-api/internal/errors"
)

// Rounding selects how the final integer conversion step rounds
type Rounding string

// Rounding modes
const (
	RoundHalfUp Rounding = "half_up"
	RoundCeil   Rounding = "ceil"
	RoundFloor  Rounding = "floor"
)

// divPrecision gives division enough headroom that the final rounding
// step, not intermediate math, decides the result
const divPrecision = 20

// lookup fetches a registry entry, rejecting unknown currencies and
// non-positive exchange values
func lookup(name string) (tables.Currency, error) {
	c, ok := tables.LookupCurrency(name)
	if !ok || !c.RateGC.IsPositive() {
		return tables.Currency{}, errors.UnsupportedCurrency(name)
	}
	return c, nil
}

// roundToInt applies the rounding mode to produce the final integer
func roundToInt(d decimal.Decimal, rounding Rounding) (int64, error) {
	switch rounding {
	case RoundHalfUp, "":
		return d.Round(0).IntPart(), nil
	case RoundCeil:
		return d.Ceil().IntPart(), nil
	case RoundFloor:
		return d.Floor().IntPart(), nil
	default:
		return 0, errors.InvalidArgumentf("unknown rounding mode %q", rounding)
	}
}

// MajorToMinor converts an amount in a currency's major unit to minor
// units, rounding only at the end
func MajorToMinor(currency string, amount decimal.Decimal, rounding Rounding) (int64, error) {
	c, err := lookup(currency)
	if err != nil {
		return 0, err
	}
	return roundToInt(amount.Mul(decimal.NewFromInt(c.MinorPerMajor)), rounding)
}

// MinorToMajor converts minor units to an exact decimal amount in the
// currency's major unit
func MinorToMajor(currency string, minor int64) (decimal.Decimal, error) {
	c, err := lookup(currency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromInt(minor).DivRound(decimal.NewFromInt(c.MinorPerMajor), divPrecision), nil
}

// MinorToGC converts minor units to the canonical gold-crown unit via the
// currency's fixed exchange value
func MinorToGC(currency string, minor int64) (decimal.Decimal, error) {
	c, err := lookup(currency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	major := decimal.NewFromInt(minor).DivRound(decimal.NewFromInt(c.MinorPerMajor), divPrecision)
	return major.Mul(c.RateGC), nil
}

// GCToMinor converts a gold-crown amount into a currency's minor units,
// rounding only at the final step
func GCToMinor(currency string, gc decimal.Decimal, rounding Rounding) (int64, error) {
	c, err := lookup(currency)
	if err != nil {
		return 0, err
	}
	minor := gc.DivRound(c.RateGC, divPrecision).Mul(decimal.NewFromInt(c.MinorPerMajor))
	return roundToInt(minor, rounding)
}

// CoinBreakdown is the physical coin count for a minor-unit amount. This
// is not a currency conversion; it is what the character actually lugs
// around, for encumbrance.
type CoinBreakdown struct {
	Platinum int64 `json:"platinum"`
	Gold     int64 `json:"gold"`
	Silver   int64 `json:"silver"`
	Bronze   int64 `json:"bronze"`
}

// TotalCoins is the number of physical coins in the breakdown
func (b CoinBreakdown) TotalCoins() int64 {
	return b.Platinum + b.Gold + b.Silver + b.Bronze
}

// BreakdownCoins decomposes a minor-unit amount into the four coin
// denominations by repeated integer division. Only physical currencies
// have coins; the base bookkeeping unit does not.
func BreakdownCoins(currency string, minor int64) (CoinBreakdown, error) {
	c, err := lookup(currency)
	if err != nil {
		return CoinBreakdown{}, err
	}
	if !c.Physical {
		return CoinBreakdown{}, errors.InvalidArgumentf("currency %q has no physical coin representation", currency)
	}
	if minor < 0 {
		return CoinBreakdown{}, errors.InvalidArgumentf("coin breakdown needs a non-negative amount, got %d", minor)
	}

	breakdown := CoinBreakdown{}
	breakdown.Platinum = minor / tables.PlatinumCoin
	minor %= tables.PlatinumCoin
	breakdown.Gold = minor / tables.GoldCoin
	minor %= tables.GoldCoin
	breakdown.Silver = minor / tables.SilverCoin
	minor %= tables.SilverCoin
	breakdown.Bronze = minor
	return breakdown, nil
}
