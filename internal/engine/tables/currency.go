package tables

import "github.com/shopspring/decimal"

// BaseCurrency is the canonical reference unit. It is bookkeeping-only:
// one minor unit per major unit and no physical coins.
const BaseCurrency = "Crown"

// Currency is one registered currency and its fixed exchange value
type Currency struct {
	Name string
	// MinorPerMajor is how many minor units make one major unit
	MinorPerMajor int64
	// RateGC is the fixed exchange value in gold crowns per major unit
	RateGC decimal.Decimal
	// Physical currencies exist as coins and count toward encumbrance
	Physical bool
}

// currencies is the fixed exchange registry. Coin currencies all use 100
// minor units per major unit.
var currencies = map[string]Currency{
	BaseCurrency: {Name: BaseCurrency, MinorPerMajor: 1, RateGC: decimal.NewFromInt(1), Physical: false},
	"Kabuto":     {Name: "Kabuto", MinorPerMajor: 100, RateGC: decimal.RequireFromString("0.5"), Physical: true},
	"Sovereign":  {Name: "Sovereign", MinorPerMajor: 100, RateGC: decimal.NewFromInt(2), Physical: true},
	"Drachma":    {Name: "Drachma", MinorPerMajor: 100, RateGC: decimal.RequireFromString("0.25"), Physical: true},
	"Talon":      {Name: "Talon", MinorPerMajor: 100, RateGC: decimal.RequireFromString("1.5"), Physical: true},
}

// LookupCurrency returns the registry entry for a currency name
func LookupCurrency(name string) (Currency, bool) {
	c, ok := currencies[name]
	return c, ok
}

// CurrencyNames returns the registered currency names for authoring UIs
func CurrencyNames() []string {
	names := make([]string, 0, len(currencies))
	for name := range currencies {
		names = append(names, name)
	}
	return names
}

// Coin denominations in minor units, largest first. Physical coin counts
// decompose through these for encumbrance.
const (
	PlatinumCoin = 1000
	GoldCoin     = 100
	SilverCoin   = 10
	BronzeCoin   = 1
)
