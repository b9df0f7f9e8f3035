package tables

import "github.com/shopspring/decimal"

// QualityTier maps an item's appraised value in gold crowns to a named
// quality tier, ordered ascending; first tier whose MaxGC covers the
// value wins.
type QualityTier struct {
	Name  string
	MaxGC decimal.Decimal
}

var qualityTiers = []QualityTier{
	{Name: "Crude", MaxGC: decimal.NewFromInt(1)},
	{Name: "Common", MaxGC: decimal.NewFromInt(10)},
	{Name: "Fine", MaxGC: decimal.NewFromInt(100)},
	{Name: "Superior", MaxGC: decimal.NewFromInt(1000)},
	{Name: "Masterwork", MaxGC: decimal.NewFromInt(10000)},
}

// OverflowQualityTier names items beyond every threshold
const OverflowQualityTier = "Relic"

// QualityTierFor returns the quality tier name for a value in gold crowns
func QualityTierFor(valueGC decimal.Decimal) string {
	for _, t := range qualityTiers {
		if valueGC.LessThanOrEqual(t.MaxGC) {
			return t.Name
		}
	}
	return OverflowQualityTier
}
