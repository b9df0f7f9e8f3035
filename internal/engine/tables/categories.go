package tables

// CategoryThreshold maps a power category name to the highest MP cost
// (inclusive) that still falls inside it.
type CategoryThreshold struct {
	Name  string
	MaxMP int
}

// categoryThresholds is ordered ascending by MaxMP; the first entry whose
// MaxMP is >= the spell's MP cost wins.
var categoryThresholds = []CategoryThreshold{
	{Name: "Cantrip", MaxMP: 5},
	{Name: "Lesser", MaxMP: 15},
	{Name: "Adept", MaxMP: 30},
	{Name: "Greater", MaxMP: 50},
	{Name: "Exalted", MaxMP: 75},
	{Name: "Mythic", MaxMP: 110},
}

// OverflowCategory is the category of spells beyond every threshold, and
// the lenient fallback for garbage MP values.
const OverflowCategory = "Forbidden"

// CategoryThresholds returns the ordered category table
func CategoryThresholds() []CategoryThreshold {
	out := make([]CategoryThreshold, len(categoryThresholds))
	copy(out, categoryThresholds)
	return out
}
