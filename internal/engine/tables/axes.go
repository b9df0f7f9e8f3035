// Package tables holds the static, hand-authored rule tables the engines
// look values up in: axis cost tables, category thresholds, level caps,
// apotheosis stage and type tables, the currency registry, and quality
// tiers. The package contains data and lookups only; derivation logic
// lives in the engine packages.
package tables

import "github.com/spellwright/grimoire-api/internal/entities"

// Range cost tables in MP, one column per escalation class. Keys are the
// allowed range values in meters; anything else is an invalid axis value.
var rangeCosts = map[entities.EscalationClass]map[int]int{
	entities.ClassA: {0: 0, 5: 1, 10: 2, 20: 3, 50: 5, 100: 8, 200: 12, 500: 18, 1000: 25},
	entities.ClassB: {0: 0, 5: 2, 10: 4, 20: 6, 50: 10, 100: 16, 200: 24, 500: 36, 1000: 50},
	entities.ClassC: {0: 0, 5: 3, 10: 6, 20: 9, 50: 15, 100: 24, 200: 36, 500: 54, 1000: 75},
}

// AoE cost tables in MP, keyed by named bucket, one column per class.
var aoeCosts = map[entities.EscalationClass]map[string]int{
	entities.ClassA: {"Self": 0, "Target": 1, "Cone": 3, "Line": 3, "Sphere": 5, "Zone": 8, "Storm": 12},
	entities.ClassB: {"Self": 0, "Target": 2, "Cone": 6, "Line": 6, "Sphere": 10, "Zone": 16, "Storm": 24},
	entities.ClassC: {"Self": 0, "Target": 3, "Cone": 9, "Line": 9, "Sphere": 15, "Zone": 24, "Storm": 36},
}

// Duration costs in MP, keyed by duration in rounds. Duration has no
// escalation classes.
var durationCosts = map[int]int{
	0: 0, 1: 1, 2: 2, 5: 4, 10: 6, 60: 10, 1440: 16,
}

// Activation costs in MP. Slower activations are cheaper.
var activationCosts = map[string]int{
	"Ritual":   0,
	"Action":   1,
	"Instant":  2,
	"Focus":    3,
	"Reaction": 5,
}

// RangeCost returns the MP cost for a range value under the given class.
// The second return reports whether the value exists in the table.
func RangeCost(class entities.EscalationClass, rangeValue int) (int, bool) {
	col, ok := rangeCosts[class]
	if !ok {
		return 0, false
	}
	cost, ok := col[rangeValue]
	return cost, ok
}

// AoECost returns the MP cost for an AoE bucket under the given class.
func AoECost(class entities.EscalationClass, aoe string) (int, bool) {
	col, ok := aoeCosts[class]
	if !ok {
		return 0, false
	}
	cost, ok := col[aoe]
	return cost, ok
}

// DurationCost returns the MP cost for a duration value
func DurationCost(duration int) (int, bool) {
	cost, ok := durationCosts[duration]
	return cost, ok
}

// ActivationCost returns the MP cost for an activation mode
func ActivationCost(activation string) (int, bool) {
	cost, ok := activationCosts[activation]
	return cost, ok
}

// RangeValues returns the allowed range values for authoring UIs
func RangeValues() []int {
	return []int{0, 5, 10, 20, 50, 100, 200, 500, 1000}
}

// AoEBuckets returns the allowed AoE buckets for authoring UIs
func AoEBuckets() []string {
	return []string{"Self", "Target", "Cone", "Line", "Sphere", "Zone", "Storm"}
}

// DurationValues returns the allowed duration values for authoring UIs
func DurationValues() []int {
	return []int{0, 1, 2, 5, 10, 60, 1440}
}

// ActivationModes returns the allowed activation modes for authoring UIs
func ActivationModes() []string {
	return []string{"Ritual", "Action", "Instant", "Focus", "Reaction"}
}
