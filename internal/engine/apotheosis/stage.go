package apotheosis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spellwright/grimoire-api/internal/engine/tables"
)

var (
	decimalPattern = regexp.MustCompile(`\d+`)
	wordPattern    = regexp.MustCompile(`[A-Za-z]+`)
)

// ParseStage resolves free-text stage input to a stage index. Parsing is
// tolerant, in fixed order: an exact table-key match (case-insensitive),
// then a decimal numeral embedded anywhere in the string, then a roman
// numeral i-xv standing as a whole word. The first successful parse wins.
// Unmatched input resolves to stage 0, which contributes no stability;
// it never errors because stages arrive as player-typed text.
func ParseStage(stage string) int {
	trimmed := strings.TrimSpace(stage)
	if trimmed == "" {
		return 0
	}

	for i := 1; i <= tables.MaxApotheosisStage; i++ {
		key, ok := tables.StageKey(i)
		if ok && strings.EqualFold(trimmed, key) {
			return i
		}
	}

	if m := decimalPattern.FindString(trimmed); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}

	for _, word := range wordPattern.FindAllString(trimmed, -1) {
		if n, ok := tables.RomanNumeral(word); ok {
			return n
		}
	}

	return 0
}
