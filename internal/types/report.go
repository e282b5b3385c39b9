package types

import (
	"github.com/samber/lo"

	"podskazka/internal/hint"
)

// NewReport summarizes g and the words it matched. Total counts every match;
// Words is cut to limit when limit is positive.
func NewReport(g *hint.Game, words []string, limit int) Report {
	return Report{
		Pattern: g.Pattern(),
		Present: letterStrings(g.PresentChars()),
		Absent:  letterStrings(g.AbsentChars()),
		Total:   len(words),
		Words:   Limit(words, limit),
	}
}

// Limit returns at most limit words; a limit of zero or less keeps them all.
func Limit(words []string, limit int) []string {
	if limit > 0 && len(words) > limit {
		return words[:limit]
	}
	return words
}

func letterStrings(letters []hint.Letter) []string {
	return lo.Map(letters, func(l hint.Letter, _ int) string {
		return l.String()
	})
}
