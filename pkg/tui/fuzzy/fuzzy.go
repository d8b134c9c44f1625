// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking tool cards against a query
// ABOUTME: Adds Highlight for styling the matched runes of a result

package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Source is a list of strings addressed by index.
type Source = fuzzy.Source

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

func convert(results fuzzy.Matches) []Match {
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Find performs fuzzy matching of pattern against the given items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	return convert(fuzzy.Find(pattern, items))
}

// FindFrom performs fuzzy matching using a custom string source.
func FindFrom(pattern string, data Source) []Match {
	return convert(fuzzy.FindFrom(pattern, data))
}

// Highlight rewrites s, passing each matched byte offset's rune through
// style. Offsets at or beyond limit are ignored, so a match computed on a
// longer haystack can highlight only its leading field.
func Highlight(s string, matched []int, limit int, style func(string) string) string {
	if len(matched) == 0 || style == nil {
		return s
	}
	hit := make(map[int]bool, len(matched))
	for _, idx := range matched {
		if idx < limit {
			hit[idx] = true
		}
	}
	var b strings.Builder
	for i, r := range s {
		if hit[i] {
			b.WriteString(style(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
