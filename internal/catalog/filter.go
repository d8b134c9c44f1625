// ABOUTME: Fuzzy filtering of tool cards by title and description
// ABOUTME: Ranks matches with pkg/tui/fuzzy; empty query keeps card order

package catalog

import "github.com/mauromedda/mindweaver/pkg/tui/fuzzy"

// toolSource adapts a tool slice to fuzzy.Source, matching on
// "title description" so either field can hit.
type toolSource []Tool

func (s toolSource) String(i int) string { return s[i].Title + " " + s[i].Description }
func (s toolSource) Len() int            { return len(s) }

// Filter returns the tools matching query, best match first.
// An empty query returns tools unchanged.
func Filter(tools []Tool, query string) []Tool {
	if query == "" {
		return tools
	}
	matches := fuzzy.FindFrom(query, toolSource(tools))
	out := make([]Tool, len(matches))
	for i, m := range matches {
		out[i] = tools[m.Index]
	}
	return out
}
