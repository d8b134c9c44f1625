// ABOUTME: Display-width helpers for card and preview layout
// ABOUTME: Grapheme-aware via uniseg and go-runewidth; ANSI sequences count as zero width

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// VisibleWidth returns the number of terminal cells s occupies.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	forEachCluster(StripANSI(s), func(_ string, cw int) bool {
		w += cw
		return true
	})
	return w
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// forEachCluster walks grapheme clusters with their cell width until fn
// returns false.
func forEachCluster(s string, fn func(cluster string, width int) bool) {
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		if !fn(cluster, runewidth.RuneWidth(r)) {
			return
		}
	}
}

// StripANSI removes CSI and OSC escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			i = skipEscape(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// skipEscape returns the index just past the escape sequence at s[i].
func skipEscape(s string, i int) int {
	i++
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[':
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
	case ']':
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
	default:
		return i + 1
	}
	return i
}

// TruncateToWidth shortens plain text s to at most maxWidth cells, ending in
// an ellipsis when anything was cut. Escape sequences are dropped when
// truncation happens.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return ellipsis
	}

	var b strings.Builder
	used := 0
	forEachCluster(StripANSI(s), func(cluster string, cw int) bool {
		if used+cw > maxWidth-1 {
			return false
		}
		b.WriteString(cluster)
		used += cw
		return true
	})
	return strings.TrimRight(b.String(), " ") + ellipsis
}

// WordWrap breaks plain text into lines of at most maxWidth cells, splitting
// on spaces and hard-breaking words longer than a line. Existing newlines
// are kept.
func WordWrap(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	var lines []string
	for para := range strings.SplitSeq(s, "\n") {
		lines = append(lines, wrapParagraph(para, maxWidth)...)
	}
	return lines
}

func wrapParagraph(para string, maxWidth int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		line  strings.Builder
		used  int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		used = 0
	}

	for _, word := range words {
		ww := VisibleWidth(word)
		if used > 0 && used+1+ww > maxWidth {
			flush()
		}
		if ww > maxWidth {
			forEachCluster(word, func(cluster string, cw int) bool {
				if used+cw > maxWidth {
					flush()
				}
				line.WriteString(cluster)
				used += cw
				return true
			})
			continue
		}
		if used > 0 {
			line.WriteByte(' ')
			used++
		}
		line.WriteString(word)
		used += ww
	}
	if used > 0 {
		flush()
	}
	return lines
}

// PadRight pads s with spaces to exactly w cells; longer strings are returned unchanged.
func PadRight(s string, w int) string {
	if gap := w - VisibleWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
