// ABOUTME: overlayRender composites a box centered on a background terminal view
// ABOUTME: Splices overlay lines into background rows, keeping background on both sides

package btea

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/mauromedda/mindweaver/pkg/tui/width"
)

// overlayRender composites overlay centered on top of background, clipped to
// termWidth x termHeight. Background cells left and right of the overlay are
// preserved with their styling.
func overlayRender(background, overlay string, termWidth, termHeight int) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < termHeight {
		bgLines = append(bgLines, "")
	}
	if len(bgLines) > termHeight {
		bgLines = bgLines[:termHeight]
	}

	ovLines := strings.Split(overlay, "\n")
	ovWidth := 0
	for _, l := range ovLines {
		ovWidth = max(ovWidth, width.VisibleWidth(l))
	}

	startRow := max((termHeight-len(ovLines))/2, 0)
	startCol := max((termWidth-ovWidth)/2, 0)

	for i, ovLine := range ovLines {
		row := startRow + i
		if row >= termHeight {
			break
		}
		bg := bgLines[row]
		if gap := startCol - width.VisibleWidth(bg); gap > 0 {
			bg += strings.Repeat(" ", gap)
		}

		prefix := ansi.Truncate(bg, startCol, "")
		suffix := ""
		if after := startCol + width.VisibleWidth(ovLine); after < termWidth {
			suffix = ansi.TruncateLeft(bg, after, "")
		}
		bgLines[row] = prefix + "\x1b[0m" + ovLine + "\x1b[0m" + suffix
	}

	return strings.Join(bgLines, "\n")
}
