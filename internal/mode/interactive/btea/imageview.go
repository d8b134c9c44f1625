// ABOUTME: Bubble Tea image view model for showing an edited image inside the editor modal
// ABOUTME: Delegates to pkg/tui/image.Render with half-blocks; renders eagerly at construction time

package btea

import (
	"strings"

	img "github.com/mauromedda/mindweaver/pkg/tui/image"
)

// ImageViewModel renders an image in the TUI.
// Output is computed eagerly in the constructor; View() is a pure accessor.
// This avoids mutation issues with Bubble Tea's value-copy model.
type ImageViewModel struct {
	mimeType string
	cols     int
	rows     int
	output   string
}

// NewImageViewModel renders data into at most cols x rows cells.
func NewImageViewModel(data []byte, mimeType string, cols, rows int) ImageViewModel {
	m := ImageViewModel{mimeType: mimeType, cols: cols, rows: rows}
	if len(data) == 0 || cols <= 0 || rows <= 0 {
		return m
	}
	m.output = strings.Join(img.Render(img.ProtoNone, data, mimeType, cols, rows), "\n")
	return m
}

// Empty reports whether nothing was rendered.
func (m ImageViewModel) Empty() bool {
	return m.output == ""
}

// View returns the pre-rendered image string.
func (m ImageViewModel) View() string {
	return m.output
}
