// ABOUTME: PreviewCache holds decoded images behind string references for the TUI
// ABOUTME: Allocate decodes once; Lines renders half-block rows per size; Release frees

package image

import (
	"fmt"
	goimage "image"
	"strconv"
	"sync"
)

type previewEntry struct {
	img goimage.Image

	// last rendering, keyed by cell size
	cols, rows int
	lines      []string
}

// PreviewCache maps preview references to decoded images. A reference stays
// valid until Release; releasing an unknown or already released reference
// is a no-op. Safe for concurrent use.
type PreviewCache struct {
	mu      sync.Mutex
	next    int
	entries map[string]*previewEntry
}

// NewPreviewCache creates an empty cache.
func NewPreviewCache() *PreviewCache {
	return &PreviewCache{entries: make(map[string]*previewEntry)}
}

// Allocate decodes data and returns a reference to it.
func (c *PreviewCache) Allocate(data []byte, _ string) (string, error) {
	img, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("preview: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	ref := "preview-" + strconv.Itoa(c.next)
	c.entries[ref] = &previewEntry{img: img}
	return ref, nil
}

// Release frees the image behind ref.
func (c *PreviewCache) Release(ref string) {
	c.mu.Lock()
	delete(c.entries, ref)
	c.mu.Unlock()
}

// Len reports how many references are live.
func (c *PreviewCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Lines renders ref into at most cols x rows cells. Unknown references
// render nothing.
func (c *PreviewCache) Lines(ref string, cols, rows int) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[ref]
	if !ok {
		return nil
	}
	if e.lines == nil || e.cols != cols || e.rows != rows {
		e.lines = RenderHalfBlock(e.img, cols, rows)
		e.cols, e.rows = cols, rows
	}
	return e.lines
}

// Dimensions returns the pixel size of the image behind ref.
func (c *PreviewCache) Dimensions(ref string) (Dimensions, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[ref]
	if !ok {
		return Dimensions{}, false
	}
	b := e.img.Bounds()
	return Dimensions{Width: b.Dx(), Height: b.Dy()}, true
}
