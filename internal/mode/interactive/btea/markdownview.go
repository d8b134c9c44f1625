// ABOUTME: Markdown renderer wrapper around glamour for generated text results
// ABOUTME: Caches rendered output keyed by content hash + width; renderers reused per width

package btea

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// maxRenderCache bounds the number of cached renderings.
const maxRenderCache = 64

// MarkdownRenderer renders model output as styled terminal markdown.
// Shared by value-copied models, so it guards its maps with a mutex.
type MarkdownRenderer struct {
	mu        sync.Mutex
	style     string
	renderers map[int]*glamour.TermRenderer
	cache     map[string]string // "hash:width" -> rendered
}

// NewMarkdownRenderer creates a renderer using glamour's automatic style
// detection. Pass a glamour style name ("dark", "light", "notty") to force one.
func NewMarkdownRenderer(style ...string) *MarkdownRenderer {
	r := &MarkdownRenderer{
		renderers: make(map[int]*glamour.TermRenderer),
		cache:     make(map[string]string),
	}
	if len(style) > 0 {
		r.style = style[0]
	}
	return r
}

// Render returns the terminal-styled rendering of md wrapped at width.
// On renderer failure the raw markdown is returned.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	width = max(width, 20)

	r.mu.Lock()
	defer r.mu.Unlock()

	key := cacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	tr, err := r.rendererLocked(width)
	if err != nil {
		return md
	}
	rendered, err := tr.Render(md)
	if err != nil {
		return md
	}
	rendered = strings.Trim(rendered, "\n")

	if len(r.cache) >= maxRenderCache {
		clear(r.cache)
	}
	r.cache[key] = rendered
	return rendered
}

func (r *MarkdownRenderer) rendererLocked(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.renderers[width]; ok {
		return tr, nil
	}
	styleOpt := glamour.WithAutoStyle()
	if r.style != "" {
		styleOpt = glamour.WithStandardStyle(r.style)
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	r.renderers[width] = tr
	return tr, nil
}

// cacheKey produces a string key from content hash and width.
func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
