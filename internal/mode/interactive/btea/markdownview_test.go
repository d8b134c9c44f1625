// ABOUTME: Tests for the markdown renderer wrapper around glamour
// ABOUTME: Verifies rendering, caching, width handling, and the empty-input case

package btea

import (
	"strings"
	"testing"
)

func TestMarkdownRenderer_Render(t *testing.T) {
	r := NewMarkdownRenderer("notty")

	result := r.Render("# Hello World\n\nSome text.", 80)
	if !strings.Contains(result, "Hello World") {
		t.Errorf("rendered output missing heading text: %q", result)
	}
}

func TestMarkdownRenderer_RenderList(t *testing.T) {
	r := NewMarkdownRenderer("notty")

	result := r.Render("- alpha\n- beta", 80)
	if !strings.Contains(result, "alpha") || !strings.Contains(result, "beta") {
		t.Errorf("list items missing: %q", result)
	}
}

func TestMarkdownRenderer_CachesResults(t *testing.T) {
	r := NewMarkdownRenderer("notty")

	first := r.Render("**bold text**", 80)
	second := r.Render("**bold text**", 80)
	if first != second {
		t.Error("cached render should return identical results")
	}
	if len(r.cache) != 1 {
		t.Errorf("cache entries = %d; want 1", len(r.cache))
	}

	r.Render("**bold text**", 40)
	if len(r.renderers) != 2 {
		t.Errorf("renderers = %d; want one per width", len(r.renderers))
	}
}

func TestMarkdownRenderer_EmptyInput(t *testing.T) {
	r := NewMarkdownRenderer()

	for _, in := range []string{"", "  \n "} {
		if got := r.Render(in, 80); got != "" {
			t.Errorf("Render(%q) = %q; want empty", in, got)
		}
	}
}

func TestMarkdownRenderer_CacheBounded(t *testing.T) {
	r := NewMarkdownRenderer("notty")

	for i := range maxRenderCache + 5 {
		r.Render(strings.Repeat("x", i+1), 60)
	}
	if len(r.cache) > maxRenderCache {
		t.Errorf("cache size = %d; want <= %d", len(r.cache), maxRenderCache)
	}
}
