// ABOUTME: Tests for the Ollama provider against an httptest server
// ABOUTME: Streams NDJSON chunks and checks accumulation and error handling

package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauromedda/mindweaver/pkg/ai"
)

func TestGenerateTextAccumulatesStream(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %q; want /api/generate", r.URL.Path)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["model"] != "tiny" {
			t.Errorf("model = %v; want tiny", req["model"])
		}
		w.Header().Set("Content-Type", "application/x-ndjson")
		fmt.Fprintln(w, `{"model":"tiny","response":"Once ","done":false}`)
		fmt.Fprintln(w, `{"model":"tiny","response":"upon","done":false}`)
		fmt.Fprintln(w, `{"model":"tiny","response":"","done":true,"done_reason":"stop"}`)
	}))
	t.Cleanup(srv.Close)

	p, err := New(ai.Options{BaseURL: srv.URL, TextModel: "tiny"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := p.GenerateText(context.Background(), "tell a story")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if res.Text != "Once upon" {
		t.Errorf("Text = %q; want %q", res.Text, "Once upon")
	}
}

func TestGenerateTextEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-ndjson")
		fmt.Fprintln(w, `{"model":"tiny","response":"","done":true}`)
	}))
	t.Cleanup(srv.Close)

	p, err := New(ai.Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := p.GenerateText(context.Background(), "x"); !errors.Is(err, ai.ErrEmptyResponse) {
		t.Errorf("err = %v; want ErrEmptyResponse", err)
	}
}

func TestNewDefaults(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")

	p, err := New(ai.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.model != DefaultModel {
		t.Errorf("model = %q; want %q", p.model, DefaultModel)
	}
	if _, err := p.EditImage(context.Background(), ai.Image{}, "x"); !errors.Is(err, ai.ErrUnsupported) {
		t.Errorf("EditImage err = %v; want ErrUnsupported", err)
	}
}
