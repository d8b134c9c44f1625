// ABOUTME: Tests for the OpenAI provider against an httptest server
// ABOUTME: Covers chat completions, image edits (b64 and URL), and API errors

package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauromedda/mindweaver/pkg/ai"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func newTestProvider(t *testing.T, mux *http.ServeMux) *Provider {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	p, err := New(ai.Options{APIKey: "sk-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestNewRequiresKeyOrBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := New(ai.Options{}); !errors.Is(err, ai.ErrNoAPIKey) {
		t.Errorf("err = %v; want ErrNoAPIKey", err)
	}
	if _, err := New(ai.Options{BaseURL: "http://localhost:8000"}); err != nil {
		t.Errorf("local server without key: %v", err)
	}
}

func TestGenerateText(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Ten ideas"},"finish_reason":"stop"}]}`)
	})
	p := newTestProvider(t, mux)

	res, err := p.GenerateText(context.Background(), "brainstorm")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if res.Text != "Ten ideas" {
		t.Errorf("Text = %q; want %q", res.Text, "Ten ideas")
	}
	if res.Model != DefaultTextModel {
		t.Errorf("Model = %q; want %q", res.Model, DefaultTextModel)
	}
}

func TestGenerateTextEmptyChoices(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","choices":[]}`)
	})
	p := newTestProvider(t, mux)

	if _, err := p.GenerateText(context.Background(), "x"); !errors.Is(err, ai.ErrEmptyResponse) {
		t.Errorf("err = %v; want ErrEmptyResponse", err)
	}
}

func TestGenerateTextAPIError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"bad key","type":"invalid_request_error"}}`)
	})
	p := newTestProvider(t, mux)

	if _, err := p.GenerateText(context.Background(), "x"); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestEditImageBase64(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/images/edits", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("prompt"); got != "add a hat" {
			t.Errorf("prompt = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"created":1,"data":[{"b64_json":%q}]}`, base64.StdEncoding.EncodeToString(pngHeader))
	})
	p := newTestProvider(t, mux)

	res, err := p.EditImage(context.Background(), ai.Image{MIMEType: "image/png", Data: pngHeader}, "add a hat")
	if err != nil {
		t.Fatalf("EditImage: %v", err)
	}
	if !res.IsImage() || res.Image.MIMEType != "image/png" {
		t.Errorf("res = %+v; want png image", res)
	}
}

func TestEditImageURL(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	var base string
	mux.HandleFunc("/v1/images/edits", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"created":1,"data":[{"url":%q}]}`, base+"/files/out.png")
	})
	mux.HandleFunc("/files/out.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngHeader)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	base = srv.URL

	p, err := New(ai.Options{APIKey: "sk-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := p.EditImage(context.Background(), ai.Image{MIMEType: "image/png", Data: pngHeader}, "sepia")
	if err != nil {
		t.Fatalf("EditImage: %v", err)
	}
	if !res.IsImage() || len(res.Image.Data) != len(pngHeader) {
		t.Errorf("res = %+v; want fetched image", res)
	}
}
