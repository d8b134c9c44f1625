// ABOUTME: Tests for Gemini response handling and provider construction
// ABOUTME: Responses are built in-memory; no network access

package gemini

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"github.com/mauromedda/mindweaver/pkg/ai"
)

func response(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := New(ai.Options{})
	if !errors.Is(err, ai.ErrNoAPIKey) {
		t.Errorf("err = %v; want ErrNoAPIKey", err)
	}
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	p, err := New(ai.Options{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	if p.textModel != DefaultTextModel || p.imageModel != DefaultImageModel {
		t.Errorf("models = %s/%s; want defaults", p.textModel, p.imageModel)
	}
	if p.Api() != ai.ApiGemini {
		t.Errorf("Api() = %q", p.Api())
	}
}

func TestTextResultConcatenatesParts(t *testing.T) {
	t.Parallel()

	res, err := textResult(response(genai.Text("Hello, "), genai.Text("world")), "m")
	if err != nil {
		t.Fatalf("textResult: %v", err)
	}
	if res.Text != "Hello, world" || res.Model != "m" {
		t.Errorf("res = %+v", res)
	}
}

func TestTextResultEmpty(t *testing.T) {
	t.Parallel()

	tests := []*genai.GenerateContentResponse{
		nil,
		{},
		response(),
	}
	for i, resp := range tests {
		if _, err := textResult(resp, "m"); !errors.Is(err, ai.ErrEmptyResponse) {
			t.Errorf("case %d: err = %v; want ErrEmptyResponse", i, err)
		}
	}
}

func TestImageResultPicksFirstImage(t *testing.T) {
	t.Parallel()

	resp := response(
		genai.Text("Here you go"),
		genai.Blob{MIMEType: "image/png", Data: []byte{1, 2, 3}},
		genai.Blob{MIMEType: "image/png", Data: []byte{9}},
	)
	res, err := imageResult(resp, "img")
	if err != nil {
		t.Fatalf("imageResult: %v", err)
	}
	if !res.IsImage() || len(res.Image.Data) != 3 {
		t.Errorf("res = %+v; want first image", res)
	}
}

func TestImageResultTextOnlyIsError(t *testing.T) {
	t.Parallel()

	_, err := imageResult(response(genai.Text("I can't edit that image.")), "img")
	if err == nil || !strings.Contains(err.Error(), "can't edit") {
		t.Errorf("err = %v; want model commentary in error", err)
	}
}
