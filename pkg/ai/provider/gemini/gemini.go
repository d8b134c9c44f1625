// ABOUTME: Google Gemini backend built on the generative-ai-go SDK
// ABOUTME: Text generation plus image editing (inline image in, inline image out)

package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	pilog "github.com/mauromedda/mindweaver/internal/log"
	"github.com/mauromedda/mindweaver/pkg/ai"
)

const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "gemini-2.5-flash-image-preview"
)

// Provider talks to the Gemini API.
type Provider struct {
	client     *genai.Client
	textModel  string
	imageModel string
	maxTokens  int
}

var _ ai.Client = (*Provider)(nil)

// New creates a Gemini provider. An API key is required.
func New(opts ai.Options) (*Provider, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w (set GEMINI_API_KEY or GOOGLE_API_KEY)", ai.ErrNoAPIKey)
	}

	clientOpts := []option.ClientOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.BaseURL))
	}

	// NewClient does not dial; the context only scopes client construction.
	client, err := genai.NewClient(context.Background(), clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}

	p := &Provider{
		client:     client,
		textModel:  opts.TextModel,
		imageModel: opts.ImageModel,
		maxTokens:  opts.MaxTokens,
	}
	if p.textModel == "" {
		p.textModel = DefaultTextModel
	}
	if p.imageModel == "" {
		p.imageModel = DefaultImageModel
	}
	return p, nil
}

// Api returns the provider identifier.
func (p *Provider) Api() ai.Api {
	return ai.ApiGemini
}

// Close releases the underlying SDK client.
func (p *Provider) Close() error {
	return p.client.Close()
}

// GenerateText sends a single-turn prompt to the text model.
func (p *Provider) GenerateText(ctx context.Context, prompt string) (*ai.Result, error) {
	model := p.client.GenerativeModel(p.textModel)
	if p.maxTokens > 0 {
		model.SetMaxOutputTokens(int32(p.maxTokens))
	}

	pilog.Debug("gemini: generate model=%s prompt=%d bytes", p.textModel, len(prompt))
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	return textResult(resp, p.textModel)
}

// EditImage sends the image followed by the instruction and returns the
// first image part of the response.
func (p *Provider) EditImage(ctx context.Context, img ai.Image, prompt string) (*ai.Result, error) {
	model := p.client.GenerativeModel(p.imageModel)

	format := strings.TrimPrefix(img.MIMEType, "image/")
	pilog.Debug("gemini: edit model=%s image=%s %d bytes", p.imageModel, img.MIMEType, len(img.Data))
	resp, err := model.GenerateContent(ctx, genai.ImageData(format, img.Data), genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini edit: %w", err)
	}
	return imageResult(resp, p.imageModel)
}

func parts(resp *genai.GenerateContentResponse) []genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

func textResult(resp *genai.GenerateContentResponse, model string) (*ai.Result, error) {
	var b strings.Builder
	for _, part := range parts(resp) {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return nil, fmt.Errorf("gemini: %w", ai.ErrEmptyResponse)
	}
	return &ai.Result{Text: b.String(), Model: model}, nil
}

func imageResult(resp *genai.GenerateContentResponse, model string) (*ai.Result, error) {
	var commentary strings.Builder
	for _, part := range parts(resp) {
		switch v := part.(type) {
		case genai.Blob:
			if strings.HasPrefix(v.MIMEType, "image/") && len(v.Data) > 0 {
				return &ai.Result{Image: &ai.Image{MIMEType: v.MIMEType, Data: v.Data}, Model: model}, nil
			}
		case genai.Text:
			commentary.WriteString(string(v))
		}
	}
	// The model sometimes answers with text only (e.g. a refusal).
	if s := strings.TrimSpace(commentary.String()); s != "" {
		return nil, fmt.Errorf("gemini returned no image: %s", s)
	}
	return nil, fmt.Errorf("gemini: %w", ai.ErrEmptyResponse)
}
