// ABOUTME: Ollama backend built on the ollama/api client for local models
// ABOUTME: Streams /api/generate and accumulates the response; text only

package ollama

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/ollama/ollama/api"

	pilog "github.com/mauromedda/mindweaver/internal/log"
	"github.com/mauromedda/mindweaver/pkg/ai"
	"github.com/mauromedda/mindweaver/pkg/ai/internal/httputil"
)

const (
	DefaultHost  = "http://localhost:11434"
	DefaultModel = "llama3.2"
)

// Provider implements ai.Client against an Ollama server.
type Provider struct {
	client    *api.Client
	model     string
	maxTokens int
}

var _ ai.Client = (*Provider)(nil)

// New creates an Ollama provider. The host comes from BaseURL, then
// OLLAMA_HOST, then DefaultHost. No API key is needed.
func New(opts ai.Options) (*Provider, error) {
	host := opts.BaseURL
	if host == "" {
		host = os.Getenv("OLLAMA_HOST")
	}
	if host == "" {
		host = DefaultHost
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}

	u, err := url.Parse(httputil.NormalizeBaseURL(host))
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}

	p := &Provider{
		client:    api.NewClient(u, httputil.NewHTTPClient()),
		model:     opts.TextModel,
		maxTokens: opts.MaxTokens,
	}
	if p.model == "" {
		p.model = DefaultModel
	}
	return p, nil
}

// Api returns the provider identifier.
func (p *Provider) Api() ai.Api {
	return ai.ApiOllama
}

// GenerateText streams a completion and returns the accumulated text.
func (p *Provider) GenerateText(ctx context.Context, prompt string) (*ai.Result, error) {
	req := &api.GenerateRequest{
		Model:  p.model,
		Prompt: prompt,
	}
	if p.maxTokens > 0 {
		req.Options = map[string]any{"num_predict": p.maxTokens}
	}

	pilog.Debug("ollama: generate model=%s prompt=%d bytes", p.model, len(prompt))
	var text strings.Builder
	err := p.client.Generate(ctx, req, func(gr api.GenerateResponse) error {
		text.WriteString(gr.Response)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ollama generate: %w", err)
	}
	if strings.TrimSpace(text.String()) == "" {
		return nil, fmt.Errorf("ollama: %w", ai.ErrEmptyResponse)
	}
	return &ai.Result{Text: text.String(), Model: p.model}, nil
}

// EditImage is not available: Ollama models produce text only.
func (p *Provider) EditImage(context.Context, ai.Image, string) (*ai.Result, error) {
	return nil, fmt.Errorf("ollama image editing: %w", ai.ErrUnsupported)
}
