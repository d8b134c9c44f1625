// ABOUTME: Anthropic Messages API backend built on anthropic-sdk-go
// ABOUTME: Text generation only; image editing reports ai.ErrUnsupported

package anthropic

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	pilog "github.com/mauromedda/mindweaver/internal/log"
	"github.com/mauromedda/mindweaver/pkg/ai"
	"github.com/mauromedda/mindweaver/pkg/ai/internal/httputil"
)

const (
	DefaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 4096
)

// Provider implements ai.Client against the Anthropic Messages API.
type Provider struct {
	client    sdk.Client
	model     string
	maxTokens int
}

var _ ai.Client = (*Provider)(nil)

// New creates an Anthropic provider. An API key is required.
func New(opts ai.Options) (*Provider, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("anthropic: %w (set ANTHROPIC_API_KEY)", ai.ErrNoAPIKey)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithHTTPClient(httputil.NewHTTPClient()),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(httputil.NormalizeBaseURL(opts.BaseURL)+"/"))
	}

	p := &Provider{
		client:    sdk.NewClient(reqOpts...),
		model:     opts.TextModel,
		maxTokens: opts.MaxTokens,
	}
	if p.model == "" {
		p.model = DefaultModel
	}
	if p.maxTokens <= 0 {
		p.maxTokens = defaultMaxTokens
	}
	return p, nil
}

// Api returns the provider identifier.
func (p *Provider) Api() ai.Api {
	return ai.ApiAnthropic
}

// GenerateText performs a single-turn completion and concatenates text blocks.
func (p *Provider) GenerateText(ctx context.Context, prompt string) (*ai.Result, error) {
	pilog.Debug("anthropic: messages model=%s prompt=%d bytes", p.model, len(prompt))
	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: int64(p.maxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic messages: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(sdk.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	if b.Len() == 0 {
		return nil, fmt.Errorf("anthropic: %w", ai.ErrEmptyResponse)
	}
	return &ai.Result{Text: b.String(), Model: p.model}, nil
}

// EditImage is not available: the Messages API does not return images.
func (p *Provider) EditImage(context.Context, ai.Image, string) (*ai.Result, error) {
	return nil, fmt.Errorf("anthropic image editing: %w", ai.ErrUnsupported)
}
