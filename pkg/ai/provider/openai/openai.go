// ABOUTME: OpenAI backend built on go-openai (also works with compatible servers)
// ABOUTME: Chat completions for text; the images edit endpoint for image editing

package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	pilog "github.com/mauromedda/mindweaver/internal/log"
	"github.com/mauromedda/mindweaver/pkg/ai"
	"github.com/mauromedda/mindweaver/pkg/ai/internal/httputil"
)

const (
	DefaultTextModel  = "gpt-4o-mini"
	DefaultImageModel = "gpt-image-1"
)

// Provider implements ai.Client against the OpenAI API.
type Provider struct {
	client     *goopenai.Client
	httpClient *http.Client
	textModel  string
	imageModel string
	maxTokens  int
}

var _ ai.Client = (*Provider)(nil)

// New creates an OpenAI provider. A key is required unless BaseURL points at
// a compatible local server.
func New(opts ai.Options) (*Provider, error) {
	if opts.APIKey == "" && opts.BaseURL == "" {
		return nil, fmt.Errorf("openai: %w (set OPENAI_API_KEY)", ai.ErrNoAPIKey)
	}

	httpClient := httputil.NewHTTPClient()
	cfg := goopenai.DefaultConfig(opts.APIKey)
	cfg.HTTPClient = httpClient
	if opts.BaseURL != "" {
		cfg.BaseURL = httputil.VersionedBaseURL(opts.BaseURL)
	}

	p := &Provider{
		client:     goopenai.NewClientWithConfig(cfg),
		httpClient: httpClient,
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
	return ai.ApiOpenAI
}

// GenerateText runs a single-message chat completion.
func (p *Provider) GenerateText(ctx context.Context, prompt string) (*ai.Result, error) {
	req := goopenai.ChatCompletionRequest{
		Model: p.textModel,
		Messages: []goopenai.ChatCompletionMessage{{
			Role:    goopenai.ChatMessageRoleUser,
			Content: prompt,
		}},
	}
	if p.maxTokens > 0 {
		req.MaxTokens = p.maxTokens
	}

	pilog.Debug("openai: chat model=%s prompt=%d bytes", p.textModel, len(prompt))
	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("openai: %w", ai.ErrEmptyResponse)
	}
	return &ai.Result{Text: resp.Choices[0].Message.Content, Model: p.textModel}, nil
}

// EditImage uploads the image with the instruction to the images edit endpoint.
func (p *Provider) EditImage(ctx context.Context, img ai.Image, prompt string) (*ai.Result, error) {
	// The multipart encoder takes the upload name from the file, so the
	// extension must match the content.
	f, err := os.CreateTemp("", "mindweaver-*."+ai.ExtensionFor(img.MIMEType))
	if err != nil {
		return nil, fmt.Errorf("staging image: %w", err)
	}
	defer func() {
		_ = f.Close()
		_ = os.Remove(f.Name())
	}()
	if _, err := f.Write(img.Data); err != nil {
		return nil, fmt.Errorf("staging image: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("staging image: %w", err)
	}

	pilog.Debug("openai: edit model=%s image=%s %d bytes", p.imageModel, img.MIMEType, len(img.Data))
	resp, err := p.client.CreateEditImage(ctx, goopenai.ImageEditRequest{
		Image:  f,
		Prompt: prompt,
		Model:  p.imageModel,
		N:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("openai edit: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai: %w", ai.ErrEmptyResponse)
	}

	out, err := p.decodeImage(ctx, resp.Data[0])
	if err != nil {
		return nil, err
	}
	return &ai.Result{Image: out, Model: p.imageModel}, nil
}

func (p *Provider) decodeImage(ctx context.Context, d goopenai.ImageResponseDataInner) (*ai.Image, error) {
	switch {
	case d.B64JSON != "":
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(d.B64JSON))
		if err != nil {
			return nil, fmt.Errorf("openai: decoding image: %w", err)
		}
		return &ai.Image{MIMEType: ai.DetectMIME(data), Data: data}, nil
	case d.URL != "":
		return ai.FetchImageURL(ctx, p.httpClient, d.URL)
	default:
		return nil, errors.New("openai: image result has neither data nor URL")
	}
}
