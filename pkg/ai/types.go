// ABOUTME: Generation client types: Api identifiers, Image payloads, Result, Options
// ABOUTME: Shared across all backends; wire-format agnostic

package ai

import (
	"context"
	"errors"
)

// Api identifies a generation backend.
type Api string

const (
	ApiGemini    Api = "gemini"
	ApiOpenAI    Api = "openai"
	ApiAnthropic Api = "anthropic"
	ApiOllama    Api = "ollama"
)

// Apis returns the known backends in preference order.
func Apis() []Api {
	return []Api{ApiGemini, ApiOpenAI, ApiAnthropic, ApiOllama}
}

var (
	// ErrUnsupported is returned by backends that cannot perform an operation
	// (for example image editing on a text-only backend).
	ErrUnsupported = errors.New("operation not supported by this provider")

	// ErrEmptyResponse is returned when the upstream answered without any
	// usable content.
	ErrEmptyResponse = errors.New("empty response from model")

	// ErrNoAPIKey is returned by factories that require a key and got none.
	ErrNoAPIKey = errors.New("missing API key")
)

// Image is a binary image with its media type.
type Image struct {
	MIMEType string
	Data     []byte
}

// Result is the verbatim output of one generation call. Exactly one of Text
// or Image is set.
type Result struct {
	Text  string
	Image *Image
	Model string
}

// IsImage reports whether the result carries an image.
func (r *Result) IsImage() bool {
	return r != nil && r.Image != nil
}

// TextGenerator turns a prompt into text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (*Result, error)
}

// ImageEditor applies a prompt to an image and returns the edited image.
type ImageEditor interface {
	EditImage(ctx context.Context, img Image, prompt string) (*Result, error)
}

// Client is the generation boundary: one backend exposing both operations.
type Client interface {
	Api() Api
	TextGenerator
	ImageEditor
}

// Options configures a backend instance. Zero values select backend defaults.
type Options struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	MaxTokens  int
}
