// ABOUTME: Turns merged settings plus credentials into a backend selection and options
// ABOUTME: Applies defaults: gemini backend, 120s timeout, current directory for output

package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/mauromedda/mindweaver/pkg/ai"
)

const (
	// DefaultProvider is used when neither flags nor config name one.
	DefaultProvider = ai.ApiGemini
	// DefaultTimeout bounds each generation call.
	DefaultTimeout = 120 * time.Second
)

// Resolved is the effective runtime configuration.
type Resolved struct {
	Api       ai.Api
	Options   ai.Options
	Timeout   time.Duration
	OutputDir string
}

// Resolve validates the provider name and assembles backend options.
// Missing keys are left for the backend factory to report.
func Resolve(s *Settings, auth *AuthStore) (Resolved, error) {
	if s == nil {
		s = &Settings{}
	}
	api := ai.Api(s.Provider)
	if api == "" {
		api = DefaultProvider
	}
	if !slices.Contains(ai.Apis(), api) {
		return Resolved{}, fmt.Errorf("unknown provider %q (want one of %v)", s.Provider, ai.Apis())
	}

	r := Resolved{
		Api: api,
		Options: ai.Options{
			BaseURL:    s.BaseURL,
			TextModel:  s.Model,
			ImageModel: s.ImageModel,
			MaxTokens:  s.MaxTokens,
		},
		Timeout:   time.Duration(s.Timeout),
		OutputDir: s.OutputDir,
	}
	if auth != nil {
		r.Options.APIKey = auth.GetKey(string(api))
	}
	if r.Timeout <= 0 {
		r.Timeout = DefaultTimeout
	}
	if r.OutputDir == "" {
		r.OutputDir = "."
	}
	return r, nil
}
