// ABOUTME: API key resolution: runtime override, ~/.mindweaver/auth.json, then environment
// ABOUTME: Stored values starting with "!" are shell commands whose output is the key

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	pilog "github.com/mauromedda/mindweaver/internal/log"
)

const keyCommandTimeout = 10 * time.Second

// providerEnv lists the conventional variables per provider, in priority order.
var providerEnv = map[string][]string{
	"gemini":    {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	"openai":    {"OPENAI_API_KEY"},
	"anthropic": {"ANTHROPIC_API_KEY"},
}

// AuthStore holds API keys keyed by provider name.
type AuthStore struct {
	Keys map[string]string `json:"keys"`

	mu         sync.Mutex
	runtimeKey string
	resolved   map[string]string // cached !command output
}

// LoadAuth reads the auth file, or returns an empty store if it doesn't exist.
func LoadAuth() (*AuthStore, error) {
	return loadAuthFile(AuthFile())
}

func loadAuthFile(path string) (*AuthStore, error) {
	store := &AuthStore{Keys: make(map[string]string)}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading auth file: %w", err)
	}
	if err := json.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("parsing auth file: %w", err)
	}
	if store.Keys == nil {
		store.Keys = make(map[string]string)
	}
	return store, nil
}

// SetRuntimeKey sets a key (from --api-key) that beats every other source.
func (a *AuthStore) SetRuntimeKey(key string) {
	a.mu.Lock()
	a.runtimeKey = key
	a.mu.Unlock()
}

// GetKey returns the API key for a provider. Priority: runtime override,
// stored key (or its !command output), MINDWEAVER_API_KEY_<PROVIDER>, then
// the provider's conventional variables. Empty when nothing is configured.
func (a *AuthStore) GetKey(provider string) string {
	a.mu.Lock()
	runtime, stored := a.runtimeKey, a.Keys[provider]
	a.mu.Unlock()

	if runtime != "" {
		return runtime
	}
	if stored != "" {
		if cmd, ok := strings.CutPrefix(stored, "!"); ok {
			return a.runCommand(provider, cmd)
		}
		return stored
	}

	envVars := append([]string{"MINDWEAVER_API_KEY_" + strings.ToUpper(provider)}, providerEnv[provider]...)
	for _, env := range envVars {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

func (a *AuthStore) runCommand(provider, command string) string {
	a.mu.Lock()
	if v, ok := a.resolved[provider]; ok {
		a.mu.Unlock()
		return v
	}
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), keyCommandTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, "sh", "-c", command).Output()
	if err != nil {
		pilog.Warn("auth: key command for %s failed: %v", provider, err)
		return ""
	}
	key := strings.TrimSpace(string(out))

	a.mu.Lock()
	if a.resolved == nil {
		a.resolved = make(map[string]string)
	}
	a.resolved[provider] = key
	a.mu.Unlock()
	return key
}
