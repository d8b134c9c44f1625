// ABOUTME: Provider registry for mapping API types to client factories
// ABOUTME: Thread-safe registration and lookup of Client implementations

package ai

import (
	"fmt"
	"slices"
	"sync"
)

// ProviderFactory creates a Client from options.
type ProviderFactory func(opts Options) (Client, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[Api]ProviderFactory)
)

// RegisterProvider registers a factory for the given API.
func RegisterProvider(api Api, factory ProviderFactory) {
	registryMu.Lock()
	registry[api] = factory
	registryMu.Unlock()
}

// GetProvider builds a client for the given API.
// Returns an error if no provider is registered or the factory fails.
func GetProvider(api Api, opts Options) (Client, error) {
	registryMu.RLock()
	factory, ok := registry[api]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no provider registered for API %q", api)
	}
	c, err := factory(opts)
	if err != nil {
		return nil, fmt.Errorf("creating %s provider: %w", api, err)
	}
	return c, nil
}

// HasProvider checks if a provider is registered for the given API.
func HasProvider(api Api) bool {
	registryMu.RLock()
	_, ok := registry[api]
	registryMu.RUnlock()
	return ok
}

// RegisteredApis returns the registered APIs, sorted.
func RegisteredApis() []Api {
	registryMu.RLock()
	out := make([]Api, 0, len(registry))
	for api := range registry {
		out = append(out, api)
	}
	registryMu.RUnlock()
	slices.Sort(out)
	return out
}
