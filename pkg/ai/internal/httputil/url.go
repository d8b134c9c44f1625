// ABOUTME: URL normalization for API base URLs to prevent double-path issues
// ABOUTME: Strips a trailing /v1 so providers can append their own versioned path

package httputil

import (
	"net/url"
	"strings"
)

// NormalizeBaseURL strips a trailing "/v1" (and any trailing slash) from a base URL.
// Only strips /v1 when it's the sole top-level path (e.g., http://host:8000/v1),
// not when it's nested (e.g., http://host/api/v1).
func NormalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	baseURL = strings.TrimRight(baseURL, "/")

	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}

	if u.Path == "/v1" {
		u.Path = ""
		return strings.TrimRight(u.String(), "/")
	}

	return baseURL
}

// VersionedBaseURL returns baseURL with exactly one trailing "/v1".
// SDKs that expect the version in the base (go-openai) use this.
func VersionedBaseURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	trimmed := strings.TrimRight(baseURL, "/")
	if strings.HasSuffix(trimmed, "/v1") {
		return trimmed
	}
	return trimmed + "/v1"
}
