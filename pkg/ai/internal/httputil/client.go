// ABOUTME: Shared HTTP client and bounded body fetch for generation backends
// ABOUTME: One tuned transport for SDK clients; Fetch uses x/net ctxhttp with a size cap

package httputil

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/context/ctxhttp"
)

// ErrTooLarge is returned by Fetch when the body exceeds the size limit.
var ErrTooLarge = errors.New("response body exceeds size limit")

// NewHTTPClient returns an http.Client shared by the SDK-backed providers.
// Proxy support comes from the environment (HTTP_PROXY, HTTPS_PROXY).
// There is no overall client timeout; callers bound requests with a context.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 2 * time.Minute,
			MaxIdleConns:          16,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// Fetch GETs url and returns the body and its Content-Type.
// Non-2xx responses and bodies larger than maxBytes are errors.
func Fetch(ctx context.Context, client *http.Client, url string, maxBytes int64) ([]byte, string, error) {
	resp, err := ctxhttp.Get(ctx, client, url)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, "", fmt.Errorf("fetching %s: %w (%d bytes)", url, ErrTooLarge, maxBytes)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
