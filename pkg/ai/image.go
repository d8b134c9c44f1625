// ABOUTME: Image helpers: MIME sniffing, loading from path or URL, edited-file naming
// ABOUTME: Edited names follow <base>-edited.<ext>; names are NFC-normalized via x/text

package ai

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/mindweaver/pkg/ai/internal/httputil"
)

// MaxImageBytes caps images loaded for editing (inline request limit).
const MaxImageBytes = 20 << 20

// DetectMIME returns an image MIME type from magic bytes, falling back to
// http.DetectContentType.
func DetectMIME(data []byte) string {
	switch {
	case len(data) >= 4 && data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G':
		return "image/png"
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8:
		return "image/jpeg"
	case len(data) >= 3 && data[0] == 'G' && data[1] == 'I' && data[2] == 'F':
		return "image/gif"
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return "image/webp"
	}
	return http.DetectContentType(data)
}

// ExtensionFor maps an image MIME type to a file extension without the dot.
// Unknown types map to "png".
func ExtensionFor(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	default:
		return "png"
	}
}

// EditedFilename derives the download name for an edited image:
// "<original-name-without-extension>-edited.<ext>". The base is "image"
// when the original name is empty or is only an extension.
func EditedFilename(original, mimeType string) string {
	base := filepath.Base(norm.NFC.String(strings.TrimSpace(original)))
	if base == "." || base == string(filepath.Separator) {
		base = ""
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "image"
	}
	return base + "-edited." + ExtensionFor(mimeType)
}

// SaveEdited writes img into dir under EditedFilename(original, img.MIMEType)
// and returns the written path. dir is created when missing.
func SaveEdited(dir, original string, img Image) (string, error) {
	if len(img.Data) == 0 {
		return "", ErrEmptyResponse
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	path := filepath.Join(dir, EditedFilename(original, img.MIMEType))
	if err := os.WriteFile(path, img.Data, 0o644); err != nil {
		return "", fmt.Errorf("saving image: %w", err)
	}
	return path, nil
}

// IsURL reports whether source looks like an http(s) URL.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// LoadImage reads an image from a local path or an http(s) URL.
// It returns the image and the display name (file base name or URL path base).
func LoadImage(ctx context.Context, source string) (Image, string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Image{}, "", fmt.Errorf("empty image source")
	}

	var (
		data []byte
		name string
	)
	if IsURL(source) {
		body, _, err := httputil.Fetch(ctx, httputil.NewHTTPClient(), source, MaxImageBytes)
		if err != nil {
			return Image{}, "", err
		}
		data = body
		name = filepath.Base(strings.SplitN(source, "?", 2)[0])
	} else {
		info, err := os.Stat(source)
		if err != nil {
			return Image{}, "", fmt.Errorf("reading image: %w", err)
		}
		if info.Size() > MaxImageBytes {
			return Image{}, "", fmt.Errorf("image %s is %d bytes; limit is %d", source, info.Size(), MaxImageBytes)
		}
		data, err = os.ReadFile(source)
		if err != nil {
			return Image{}, "", fmt.Errorf("reading image: %w", err)
		}
		name = filepath.Base(source)
	}

	mime := DetectMIME(data)
	if !strings.HasPrefix(mime, "image/") {
		return Image{}, "", fmt.Errorf("%s is not an image (%s)", name, mime)
	}
	return Image{MIMEType: mime, Data: data}, name, nil
}

// FetchImageURL downloads an image result referenced by URL.
func FetchImageURL(ctx context.Context, client *http.Client, url string) (*Image, error) {
	if client == nil {
		client = httputil.NewHTTPClient()
	}
	data, ct, err := httputil.Fetch(ctx, client, url, MaxImageBytes)
	if err != nil {
		return nil, err
	}
	mime := DetectMIME(data)
	if !strings.HasPrefix(mime, "image/") && strings.HasPrefix(ct, "image/") {
		mime = ct
	}
	return &Image{MIMEType: mime, Data: data}, nil
}
