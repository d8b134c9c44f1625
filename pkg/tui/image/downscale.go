// ABOUTME: Upload downscaling: shrink large images before sending them for editing
// ABOUTME: CatmullRom scaling via x/image; re-encodes as PNG, or JPEG for JPEG sources

package image

import (
	"bytes"
	"fmt"
	goimage "image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// DefaultMaxDimension bounds the longer edge of uploaded images.
const DefaultMaxDimension = 2048

// Downscale returns data unchanged when both edges fit within maxDim.
// Otherwise it scales the image so the longer edge equals maxDim and
// re-encodes it, returning the new bytes and MIME type.
func Downscale(data []byte, mimeType string, maxDim int) ([]byte, string, error) {
	dim, err := GetDimensions(data)
	if err != nil {
		return nil, "", err
	}
	if maxDim <= 0 || (dim.Width <= maxDim && dim.Height <= maxDim) {
		return data, mimeType, nil
	}

	src, err := Decode(data)
	if err != nil {
		return nil, "", err
	}

	w, h := maxDim, dim.Height*maxDim/dim.Width
	if dim.Height > dim.Width {
		w, h = dim.Width*maxDim/dim.Height, maxDim
	}
	dst := goimage.NewRGBA(goimage.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if mimeType == "image/jpeg" {
		if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
			return nil, "", fmt.Errorf("encoding JPEG: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	}
	if err := png.Encode(&buf, dst); err != nil {
		return nil, "", fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), "image/png", nil
}
