// ABOUTME: Image decoding and dimension probing for previews and uploads
// ABOUTME: Registers PNG, JPEG, GIF, and WebP (via x/image) decoders

package image

import (
	"bytes"
	"fmt"
	goimage "image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Dimensions holds the width and height of an image in pixels.
type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// GetDimensions reads the image header without decoding pixels.
func GetDimensions(data []byte) (Dimensions, error) {
	cfg, _, err := goimage.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}, fmt.Errorf("reading image header: %w", err)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}

// Decode decodes image data in any registered format.
func Decode(data []byte) (goimage.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}
	img, _, err := goimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}
