// ABOUTME: Render dispatch: inline protocol when the terminal has one, half-block otherwise
// ABOUTME: Undecodable data degrades to a one-line text placeholder

package image

import (
	"bytes"
	"fmt"
	"image/png"
)

// Placeholder describes an image in one line of text.
func Placeholder(mimeType string, data []byte) string {
	if dim, err := GetDimensions(data); err == nil {
		return fmt.Sprintf("[Image: %s %s]", mimeType, dim)
	}
	return fmt.Sprintf("[Image: %s, %d bytes]", mimeType, len(data))
}

// Render produces terminal output lines for data using proto.
// Kitty and iTerm2 yield a single escape line; ProtoNone yields half-block rows.
func Render(proto Protocol, data []byte, mimeType string, cols, rows int) []string {
	img, err := Decode(data)
	if err != nil {
		return []string{Placeholder(mimeType, data)}
	}

	switch proto {
	case ProtoKitty:
		pngData := data
		if mimeType != "image/png" {
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				return []string{Placeholder(mimeType, data)}
			}
			pngData = buf.Bytes()
		}
		b := img.Bounds()
		w, h := fitCells(Dimensions{Width: b.Dx(), Height: b.Dy()}, cols, rows)
		return []string{EncodeKitty(pngData, w, max(h/2, 1))}
	case ProtoITerm2:
		return []string{EncodeITerm2(data, cols)}
	default:
		lines := RenderHalfBlock(img, cols, rows)
		if len(lines) == 0 {
			return []string{Placeholder(mimeType, data)}
		}
		return lines
	}
}
