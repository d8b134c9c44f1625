// ABOUTME: Half-block renderer: draws an image with ▄ cells and true-color escapes
// ABOUTME: Each cell shows two vertical pixels (background = top, foreground = bottom)

package image

import (
	"fmt"
	goimage "image"
	"strings"

	"golang.org/x/image/draw"
)

// fitCells returns the pixel size that fits src into cols x rows cells,
// preserving aspect ratio. Each cell covers one pixel across and two down.
func fitCells(src Dimensions, cols, rows int) (int, int) {
	if src.Width <= 0 || src.Height <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	maxW, maxH := cols, rows*2
	w, h := src.Width, src.Height
	if w > maxW {
		h = h * maxW / w
		w = maxW
	}
	if h > maxH {
		w = w * maxH / h
		h = maxH
	}
	return max(w, 1), max(h, 1)
}

// RenderHalfBlock scales img into at most cols x rows terminal cells and
// returns one string per cell row.
func RenderHalfBlock(img goimage.Image, cols, rows int) []string {
	bounds := img.Bounds()
	w, h := fitCells(Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}, cols, rows)
	if w == 0 {
		return nil
	}

	scaled := img
	if w != bounds.Dx() || h != bounds.Dy() {
		dst := goimage.NewRGBA(goimage.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		scaled = dst
	}
	origin := scaled.Bounds().Min

	lines := make([]string, 0, (h+1)/2)
	for y := 0; y < h; y += 2 {
		var b strings.Builder
		for x := range w {
			tr, tg, tb := rgb8(scaled, origin.X+x, origin.Y+y)
			var br, bg, bb uint8
			if y+1 < h {
				br, bg, bb = rgb8(scaled, origin.X+x, origin.Y+y+1)
			}
			fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm▄", tr, tg, tb, br, bg, bb)
		}
		b.WriteString("\x1b[0m")
		lines = append(lines, b.String())
	}
	return lines
}

func rgb8(img goimage.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
