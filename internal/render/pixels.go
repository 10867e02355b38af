package render

import (
	"image"
	"image/color"

	"simple-nca/internal/core"
)

// ColorSource yields a display color for every cell of a field.
type ColorSource interface {
	Size() core.Size
	ColorAt(x, y int) color.RGBA
}

// fillRGBA writes one RGBA pixel per cell into buf, row-major by pixel y.
// buf must hold 4*W*H bytes.
func fillRGBA(buf []byte, src ColorSource) {
	size := src.Size()
	for y := 0; y < size.H; y++ {
		row := buf[y*size.W*4 : (y+1)*size.W*4]
		for x := 0; x < size.W; x++ {
			c := src.ColorAt(x, y)
			base := x * 4
			row[base+0] = c.R
			row[base+1] = c.G
			row[base+2] = c.B
			row[base+3] = c.A
		}
	}
}

// Frame renders src into a new image.
func Frame(src ColorSource) *image.RGBA {
	size := src.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	fillRGBA(img.Pix, src)
	return img
}
