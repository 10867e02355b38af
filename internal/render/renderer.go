//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a single RGBA image of the field. Refresh re-uploads the
// pixels; Draw only blits the last uploaded frame, so frames can be held
// across ticks.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a field of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Refresh pulls every cell color from src into the painter image.
func (gp *GridPainter) Refresh(src ColorSource) {
	size := src.Size()
	if size.W != gp.w || size.H != gp.h {
		return
	}
	fillRGBA(gp.buf, src)
	gp.img.WritePixels(gp.buf)
}

// Draw blits the painter image onto dst scaled by scale.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
