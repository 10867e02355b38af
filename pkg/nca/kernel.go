package nca

// Kernel is a 3x3 convolution stencil stored row-major. Row indexes the
// neighbor offset along the engine's x axis, column the offset along y, and
// (1, 1) is the cell itself.
type Kernel struct {
	w [9]float32
}

// NewKernel builds a kernel from nine row-major weights.
func NewKernel(a, b, c, d, e, f, g, h, i float32) Kernel {
	return Kernel{w: [9]float32{a, b, c, d, e, f, g, h, i}}
}

// VerticalKernel mirrors the left column onto the right one:
//
//	tl tc tl
//	ml mc ml
//	bl bc bl
func VerticalKernel(tl, tc, ml, mc, bl, bc float32) Kernel {
	return NewKernel(
		tl, tc, tl,
		ml, mc, ml,
		bl, bc, bl,
	)
}

// HorizontalKernel mirrors the top row onto the bottom one.
func HorizontalKernel(tl, tc, tr, ml, mc, mr float32) Kernel {
	return NewKernel(
		tl, tc, tr,
		ml, mc, mr,
		tl, tc, tr,
	)
}

// QuadKernel is symmetric about both axes. edge is the weight above and below
// the center, side the weight left and right of it.
func QuadKernel(corner, edge, side, center float32) Kernel {
	return NewKernel(
		corner, edge, corner,
		side, center, side,
		corner, edge, corner,
	)
}

// FullKernel has full 4-fold symmetry.
func FullKernel(corner, side, center float32) Kernel {
	return QuadKernel(corner, side, side, center)
}

// At returns the weight at (row, col), or 0 outside the 3x3 range.
func (k Kernel) At(row, col int) float32 {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0
	}
	return k.w[row*3+col]
}

// With returns a copy of k with the weight at (row, col) replaced. Indices
// outside the 3x3 range leave the copy unchanged.
func (k Kernel) With(row, col int, w float32) Kernel {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return k
	}
	k.w[row*3+col] = w
	return k
}

// Weights returns the nine weights in row-major order.
func (k Kernel) Weights() [9]float32 { return k.w }

// Sum is the total weight; a uniform field v convolves to v*Sum().
func (k Kernel) Sum() float32 {
	var s float32
	for _, w := range k.w {
		s += w
	}
	return s
}

// Preset stencils for the built-in profiles.
var (
	WormKernel      = FullKernel(0.68, -0.9, -0.66)
	WallKernel      = QuadKernel(-0.7, 0.9, 0.85, -0.2)
	SlimeMoldKernel = FullKernel(0.8, -0.85, -0.2)
	StarsKernel     = QuadKernel(0.565, -0.716, -0.759, 0.627)
	MitosisKernel   = FullKernel(-0.939, 0.88, 0.4)
	WavesKernel     = FullKernel(0.565, -0.716, 0.627)
)
