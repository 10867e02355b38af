package nca

import (
	"fmt"

	"simple-nca/pkg/core"
)

// Config controls engine construction.
type Config struct {
	Rows int
	Cols int
	Seed int64
	// Workers bounds the goroutines used by each pass of Step. Zero or less
	// uses GOMAXPROCS.
	Workers int
}

// Engine evolves a toroidal scalar field. It owns two equally sized buffers:
// cur holds the visible state and nxt receives the next generation before the
// two are swapped. Cells are stored row-major at x*cols+y.
//
// The engine does no locking. Callers must not read colors or values while a
// Step is running.
type Engine struct {
	rows, cols int
	cur        []float32
	nxt        []float32

	kernel     Kernel
	activation Activation
	low, high  Color

	workers    int
	generation uint64
}

// New creates a rows x cols engine whose field is filled from seed.
func New(rows, cols int, seed int64) *Engine {
	return NewWithConfig(Config{Rows: rows, Cols: cols, Seed: seed})
}

// NewWithConfig creates an engine from cfg. Non-positive dimensions are
// raised to 1.
func NewWithConfig(cfg Config) *Engine {
	rows, cols := cfg.Rows, cfg.Cols
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	e := &Engine{
		rows:    rows,
		cols:    cols,
		cur:     make([]float32, rows*cols),
		nxt:     make([]float32, rows*cols),
		high:    Color{R: 0xff, G: 0xff, B: 0xff},
		workers: cfg.Workers,
	}
	e.Reset(cfg.Seed)
	return e
}

// Reset refills the field with uniform random values drawn from seed and
// clears the scratch buffer and generation counter.
func (e *Engine) Reset(seed int64) {
	core.FillUniform(core.NewRNG(seed).Source(), e.cur)
	clear(e.nxt)
	e.generation = 0
}

// Configure replaces the kernel and activation used by subsequent steps.
func (e *Engine) Configure(k Kernel, a Activation) {
	e.kernel = k
	e.activation = a
}

// ConfigureProfile applies a profile's kernel and activation.
func (e *Engine) ConfigureProfile(p Profile) {
	e.Configure(p.Kernel, p.Activation)
}

// Kernel returns the active kernel.
func (e *Engine) Kernel() Kernel { return e.kernel }

// Activation returns the active activation.
func (e *Engine) Activation() Activation { return e.activation }

// SetBoundaryColors sets the colors drawn for values 0 and 1.
func (e *Engine) SetBoundaryColors(low, high Color) {
	e.low = low
	e.high = high
}

// BoundaryColors returns the colors drawn for values 0 and 1.
func (e *Engine) BoundaryColors() (low, high Color) { return e.low, e.high }

// Rows returns the size of the first axis.
func (e *Engine) Rows() int { return e.rows }

// Cols returns the size of the second axis.
func (e *Engine) Cols() int { return e.cols }

// Generation counts completed steps since the last reset.
func (e *Engine) Generation() uint64 { return e.generation }

// Workers returns the configured worker bound.
func (e *Engine) Workers() int { return e.workers }

// SetWorkers changes the worker bound for subsequent steps.
func (e *Engine) SetWorkers(n int) { e.workers = n }

// Step advances the field one generation: convolve, activate and clamp, swap.
// If either pass panics the panic is re-raised here before the swap, so the
// visible field keeps its previous state.
func (e *Engine) Step() {
	e.run(e.convolveRows)
	e.run(e.activateRows)
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

// convolveRows writes the raw weighted sums for rows [lo, hi) into nxt. It
// only reads cur.
func (e *Engine) convolveRows(lo, hi int) {
	rows, cols := e.rows, e.cols
	k := e.kernel.w
	for x := lo; x < hi; x++ {
		xm, xp := wrap(x-1, rows), wrap(x+1, rows)
		up := e.cur[xm*cols : (xm+1)*cols]
		mid := e.cur[x*cols : (x+1)*cols]
		down := e.cur[xp*cols : (xp+1)*cols]
		out := e.nxt[x*cols : (x+1)*cols]
		for y := 0; y < cols; y++ {
			ym, yp := wrap(y-1, cols), wrap(y+1, cols)
			out[y] = up[ym]*k[0] + up[y]*k[1] + up[yp]*k[2] +
				mid[ym]*k[3] + mid[y]*k[4] + mid[yp]*k[5] +
				down[ym]*k[6] + down[y]*k[7] + down[yp]*k[8]
		}
	}
}

// activateRows applies the activation to rows [lo, hi) of nxt and clamps the
// results into [0, 1]. NaN results clamp to 0.
func (e *Engine) activateRows(lo, hi int) {
	act := e.activation
	cells := e.nxt[lo*e.cols : hi*e.cols]
	for i, v := range cells {
		v = act.Activate(v)
		if !(v > 0) {
			v = 0
		} else if v > 1 {
			v = 1
		}
		cells[i] = v
	}
}

// wrap maps i in [-1, n] onto the torus [0, n).
func wrap(i, n int) int {
	if i < 0 {
		return n - 1
	}
	if i >= n {
		return 0
	}
	return i
}

// ColorAt interpolates between the boundary colors by the value at (x, y).
// It panics when (x, y) lies outside the grid.
func (e *Engine) ColorAt(x, y int) Color {
	return Lerp(e.low, e.high, e.cur[e.index("ColorAt", x, y)])
}

// Value returns the current value at (x, y). It panics when (x, y) lies
// outside the grid.
func (e *Engine) Value(x, y int) float32 {
	return e.cur[e.index("Value", x, y)]
}

// Snapshot copies the current field into dst, growing it as needed, and
// returns it.
func (e *Engine) Snapshot(dst []float32) []float32 {
	if cap(dst) < len(e.cur) {
		dst = make([]float32, len(e.cur))
	}
	dst = dst[:len(e.cur)]
	copy(dst, e.cur)
	return dst
}

func (e *Engine) index(op string, x, y int) int {
	if x < 0 || x >= e.rows || y < 0 || y >= e.cols {
		panic(fmt.Sprintf("nca: %s(%d, %d) outside %dx%d grid", op, x, y, e.rows, e.cols))
	}
	return x*e.cols + y
}
