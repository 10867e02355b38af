//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"simple-nca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBg     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleFg     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelFg     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedFg     = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBg    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOffBg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonOffFg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the parameter panel to the right of the field. Parameters
// without a control are shown as read-only status lines; controls get -/+
// buttons.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot

	status   []string
	keys     map[string]bool
	controls []controlState
	ints     core.IntParameterSetter
	floats   core.FloatParameterSetter
	offsetX  int
}

type controlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool
	top      int
	minus    image.Rectangle
	plus     image.Rectangle
}

// NewHUD constructs a HUD for sim with a panel of the given width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), keys: map[string]bool{}}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range p.ParameterControls() {
			h.controls = append(h.controls, controlState{control: ctrl})
			h.keys[ctrl.Key] = true
		}
	}
	h.ints, _ = sim.(core.IntParameterSetter)
	h.floats, _ = sim.(core.FloatParameterSetter)
	return h
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update pulls a fresh snapshot from the sim and handles clicks. offsetX is
// where the panel starts on screen.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.status = h.status[:0]
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if !h.keys[p.Key] {
				h.status = append(h.status, p.Label+": "+p.Value)
			}
		}
	}
	h.layout()
	for i := range h.controls {
		s := &h.controls[i]
		s.hasValue = false
		if p, ok := h.snapshot.Lookup(s.control.Key); ok {
			if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
				s.value, s.hasValue = v, true
			}
		}
	}
	h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBg)

	face := basicfont.Face7x13
	y := padding + baseline
	text.Draw(h.panel, h.sim.Name(), face, padding, y, titleFg)
	for _, line := range h.status {
		y += statusLine
		text.Draw(h.panel, line, face, padding, y, mutedFg)
	}
	for i := range h.controls {
		s := &h.controls[i]
		text.Draw(h.panel, s.control.Label, face, padding, s.top+labelBaseline, labelFg)
		value, fg := "--", mutedFg
		if s.hasValue {
			value, fg = formatValue(s.control, s.value), labelFg
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, s.minus.Min.X-buttonGap-w, s.top+labelBaseline, fg)
		_, minusOK := h.target(s, -1)
		_, plusOK := h.target(s, 1)
		h.drawButton(s.minus, "-", minusOK)
		h.drawButton(s.plus, "+", plusOK)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) layout() {
	top := padding + baseline + len(h.status)*statusLine + sectionGap
	for i := range h.controls {
		y := top + i*controlLine + (controlLine-buttonSize)/2
		plus := image.Rect(h.width-padding-buttonSize, y, h.width-padding, y+buttonSize)
		h.controls[i].top = top + i*controlLine
		h.controls[i].plus = plus
		h.controls[i].minus = plus.Sub(image.Pt(buttonSize+buttonGap, 0))
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		s := &h.controls[i]
		switch {
		case pt.In(s.minus):
			h.adjust(s, -1)
			return
		case pt.In(s.plus):
			h.adjust(s, 1)
			return
		}
	}
}

// target computes the value one step in direction, clamped to the control's
// bounds. ok is false when the control cannot move that way.
func (h *HUD) target(s *controlState, direction int) (v float64, ok bool) {
	if !s.hasValue {
		return 0, false
	}
	step := s.control.Step
	switch s.control.Type {
	case core.ParamTypeInt:
		if h.ints == nil {
			return 0, false
		}
		step = math.Max(math.Round(step), 1)
	case core.ParamTypeFloat:
		if h.floats == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	v = s.value + float64(direction)*step
	if s.control.HasMin && v < s.control.Min {
		v = s.control.Min
	}
	if s.control.HasMax && v > s.control.Max {
		v = s.control.Max
	}
	return v, math.Abs(v-s.value) > 1e-9
}

func (h *HUD) adjust(s *controlState, direction int) {
	v, ok := h.target(s, direction)
	if !ok {
		return
	}
	var applied bool
	if s.control.Type == core.ParamTypeInt {
		applied = h.ints.SetIntParameter(s.control.Key, int(math.Round(v)))
	} else {
		applied = h.floats.SetFloatParameter(s.control.Key, v)
	}
	if applied {
		s.value = v
	}
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBg, labelFg
	if !enabled {
		bg, fg = buttonOffBg, buttonOffFg
	}
	vector.DrawFilledRect(h.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	precision := 1
	switch {
	case ctrl.Step > 0 && ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step > 0 && ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step > 0 && ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

const (
	padding       = 12
	baseline      = 18
	statusLine    = 16
	sectionGap    = 14
	controlLine   = 30
	buttonSize    = 22
	buttonGap     = 6
	labelBaseline = 19
)
