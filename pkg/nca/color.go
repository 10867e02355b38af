package nca

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Lerp interpolates channel-wise between a and b. t is clamped to [0,1] and
// each channel is rounded, so the result always lies between the inputs.
func Lerp(a, b Color, t float32) Color {
	if !(t > 0) {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{
		R: lerpChannel(a.R, b.R, float64(t)),
		G: lerpChannel(a.G, b.G, float64(t)),
		B: lerpChannel(a.B, b.B, float64(t)),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a)*(1-t) + float64(b)*t + 0.5
	lo, hi := float64(a), float64(b)
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return uint8(v)
}

// RGBA converts the color to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// String formats the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor reads a #rrggbb (or rrggbb) hex triple.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
