package nca

import (
	"math"
	"strings"
)

// Activation is a named scalar nonlinearity applied after the convolution.
// The zero value is the identity.
type Activation struct {
	name string
	fn   func(float64) float64
}

// NewActivation wraps a user-supplied function. fn must be total; a nil fn
// behaves as the identity.
func NewActivation(name string, fn func(float64) float64) Activation {
	return Activation{name: name, fn: fn}
}

// Activate applies the function to x.
func (a Activation) Activate(x float32) float32 {
	if a.fn == nil {
		return x
	}
	return float32(a.fn(float64(x)))
}

// Name identifies the activation. Unset activations report "identity".
func (a Activation) Name() string {
	if a.fn == nil && a.name == "" {
		return "identity"
	}
	return a.name
}

// Built-in activations used by the preset profiles.
var (
	Identity = NewActivation("identity", func(x float64) float64 { return x })
	Sine     = NewActivation("sine", math.Sin)
	Square   = NewActivation("square", func(x float64) float64 { return x * x })
	Absolute = NewActivation("absolute", math.Abs)

	ScaledAbsolute = NewActivation("scaled-absolute", func(x float64) float64 {
		return math.Abs(1.2 * x)
	})

	Tanh = NewActivation("tanh", math.Tanh)

	InverseGaussian = NewActivation("inverse-gaussian", func(x float64) float64 {
		return 1 - math.Pow(2, -(x*x))
	})

	SpecialGaussian = NewActivation("special-gaussian", func(x float64) float64 {
		return 1 - 1/(0.89*x*x+1)
	})

	WormGaussian = NewActivation("worm-gaussian", func(x float64) float64 {
		return 1 - math.Pow(2, -0.6*x*x)
	})

	CellGaussian = NewActivation("cell-gaussian", func(x float64) float64 {
		return 1 - 1/(0.9*x*x+1)
	})
)

var activations = []Activation{
	Identity,
	Sine,
	Square,
	Absolute,
	ScaledAbsolute,
	Tanh,
	InverseGaussian,
	SpecialGaussian,
	WormGaussian,
	CellGaussian,
}

// Activations lists the built-in catalogue.
func Activations() []Activation {
	return append([]Activation(nil), activations...)
}

// ActivationByName finds a built-in activation, ignoring case and separators.
func ActivationByName(name string) (Activation, bool) {
	key := normalizeName(name)
	for _, a := range activations {
		if normalizeName(a.name) == key {
			return a, true
		}
	}
	return Activation{}, false
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
