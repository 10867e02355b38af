package nca

// Profile pairs a kernel with an activation to produce one recognizable
// pattern.
type Profile struct {
	Name       string
	Kernel     Kernel
	Activation Activation
}

// Built-in profiles.
var (
	Worm      = Profile{Name: "worm", Kernel: WormKernel, Activation: WormGaussian}
	Wall      = Profile{Name: "wall", Kernel: WallKernel, Activation: InverseGaussian}
	SlimeMold = Profile{Name: "slime-mold", Kernel: SlimeMoldKernel, Activation: SpecialGaussian}
	Stars     = Profile{Name: "stars", Kernel: StarsKernel, Activation: Absolute}
	Mitosis   = Profile{Name: "mitosis", Kernel: MitosisKernel, Activation: CellGaussian}
	Waves     = Profile{Name: "waves", Kernel: WavesKernel, Activation: ScaledAbsolute}
)

var profiles = []Profile{Worm, Wall, SlimeMold, Stars, Mitosis, Waves}

// Profiles returns the built-in catalogue in display order.
func Profiles() []Profile {
	return append([]Profile(nil), profiles...)
}

// FindProfile matches name case-insensitively against the catalogue.
// Dashes, underscores and spaces are ignored, so "Slime Mold" finds
// slime-mold.
func FindProfile(name string) (Profile, bool) {
	key := normalizeName(name)
	for _, p := range profiles {
		if normalizeName(p.Name) == key {
			return p, true
		}
	}
	return Profile{}, false
}

// LookupProfile is FindProfile falling back to Worm.
func LookupProfile(name string) Profile {
	if p, ok := FindProfile(name); ok {
		return p
	}
	return Worm
}
