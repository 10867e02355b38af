package app

import (
	"fmt"
	"strings"

	"simple-nca/internal/config"
	"simple-nca/internal/core"
	"simple-nca/internal/sims/neural"
	"simple-nca/pkg/nca"
)

// OpenSim registers the session's custom profiles and builds the sim for the
// selected profile.
func OpenSim(s *config.Config) (core.Sim, error) {
	customs, err := s.CustomProfiles()
	if err != nil {
		return nil, err
	}
	for _, p := range customs {
		neural.RegisterProfile(p)
	}
	name := ResolveProfile(s.Profile, customs)
	factory, ok := core.Sims()[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", name)
	}
	return factory(SimOptions(s)), nil
}

// ResolveProfile maps a user-typed name onto a registered profile name.
// Custom profiles match exactly (ignoring case and surrounding space); anything
// else goes through the built-in catalogue, which falls back to worm.
func ResolveProfile(name string, customs []nca.Profile) string {
	trimmed := strings.TrimSpace(name)
	for _, p := range customs {
		if strings.EqualFold(p.Name, trimmed) {
			return p.Name
		}
	}
	return nca.LookupProfile(trimmed).Name
}
