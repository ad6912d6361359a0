// Package profile holds named tessellation/stitching settings shipped with svgpoly.
package profile

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// DefaultName is the profile used when none is given.
const DefaultName = "default"

var ErrNotFound = errors.New("profile not found")

//go:embed profiles.json
var profiles []byte

// Profile represents one set of settings.
type Profile struct {
	Name        string
	Description string

	// Samples is the number of samples per bezier curve.
	Samples uint
	// Tolerance is the stitching distance under which two points are the same.
	Tolerance float64
}

func decodeProfiles() ([]Profile, error) {
	var result []Profile
	if err := json.Unmarshal(profiles, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// List returns all known profiles.
func List() ([]Profile, error) {
	return decodeProfiles()
}

// Get returns the profile called name.
func Get(name string) (*Profile, error) {
	profiles, err := decodeProfiles()
	if err != nil {
		return nil, err
	}

	for _, profile := range profiles {
		if profile.Name == name {
			return &profile, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}
