package game

import "fmt"

// Rules parameterize a warehouse game.
type Rules struct {
	Size           int `yaml:"size"`            // Grid side length
	Steps          int `yaml:"steps"`           // Total plies (both robots) before the game ends
	Battery        int `yaml:"battery"`         // Initial battery per robot
	Packages       int `yaml:"packages"`        // Packages on board at once
	ChargeStations int `yaml:"charge_stations"` // Number of charge stations
	Queue          int `yaml:"queue"`           // Packages that will ever spawn
}

// Validate reports rules that cannot produce a playable layout.
func (r Rules) Validate() error {
	if r.Size < 2 {
		return fmt.Errorf("invalid rules: size %d must be at least 2", r.Size)
	}
	if r.Steps <= 0 {
		return fmt.Errorf("invalid rules: steps %d must be positive", r.Steps)
	}
	if r.Battery < 0 {
		return fmt.Errorf("invalid rules: battery %d must not be negative", r.Battery)
	}
	if r.Packages < 0 || r.ChargeStations < 0 || r.Queue < r.Packages {
		return fmt.Errorf("invalid rules: packages=%d charge_stations=%d queue=%d", r.Packages, r.ChargeStations, r.Queue)
	}
	// Robots and stations need distinct cells
	if 2+r.ChargeStations > r.Size*r.Size {
		return fmt.Errorf("invalid rules: %d charge stations do not fit a %dx%d grid", r.ChargeStations, r.Size, r.Size)
	}
	return nil
}
