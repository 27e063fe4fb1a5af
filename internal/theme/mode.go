// Package theme owns the light/dark rendering mode.
//
// There is no global theme. A single Controller is created at the
// application root and handed to everything that renders.
package theme

import "strings"

// Mode is the rendering mode.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ParseMode accepts "light" or "dark" (any case). Anything else is Light.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "dark") {
		return Dark
	}
	return Light
}
