package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/muurk/codeverifier/internal/verifier"
)

// CurrentVersion is the only config file version this build understands.
const CurrentVersion = 1

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int          `yaml:"version"`
	Style       *StyleConfig `yaml:"style,omitempty"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// StyleConfig holds slot metrics and colors for the code field.
// All sizes are in terminal cells.
type StyleConfig struct {
	SlotWidth      int     `yaml:"slot_width"`      // Width of one slot box including border
	SlotSpacing    int     `yaml:"slot_spacing"`    // Gap between slots
	LabelHeight    int     `yaml:"label_height"`    // Height of one slot box including border
	LineHeight     int     `yaml:"line_height"`     // Rows used by the carrier line
	CarrierSpacing int     `yaml:"carrier_spacing"` // Rows between slots and carrier line
	Secure         bool    `yaml:"secure"`          // Mask typed characters
	Mask           string  `yaml:"mask,omitempty"`  // Single character used when secure
	Colors         *Colors `yaml:"colors,omitempty"`
}

// Colors are lipgloss color strings ("#7D56F4", "205", ...).
// Empty entries keep the built-in palette.
type Colors struct {
	Idle    string `yaml:"idle,omitempty"`
	Active  string `yaml:"active,omitempty"`
	Filled  string `yaml:"filled,omitempty"`
	Correct string `yaml:"correct,omitempty"`
	Wrong   string `yaml:"wrong,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	LogLevel      string `yaml:"log_level,omitempty"` // Empty keeps logging silent
	LogFile       string `yaml:"log_file,omitempty"`  // Log destination while the widget owns the terminal
	ExitOnSuccess bool   `yaml:"exit_on_success"`     // Quit the interactive widget once the code is correct
	DemoCode      string `yaml:"demo_code"`           // Code used when --code is not given
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		Style:       DefaultStyle(),
		Preferences: DefaultPreferences(),
	}
}

// DefaultStyle returns the style matching verifier.DefaultLayout.
func DefaultStyle() *StyleConfig {
	l := verifier.DefaultLayout()
	return &StyleConfig{
		SlotWidth:      l.SlotWidth,
		SlotSpacing:    l.SlotSpacing,
		LabelHeight:    l.LabelHeight,
		LineHeight:     l.LineHeight,
		CarrierSpacing: l.CarrierSpacing,
		Mask:           "•",
	}
}

// DefaultPreferences returns the stock preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		ExitOnSuccess: true,
		DemoCode:      "123456",
	}
}

// Layout converts the style metrics into a verifier.Layout.
func (s *StyleConfig) Layout() verifier.Layout {
	return verifier.Layout{
		SlotWidth:      s.SlotWidth,
		SlotSpacing:    s.SlotSpacing,
		LabelHeight:    s.LabelHeight,
		LineHeight:     s.LineHeight,
		CarrierSpacing: s.CarrierSpacing,
	}
}

// MaskRune returns the configured mask character, or 0 when unset.
func (s *StyleConfig) MaskRune() rune {
	if s.Mask == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.Mask)
	return r
}

// Validate checks the style and returns a slice of errors (empty if valid).
func (s *StyleConfig) Validate() []error {
	var errs []error

	if err := s.Layout().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("style: %w", err))
	}
	if s.Mask != "" && utf8.RuneCountInString(s.Mask) != 1 {
		errs = append(errs, fmt.Errorf("style: mask must be a single character, got %q", s.Mask))
	}

	return errs
}
