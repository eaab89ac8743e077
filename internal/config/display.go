package config

// DisplayConfig holds settings for drawing the board.
type DisplayConfig struct {
	// Unicode draws pieces as chess glyphs instead of letters
	Unicode bool `yaml:"unicode"`

	// Colour paints light and dark squares with ANSI colours
	Colour bool `yaml:"colour"`

	// Flip puts Black at the bottom of the board
	Flip bool `yaml:"flip"`

	// Coordinates prints file letters and rank numbers around the board
	Coordinates bool `yaml:"coordinates"`
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Unicode:     true,
		Colour:      true,
		Coordinates: true,
	}
}
