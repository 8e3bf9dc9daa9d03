package core

// RuntimeConfig contains configuration passed to the game at start.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed for reproducible piece sequences
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// MinScreenW and MinScreenH are the smallest terminal that fits every panel
// of the default layout.
const (
	MinScreenW = 77
	MinScreenH = 24
)

// FitsScreen reports whether the terminal is large enough for the default layout.
func (c RuntimeConfig) FitsScreen() bool {
	return c.ScreenW >= MinScreenW && c.ScreenH >= MinScreenH
}
