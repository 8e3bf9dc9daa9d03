// Package config provides YAML-based game configuration loading, environment
// overrides and fall-speed timing for termtris.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/termtris/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Playfield dimensions. These are fixed; only the panel positions are configurable.
const (
	FieldWidth  = 10
	FieldHeight = 20
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Timing  Timing  `yaml:"timing"`
	Layout  Layout  `yaml:"layout"`
	Display Display `yaml:"display"`
}

// Timing defines gravity speed and leveling parameters.
type Timing struct {
	InitialDelayMS int     `yaml:"initial_delay_ms"` // First fall interval
	DelayFactor    float64 `yaml:"delay_factor"`     // Interval multiplier applied on each level up
	MinDelayMS     int     `yaml:"min_delay_ms"`     // Floor for the fall interval
	LevelUp        int     `yaml:"level_up"`         // Score points per level
}

// Position is a 1-indexed terminal column/row pair.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Point converts the position to a core.Point.
func (p Position) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// Layout defines where each panel is drawn on screen.
type Layout struct {
	Playfield Position `yaml:"playfield"`
	Help      Position `yaml:"help"`
	Score     Position `yaml:"score"`
	Next      Position `yaml:"next"`
	GameOver  Position `yaml:"game_over"`
}

// Display defines the initial state of the display toggles.
type Display struct {
	Color    bool `yaml:"color"`
	ShowHelp bool `yaml:"show_help"`
	ShowNext bool `yaml:"show_next"`
}

// Panel footprints in terminal cells.
const (
	helpPanelW  = 19
	helpPanelH  = 9
	scorePanelW = 24
	scorePanelH = 3
	nextPanelW  = 8 // 4 cells, 2 characters each
	nextPanelH  = 4
	overPanelW  = 10
	overPanelH  = 2
)

// Rects returns the screen footprint of every panel, keyed by panel name.
func (l Layout) Rects() map[string]core.Rect {
	return map[string]core.Rect{
		// Border is two characters on each side and two lines below.
		"playfield": core.NewRect(l.Playfield.X-2, l.Playfield.Y, FieldWidth*2+4, FieldHeight+2),
		"help":      core.NewRect(l.Help.X, l.Help.Y, helpPanelW, helpPanelH),
		"score":     core.NewRect(l.Score.X, l.Score.Y, scorePanelW, scorePanelH),
		"next":      core.NewRect(l.Next.X, l.Next.Y, nextPanelW, nextPanelH),
		"game_over": core.NewRect(l.GameOver.X, l.GameOver.Y, overPanelW, overPanelH),
	}
}

// Validate checks that the timing is sane and the panels do not overlap.
func (c TetrisConfig) Validate() error {
	t := c.Timing
	if t.InitialDelayMS <= 0 {
		return fmt.Errorf("config: initial_delay_ms must be positive, got %d: %w", t.InitialDelayMS, ErrInvalidConfig)
	}
	if t.DelayFactor <= 0 || t.DelayFactor >= 1 {
		return fmt.Errorf("config: delay_factor must be in (0, 1), got %g: %w", t.DelayFactor, ErrInvalidConfig)
	}
	if t.MinDelayMS < 0 || t.MinDelayMS > t.InitialDelayMS {
		return fmt.Errorf("config: min_delay_ms must be in [0, initial_delay_ms], got %d: %w", t.MinDelayMS, ErrInvalidConfig)
	}
	if t.LevelUp <= 0 {
		return fmt.Errorf("config: level_up must be positive, got %d: %w", t.LevelUp, ErrInvalidConfig)
	}

	rects := c.Layout.Rects()
	names := []string{"playfield", "help", "score", "next", "game_over"}
	for _, name := range names {
		if r := rects[name]; r.X < 1 || r.Y < 1 {
			return fmt.Errorf("config: %s panel must start at column/row >= 1: %w", name, ErrInvalidConfig)
		}
	}
	for i, a := range names {
		for _, b := range names[i+1:] {
			if rects[a].Intersects(rects[b]) {
				return fmt.Errorf("config: %s and %s panels overlap: %w", a, b, ErrInvalidConfig)
			}
		}
	}
	return nil
}
