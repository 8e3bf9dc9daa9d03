package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
)

func TestRenderSummary(t *testing.T) {
	tests := []struct {
		name    string
		stats   tetris.Stats
		best    int
		want    []string
		notWant []string
	}{
		{
			name:    "new high score",
			stats:   tetris.Stats{Score: 42, Lines: 17, Level: 3},
			best:    42,
			want:    []string{"GAME OVER", "Score:", "42", "17", "Best:", "New high score!"},
			notWant: nil,
		},
		{
			name:    "below best",
			stats:   tetris.Stats{Score: 5, Lines: 3, Level: 1},
			best:    90,
			want:    []string{"Best:", "90"},
			notWant: []string{"New high score!"},
		},
		{
			name:    "no database",
			stats:   tetris.Stats{Score: 5, Lines: 3, Level: 1},
			best:    -1,
			want:    []string{"Level:"},
			notWant: []string{"Best:", "New high score!"},
		},
		{
			name:    "empty game is never a record",
			stats:   tetris.Stats{Level: 1},
			best:    0,
			want:    []string{"Best:"},
			notWant: []string{"New high score!"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := RenderSummary(tc.stats, tc.best)
			for _, s := range tc.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	assert.Equal(t, colorStyles[core.ColorWhite].Render("x"), styleFor(core.Color(0)).Render("x"))
}
