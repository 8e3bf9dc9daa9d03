package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/termtris/internal/core"
)

func feedAll(d *KeyDecoder, input string) []core.Command {
	var cmds []core.Command
	for i := 0; i < len(input); i++ {
		if cmd := d.Feed(input[i]); cmd != core.CommandNone {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func TestKeyDecoderSingleBytes(t *testing.T) {
	tests := []struct {
		name     string
		key      byte
		expected core.Command
	}{
		{"ctrl+c", 3, core.CommandQuit},
		{"q", 'q', core.CommandQuit},
		{"Q", 'Q', core.CommandQuit},
		{"a", 'a', core.CommandLeft},
		{"A", 'A', core.CommandLeft},
		{"d", 'd', core.CommandRight},
		{"D", 'D', core.CommandRight},
		{"s", 's', core.CommandRotate},
		{"S", 'S', core.CommandRotate},
		{"space", ' ', core.CommandDrop},
		{"h", 'h', core.CommandToggleHelp},
		{"n", 'n', core.CommandToggleNext},
		{"c", 'c', core.CommandToggleColor},
		{"C", 'C', core.CommandToggleColor},
		{"unknown", 'x', core.CommandNone},
		{"digit", '7', core.CommandNone},
		{"escape alone", keyEscape, core.CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewKeyDecoder()
			assert.Equal(t, tc.expected, d.Feed(tc.key))
		})
	}
}

func TestKeyDecoderArrowKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []core.Command
	}{
		{"up rotates", "\x1b[A", []core.Command{core.CommandRotate}},
		{"right", "\x1b[C", []core.Command{core.CommandRight}},
		{"left", "\x1b[D", []core.Command{core.CommandLeft}},
		{"down is ignored", "\x1b[B", nil},
		{"sequence then key", "\x1b[Dd", []core.Command{core.CommandLeft, core.CommandRight}},
		{"repeated arrows", "\x1b[C\x1b[C\x1b[A", []core.Command{core.CommandRight, core.CommandRight, core.CommandRotate}},
		{"lowercase after bracket is not a letter key", "\x1b[a", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, feedAll(NewKeyDecoder(), tc.input))
		})
	}
}

func TestKeyDecoderUppercaseOutsideSequence(t *testing.T) {
	d := NewKeyDecoder()
	// Without the ESC [ prefix, A is the left key and C toggles color
	assert.Equal(t, core.CommandLeft, d.Feed('A'))
	assert.Equal(t, core.CommandToggleColor, d.Feed('C'))
}
