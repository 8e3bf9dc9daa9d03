package tui

import (
	"github.com/vovakirdan/termtris/internal/core"
)

const keyEscape = 0x1b

// KeyDecoder translates raw terminal bytes to game commands.
// It remembers the last three bytes so that arrow-key escape sequences
// (ESC [ A, ESC [ C, ESC [ D) are recognized when their final byte arrives.
type KeyDecoder struct {
	history [3]byte // history[0] is the newest byte
}

// NewKeyDecoder creates a decoder with an empty history.
func NewKeyDecoder() *KeyDecoder {
	return &KeyDecoder{}
}

// Feed consumes one input byte and returns the command it completes,
// or CommandNone if the byte is ignored or only starts a sequence.
func (d *KeyDecoder) Feed(b byte) core.Command {
	d.history[2], d.history[1], d.history[0] = d.history[1], d.history[0], b

	if d.history[2] == keyEscape && d.history[1] == '[' {
		switch b {
		case 'A':
			return core.CommandRotate
		case 'C':
			return core.CommandRight
		case 'D':
			return core.CommandLeft
		}
		return core.CommandNone
	}

	switch toLower(b) {
	case 3, 'q': // Ctrl+C arrives as a byte in raw mode
		return core.CommandQuit
	case 'a':
		return core.CommandLeft
	case 'd':
		return core.CommandRight
	case 's':
		return core.CommandRotate
	case ' ':
		return core.CommandDrop
	case 'h':
		return core.CommandToggleHelp
	case 'n':
		return core.CommandToggleNext
	case 'c':
		return core.CommandToggleColor
	}
	return core.CommandNone
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}
