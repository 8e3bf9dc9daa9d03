package core

import (
	"io"
	"strconv"
	"strings"
)

// Escape sequences understood by ANSI terminals.
const (
	escClearScreen = "\x1b[2J"
	escShowCursor  = "\x1b[?25h"
	escHideCursor  = "\x1b[?25l"
	escBold        = "\x1b[1m"
	escReset       = "\x1b[0m"
)

// ScreenBuffer accumulates drawing operations as a flat stream of text and
// escape sequences. Nothing reaches the terminal until Flush is called, so a
// whole command can be drawn and emitted as a single write.
type ScreenBuffer struct {
	out     io.Writer
	buf     strings.Builder
	noColor bool
}

// NewScreenBuffer creates a buffer that flushes into out.
func NewScreenBuffer(out io.Writer) *ScreenBuffer {
	return &ScreenBuffer{out: out}
}

// MoveTo positions the cursor. Row and column are 1-indexed.
func (s *ScreenBuffer) MoveTo(row, col int) {
	s.buf.WriteString("\x1b[")
	s.buf.WriteString(strconv.Itoa(row))
	s.buf.WriteByte(';')
	s.buf.WriteString(strconv.Itoa(col))
	s.buf.WriteByte('H')
}

// Print appends literal text at the current cursor position.
func (s *ScreenBuffer) Print(text string) {
	s.buf.WriteString(text)
}

// PrintAt moves to column x, row y and prints text there.
func (s *ScreenBuffer) PrintAt(x, y int, text string) {
	s.MoveTo(y, x)
	s.buf.WriteString(text)
}

// SetFg sets the foreground color. No-op while color is disabled.
func (s *ScreenBuffer) SetFg(c Color) {
	if s.noColor {
		return
	}
	s.buf.WriteString("\x1b[3")
	s.buf.WriteString(strconv.Itoa(int(c.code())))
	s.buf.WriteByte('m')
}

// SetBg sets the background color. No-op while color is disabled.
func (s *ScreenBuffer) SetBg(c Color) {
	if s.noColor {
		return
	}
	s.buf.WriteString("\x1b[4")
	s.buf.WriteString(strconv.Itoa(int(c.code())))
	s.buf.WriteByte('m')
}

// Bold turns on the bold attribute.
func (s *ScreenBuffer) Bold() {
	s.buf.WriteString(escBold)
}

// Reset clears all attributes and colors.
func (s *ScreenBuffer) Reset() {
	s.buf.WriteString(escReset)
}

// ClearScreen erases the whole terminal.
func (s *ScreenBuffer) ClearScreen() {
	s.buf.WriteString(escClearScreen)
}

// ShowCursor makes the terminal cursor visible.
func (s *ScreenBuffer) ShowCursor() {
	s.buf.WriteString(escShowCursor)
}

// HideCursor hides the terminal cursor.
func (s *ScreenBuffer) HideCursor() {
	s.buf.WriteString(escHideCursor)
}

// SetColorEnabled turns color output on or off.
func (s *ScreenBuffer) SetColorEnabled(enabled bool) {
	s.noColor = !enabled
}

// ColorEnabled reports whether color sequences are emitted.
func (s *ScreenBuffer) ColorEnabled() bool {
	return !s.noColor
}

// Pending returns the buffered output that has not been flushed yet.
func (s *ScreenBuffer) Pending() string {
	return s.buf.String()
}

// Len returns the number of buffered bytes.
func (s *ScreenBuffer) Len() int {
	return s.buf.Len()
}

// Flush writes the accumulated buffer with a single Write call and clears it.
// The buffer is cleared even when the write fails.
func (s *ScreenBuffer) Flush() error {
	if s.buf.Len() == 0 {
		return nil
	}
	data := s.buf.String()
	s.buf.Reset()
	_, err := io.WriteString(s.out, data)
	return err
}
