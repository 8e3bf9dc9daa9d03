package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termtris/internal/storage"
)

func testScores(n int) []storage.ScoreEntry {
	created := time.Date(2026, time.March, 14, 9, 26, 0, 0, time.UTC)
	scores := make([]storage.ScoreEntry, n)
	for i := range scores {
		scores[i] = storage.ScoreEntry{
			ID:        int64(i + 1),
			Score:     100 - i,
			Lines:     20 - i,
			Level:     3,
			CreatedAt: created,
		}
	}
	return scores
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return sm, cmd
}

func TestScoreboardRows(t *testing.T) {
	m := NewScoreboardModel(testScores(3), 80, 24)

	rows := m.table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "100", rows[0][1])
	assert.Equal(t, "20", rows[0][2])
	assert.Equal(t, "3", rows[0][3])
	assert.Equal(t, "Mar 14 09:26", rows[0][4])
	assert.Equal(t, "#3", rows[2][0])
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	assert.Contains(t, m.View(), "No scores recorded yet.")
}

func TestScoreboardQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", keyRunes("q")},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, cmd := update(t, NewScoreboardModel(testScores(2), 80, 24), tc.msg)

			assert.True(t, m.IsQuitting())
			require.NotNil(t, cmd)
			_, ok := cmd().(tea.QuitMsg)
			assert.True(t, ok)
			assert.Empty(t, m.View())
		})
	}
}

func TestScoreboardNavigation(t *testing.T) {
	m := NewScoreboardModel(testScores(10), 80, 24)
	assert.Equal(t, 0, m.Cursor())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor())

	m, _ = update(t, m, keyRunes("G"))
	assert.Equal(t, 9, m.Cursor())

	m, _ = update(t, m, keyRunes("g"))
	assert.Equal(t, 0, m.Cursor())
}

func TestScoreboardHelpToggle(t *testing.T) {
	m := NewScoreboardModel(testScores(1), 80, 24)
	assert.False(t, m.help.ShowAll)

	m, _ = update(t, m, keyRunes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "last")
}

func TestScoreboardResizeKeepsCursor(t *testing.T) {
	m := NewScoreboardModel(testScores(10), 80, 24)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 2, m.Cursor())
	assert.Len(t, m.table.Rows(), 10)
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, "toolong", centerText("toolong", 4))
	assert.Equal(t, "  a\n  b", centerText("a\nb", 5))
}
