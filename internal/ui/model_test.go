package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumant1122/xtop/internal/layout"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok, "expected Model type")
	return updated, cmd
}

func TestModelThemeKeys(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	m := NewModel(context.Background(), s)
	start := s.ThemeName()

	m, _ = update(t, m, runeKey('t'))
	assert.NotEqual(t, start, s.ThemeName())

	m, _ = update(t, m, runeKey('T'))
	assert.Equal(t, start, s.ThemeName())
}

func TestModelLayoutKey(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	m := NewModel(context.Background(), s)

	want := []layout.Mode{layout.Vertical, layout.ProcessFocus, layout.Dashboard}
	for _, mode := range want {
		m, _ = update(t, m, runeKey('l'))
		assert.Equal(t, mode, s.Mode())
	}
}

func TestModelIgnoresOtherKeys(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	m := NewModel(context.Background(), s)
	theme, mode := s.ThemeName(), s.Mode()

	for _, msg := range []tea.KeyMsg{runeKey('x'), runeKey('L'), {Type: tea.KeyEnter}, {Type: tea.KeyEsc}} {
		var cmd tea.Cmd
		m, cmd = update(t, m, msg)
		assert.Nil(t, cmd)
	}
	assert.Equal(t, theme, s.ThemeName())
	assert.Equal(t, mode, s.Mode())
	assert.False(t, s.ShouldQuit())
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		s := newTestState(t, sampleSnapshot())
		m := NewModel(context.Background(), s)

		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		assert.True(t, s.ShouldQuit())
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModelTick(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	m := NewModel(context.Background(), s)
	before := s.Tick()

	m, cmd := update(t, m, tickMsg{})
	assert.Equal(t, before+1, s.Tick())
	assert.NotNil(t, cmd, "next tick scheduled")

	_, cmd = update(t, m, sampleMsg{})
	assert.Equal(t, before+2, s.Tick())
	assert.Nil(t, cmd)
}

func TestModelView(t *testing.T) {
	s := newTestState(t, sampleSnapshot())
	m := NewModel(context.Background(), s)
	assert.Equal(t, "", m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 30)
	assert.Contains(t, view, "Layout: Dashboard")
}
