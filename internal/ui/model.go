package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sumant1122/xtop/internal/app"
	"github.com/sumant1122/xtop/internal/layout"
)

type tickMsg time.Time

// sampleMsg requests one refresh outside the tick schedule.
type sampleMsg struct{}

const refreshInterval = 1000 * time.Millisecond

// Model drives an app.State from Bubble Tea. Only Update touches the state.
type Model struct {
	ctx    context.Context
	state  *app.State
	keys   keyMap
	width  int
	height int
}

func NewModel(ctx context.Context, state *app.State) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctx:   ctx,
		state: state,
		keys:  keys,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(sampleCmd(), tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.state.Quit()
		case key.Matches(msg, m.keys.NextTheme):
			m.state.CycleTheme(true)
		case key.Matches(msg, m.keys.PrevTheme):
			m.state.CycleTheme(false)
		case key.Matches(msg, m.keys.Layout):
			m.state.CycleLayout()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case sampleMsg:
		m.state.Advance(m.ctx)
	case tickMsg:
		m.state.Advance(m.ctx)
		if !m.state.ShouldQuit() {
			return m, tick()
		}
	}

	if m.state.ShouldQuit() {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return Render(m.state, layout.Compute(m.state.Mode(), m.width, m.height))
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func sampleCmd() tea.Cmd {
	return func() tea.Msg { return sampleMsg{} }
}
