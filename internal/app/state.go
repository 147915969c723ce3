// Package app holds the dashboard state: the latest sample, its history,
// and the user's theme and layout selection.
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/sumant1122/xtop/internal/layout"
	"github.com/sumant1122/xtop/internal/monitor"
	"github.com/sumant1122/xtop/internal/theme"
)

// State is owned by the UI loop and is not safe for concurrent use.
type State struct {
	provider monitor.Provider
	log      *slog.Logger

	history  *monitor.History
	snapshot *monitor.Snapshot
	tick     float64

	catalog    *theme.Catalog
	themeIndex int
	mode       layout.Mode
	quit       bool
}

// New starts in the Dashboard layout with the theme named initialTheme,
// or the first theme of the catalog when that name is unknown.
func New(provider monitor.Provider, catalog *theme.Catalog, initialTheme string, log *slog.Logger) *State {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if catalog == nil {
		catalog = theme.NewCatalog()
	}
	if _, ok := catalog.Lookup(initialTheme); !ok && catalog.Len() > 0 {
		log.Debug("theme not found, using first", "theme", initialTheme, "fallback", catalog.Names()[0])
	}
	return &State{
		provider:   provider,
		log:        log,
		history:    monitor.NewHistory(),
		snapshot:   &monitor.Snapshot{},
		catalog:    catalog,
		themeIndex: catalog.IndexOf(initialTheme),
		mode:       layout.Dashboard,
	}
}

// Advance samples the provider once, bumps the tick and records history.
// A failed sample keeps the previous snapshot; errors are only logged.
func (s *State) Advance(ctx context.Context) {
	if s.provider != nil {
		snap, err := s.provider.Refresh(ctx)
		if err != nil {
			s.log.Debug("refresh", "tick", s.tick+1, "partial", snap != nil, "err", err)
		}
		if snap != nil {
			s.snapshot = snap
		}
	}
	s.tick++
	s.history.Append(s.snapshot, s.tick)
}

// CycleTheme moves to the next theme, or the previous one when forward is
// false, wrapping at both ends.
func (s *State) CycleTheme(forward bool) {
	n := s.catalog.Len()
	if n == 0 {
		return
	}
	if forward {
		s.themeIndex = (s.themeIndex + 1) % n
	} else {
		s.themeIndex = (s.themeIndex - 1 + n) % n
	}
}

func (s *State) CycleLayout() {
	s.mode = s.mode.Next()
}

func (s *State) Quit() {
	s.quit = true
}

func (s *State) ShouldQuit() bool {
	return s.quit
}

// Snapshot is the latest sample; never nil.
func (s *State) Snapshot() *monitor.Snapshot {
	return s.snapshot
}

func (s *State) History() *monitor.History {
	return s.history
}

func (s *State) Tick() float64 {
	return s.tick
}

func (s *State) Mode() layout.Mode {
	return s.mode
}

// Theme returns the selected theme. With an empty catalog it is the zero
// Theme, which renders without colors.
func (s *State) Theme() theme.Theme {
	t, _ := s.catalog.At(s.themeIndex)
	return t
}

// ThemeName is the selected theme's name, or "" with an empty catalog.
func (s *State) ThemeName() string {
	return s.Theme().Name
}
