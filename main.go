package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/sumant1122/xtop/internal/app"
	"github.com/sumant1122/xtop/internal/config"
	"github.com/sumant1122/xtop/internal/monitor"
	"github.com/sumant1122/xtop/internal/theme"
	"github.com/sumant1122/xtop/internal/ui"
)

var errNotTerminal = errors.New("xtop: stdout is not a terminal")

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if !isTerminal(os.Stdout.Fd()) {
		return errNotTerminal
	}

	cfg := config.Load()
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	catalog, err := theme.Builtin()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	state := app.New(monitor.NewCollector(logger), catalog, cfg.Theme, logger)
	logger.Info("starting", "theme", state.ThemeName(), "themes", catalog.Len())

	p := tea.NewProgram(ui.NewModel(ctx, state), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("xtop: %w", err)
	}
	logger.Info("exiting", "ticks", state.Tick())
	return nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newLogger writes text logs to cfg.LogFile, or discards them when no file
// is configured. The screen belongs to the dashboard.
func newLogger(cfg config.Config) (*slog.Logger, func() error, error) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("xtop: open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f.Close, nil
}
