package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rb-plan/TermClock/internal/config"
	"github.com/rb-plan/TermClock/internal/habitat"
	"github.com/rb-plan/TermClock/internal/source"
	"github.com/rb-plan/TermClock/internal/ui"
)

// Options configure the TermClock application.
type Options struct {
	Settings config.Settings
	Log      *slog.Logger // nil discards diagnostics
}

// Run boots the TermClock TUI and blocks until the user quits or the context
// is cancelled. Cancellation counts as a clean shutdown.
func Run(ctx context.Context, opts Options) error {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg := opts.Settings

	tempSrc, todoSrc, err := buildSources(cfg)
	if err != nil {
		return err
	}

	m := ui.New(ui.Options{
		Context:     ctx,
		Settings:    &cfg,
		Temperature: tempSrc,
		Todos:       todoSrc,
		Log:         log,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if !cfg.UseRemote() && cfg.TodosFile != "" {
		watchErr := source.WatchFile(ctx, cfg.TodosFile,
			func() { p.Send(ui.TodosChangedMsg{}) },
			func(err error) { log.Warn("todos file watch error", "error", err) },
		)
		if watchErr != nil {
			// The list still refreshes on its poll interval.
			log.Warn("todos file watch unavailable", "error", watchErr)
		} else {
			log.Info("watching todos file", "path", cfg.TodosFile)
		}
	}

	log.Info("termclock started",
		"remote", cfg.UseRemote(),
		"temp_interval", cfg.TempInterval(),
		"todo_interval", cfg.TodoInterval(),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			log.Info("termclock stopped", "reason", "context cancelled")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info("termclock stopped")
	return nil
}

// buildSources picks the data providers: the habitat API when a base URL is
// configured, otherwise the public weather service for temperature and the
// optional local file for todos.
func buildSources(cfg config.Settings) (source.Temperature, source.Todos, error) {
	if cfg.UseRemote() {
		client, err := habitat.NewClient(cfg.APIBaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("init habitat client: %w", err)
		}
		temp := source.HabitatTemperature{Client: client, DeviceCode: cfg.DeviceCode}
		todos := source.HabitatTodos{Client: client}
		return temp, todos, nil
	}

	var todos source.Todos
	if cfg.TodosFile != "" {
		todos = source.FileTodos{Path: cfg.TodosFile}
	}
	return source.NewWttr(), todos, nil
}
