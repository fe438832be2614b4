package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/turbinewash/internal/config"
	"github.com/leighmacdonald/turbinewash/internal/content"
	"github.com/leighmacdonald/turbinewash/internal/ui"
	"github.com/leighmacdonald/turbinewash/internal/ui/command"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing messages between different systems.
type App struct {
	ui            UI
	config        config.Config
	configUpdates chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call
// Start().
func NewApp(conf config.Config, configUpdates chan config.Config) *App {
	return &App{
		config:        conf,
		configUpdates: configUpdates,
	}
}

// Start runs the ui and the config forwarder until the ui exits or ctx is cancelled.
func (app *App) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(runCtx)

	group.Go(func() error {
		// Leaving the ui stops everything else.
		defer cancel()

		return app.ui.Run()
	})

	group.Go(func() error {
		app.configForwarder(groupCtx)

		return nil
	})

	return group.Wait()
}

// configForwarder sends reloaded configs to the ui so it can re-theme the open page.
func (app *App) configForwarder(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			if conf.ContentPath != app.config.ContentPath {
				slog.Warn("content_path changes apply on restart", slog.String("content_path", conf.ContentPath))
			}

			app.config = conf
			app.ui.Send(conf)
			app.ui.Send(command.StatusMsg{Message: "Config reloaded"})
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context, store *content.Store, opts ui.Options) UI {
	if app.ui == nil {
		app.ui = ui.New(ctx, store, app.config, opts)
	}

	return app.ui
}
