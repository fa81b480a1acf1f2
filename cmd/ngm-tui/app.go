package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nextgen-manager/ngm-tui/internal/config"
	"github.com/nextgen-manager/ngm-tui/internal/shell"
	"github.com/nextgen-manager/ngm-tui/internal/ui"
	"github.com/nextgen-manager/ngm-tui/internal/ui/command"
	"github.com/nextgen-manager/ngm-tui/internal/ui/pages"
	"golang.org/x/sync/errgroup"
)

// fragmentBuffer bounds how many location changes may queue up before the history starts
// dropping notifications for the ui.
const fragmentBuffer = 16

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing messages between different systems.
type App struct {
	ui            UI
	config        config.Config
	history       *shell.History
	configUpdates chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call Run().
func NewApp(conf config.Config, history *shell.History, configUpdates chan config.Config) *App {
	return &App{
		config:        conf,
		history:       history,
		configUpdates: configUpdates,
	}
}

// Run starts the background goroutines and blocks until the ui exits or the context is
// cancelled. The history subscription lives exactly as long as the ui.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fragments := make(chan string, fragmentBuffer)
	release := app.history.Subscribe(fragments)
	defer release()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		app.fragmentUpdater(ctx, fragments)

		return nil
	})

	group.Go(func() error {
		app.configUpdater(ctx)

		return nil
	})

	group.Go(func() error {
		defer cancel()

		return app.ui.Run()
	})

	return group.Wait()
}

// fragmentUpdater forwards location changes made through history navigation or the location
// prompt to the ui.
func (app *App) fragmentUpdater(ctx context.Context, fragments <-chan string) {
	for {
		select {
		case fragment := <-fragments:
			app.ui.Send(command.FragmentChangedMsg{Fragment: fragment})
		case <-ctx.Done():
			return
		}
	}
}

// configUpdater sends config file reloads to the ui.
func (app *App) configUpdater(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			slog.Debug("Forwarding config update", slog.String("api_url", conf.APIURL))
			app.config = conf
			app.ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context, session *shell.Session, newClient ui.ClientFactory, configPath string) UI {
	if app.ui == nil {
		app.ui = ui.New(
			ctx,
			app.config,
			app.history,
			session,
			newClient,
			pages.BuildInfo{Version: BuildVersion, Commit: BuildCommit, Date: BuildDate},
			configPath,
			config.Path(config.DefaultLogName))
	}

	return app.ui
}
