package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/nextgen-manager/ngm-tui/internal/config"
	"github.com/nextgen-manager/ngm-tui/internal/shell"
	"github.com/nextgen-manager/ngm-tui/internal/ui/pages"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, conf config.Config, history *shell.History, session *shell.Session,
	newClient ClientFactory, build pages.BuildInfo, configPath string, logPath string,
) *UI {
	zone.NewGlobal()

	fps := conf.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	return &UI{
		program: tea.NewProgram(
			newRootModel(ctx, conf, history, session, newClient, build, configPath, logPath),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(fps)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
