package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/turbinewash/internal/config"
	"github.com/leighmacdonald/turbinewash/internal/content"
	"github.com/leighmacdonald/turbinewash/internal/ui/pages"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

// Options carries the details shown on the help page.
type Options struct {
	Build      pages.BuildInfo
	ConfigPath string
	LogPath    string
}

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, store *content.Store, userConfig config.Config, opts Options) *UI {
	zone.NewGlobal()

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if userConfig.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion(), tea.WithMouseAllMotion())
	}

	if userConfig.FPS > 0 {
		programOpts = append(programOpts, tea.WithFPS(userConfig.FPS))
	}

	return &UI{
		program: tea.NewProgram(newRootModel(store, userConfig, opts), programOpts...),
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
