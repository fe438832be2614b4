package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/turbinewash/internal/ui/command"
	"github.com/leighmacdonald/turbinewash/internal/ui/input"
	"github.com/leighmacdonald/turbinewash/internal/ui/model"
	"github.com/leighmacdonald/turbinewash/internal/ui/styles"
)

type StatusBarModel struct {
	viewState   model.ViewState
	statusMsg   string
	statusError bool
	clearTag    int
	version     string
}

func NewStatusBarModel(version string) StatusBarModel {
	return StatusBarModel{version: version}
}

func (m StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m StatusBarModel) Update(msg tea.Msg) (StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err
		m.clearTag++

		return m, command.ClearErrorAfter(command.ClearMessageTimeout, m.clearTag)
	case command.ClearStatusMessageMsg:
		if msg.Tag != m.clearTag {
			return m, nil
		}

		m.statusError = false
		m.statusMsg = ""
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

// Render draws the bar. section and percent describe the reading position of an open document.
func (m StatusBarModel) Render(section string, percent float64) string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
	}

	if m.viewState.View.Detail {
		if section != "" {
			args = append(args, styles.StatusSection.Render(section))
		}

		args = append(args, styles.StatusSection.Render(fmt.Sprintf("%3.0f%%", percent*100)))
	}

	args = append(args, m.status())

	return lipgloss.NewStyle().Width(m.viewState.Width).MaxWidth(m.viewState.Width).Background(styles.Black).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m StatusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}

	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}
