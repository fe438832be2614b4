package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/turbinewash/internal/content"
)

// SelectQuadrantMsg is sent by every quadrant button, on the grid and in the pills alike.
type SelectQuadrantMsg struct {
	Quadrant content.QuadrantID
}

func SelectQuadrant(quadrant content.QuadrantID) tea.Cmd {
	return func() tea.Msg { return SelectQuadrantMsg{Quadrant: quadrant} }
}

const ClearMessageTimeout = time.Second * 10

// ClearStatusMessageMsg clears the status message it was scheduled for. A newer message bumps the
// tag so older timers leave it alone.
type ClearStatusMessageMsg struct {
	Tag int
}

func ClearErrorAfter(t time.Duration, tag int) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{Tag: tag}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}
