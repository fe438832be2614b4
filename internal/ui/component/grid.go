package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/turbinewash/internal/content"
	"github.com/leighmacdonald/turbinewash/internal/ui/command"
	"github.com/leighmacdonald/turbinewash/internal/ui/model"
	"github.com/leighmacdonald/turbinewash/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// GridModel is the 2x2 quadrant selector shown while no quadrant is open.
type GridModel struct {
	id        string
	entries   []content.QuadrantEntry
	hovered   content.QuadrantID
	viewState model.ViewState
}

func NewGridModel(entries []content.QuadrantEntry) GridModel {
	return GridModel{id: zone.NewPrefix(), entries: entries}
}

func (m GridModel) Init() tea.Cmd {
	return nil
}

func (m GridModel) Update(msg tea.Msg) (GridModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.MouseMsg:
		if m.viewState.View.Detail || m.viewState.Page != model.PageMain {
			return m, nil
		}

		var over content.QuadrantID
		for _, entry := range m.entries {
			if zone.Get(m.id + string(entry.ID)).InBounds(msg) {
				over = entry.ID

				break
			}
		}

		if msg.Action == tea.MouseActionMotion {
			m.hovered = over

			return m, nil
		}

		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && over != "" {
			return m, command.SelectQuadrant(over)
		}
	}

	return m, nil
}

func (m GridModel) View() string {
	if m.viewState.Width == 0 || m.viewState.Lower <= 0 {
		return ""
	}

	// Two boxes per row, each one including its border.
	boxWidth := max(12, m.viewState.Width/2-1)
	boxHeight := max(5, m.viewState.Lower/2)

	var boxes []string
	for idx, entry := range m.entries {
		style := styles.QuadrantBox
		switch {
		case m.viewState.View.IsActive(entry.ID):
			style = styles.QuadrantBoxActive
		case entry.ID == m.hovered:
			style = styles.QuadrantBoxHover
		}

		body := lipgloss.JoinVertical(lipgloss.Center,
			styles.QuadrantKey.Render(fmt.Sprintf("[%d]", idx+1)),
			styles.QuadrantTitle.Render(entry.Title),
			styles.QuadrantSubtitle.Render(entry.Subtitle))

		boxes = append(boxes, zone.Mark(m.id+string(entry.ID),
			style.Width(boxWidth-2).Height(boxHeight-2).Render(body)))
	}

	var rows []string
	for start := 0; start < len(boxes); start += 2 {
		end := min(start+2, len(boxes))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes[start:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
