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

// PillsModel is the row of quadrant buttons replacing the grid in the detail view.
type PillsModel struct {
	id        string
	entries   []content.QuadrantEntry
	viewState model.ViewState
}

func NewPillsModel(entries []content.QuadrantEntry) PillsModel {
	return PillsModel{id: zone.NewPrefix(), entries: entries}
}

func (m PillsModel) Init() tea.Cmd {
	return nil
}

func (m PillsModel) Update(msg tea.Msg) (PillsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.MouseMsg:
		if !m.viewState.View.Detail || m.viewState.Page != model.PageMain {
			return m, nil
		}

		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for _, entry := range m.entries {
			if zone.Get(m.id + string(entry.ID)).InBounds(msg) {
				return m, command.SelectQuadrant(entry.ID)
			}
		}
	}

	return m, nil
}

func (m PillsModel) View() string {
	if !m.viewState.View.Detail {
		return ""
	}

	pills := make([]string, len(m.entries))
	for idx, entry := range m.entries {
		style := styles.PillInactive
		if m.viewState.View.IsActive(entry.ID) {
			style = styles.PillActive
		}

		pills[idx] = zone.Mark(m.id+string(entry.ID), style.Render(fmt.Sprintf("%d %s", idx+1, entry.Title)))
	}

	return lipgloss.NewStyle().MaxWidth(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, pills...))
}
