package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/turbinewash/internal/config"
	"github.com/leighmacdonald/turbinewash/internal/content"
	"github.com/leighmacdonald/turbinewash/internal/ui/command"
	"github.com/leighmacdonald/turbinewash/internal/ui/component"
	"github.com/leighmacdonald/turbinewash/internal/ui/input"
	"github.com/leighmacdonald/turbinewash/internal/ui/model"
	"github.com/leighmacdonald/turbinewash/internal/ui/pages"
	"github.com/leighmacdonald/turbinewash/internal/ui/styles"
	"github.com/leighmacdonald/turbinewash/internal/view"
	zone "github.com/lrstanley/bubblezone"
)

const appTitle = "Gas Turbine Waterwashing"

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	controller    *view.Controller
	viewState     model.ViewState
	gridModel     component.GridModel
	pillsModel    component.PillsModel
	documentModel component.DocumentModel
	statusModel   component.StatusBarModel
	helpModel     pages.Help
	headerHeight  int
	pillsHeight   int
	footerHeight  int
}

func newRootModel(store *content.Store, userConfig config.Config, opts Options) rootModel {
	entries := store.Entries()

	return rootModel{
		controller:    view.NewController(store),
		viewState:     model.ViewState{Page: model.PageMain},
		gridModel:     component.NewGridModel(entries),
		pillsModel:    component.NewPillsModel(entries),
		documentModel: component.NewDocumentModel(store, userConfig),
		statusModel:   component.NewStatusBarModel(opts.Build.Version),
		helpModel:     pages.NewHelp(opts.Build, opts.ConfigPath, opts.LogPath, userConfig.ContentPath, store),
		headerHeight:  2,
		pillsHeight:   1,
		footerHeight:  1,
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("turbinewash"),
		m.gridModel.Init(),
		m.pillsModel.Init(),
		m.documentModel.Init(),
		m.statusModel.Init(),
		m.helpModel.Init(),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if !m.isInitialized() {
		if _, ok := inMsg.(tea.WindowSizeMsg); !ok {
			return m, nil
		}
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Width = msg.Width
		m.viewState.Height = msg.Height

		return m.propagate(m.layoutViewState())
	case command.SelectQuadrantMsg:
		return m.selectQuadrant(msg.Quadrant)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			if m.viewState.Page == model.PageHelp {
				m.viewState.Page = model.PageMain
			} else {
				m.viewState.Page = model.PageHelp
			}

			return m.propagate(m.viewState)
		case key.Matches(msg, input.Default.Back):
			if m.viewState.Page == model.PageHelp {
				m.viewState.Page = model.PageMain

				return m.propagate(m.viewState)
			}

			if transition, changed := m.controller.Reset(); changed {
				return m.applyTransition(transition)
			}

			return m, nil
		}

		if m.viewState.Page == model.PageMain {
			for quadrant, binding := range quadrantKeys() {
				if key.Matches(msg, binding) {
					return m.selectQuadrant(quadrant)
				}
			}
		}
	}

	return m.propagate(inMsg)
}

func quadrantKeys() map[content.QuadrantID]key.Binding {
	return map[content.QuadrantID]key.Binding{
		content.Online:    input.Default.Online,
		content.Offline:   input.Default.Offline,
		content.Chemical:  input.Default.Chemical,
		content.Deionised: input.Default.Deionised,
	}
}

func (m rootModel) selectQuadrant(quadrant content.QuadrantID) (tea.Model, tea.Cmd) {
	return m.applyTransition(m.controller.Select(quadrant))
}

func (m rootModel) applyTransition(transition view.Transition) (tea.Model, tea.Cmd) {
	slog.Debug("View transition", slog.String("kind", transition.Kind.String()),
		slog.String("from", string(transition.From.Selected)), slog.String("to", string(transition.To.Selected)))

	m.viewState.View = transition.To

	return m.propagate(m.layoutViewState())
}

// layoutViewState splits the window between the header, the content region and the footer. The
// quadrant pills only take space in the detail view.
func (m rootModel) layoutViewState() model.ViewState {
	upper := m.headerHeight
	if m.viewState.View.Detail {
		upper += m.pillsHeight
	}

	m.viewState.Upper = upper
	m.viewState.Lower = max(1, m.viewState.Height-upper-m.footerHeight)

	return m.viewState
}

func (m rootModel) View() string {
	width := m.viewState.Width

	header := lipgloss.JoinVertical(lipgloss.Center,
		styles.AppTitle.Render(ansi.Truncate(styles.IconWater+" "+appTitle, width, "…")),
		styles.Instruction.Render(ansi.Truncate(m.controller.Instruction(), width, "…")))
	hdr := styles.HeaderContainerStyle.Width(width).Render(header)

	var body string
	switch m.viewState.Page {
	case model.PageHelp:
		body = m.helpModel.View()
	case model.PageMain:
		if m.viewState.View.Detail {
			body = lipgloss.JoinVertical(lipgloss.Left, m.pillsModel.View(), m.documentModel.View())
		} else {
			body = m.gridModel.View()
		}
	}

	contentHeight := max(0, m.viewState.Height-m.headerHeight-m.footerHeight)
	ctr := styles.ContentContainerStyle.Height(contentHeight).MaxHeight(contentHeight).Render(body)

	ftr := m.statusModel.Render(m.documentModel.Location())

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, hdr, ctr, ftr))
}

func (m rootModel) isInitialized() bool {
	return m.viewState.Height != 0 && m.viewState.Width != 0
}

func (m rootModel) propagate(msg tea.Msg, _ ...tea.Cmd) (tea.Model, tea.Cmd) {
	if viewState, ok := msg.(model.ViewState); ok {
		m.viewState = viewState
	}

	cmds := make([]tea.Cmd, 5)

	m.gridModel, cmds[0] = m.gridModel.Update(msg)
	m.pillsModel, cmds[1] = m.pillsModel.Update(msg)
	m.documentModel, cmds[2] = m.documentModel.Update(msg)
	m.statusModel, cmds[3] = m.statusModel.Update(msg)
	m.helpModel, cmds[4] = m.helpModel.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/turbinewash/turbinewash.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case tea.MouseMsg:
		break
	case component.ScrollFrameMsg:
		break
	case command.ClearStatusMessageMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
