package pages

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/turbinewash/internal/content"
	"github.com/leighmacdonald/turbinewash/internal/ui/input"
	"github.com/leighmacdonald/turbinewash/internal/ui/model"
	"github.com/leighmacdonald/turbinewash/internal/ui/styles"
)

type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewHelp(build BuildInfo, configPath string, logPath string, contentPath string, store *content.Store) Help {
	if contentPath == "" {
		contentPath = "embedded"
	}

	return Help{
		helpView:    help.New(),
		build:       build,
		configPath:  configPath,
		logPath:     logPath,
		contentPath: contentPath,
		store:       store,
	}
}

type Help struct {
	helpView    help.Model
	viewState   model.ViewState
	build       BuildInfo
	configPath  string
	logPath     string
	contentPath string
	store       *content.Store
}

func (m Help) Init() tea.Cmd {
	return nil
}

func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	switch msg := msg.(type) { //nolint:gocritic
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Online,
			input.Default.Offline,
			input.Default.Chemical,
			input.Default.Deionised,
			input.Default.Back,
			input.Default.Help,
			input.Default.Quit,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Up,
			input.Default.Down,
			input.Default.PageUp,
			input.Default.PageDown,
			input.Default.Top,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.NextSection,
			input.Default.PrevSection,
			input.Default.NextImage,
			input.Default.PrevImage,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.build.Commit
	if len(commit) > 8 {
		commit = commit[0:8]
	}

	rows := []string{
		helpContent,
		styles.DetailRow("Version", m.build.Version),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.build.Date),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Log Path", m.logPath),
		styles.DetailRow("Content", m.contentPath),
		"",
	}

	for _, entry := range m.store.Entries() {
		stats := m.store.Stats(entry.ID)
		rows = append(rows, styles.DetailRow(entry.Title,
			fmt.Sprintf("%s words, %d min", humanize.Comma(int64(stats.Words)), stats.Minutes)))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, rows...)

	return lipgloss.Place(max(m.viewState.Width, lipgloss.Width(body)), max(m.viewState.Lower, lipgloss.Height(body)),
		lipgloss.Center, lipgloss.Center, body)
}
