package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/turbinewash/internal/config"
	"github.com/leighmacdonald/turbinewash/internal/content"
	"github.com/leighmacdonald/turbinewash/internal/ui/command"
	"github.com/leighmacdonald/turbinewash/internal/ui/model"
	"github.com/leighmacdonald/turbinewash/internal/ui/pages"
	"github.com/leighmacdonald/turbinewash/internal/view"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) rootModel {
	t.Helper()

	zone.NewGlobal()

	store, err := content.Default()
	require.NoError(t, err)

	conf := config.Config{FadeDelayMs: 1, BackToTopRows: 15, MarkdownStyle: "notty", FPS: 60}

	return newRootModel(store, conf, Options{Build: pages.BuildInfo{Version: "test"}})
}

func update(t *testing.T, root rootModel, msg tea.Msg) rootModel {
	t.Helper()

	next, _ := root.Update(msg)
	updated, ok := next.(rootModel)
	require.True(t, ok)

	return updated
}

func press(keys string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
}

func TestIgnoresInputUntilSized(t *testing.T) {
	root := update(t, newTestRoot(t), press("4"))

	require.False(t, root.viewState.View.Detail)
	require.Empty(t, root.documentModel.Quadrant())
}

func TestSelectSameQuadrantTwiceReturnsToGrid(t *testing.T) {
	root := update(t, newTestRoot(t), tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, view.DefaultInstruction, root.controller.Instruction())
	require.Equal(t, 37, root.viewState.Lower)

	root = update(t, root, press("4"))
	require.Equal(t, view.State{Selected: content.Deionised, Detail: true}, root.viewState.View)
	require.Equal(t, content.Deionised, root.documentModel.Quadrant())
	require.Contains(t, ansi.Strip(root.documentModel.Body()), "Deionised Waterwash")
	require.Len(t, root.documentModel.Links(), 4)
	require.Equal(t, "Click the Deionised Water button again to return to the grid view",
		root.controller.Instruction())
	require.Equal(t, 36, root.viewState.Lower)

	screen := ansi.Strip(root.View())
	require.Contains(t, screen, "4 Deionised Water")
	require.Contains(t, screen, "Deionised Waterwash")

	root = update(t, root, press("4"))
	require.False(t, root.viewState.View.Detail)
	require.Empty(t, root.documentModel.Quadrant())
	require.Empty(t, root.documentModel.Body())
	require.Equal(t, view.DefaultInstruction, root.controller.Instruction())
	require.Contains(t, ansi.Strip(root.View()), "Online Waterwashing")
}

func TestSwitchQuadrants(t *testing.T) {
	root := update(t, newTestRoot(t), tea.WindowSizeMsg{Width: 120, Height: 40})

	root = update(t, root, press("1"))
	require.Equal(t, content.Online, root.documentModel.Quadrant())

	root = update(t, root, command.SelectQuadrantMsg{Quadrant: content.Chemical})
	require.Equal(t, content.Chemical, root.documentModel.Quadrant())
	require.True(t, root.controller.IsActive(content.Chemical))
	require.False(t, root.controller.IsActive(content.Online))

	root = update(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, root.viewState.View.Detail)
	require.Empty(t, root.documentModel.Quadrant())

	// Nothing to go back from.
	root = update(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, root.viewState.View.Detail)
}

func TestHelpPage(t *testing.T) {
	root := update(t, newTestRoot(t), tea.WindowSizeMsg{Width: 120, Height: 40})

	root = update(t, root, press("?"))
	require.Equal(t, model.PageHelp, root.viewState.Page)
	require.Contains(t, ansi.Strip(root.View()), "Version")

	// Quadrant keys are inactive while the help page is up.
	root = update(t, root, press("2"))
	require.False(t, root.viewState.View.Detail)

	root = update(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, model.PageMain, root.viewState.Page)

	root = update(t, root, press("2"))
	require.Equal(t, content.Offline, root.documentModel.Quadrant())
}

func TestWindowResize(t *testing.T) {
	root := update(t, newTestRoot(t), tea.WindowSizeMsg{Width: 120, Height: 40})
	root = update(t, root, press("3"))

	root = update(t, root, tea.WindowSizeMsg{Width: 90, Height: 30})
	require.Equal(t, 26, root.viewState.Lower)
	require.Equal(t, content.Chemical, root.documentModel.Quadrant())
}

// clickText left clicks the first cell showing text on screen, once the zones drawn with it are known.
func clickText(t *testing.T, root rootModel, text string) rootModel {
	t.Helper()

	x, y := -1, -1
	for row, line := range strings.Split(ansi.Strip(root.View()), "\n") {
		if idx := strings.Index(line, text); idx >= 0 {
			x, y = ansi.StringWidth(line[:idx]), row

			break
		}
	}

	require.GreaterOrEqual(t, y, 0, "%q not on screen", text)

	click := tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}

	var cmd tea.Cmd
	require.Eventually(t, func() bool {
		_, cmd = root.Update(click)

		return cmd != nil
	}, time.Second, 5*time.Millisecond)

	return update(t, root, cmd())
}

func TestMouseSelectsQuadrants(t *testing.T) {
	root := update(t, newTestRoot(t), tea.WindowSizeMsg{Width: 120, Height: 40})

	root = clickText(t, root, "[2]")
	require.Equal(t, view.State{Selected: content.Offline, Detail: true}, root.viewState.View)
	require.Equal(t, content.Offline, root.documentModel.Quadrant())

	root = clickText(t, root, "3 Chemical")
	require.Equal(t, content.Chemical, root.documentModel.Quadrant())

	// The active pill takes the view back to the grid.
	root = clickText(t, root, "3 Chemical")
	require.False(t, root.viewState.View.Detail)
	require.Empty(t, root.documentModel.Quadrant())
	require.Equal(t, view.DefaultInstruction, root.controller.Instruction())
}
