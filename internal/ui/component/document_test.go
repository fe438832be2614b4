package component

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/turbinewash/internal/config"
	"github.com/leighmacdonald/turbinewash/internal/content"
	"github.com/leighmacdonald/turbinewash/internal/ui/model"
	"github.com/leighmacdonald/turbinewash/internal/view"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func testViewState(quadrant content.QuadrantID, width int) model.ViewState {
	return model.ViewState{
		Page:   model.PageMain,
		View:   view.State{Selected: quadrant, Detail: quadrant != ""},
		Width:  width,
		Height: 40,
		Upper:  3,
		Lower:  36,
	}
}

func newDocument(t *testing.T, quadrant content.QuadrantID) DocumentModel {
	t.Helper()

	zone.NewGlobal()

	store, err := content.Default()
	require.NoError(t, err)

	doc := NewDocumentModel(store, config.Config{
		FadeDelayMs:   1,
		BackToTopRows: 15,
		MarkdownStyle: "notty",
		FPS:           240,
	})

	doc, cmd := doc.Update(testViewState(quadrant, 120))
	require.Nil(t, cmd)

	return doc
}

func press(keys string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
}

// settle feeds animation frames back into the document until the scroll comes to rest.
func settle(t *testing.T, doc DocumentModel, cmd tea.Cmd) DocumentModel {
	t.Helper()

	for frames := 0; cmd != nil; frames++ {
		require.Less(t, frames, 20000, "scroll never settled")
		doc, cmd = doc.Update(cmd())
	}

	require.False(t, doc.Scrolling())

	return doc
}

func TestDocumentOpen(t *testing.T) {
	doc := newDocument(t, content.Online)

	require.Equal(t, content.Online, doc.Quadrant())
	require.Equal(t, 0, doc.Offset())
	require.Contains(t, ansi.Strip(doc.Body()), "Online Waterwash")
	require.Len(t, doc.Links(), 4)
	require.Equal(t, 1, doc.Switcher().Current())
	require.NotEmpty(t, doc.View())

	doc, _ = doc.Update(testViewState("", 120))
	require.Empty(t, doc.Quadrant())
	require.Empty(t, doc.Body())
	require.Empty(t, doc.Links())
	require.Empty(t, doc.View())
}

func TestDocumentSectionScroll(t *testing.T) {
	doc := newDocument(t, content.Online)

	doc, cmd := doc.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	require.True(t, doc.Scrolling())

	current := doc.navigator.Current()
	require.NotEmpty(t, current)

	section, found := doc.layout.Element(current)
	require.True(t, found)
	want := min(section.Top, doc.maxOffset())

	doc = settle(t, doc, cmd)
	require.Equal(t, want, doc.Offset())
	require.True(t, doc.navigator.StickyNavVisible())
	require.Contains(t, ansi.Strip(doc.View()), "Contents")
}

func TestDocumentManualScrollCancelsAnimation(t *testing.T) {
	doc := newDocument(t, content.Chemical)

	doc, cmd := doc.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)

	doc, _ = doc.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.False(t, doc.Scrolling())
	require.Equal(t, 1, doc.Offset())

	// The frame scheduled before the manual scroll is stale.
	doc, next := doc.Update(cmd())
	require.Nil(t, next)
	require.Equal(t, 1, doc.Offset())
}

func TestDocumentBackToTop(t *testing.T) {
	doc := newDocument(t, content.Offline)
	require.False(t, doc.navigator.BackToTopVisible())

	doc, _ = doc.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	require.Greater(t, doc.Offset(), 15)
	require.True(t, doc.navigator.BackToTopVisible())
	require.Contains(t, ansi.Strip(doc.View()), "Back to top")

	doc, cmd := doc.Update(press("t"))
	require.NotNil(t, cmd)

	doc = settle(t, doc, cmd)
	require.Equal(t, 0, doc.Offset())
	require.False(t, doc.navigator.BackToTopVisible())
}

func TestDocumentWithoutBackToTop(t *testing.T) {
	doc := newDocument(t, content.Deionised)

	doc, _ = doc.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	require.False(t, doc.navigator.BackToTopVisible())

	_, cmd := doc.Update(press("t"))
	require.Nil(t, cmd)
}

func TestDocumentImageSwitch(t *testing.T) {
	doc := newDocument(t, content.Offline)
	detail, _ := doc.store.Detail(content.Offline)
	slots := detail.Switcher.Slots

	require.Contains(t, ansi.Strip(doc.Body()), slots[0].Path)

	doc, cmd := doc.Update(press("]"))
	require.NotNil(t, cmd)
	require.True(t, doc.Switcher().ImageFaded())

	doc, _ = doc.Update(cmd())
	require.False(t, doc.Switcher().ImageFaded())
	require.Equal(t, 2, doc.Switcher().Current())
	require.Contains(t, ansi.Strip(doc.Body()), slots[1].Path)

	// Resizing renders again without resetting the switcher.
	doc, _ = doc.Update(testViewState(content.Offline, 100))
	require.Equal(t, content.Offline, doc.Quadrant())
	require.Equal(t, 2, doc.Switcher().Current())
	require.Contains(t, ansi.Strip(doc.Body()), slots[1].Path)

	// Opening another quadrant replaces the switcher.
	doc, _ = doc.Update(testViewState(content.Online, 100))
	require.Equal(t, 1, doc.Switcher().Current())
}

func TestDocumentRestyle(t *testing.T) {
	doc := newDocument(t, content.Chemical)
	before := doc.renderer

	doc, _ = doc.Update(config.Config{FadeDelayMs: 1, BackToTopRows: 15, MarkdownStyle: "ascii", FPS: 240})
	require.NotSame(t, before, doc.renderer)
	require.Equal(t, "ascii", doc.renderer.Style())
	require.Equal(t, content.Chemical, doc.Quadrant())
}

func TestDocumentImageSwapKeepsNavigatorInStep(t *testing.T) {
	// Captions wrap differently at some of these widths, moving every section below the switcher.
	for _, width := range []int{73, 80, 90, 120} {
		doc := newDocument(t, content.Online)
		doc, _ = doc.Update(testViewState(content.Online, width))

		doc, cmd := doc.Update(press("]"))
		require.NotNil(t, cmd)
		doc, _ = doc.Update(cmd())
		require.Equal(t, 2, doc.Switcher().Current())

		section, found := doc.layout.Element("process")
		require.True(t, found)

		top, ok := doc.navigator.Activate("process")
		require.True(t, ok)
		require.Equal(t, section.Top, top, "width %d", width)
	}
}

func TestDocumentImageSwapRetargetsSectionScroll(t *testing.T) {
	doc := newDocument(t, content.Online)
	doc, _ = doc.Update(testViewState(content.Online, 80))

	top, ok := doc.navigator.Activate("process")
	require.True(t, ok)

	doc, frame := doc.scrollToSection(top)
	require.NotNil(t, frame)

	doc, fade := doc.Update(press("]"))
	require.NotNil(t, fade)
	doc, _ = doc.Update(fade())
	require.Equal(t, "process", doc.navigator.Current())

	doc = settle(t, doc, frame)

	section, found := doc.layout.Element("process")
	require.True(t, found)
	require.Equal(t, min(section.Top, doc.maxOffset()), doc.Offset())
}

func TestDocumentFadeDelayAppliesLive(t *testing.T) {
	doc := newDocument(t, content.Offline)
	require.Equal(t, time.Millisecond, doc.Switcher().FadeDelay())

	doc, _ = doc.Update(config.Config{FadeDelayMs: 5, BackToTopRows: 15, MarkdownStyle: "notty", FPS: 240})
	require.Equal(t, 5*time.Millisecond, doc.Switcher().FadeDelay())
	require.Equal(t, content.Offline, doc.Quadrant())
}
