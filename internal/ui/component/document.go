package component

import (
	"log/slog"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/turbinewash/internal/config"
	"github.com/leighmacdonald/turbinewash/internal/content"
	"github.com/leighmacdonald/turbinewash/internal/render"
	"github.com/leighmacdonald/turbinewash/internal/scrollsync"
	"github.com/leighmacdonald/turbinewash/internal/switcher"
	"github.com/leighmacdonald/turbinewash/internal/ui/command"
	"github.com/leighmacdonald/turbinewash/internal/ui/input"
	"github.com/leighmacdonald/turbinewash/internal/ui/model"
	"github.com/leighmacdonald/turbinewash/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const (
	wheelLines = 3
	// footerRows is the row below the document holding the back to top control.
	footerRows = 1
	defaultFPS = 60
)

// ScrollFrameMsg advances a smooth scroll. Frames from a cancelled scroll carry a stale tag.
type ScrollFrameMsg struct {
	id  string
	tag int
}

type scrollAnimation struct {
	tag    int
	active bool
	// section is the section being scrolled to, empty for plain offsets.
	section  string
	target   float64
	position float64
	velocity float64
}

// DocumentModel shows the open quadrant's page in a viewport, with the sticky section nav beside it
// and the back to top control below it. Opening another quadrant replaces the page, its navigator
// and its image switcher together.
type DocumentModel struct {
	id        string
	store     *content.Store
	conf      config.Config
	viewState model.ViewState
	renderer  *render.Renderer
	page      *render.Page
	layout    render.Layout
	navigator *scrollsync.Navigator
	switcher  switcher.Model
	viewport  viewport.Model
	spring    harmonica.Spring
	fps       int
	anim      scrollAnimation
}

func NewDocumentModel(store *content.Store, conf config.Config) DocumentModel {
	fps := conf.FPS
	if fps <= 0 {
		fps = defaultFPS
	}

	return DocumentModel{
		id:       zone.NewPrefix(),
		store:    store,
		conf:     conf,
		viewport: viewport.New(0, 0),
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
		fps:      fps,
	}
}

func (m DocumentModel) Init() tea.Cmd {
	return nil
}

func (m DocumentModel) Update(msg tea.Msg) (DocumentModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		return m.setViewState(msg)
	case config.Config:
		restyle := msg.MarkdownStyle != m.conf.MarkdownStyle || msg.WordWrap != m.conf.WordWrap ||
			msg.BackToTopRows != m.conf.BackToTopRows
		m.conf = msg
		if m.page != nil && m.page.HasSwitcher() {
			m.switcher = m.switcher.WithFadeDelay(msg.FadeDelay())
		}

		if !restyle {
			return m, nil
		}

		m.renderer = nil

		return m.refresh()
	case ScrollFrameMsg:
		return m.onFrame(msg)
	}

	if m.page == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.viewState.Page != model.PageMain {
			return m, nil
		}

		return m.onKey(msg)
	case tea.MouseMsg:
		if m.viewState.Page != model.PageMain {
			return m, nil
		}

		return m.onMouse(msg)
	default:
		// Pending fades finish even while the help page is up.
		current, faded := m.switcher.Current(), m.switcher.ImageFaded()

		var cmd tea.Cmd
		m.switcher, cmd = m.switcher.Update(msg)
		if current != m.switcher.Current() || faded != m.switcher.ImageFaded() {
			m.swapLayout()
		}

		return m, cmd
	}
}

func (m DocumentModel) setViewState(viewState model.ViewState) (DocumentModel, tea.Cmd) {
	resized := viewState.Width != m.viewState.Width || viewState.Lower != m.viewState.Lower
	m.viewState = viewState
	m.viewport.Width = max(0, viewState.Width-timelineWidth-1)
	m.viewport.Height = max(1, viewState.Lower-footerRows)

	if !viewState.View.Detail {
		m.clear()

		return m, nil
	}

	if m.page == nil || m.page.Quadrant != viewState.View.Selected {
		return m.open(viewState.View.Selected)
	}

	if resized {
		return m.refresh()
	}

	return m, nil
}

// documentWidth is the width pages are rendered at, the viewport width unless word_wrap is lower.
func (m DocumentModel) documentWidth() int {
	width := m.viewport.Width
	if m.conf.WordWrap > 0 {
		width = min(width, m.conf.WordWrap)
	}

	return width
}

func (m *DocumentModel) render(quadrant content.QuadrantID) (*render.Page, error) {
	width := max(render.MinWidth, m.documentWidth())
	if m.renderer == nil || m.renderer.Width() != width {
		renderer, errRenderer := render.New(m.store, render.Options{Width: width, Style: m.conf.MarkdownStyle})
		if errRenderer != nil {
			return nil, errRenderer
		}

		m.renderer = renderer
	}

	return m.renderer.Render(quadrant)
}

func (m DocumentModel) open(quadrant content.QuadrantID) (DocumentModel, tea.Cmd) {
	m.cancelScroll()

	page, errPage := m.render(quadrant)
	if errPage != nil {
		slog.Error("Failed to render quadrant", slog.String("quadrant", string(quadrant)),
			slog.String("error", errPage.Error()))
		m.clear()

		return m, command.SetStatusMessage(errPage.Error(), true)
	}

	m.page = page
	m.switcher = switcher.Model{}
	if page.HasSwitcher() {
		m.switcher = switcher.New(page.Detail.Switcher.Slots, switcher.Options{
			FadeDelay:   m.conf.FadeDelay(),
			FadeCaption: page.Detail.Switcher.FadeCaption,
		})
	}

	m.relayout()
	m.viewport.GotoTop()
	m.attach()

	slog.Debug("Opened quadrant", slog.String("quadrant", string(quadrant)),
		slog.Int("rows", m.layout.Rows), slog.Int("width", page.Width()))

	return m, nil
}

// refresh renders the open quadrant again, keeping the switcher and the section being read.
func (m DocumentModel) refresh() (DocumentModel, tea.Cmd) {
	if m.page == nil {
		return m, nil
	}

	m.cancelScroll()

	page, errPage := m.render(m.page.Quadrant)
	if errPage != nil {
		slog.Error("Failed to render quadrant", slog.String("quadrant", string(m.page.Quadrant)),
			slog.String("error", errPage.Error()))

		return m, command.SetStatusMessage(errPage.Error(), true)
	}

	section := m.navigator.Current()
	m.page = page
	m.relayout()
	m.attach()

	if section != "" {
		if top, ok := m.navigator.Activate(section); ok {
			m.viewport.SetYOffset(top)
			m.navigator.Scroll(m.scrollViewport())
		}
	}

	return m, nil
}

func (m *DocumentModel) clear() {
	m.cancelScroll()
	m.page = nil
	m.navigator = nil
	m.switcher = switcher.Model{}
	m.layout = render.Layout{}
	m.viewport.SetContent("")
	m.viewport.GotoTop()
}

func (m *DocumentModel) relayout() {
	var view render.SwitcherView
	if m.page.HasSwitcher() {
		current := m.switcher
		view = func(width int) string {
			return render.Switcher(current, width, m.markButton)
		}
	}

	m.layout = m.page.Layout(view)
	m.viewport.SetContent(m.layout.Body)
}

// swapLayout lays the page out again after the switcher changed. Captions wrap to different heights,
// so when sections moved the navigator is attached again, keeping its current link and retargeting a
// section scroll in progress.
func (m *DocumentModel) swapLayout() {
	before := m.layout
	m.relayout()

	if m.navigator == nil || (before.Rows == m.layout.Rows && slices.Equal(before.Sections(), m.layout.Sections())) {
		return
	}

	section := m.navigator.Current()
	m.attach()

	if section != "" {
		m.navigator.Activate(section)
	}

	if m.anim.active && m.anim.section != "" {
		if top, ok := m.navigator.Activate(m.anim.section); ok {
			m.anim.target = float64(min(max(0, top), m.maxOffset()))
		}
	}
}

func (m *DocumentModel) attach() {
	m.navigator = scrollsync.Attach(m.layout, m.page.NavigatorOptions(m.conf.BackToTopRows), m.scrollViewport())
}

func (m DocumentModel) scrollViewport() scrollsync.Viewport {
	return scrollsync.Viewport{Offset: m.viewport.YOffset, Height: m.viewport.Height}
}

func (m DocumentModel) markButton(button switcher.Button, rendered string) string {
	return zone.Mark(m.imageZone(button.Index), rendered)
}

func (m DocumentModel) imageZone(index int) string {
	return m.id + "img-" + strconv.Itoa(index)
}

func (m DocumentModel) backToTopZone() string {
	return m.id + "top"
}

func (m DocumentModel) onKey(msg tea.KeyMsg) (DocumentModel, tea.Cmd) {
	switch {
	case key.Matches(msg, input.Default.Up):
		m.scrollBy(-1)
	case key.Matches(msg, input.Default.Down):
		m.scrollBy(1)
	case key.Matches(msg, input.Default.PageUp):
		m.scrollBy(-m.viewport.Height)
	case key.Matches(msg, input.Default.PageDown):
		m.scrollBy(m.viewport.Height)
	case key.Matches(msg, input.Default.NextSection):
		if top, ok := m.navigator.ActivateOffset(1); ok {
			return m.scrollToSection(top)
		}
	case key.Matches(msg, input.Default.PrevSection):
		if top, ok := m.navigator.ActivateOffset(-1); ok {
			return m.scrollToSection(top)
		}
	case key.Matches(msg, input.Default.Top):
		if top, ok := m.navigator.BackToTop(); ok {
			return m.scrollTo(top)
		}
	case key.Matches(msg, input.Default.NextImage):
		return m.stepImage(1)
	case key.Matches(msg, input.Default.PrevImage):
		return m.stepImage(-1)
	}

	return m, nil
}

func (m DocumentModel) onMouse(msg tea.MouseMsg) (DocumentModel, tea.Cmd) {
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelLines)

		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelLines)

		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionRelease {
			return m, nil
		}
	default:
		return m, nil
	}

	if m.navigator.BackToTopVisible() && zone.Get(m.backToTopZone()).InBounds(msg) {
		top, _ := m.navigator.BackToTop()

		return m.scrollTo(top)
	}

	if m.navigator.StickyNavVisible() {
		for _, link := range m.navigator.Links() {
			if !zone.Get(timelineZone(m.id, link.SectionID)).InBounds(msg) {
				continue
			}

			if top, ok := m.navigator.Activate(link.SectionID); ok {
				return m.scrollToSection(top)
			}
		}
	}

	for _, button := range m.switcher.Buttons() {
		if zone.Get(m.imageZone(button.Index)).InBounds(msg) {
			return m.selectImage(button.Index)
		}
	}

	return m, nil
}

func (m DocumentModel) selectImage(index int) (DocumentModel, tea.Cmd) {
	var cmd tea.Cmd
	m.switcher, cmd = m.switcher.Select(index)
	m.swapLayout()

	return m, cmd
}

func (m DocumentModel) stepImage(delta int) (DocumentModel, tea.Cmd) {
	if !m.page.HasSwitcher() {
		return m, nil
	}

	var cmd tea.Cmd
	m.switcher, cmd = m.switcher.Step(delta)
	m.swapLayout()

	return m, cmd
}

// scrollBy is a manual scroll, it stops any smooth scroll in progress.
func (m *DocumentModel) scrollBy(rows int) {
	m.cancelScroll()

	if rows < 0 {
		m.viewport.ScrollUp(-rows)
	} else {
		m.viewport.ScrollDown(rows)
	}

	m.navigator.Scroll(m.scrollViewport())
}

func (m DocumentModel) maxOffset() int {
	return max(0, m.layout.Rows-m.viewport.Height)
}

// scrollTo starts a spring animated scroll towards target. Every frame is a scroll event for the
// navigator.
func (m DocumentModel) scrollTo(target int) (DocumentModel, tea.Cmd) {
	target = min(max(0, target), m.maxOffset())

	m.anim.tag++
	m.anim.active = true
	m.anim.section = ""
	m.anim.target = float64(target)
	m.anim.position = float64(m.viewport.YOffset)
	m.anim.velocity = 0

	return m, m.frame()
}

// scrollToSection scrolls to top, the section the navigator just activated.
func (m DocumentModel) scrollToSection(top int) (DocumentModel, tea.Cmd) {
	section := m.navigator.Current()
	m, cmd := m.scrollTo(top)
	m.anim.section = section

	return m, cmd
}

func (m *DocumentModel) cancelScroll() {
	m.anim.tag++
	m.anim.active = false
}

func (m DocumentModel) frame() tea.Cmd {
	id, tag := m.id, m.anim.tag

	return tea.Tick(time.Second/time.Duration(m.fps), func(_ time.Time) tea.Msg {
		return ScrollFrameMsg{id: id, tag: tag}
	})
}

func (m DocumentModel) onFrame(msg ScrollFrameMsg) (DocumentModel, tea.Cmd) {
	if msg.id != m.id || msg.tag != m.anim.tag || !m.anim.active || m.page == nil {
		return m, nil
	}

	m.anim.position, m.anim.velocity = m.spring.Update(m.anim.position, m.anim.velocity, m.anim.target)

	if math.Abs(m.anim.position-m.anim.target) < 0.5 && math.Abs(m.anim.velocity) < 0.5 {
		m.anim.active = false
		m.viewport.SetYOffset(int(m.anim.target))
	} else {
		m.viewport.SetYOffset(int(math.Round(m.anim.position)))
	}

	m.navigator.Scroll(m.scrollViewport())

	if !m.anim.active {
		return m, nil
	}

	return m, m.frame()
}

func (m DocumentModel) View() string {
	if m.page == nil {
		return ""
	}

	sidebar := timelinePlaceholder(m.viewport.Height)
	if m.navigator.StickyNavVisible() && len(m.navigator.Links()) > 0 {
		sidebar = timeline(m.id, m.navigator.Links(), m.viewport.Height)
	}

	footer := lipgloss.NewStyle().Width(m.viewState.Width).Render("")
	if m.navigator.BackToTopVisible() {
		footer = lipgloss.NewStyle().Width(m.viewState.Width).Align(lipgloss.Right).
			Render(zone.Mark(m.backToTopZone(), styles.BackToTop.Render("↑ Back to top")))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), " ", sidebar),
		footer)
}

// Quadrant is the open quadrant, empty while the grid is showing.
func (m DocumentModel) Quadrant() content.QuadrantID {
	if m.page == nil {
		return ""
	}

	return m.page.Quadrant
}

// Body is the laid out document, empty while the grid is showing.
func (m DocumentModel) Body() string {
	return m.layout.Body
}

func (m DocumentModel) Links() []scrollsync.LinkState {
	if m.navigator == nil {
		return nil
	}

	return m.navigator.Links()
}

func (m DocumentModel) Offset() int {
	return m.viewport.YOffset
}

func (m DocumentModel) Scrolling() bool {
	return m.anim.active
}

func (m DocumentModel) Switcher() switcher.Model {
	return m.switcher
}

// Location describes the reading position for the status bar.
func (m DocumentModel) Location() (string, float64) {
	if m.navigator == nil {
		return "", 0
	}

	label := ""
	for _, link := range m.navigator.Links() {
		if link.Current {
			label = link.Label

			break
		}
	}

	return label, m.viewport.ScrollPercent()
}
