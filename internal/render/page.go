package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/turbinewash/internal/content"
	"github.com/leighmacdonald/turbinewash/internal/scrollsync"
)

// ElementCard is the summary card heading every page.
const ElementCard = "content-card"

type blockKind int

const (
	kindCard blockKind = iota
	kindTitle
	kindSection
)

// part is a pre-rendered chunk of a block, or the slot the image switcher is drawn into.
type part struct {
	text     string
	switcher bool
}

func text(value string) part {
	return part{text: value}
}

type block struct {
	id    string
	kind  blockKind
	parts []part
}

// Page is a rendered quadrant. The image switcher is the only part that changes while the page is
// displayed, so it is drawn at layout time.
type Page struct {
	Quadrant content.QuadrantID
	Entry    content.QuadrantEntry
	Detail   content.Detail
	width    int
	ids      elementIDs
	blocks   []block
}

func (p *Page) add(id string, kind blockKind, parts ...part) {
	p.blocks = append(p.blocks, block{id: id, kind: kind, parts: parts})
}

func (p *Page) Width() int {
	return p.width
}

// HasSwitcher reports whether the page embeds an image switcher.
func (p *Page) HasSwitcher() bool {
	return p.Detail.Switcher != nil && len(p.Detail.Switcher.Slots) > 0
}

// NavigatorOptions names this page's title, nav and back to top elements.
func (p *Page) NavigatorOptions(backToTopRows int) scrollsync.Options {
	return scrollsync.Options{
		TitleID:       p.ids.title,
		NavID:         p.ids.nav,
		BackToTopID:   p.ids.backToTop,
		BackToTopRows: backToTopRows,
	}
}

// SwitcherView draws the image switcher at the given width.
type SwitcherView func(width int) string

// Layout joins the page into a single document, recording where every element ended up. A nil
// switcher leaves the switcher slot out.
func (p *Page) Layout(switcherView SwitcherView) Layout {
	layout := Layout{
		elements: map[string]scrollsync.Span{},
		links:    map[string][]scrollsync.Link{},
	}

	var body strings.Builder
	for idx, blk := range p.blocks {
		var parts []string
		for _, prt := range blk.parts {
			if !prt.switcher {
				parts = append(parts, prt.text)

				continue
			}

			if switcherView != nil {
				parts = append(parts, switcherView(p.width))
			}
		}

		rendered := strings.Join(parts, "\n\n")
		// Every block but the last owns the blank row below it, leaving no gap between sections.
		if idx < len(p.blocks)-1 {
			rendered += "\n"
		}

		if layout.Rows > 0 {
			body.WriteString("\n")
		}
		body.WriteString(rendered)

		span := scrollsync.Span{ID: blk.id, Top: layout.Rows, Height: lipgloss.Height(rendered)}
		layout.Rows += span.Height
		layout.elements[blk.id] = span

		if blk.kind == kindSection {
			layout.sections = append(layout.sections, span)
		}
	}

	layout.Body = body.String()

	if len(p.Detail.Nav) > 0 && p.ids.nav != "" {
		links := make([]scrollsync.Link, len(p.Detail.Nav))
		for idx, nav := range p.Detail.Nav {
			links[idx] = scrollsync.Link{SectionID: nav.SectionID, Label: nav.Label}
		}

		layout.elements[p.ids.nav] = scrollsync.Span{ID: p.ids.nav}
		layout.links[p.ids.nav] = links
	}

	if p.Detail.BackToTop && p.ids.backToTop != "" {
		layout.elements[p.ids.backToTop] = scrollsync.Span{ID: p.ids.backToTop}
	}

	return layout
}

// Layout is a laid out page. It is the scope a scrollsync.Navigator attaches to.
type Layout struct {
	Body     string
	Rows     int
	elements map[string]scrollsync.Span
	sections []scrollsync.Span
	links    map[string][]scrollsync.Link
}

func (l Layout) Element(id string) (scrollsync.Span, bool) {
	span, found := l.elements[id]

	return span, found
}

func (l Layout) Links(navID string) []scrollsync.Link {
	return l.links[navID]
}

func (l Layout) Sections() []scrollsync.Span {
	return l.sections
}
