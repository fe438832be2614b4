package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/turbinewash/internal/content"
	"github.com/leighmacdonald/turbinewash/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

var errComponent = errors.New("no builder for component")

// elementIDs are the well known elements of a detail document.
type elementIDs struct {
	title     string
	nav       string
	backToTop string
}

// componentIDs names each component's elements. The deionised document has no back to top control.
func componentIDs(component content.Component) (elementIDs, error) {
	switch component {
	case content.ComponentOnline:
		return elementIDs{title: "online-main-title", nav: "online-nav", backToTop: "back-to-top"}, nil
	case content.ComponentOffline:
		return elementIDs{title: "offline-main-title", nav: "offline-nav", backToTop: "back-to-top-offline"}, nil
	case content.ComponentChemical:
		return elementIDs{title: "chemical-main-title", nav: "chemical-nav", backToTop: "back-to-top-chemical"}, nil
	case content.ComponentDeionised:
		return elementIDs{title: "main-title", nav: "timeline-nav"}, nil
	default:
		return elementIDs{}, fmt.Errorf("%w: %q", errComponent, component)
	}
}

type buildFunc func(page *Page, detail content.Detail) error

func (r *Renderer) detailBuilder(component content.Component) (buildFunc, error) {
	ids, errIDs := componentIDs(component)
	if errIDs != nil {
		return nil, errIDs
	}

	return func(page *Page, detail content.Detail) error {
		page.ids = ids
		page.add(ids.title, kindTitle, text(r.mainTitle(detail.MainTitle)))

		for _, section := range detail.Sections {
			parts := []part{text(styles.SectionHeading.Render(section.Heading))}
			for _, blk := range section.Blocks {
				rendered, errBlock := r.block(blk)
				if errBlock != nil {
					return fmt.Errorf("section %s: %w", section.ID, errBlock)
				}

				parts = append(parts, rendered)
			}

			page.add(section.ID, kindSection, parts...)
		}

		return nil
	}, nil
}

func (r *Renderer) block(blk content.Block) (part, error) {
	switch {
	case blk.Switcher:
		return part{switcher: true}, nil
	case blk.Figure != nil:
		return text(r.figure(*blk.Figure)), nil
	case len(blk.Chips) > 0:
		return text(r.chips(blk.Chips)), nil
	default:
		prose, err := r.markdown(blk.Markdown)
		if err != nil {
			return part{}, err
		}

		return text(prose), nil
	}
}

func (r *Renderer) card(entry content.QuadrantEntry, stats content.Stats) string {
	// Border and padding.
	inner := r.width - 6

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.CardTitle.Render(entry.Title),
		styles.CardDivider.Render(strings.Repeat("─", min(inner, 24))),
		wordwrap.String(entry.Description, inner),
		"",
		styles.CardStats.Render(fmt.Sprintf("%s words · about %d min read",
			humanize.Comma(int64(stats.Words)), stats.Minutes)),
		styles.ScrollHint.Render("Scroll Down to Learn More"),
	)

	return styles.Card.Width(r.width - 2).Render(body)
}

func (r *Renderer) mainTitle(title string) string {
	return styles.MainTitle.Width(r.width - 2).Render(title)
}

// figure draws a framed placeholder carrying the image's alt text and path.
func (r *Renderer) figure(fig content.Figure) string {
	box := Placeholder(styles.Figure, r.width, fig.Alt, fig.Path)
	if fig.Caption == "" {
		return box
	}

	return lipgloss.JoinVertical(lipgloss.Left, box,
		styles.FigureCaption.Render(wordwrap.String(fig.Caption, r.width-4)))
}

func (r *Renderer) chips(chips []content.Chip) string {
	rendered := make([]string, len(chips))
	for idx, chip := range chips {
		label := chip.Label
		if chip.Title != "" {
			label += " " + styles.ChipTitle.Render(chip.Title)
		}

		rendered[idx] = styles.Chip.Render(label)
	}

	return Flow(rendered, r.width)
}

// Placeholder frames an image reference in style, filling width columns including margins.
func Placeholder(style lipgloss.Style, width int, alt string, path string) string {
	frame := style.GetHorizontalMargins() + style.GetHorizontalBorderSize()

	return style.Width(max(1, width-frame)).Render(
		fmt.Sprintf("%s  %s\n%s", styles.IconImage, alt, styles.FigurePath.Render(path)))
}

// Flow lays items out left to right, starting a new row whenever the next item would pass width.
func Flow(items []string, width int) string {
	const indent = 2

	var (
		rows     []string
		row      []string
		rowWidth int
	)

	for _, item := range items {
		itemWidth := lipgloss.Width(item) + 1
		if len(row) > 0 && indent+rowWidth+itemWidth > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}

		row = append(row, item, " ")
		rowWidth += itemWidth
	}

	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.NewStyle().PaddingLeft(indent).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
