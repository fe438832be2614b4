package component

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/turbinewash/internal/scrollsync"
	"github.com/leighmacdonald/turbinewash/internal/ui/model"
	"github.com/leighmacdonald/turbinewash/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const timelineWidth = 32

func timelineZone(prefix string, sectionID string) string {
	return prefix + "nav-" + sectionID
}

// timeline draws the section links, one row each with a connector between them.
func timeline(prefix string, links []scrollsync.LinkState, height int) string {
	labelWidth := timelineWidth - 4 - 2

	var rows []string
	for idx, link := range links {
		circle, style := styles.TimelineCircle, styles.TimelineLink
		if link.Current {
			circle, style = styles.TimelineCircleCur, styles.TimelineLinkActive
		}

		row := style.Render(circle + " " + ansi.Truncate(link.Label, labelWidth, "…"))
		rows = append(rows, zone.Mark(timelineZone(prefix, link.SectionID), row))

		if idx < len(links)-1 {
			rows = append(rows, styles.TimelineLink.Render("│"))
		}
	}

	return model.Container("Contents", timelineWidth, height,
		styles.TimelineNav.Render(strings.Join(rows, "\n")),
		slices.ContainsFunc(links, func(link scrollsync.LinkState) bool { return link.Current }))
}

// timelinePlaceholder keeps the sidebar column reserved while the sticky nav is hidden.
func timelinePlaceholder(height int) string {
	return lipgloss.NewStyle().Width(timelineWidth).Height(max(0, height)).Render("")
}
