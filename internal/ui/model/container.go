package model

import (
	"strings"

	"github.com/leighmacdonald/turbinewash/internal/ui/styles"
)

// Container frames content in a rounded border carrying title in its top edge. Width and height are
// the outer size, rows that do not fit are dropped from the bottom.
func Container(title string, width int, height int, content string, active bool) string {
	innerWidth, innerHeight := width-2, height-2
	if innerWidth <= 0 || innerHeight <= 0 {
		return ""
	}

	base := styles.ContainerStyle
	if active {
		base = styles.ContainerStyleActive
	}

	lines := strings.Split(content, "\n")
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return base.
		Border(styles.TitleBorder(styles.ContainerBorder, innerWidth, title)).
		Width(innerWidth).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}
