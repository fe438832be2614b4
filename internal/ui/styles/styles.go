package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Black    = lipgloss.Color("#0d1117")
	Gray     = lipgloss.Color("#3e4451")
	GrayDark = lipgloss.Color("#21262d")
	White    = lipgloss.Color("#d6dde6")
	Muted    = lipgloss.Color("#8b949e")

	Water     = lipgloss.Color("#4aa3df")
	WaterDeep = lipgloss.Color("#1f6feb")
	Steel     = lipgloss.Color("#9fb3c8")
	Rust      = lipgloss.Color("#d2691e")
	Accent    = lipgloss.Color("#f0b429")

	ContainerBorder      = lipgloss.RoundedBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Water)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Left)

	AppTitle    = lipgloss.NewStyle().Bold(true).Foreground(Water)
	Instruction = lipgloss.NewStyle().Foreground(Muted).Italic(true)

	// Quadrant grid.
	QuadrantBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray).
			Align(lipgloss.Center, lipgloss.Center).
			Padding(1, 2)
	QuadrantBoxHover  = QuadrantBox.BorderForeground(Water)
	QuadrantBoxActive = QuadrantBox.BorderForeground(Accent)
	QuadrantTitle     = lipgloss.NewStyle().Bold(true).Foreground(White)
	QuadrantSubtitle  = lipgloss.NewStyle().Foreground(Steel)
	QuadrantKey       = lipgloss.NewStyle().Foreground(Muted)

	// Nav pills.
	PillInactive = lipgloss.NewStyle().Foreground(Steel).Background(GrayDark).Padding(0, 2).MarginRight(1)
	PillActive   = lipgloss.NewStyle().Foreground(Black).Background(Accent).Bold(true).Padding(0, 2).MarginRight(1)

	// Summary card.
	Card        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(WaterDeep).Padding(1, 2)
	CardTitle   = lipgloss.NewStyle().Bold(true).Foreground(Water)
	CardDivider = lipgloss.NewStyle().Foreground(WaterDeep)
	CardStats   = lipgloss.NewStyle().Foreground(Muted)
	ScrollHint  = lipgloss.NewStyle().Foreground(Accent).Italic(true)

	// Detail document.
	MainTitle      = lipgloss.NewStyle().Bold(true).Foreground(White).Border(lipgloss.ThickBorder(), false, false, true, false).BorderForeground(Water).PaddingLeft(2)
	SectionHeading = lipgloss.NewStyle().Bold(true).Foreground(Water).PaddingLeft(2)
	Figure         = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(Gray).Foreground(Steel).Padding(0, 1).MarginLeft(2)
	FigurePath     = lipgloss.NewStyle().Foreground(Muted)
	FigureCaption  = lipgloss.NewStyle().Foreground(Muted).Italic(true).PaddingLeft(2)
	Chip           = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Rust).Padding(0, 1)
	ChipTitle      = lipgloss.NewStyle().Foreground(Muted)

	// Image switcher.
	SwitcherImage     = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(Water).Foreground(White).Padding(1, 2).MarginLeft(2)
	SwitcherFaded     = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(Gray).Foreground(Gray).Faint(true).Padding(1, 2).MarginLeft(2)
	SwitcherCaption   = lipgloss.NewStyle().Foreground(Steel).Italic(true).PaddingLeft(2)
	SwitcherCaptionFd = lipgloss.NewStyle().Foreground(Gray).Faint(true).Italic(true).PaddingLeft(2)
	SwitcherActive    = lipgloss.NewStyle().Foreground(Black).Background(Water).Bold(true).Padding(0, 1).MarginRight(1)
	SwitcherInactive  = lipgloss.NewStyle().Foreground(Steel).Background(GrayDark).Padding(0, 1).MarginRight(1)

	// Timeline nav sidebar.
	TimelineNav        = lipgloss.NewStyle().PaddingRight(1)
	TimelineLink       = lipgloss.NewStyle().Foreground(Steel)
	TimelineLinkActive = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	TimelineCircle     = "○"
	TimelineCircleCur  = "●"

	BackToTop = lipgloss.NewStyle().Foreground(Black).Background(Water).Bold(true).Padding(0, 1)

	StatusError   = lipgloss.NewStyle().Foreground(Rust).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Water).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Muted).Bold(true).PaddingRight(2).PaddingLeft(1)
	StatusVersion = lipgloss.NewStyle().Foreground(Accent).Bold(true).PaddingLeft(1).PaddingRight(1)
	StatusSection = lipgloss.NewStyle().Foreground(Steel).PaddingLeft(1).PaddingRight(2)

	PanelLabel = lipgloss.NewStyle().Foreground(Muted).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	HelpBox = lipgloss.NewStyle().Padding(2)

	IconImage = "▣"
	IconWater = "≈"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the length specified.
func WrapX(width int, value string, character string) string {
	all := max(0, width-lipgloss.Width(value))

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "┤"+title+"├", border.Top)

	return border
}
