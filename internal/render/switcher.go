package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/turbinewash/internal/switcher"
	"github.com/leighmacdonald/turbinewash/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

// ButtonMarker decorates a rendered switch button, the ui uses it to register click zones.
type ButtonMarker func(button switcher.Button, rendered string) string

// Switcher draws model's displayed image, its caption and one button per image. Faded parts are
// drawn dimmed until the swap lands.
func Switcher(model switcher.Model, width int, mark ButtonMarker) string {
	slot := model.Image()

	imageStyle := styles.SwitcherImage
	if model.ImageFaded() {
		imageStyle = styles.SwitcherFaded
	}

	captionStyle := styles.SwitcherCaption
	if model.CaptionFaded() {
		captionStyle = styles.SwitcherCaptionFd
	}

	var buttons []string
	for _, button := range model.Buttons() {
		style := styles.SwitcherInactive
		if button.Active {
			style = styles.SwitcherActive
		}

		rendered := style.Render(button.Label)
		if mark != nil {
			rendered = mark(button, rendered)
		}

		buttons = append(buttons, rendered)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		Placeholder(imageStyle, width, slot.AltText(), slot.Path),
		captionStyle.Render(wordwrap.String(slot.Caption, width-4)),
		"",
		Flow(buttons, width),
	)
}
