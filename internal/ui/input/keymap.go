package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Online      key.Binding
	Offline     key.Binding
	Chemical    key.Binding
	Deionised   key.Binding
	Back        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	NextImage   key.Binding
	PrevImage   key.Binding
	Top         key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var Default = Map{
	Online: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Online"),
	),
	Offline: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Offline"),
	),
	Chemical: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Chemical"),
	),
	Deionised: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "Deionised"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	NextSection: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next Section"),
	),
	PrevSection: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev Section"),
	),
	NextImage: key.NewBinding(
		key.WithKeys("]", "right", "l"),
		key.WithHelp("]", "Next Image"),
	),
	PrevImage: key.NewBinding(
		key.WithKeys("[", "left", "h"),
		key.WithHelp("[", "Prev Image"),
	),
	Top: key.NewBinding(
		key.WithKeys("t", "home"),
		key.WithHelp("t", "Back To Top"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("pgup", "Page Up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", " ", "f"),
		key.WithHelp("pgdn", "Page Down"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
}
