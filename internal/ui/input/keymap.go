package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit         key.Binding
	Help         key.Binding
	Back         key.Binding
	Accept       key.Binding
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	NextTab      key.Binding
	PrevTab      key.Binding
	Services     key.Binding
	QuickActions key.Binding
	Refresh      key.Binding
	Copy         key.Binding
	Location     key.Binding
	HistoryBack  key.Binding
	HistoryFwd   key.Binding
	// Jump holds one binding per tab in sidebar order.
	Jump []key.Binding
}

var jumpKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="}

func jumpBindings() []key.Binding {
	bindings := make([]key.Binding, len(jumpKeys))
	for idx, k := range jumpKeys {
		bindings[idx] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, "Jump"))
	}

	return bindings
}

var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Select"),
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
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "Scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "Scroll down"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next section"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev section"),
	),
	Services: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Services"),
	),
	QuickActions: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "Quick actions"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Refresh"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "Copy config"),
	),
	Location: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "Go to #section"),
	),
	HistoryBack: key.NewBinding(
		key.WithKeys("[", "alt+left"),
		key.WithHelp("[", "History back"),
	),
	HistoryFwd: key.NewBinding(
		key.WithKeys("]", "alt+right"),
		key.WithHelp("]", "History forward"),
	),
	Jump: jumpBindings(),
}
