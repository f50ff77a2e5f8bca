package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of both modes. Printable keys in Search mode
// are text, so only ForceQuit and the editing keys apply there.
type KeyMap struct {
	// Normal mode
	Quit   key.Binding
	Tab    key.Binding
	Down   key.Binding
	Up     key.Binding
	Enter  key.Binding
	Reload key.Binding
	Search key.Binding

	// Search mode
	ForceQuit key.Binding
	Cancel    key.Binding
	Select    key.Binding
	Next      key.Binding
	Prev      key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r", "reload"),
		),
		Search: key.NewBinding(
			key.WithKeys("s", "/"),
			key.WithHelp("s", "search"),
		),

		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "prev"),
		),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Delete:    key.NewBinding(key.WithKeys("delete")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Home:      key.NewBinding(key.WithKeys("home")),
		End:       key.NewBinding(key.WithKeys("end")),
	}
}

// NormalHelp lists the bindings shown in the status bar in Normal mode
func (k KeyMap) NormalHelp() []key.Binding {
	return []key.Binding{k.Search, k.Enter, k.Reload, k.Tab, k.Down, k.Up, k.Quit}
}

// SearchHelp lists the bindings shown in the status bar in Search mode
func (k KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Select, k.Next, k.Prev, k.Cancel, k.ForceQuit}
}
