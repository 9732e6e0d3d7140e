package termtable

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the table.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Left     key.Binding
	Right    key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Search   key.Binding
	Blur     key.Binding
	AddRow   key.Binding
	DropRow  key.Binding
	Resize   key.Binding
	Nested   key.Binding
	Redo     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		NextPage: key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[", "prev page")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:     key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "done")),
		AddRow:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add row")),
		DropRow:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drop row")),
		Resize:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "toggle resize")),
		Nested:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "toggle frame")),
		Redo:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "redo")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// shortHelp lists the bindings shown in the status line.
func (k KeyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Right, k.NextPage, k.Search, k.AddRow, k.DropRow, k.Resize, k.Quit}
}
