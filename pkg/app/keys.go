package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "next toy"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab", "prev toy"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpKeys feeds the help bar: the shell's own keys plus whatever the
// active toy reports.
type helpKeys struct {
	shell keyMap
	toy   []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.shell.Next, h.shell.Prev, h.shell.Help, h.shell.Quit}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{
		{h.shell.Next, h.shell.Prev},
		{h.shell.PageUp, h.shell.PageDown},
		{h.shell.Help, h.shell.Quit},
	}
	if len(h.toy) > 0 {
		groups = append(groups, h.toy)
	}
	return groups
}
