package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap describes the normal-mode bindings for the key hint line. Input is
// dispatched by the input modes; these bindings only document it.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Pane    key.Binding
	Add     key.Binding
	Detail  key.Binding
	Close   key.Binding
	Delete  key.Binding
	Search  key.Binding
	Clear   key.Binding
	Help    key.Binding
	HelpTxt key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Pane:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "results")),
		Add:     key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Detail:  key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "details")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Delete:  key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		HelpTxt: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Detail, k.Delete, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pane},
		{k.Add, k.Detail, k.Close, k.Delete},
		{k.Search, k.Clear},
		{k.Help, k.HelpTxt, k.Quit},
	}
}
