package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares every binding the game reacts to. It satisfies
// help.KeyMap so the bottom bar renders itself.
type keyMap struct {
	NextTab  key.Binding
	NewBoard key.Binding

	StartLeft  key.Binding
	StartRight key.Binding
	EndLeft    key.Binding
	EndRight   key.Binding
	Check      key.Binding

	Step      key.Binding
	ResetWalk key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch tab"),
		),
		NewBoard: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new numbers"),
		),
		StartLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "path start left"),
		),
		StartRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "path start right"),
		),
		EndLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←/H", "path end left"),
		),
		EndRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→/L", "path end right"),
		),
		Check: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "check my answer"),
		),
		Step: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "next step"),
		),
		ResetWalk: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset walk"),
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

// ShortHelp lists the always-visible bindings.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.NewBoard, k.Help, k.Quit}
}

// FullHelp lists everything, grouped by tab.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartLeft, k.StartRight, k.EndLeft, k.EndRight, k.Check},
		{k.Step, k.ResetWalk},
		{k.NextTab, k.NewBoard, k.Help, k.Quit},
	}
}
