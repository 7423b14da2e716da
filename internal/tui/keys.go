package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	ToggleTab  key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Up         key.Binding
	Down       key.Binding
	Enter      key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:       key.NewBinding(key.WithKeys("pgdown", "ctrl+n"), key.WithHelp("pgdn", "next slide")),
		Prev:       key.NewBinding(key.WithKeys("pgup", "ctrl+p"), key.WithHelp("pgup", "prev slide")),
		ToggleTab:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "demo/try it")),
		ScrollDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "scroll down")),
		ScrollUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "scroll up")),
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "move")),
		Down:       key.NewBinding(key.WithKeys("down")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		FocusNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		FocusPrev:  key.NewBinding(key.WithKeys("shift+tab")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Up, k.Enter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.ScrollDown, k.ScrollUp},
		{k.Up, k.Enter, k.ToggleTab, k.FocusNext, k.Quit},
	}
}

// terminalKeyMap is shown on slides with a command widget.
type terminalKeyMap struct{ keyMap }

func (k terminalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.ToggleTab, k.Up, k.Enter, k.ScrollDown, k.Quit}
}

// formKeyMap is shown on the profile form slide.
type formKeyMap struct{ keyMap }

func (k formKeyMap) ShortHelp() []key.Binding {
	saveKey := k.Enter
	saveKey.SetHelp("enter", "save")
	return []key.Binding{k.Next, k.Prev, k.FocusNext, saveKey, k.Quit}
}
