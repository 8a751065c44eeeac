package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the terminal front end.
// It lives in pkg/types so the model and the help view share it.
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Header
	ToggleDrawer  key.Binding
	CloseMenus    key.Binding
	TapSolutions  key.Binding
	TapProducts   key.Binding
	OpenSolutions key.Binding
	OpenProducts  key.Binding
	Back          key.Binding

	// Page
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	// Lead form
	FocusForm key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		ToggleDrawer:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		CloseMenus:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		TapSolutions:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "solutions")),
		TapProducts:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "products")),
		OpenSolutions: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "go to solutions")),
		OpenProducts:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "go to products")),
		Back:          key.NewBinding(key.WithKeys("b", "backspace"), key.WithHelp("b", "back")),

		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "d"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),

		FocusForm: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "demo form")),
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleDrawer, k.TapSolutions, k.TapProducts, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleDrawer, k.CloseMenus, k.TapSolutions, k.TapProducts},
		{k.OpenSolutions, k.OpenProducts, k.Back},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.FocusForm, k.NextField, k.PrevField, k.Submit},
		{k.Help, k.Quit},
	}
}
