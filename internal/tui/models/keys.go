package models

import "github.com/charmbracelet/bubbles/key"

// DemoKeyMap holds the demo's key bindings.
type DemoKeyMap struct {
	NextPage  key.Binding
	PrevPage  key.Binding
	JumpPage  key.Binding
	PrevStep  key.Binding
	NextStep  key.Binding
	Toggle    key.Binding
	FocusPane key.Binding
	Quit      key.Binding
}

// DefaultDemoKeyMap returns the standard bindings.
func DefaultDemoKeyMap() DemoKeyMap {
	return DemoKeyMap{
		NextPage: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab", "prev page"),
		),
		JumpPage: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "jump"),
		),
		PrevStep: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev step"),
		),
		NextStep: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next step"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t", " "),
			key.WithHelp("t", "toggle state"),
		),
		FocusPane: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "notes/events"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer. Step bindings only
// appear on pages that use them.
func (k DemoKeyMap) ShortHelp(stepKeys bool) []key.Binding {
	bindings := []key.Binding{k.NextPage, k.JumpPage}
	if stepKeys {
		bindings = append(bindings, k.PrevStep, k.NextStep, k.Toggle)
	}
	return append(bindings, k.FocusPane, k.Quit)
}
