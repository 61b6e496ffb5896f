package tui

import (
	"objbrowser/internal/browser"

	"github.com/charmbracelet/bubbles/key"
)

type listKeyMap struct {
	Quit    key.Binding
	Filter  key.Binding
	Reverse key.Binding
	Reload  key.Binding
	Help    key.Binding

	Inspect key.Binding
	Destroy key.Binding
	Toggle  key.Binding
}

var listKeys = listKeyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Reverse: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse")),
	Reload:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "keys")),

	Inspect: key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", browser.ActionInspect.Label())),
	Destroy: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", browser.ActionDestroy.Label())),
	Toggle:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", browser.ActionToggleActive.Label())),
}

// actionBinding returns the key bound to a row action.
func (k listKeyMap) actionBinding(kind browser.ActionKind) key.Binding {
	switch kind {
	case browser.ActionInspect:
		return k.Inspect
	case browser.ActionDestroy:
		return k.Destroy
	default:
		return k.Toggle
	}
}

// globalHelp is the footer tail shown after the row actions.
func (k listKeyMap) globalHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Reverse, k.Reload, k.Help, k.Quit}
}
