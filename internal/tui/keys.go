package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	search   key.Binding
	lookup   key.Binding
	nextPage key.Binding
	prevPage key.Binding
	copy     key.Binding
	version  key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	search:   key.NewBinding(key.WithKeys("/")),
	lookup:   key.NewBinding(key.WithKeys("f")),
	nextPage: key.NewBinding(key.WithKeys("n", "right")),
	prevPage: key.NewBinding(key.WithKeys("p", "left")),
	copy:     key.NewBinding(key.WithKeys("c")),
	version:  key.NewBinding(key.WithKeys("v")),
}
