package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	logout  key.Binding
	sync    key.Binding
	filter  key.Binding
	rename  key.Binding
	delete  key.Binding
	copyURL key.Binding
	export  key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("L")),
	sync:    key.NewBinding(key.WithKeys("s")),
	filter:  key.NewBinding(key.WithKeys("f")),
	rename:  key.NewBinding(key.WithKeys("r")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copyURL: key.NewBinding(key.WithKeys("c")),
	export:  key.NewBinding(key.WithKeys("x")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
