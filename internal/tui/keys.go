package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	prevPage  key.Binding
	nextPage  key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	logout    key.Binding
	quickAdd  key.Binding
	search    key.Binding
	toggle    key.Binding
	copy      key.Binding
	completed key.Binding
	group     key.Binding
	showAll   key.Binding
	sidebar   key.Binding
	refresh   key.Binding
	grow      key.Binding
	shrink    key.Binding
	register  key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	prevPage:  key.NewBinding(key.WithKeys("left", "h", "pgup")),
	nextPage:  key.NewBinding(key.WithKeys("right", "l", "pgdown")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	quickAdd:  key.NewBinding(key.WithKeys("a")),
	search:    key.NewBinding(key.WithKeys("/")),
	toggle:    key.NewBinding(key.WithKeys(" ", "x")),
	copy:      key.NewBinding(key.WithKeys("c")),
	completed: key.NewBinding(key.WithKeys("s")),
	group:     key.NewBinding(key.WithKeys("g")),
	showAll:   key.NewBinding(key.WithKeys("A")),
	sidebar:   key.NewBinding(key.WithKeys("b")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	grow:      key.NewBinding(key.WithKeys("+", "=")),
	shrink:    key.NewBinding(key.WithKeys("-")),
	register:  key.NewBinding(key.WithKeys("ctrl+r")),
}
