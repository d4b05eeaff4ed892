package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Step   key.Binding
	Skip   key.Binding
	Run    key.Binding
	Watch  key.Binding
	Pause  key.Binding
	Output key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Step:   key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n", "step")),
		Skip:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		Run:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "run to end")),
		Watch:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "watch")),
		Pause:  key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
		Output: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "output")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Skip, k.Run, k.Watch, k.Pause, k.Output, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Step, k.Skip, k.Run}, {k.Watch, k.Pause, k.Output, k.Quit}}
}
