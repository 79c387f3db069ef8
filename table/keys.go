package table

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextCol  key.Binding
	PrevCol  key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	More     key.Binding
	Fewer    key.Binding
	Columns  key.Binding
}

func defaultKeys(showConfig bool) keyMap {
	km := keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		NextCol:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next column")),
		PrevCol:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev column")),
		Grow:     key.NewBinding(key.WithKeys(">", "ctrl+right"), key.WithHelp(">", "wider")),
		Shrink:   key.NewBinding(key.WithKeys("<", "ctrl+left"), key.WithHelp("<", "narrower")),
		More:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more rows")),
		Fewer:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer rows")),
		Columns:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "columns")),
	}
	km.Columns.SetEnabled(showConfig)
	return km
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.NextCol, km.Grow, km.Shrink, km.More, km.Fewer, km.Columns}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.PageUp, km.PageDown, km.Top, km.Bottom},
		km.ShortHelp(),
	}
}
