// Package editor provides the column visibility and order dialog.
package editor

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	nt "colonnade/entity"
	"colonnade/layout"
	"colonnade/style"
)

// Model holds the dialog's working copy of visibility and order.
// Nothing here touches the table until a commit message is handled.
type Model struct {
	order   []string        // every default field, in display order
	checked map[string]bool // fields to be shown
	titles  map[string]string
	cursor  int

	keys keyMap
	help help.Model
}

// New seeds the dialog from the saved facets.
// Saved fields without a default are dropped and defaults missing from the
// saved order are appended.
func New(defaults []nt.Column, fct layout.Facets) Model {

	titles := make(map[string]string, len(defaults))
	for _, col := range defaults {
		titles[col.Field] = col.Header()
	}

	order := []string{}
	for _, field := range fct.Order {
		if _, ok := titles[field]; ok && !slices.Contains(order, field) {
			order = append(order, field)
		}
	}
	for _, col := range defaults {
		if !slices.Contains(order, col.Field) {
			order = append(order, col.Field)
		}
	}

	visible := fct.Visible
	if visible == nil {
		visible = nt.Fields(defaults)
	}
	checked := map[string]bool{}
	for _, field := range visible {
		if _, ok := titles[field]; ok {
			checked[field] = true
		}
	}

	return Model{
		order:   order,
		checked: checked,
		titles:  titles,
		keys:    defaultKeys(),
		help:    help.New(),
	}
}

// Order returns the working order, hidden fields included.
func (m Model) Order() []string {
	return slices.Clone(m.order)
}

// Visible returns the checked fields in working order.
func (m Model) Visible() []string {
	visible := []string{}
	for _, field := range m.order {
		if m.checked[field] {
			visible = append(visible, field)
		}
	}
	return visible
}

// Cursor returns the index of the highlighted field.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.MoveUp):
		return m.move(-1)

	case key.Matches(keyMsg, m.keys.MoveDown):
		return m.move(1)

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.order)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if len(m.order) == 0 {
			break
		}
		field := m.order[m.cursor]
		m.checked = maps.Clone(m.checked)
		m.checked[field] = !m.checked[field]

	case key.Matches(keyMsg, m.keys.Confirm):
		order, visible := m.Order(), m.Visible()
		return m, func() tea.Msg {
			return ConfirmMsg{Order: order, Visible: visible}
		}

	case key.Matches(keyMsg, m.keys.Reset):
		return m, func() tea.Msg { return ResetMsg{} }

	case key.Matches(keyMsg, m.keys.Cancel):
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, nil
}

// Render renders the dialog box.
func (m Model) Render() string {

	var content strings.Builder
	content.WriteString("Columns\n\n")

	for i, field := range m.order {
		box := "[ ]"
		if m.checked[field] {
			box = "[x]"
		}

		prefix := "  "
		line := fmt.Sprintf("%s %s", box, m.titles[field])
		if i == m.cursor {
			prefix = "> "
			line = style.SelectedStyle.Render(line)
		}
		content.WriteString(prefix + line + "\n")
	}

	if len(m.order) == 0 {
		content.WriteString(style.MutedStyle.Render("no columns") + "\n")
	}

	content.WriteString("\n" + m.help.ShortHelpView(m.keys.ShortHelp()))

	return style.DialogStyle.Render(content.String())
}

// unexported

// move shifts the highlighted field by delta, the order is committed eagerly
func (m Model) move(delta int) (Model, tea.Cmd) {

	to := m.cursor + delta
	if to < 0 || to >= len(m.order) {
		return m, nil
	}

	order := slices.Clone(m.order)
	order[m.cursor], order[to] = order[to], order[m.cursor]
	m.order = order
	m.cursor = to

	committed := slices.Clone(order)
	return m, func() tea.Msg {
		return ReorderMsg{Order: committed}
	}
}
