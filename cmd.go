package colonnade

import (
	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"

	"colonnade/detail"
	"colonnade/message"
	"colonnade/table"
)

// getPage gets a page of lines from the source
func (m Model) getPage(offset, size int) tea.Cmd {

	source := m.source
	return func() tea.Msg {

		fields, err := source.Fields()
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		count, err := source.Count()
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		lines, err := source.GetPage(offset, size)
		if err != nil {
			err = errors.Wrapf(err, "failed to get page at %d", offset)
			return message.ErrorMsg{Err: err}
		}

		return table.PageMsg{
			Fields: fields,
			Lines:  lines,
			Count:  count,
		}
	}
}

// showLine switches to the detail screen for the selected line
func (m Model) showLine() (Model, tea.Cmd) {

	line, fields, ok := m.Table.Current()
	if !ok {
		return m, nil
	}

	m.screen = DetailScreen
	m.Detail, _ = m.Detail.Update(detail.LineMsg{Fields: fields, Line: line})
	return m, nil
}

// reloadColumns gets default columns afresh and hands them to the table
func (m Model) reloadColumns() tea.Cmd {

	if m.reload == nil {
		return nil
	}

	columns, err := m.reload()
	if err != nil {
		return message.ErrorCmd(err)
	}

	return func() tea.Msg {
		return table.ColumnsMsg{Columns: columns}
	}
}

// quit closes the table, dropping any pending width flush, and quits
func (m Model) quit() (Model, tea.Cmd) {

	m.Table = m.Table.Close()
	return m, tea.Quit
}
