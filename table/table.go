// Package table composes persisted column configuration with a lipgloss table.
package table

import (
	"context"
	"slices"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"colonnade/editor"
	nt "colonnade/entity"
	"colonnade/layout"
	"colonnade/message"
	"colonnade/resize"
	"colonnade/store"
	"colonnade/style"
)

const (
	headerHeight = 2 // Header row + separator line
	handle       = "│"
	ellipsis     = "…"
)

// Props configures a table.
type Props struct {
	Columns          []nt.Column // default columns, required
	StorageKey       string      // namespace for saved facets, store.DefaultKey if empty
	ShowColumnConfig bool        // enables the column dialog
	PageSize         int         // used until a page size is saved
}

// Model is a table whose column widths, visibility and order are adjustable
// and saved through a store.Port.
type Model struct {
	defaults   []nt.Column
	key        string
	showConfig bool
	port       store.Port

	facets  layout.Facets
	resizer resize.Controller
	editor  editor.Model
	editing bool

	lines      []nt.Line
	fields     []nt.Field
	fieldIdx   map[string]int
	fieldTypes map[string]string
	selected   int // Absolute position of selected line
	offset     int // Offset of page shown
	total      int
	pageSize   int
	activeCol  int

	width  int
	height int

	table *table.Table
	keys  keyMap
	help  help.Model

	ctx    context.Context
	logger nt.Logger
}

func New(ctx context.Context, port store.Port, props Props, lgr nt.Logger) Model {

	if lgr == nil {
		lgr = nt.Discard
	}

	storageKey := props.StorageKey
	if storageKey == "" {
		storageKey = store.DefaultKey
	}

	fallback := props.PageSize
	if fallback < 1 {
		fallback = store.DefaultPageSize
	}

	tbl := table.New()
	style.StyleTable(tbl)

	m := Model{
		key:        storageKey,
		showConfig: props.ShowColumnConfig,
		port:       port,
		facets:     layout.LoadFacets(port, storageKey),
		resizer:    resize.New(port, storageKey, nil),
		pageSize:   store.PageSize(port, storageKey, fallback),
		table:      tbl,
		keys:       defaultKeys(props.ShowColumnConfig),
		help:       help.New(),
		ctx:        ctx,
		logger:     lgr,
	}

	return m.withDefaults(props.Columns).resolve()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Columns returns the final column list, filler included.
func (m Model) Columns() []nt.Column {
	columns := slices.Clone(m.resizer.Columns())
	return append(columns, layout.Filler(columns))
}

// SetDefaults replaces the default columns, closes the column dialog and
// re-resolves against the saved facets.
func (m Model) SetDefaults(columns []nt.Column) Model {
	m.editing = false
	return m.withDefaults(columns).resolve()
}

// ScrollToTop selects the first line and requests the first page.
func (m Model) ScrollToTop() (Model, tea.Cmd) {
	m.selected = 0
	m.offset = 0
	return m, message.GetPageCmd(0, m.PageSize())
}

// Close releases the table, dropping any pending width flush.
func (m Model) Close() Model {
	m.resizer = m.resizer.Close()
	m.editing = false
	return m
}

// Editing reports whether the column dialog is open.
func (m Model) Editing() bool {
	return m.editing
}

// PageSize returns the number of lines to request.
func (m Model) PageSize() int {
	if m.height > 0 {
		return max(0, min(m.pageSize, m.height-headerHeight))
	}
	return m.pageSize
}

// Current returns the selected line and the fields it is made of.
func (m Model) Current() (line nt.Line, fields []nt.Field, ok bool) {

	idx := m.selected - m.offset
	if idx < 0 || idx >= len(m.lines) {
		return
	}
	return m.lines[idx], m.fields, true
}

// Selected returns the absolute position of the selected line and the total.
func (m Model) Selected() (selected, total int) {
	return m.selected, m.total
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, message.GetPageCmd(m.offset, m.PageSize())

	case PageMsg:
		m.lines = msg.Lines
		m.total = msg.Count
		m.setFields(msg.Fields)
		if m.selected >= m.total {
			m.selected = max(0, m.total-1)
		}
		return m, nil

	case ScrollToTopMsg:
		return m.ScrollToTop()

	case ColumnsMsg:
		return m.SetDefaults(msg.Columns), nil

	case resize.FlushMsg:
		var cmd tea.Cmd
		m.resizer, cmd = m.resizer.Update(msg)
		return m, cmd

	case editor.ReorderMsg:
		// order is saved on every move, visibility only on confirm
		store.SetOrder(m.port, m.key, msg.Order)
		m.facets.Order = msg.Order
		return m, nil

	case editor.ConfirmMsg:
		store.SetOrder(m.port, m.key, msg.Order)
		store.SetVisible(m.port, m.key, msg.Visible)
		m.facets.Order = msg.Order
		m.facets.Visible = msg.Visible
		m.editing = false
		m.logger.Info(m.ctx, "columns confirmed", "key", m.key, "visible", msg.Visible)
		return m.resolve(), nil

	case editor.ResetMsg:
		dflt := layout.DefaultFacets(m.defaults)
		store.SetVisible(m.port, m.key, dflt.Visible)
		store.SetOrder(m.port, m.key, dflt.Order)
		m.facets.Visible = dflt.Visible
		m.facets.Order = dflt.Order
		m.editing = false
		m.logger.Info(m.ctx, "columns reset", "key", m.key)
		return m.resolve(), nil

	case editor.CancelMsg:
		m.editing = false
		return m, nil

	case tea.KeyPressMsg:
		if m.editing {
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		if m.editing {
			return m, nil
		}
		return m.handleClick(msg.Mouse()), nil

	case tea.MouseMotionMsg:
		idx, ok := m.resizer.Dragging()
		if !ok {
			return m, nil
		}
		var cmd tea.Cmd
		m.resizer, cmd = m.resizer.Drag(msg.Mouse().X)
		m.syncWidth(idx)
		return m, cmd

	case tea.MouseReleaseMsg:
		m.resizer = m.resizer.End()
		return m, nil
	}

	return m, nil
}

// Render renders the table with the current page of lines.
func (m Model) Render() string {

	columns := m.resizer.Columns()
	filler := m.fillerWidth(columns)

	var headers []string
	for _, col := range columns {
		headers = append(headers, headerCell(col))
	}
	if filler > 0 {
		headers = append(headers, strings.Repeat(" ", filler))
	}

	m.table.Headers(headers...)
	m.table.ClearRows()
	for _, line := range m.lines {
		m.table.Row(m.row(line, columns, filler)...)
	}
	m.table.StyleFunc(style.TableStyler(m.selected-m.offset, m.activeCol))

	return m.table.Render()
}

// Screen renders the column dialog when open, otherwise the table.
func (m Model) Screen() string {
	if m.editing {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.editor.Render())
	}
	return m.Render()
}

// HelpView renders a one line key summary.
func (m Model) HelpView() string {
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m Model) View() tea.View {
	view := tea.NewView(m.Screen())
	view.MouseMode = tea.MouseModeCellMotion
	return view
}

// unexported

// withDefaults keeps columns, less any claiming the filler's field
func (m Model) withDefaults(columns []nt.Column) Model {

	m.defaults = slices.DeleteFunc(slices.Clone(columns), func(col nt.Column) bool {
		if !col.IsFiller() {
			return false
		}
		err := errors.Errorf("field %q is reserved", col.Field)
		m.logger.Error(m.ctx, "dropping default column", err)
		return true
	})
	return m
}

func (m Model) resolve() Model {

	final := layout.Resolve(m.defaults, m.facets)
	m.resizer = m.resizer.SetColumns(layout.Strip(final))

	count := len(final) - 1
	m.activeCol = max(0, min(m.activeCol, count-1))
	return m
}

func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {

	pageSize := max(1, m.PageSize())
	count := len(m.resizer.Columns())

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < m.total-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.PageUp):
		m.selected = max(0, m.selected-pageSize)

	case key.Matches(msg, m.keys.PageDown):
		m.selected = max(0, min(m.total-1, m.selected+pageSize))

	case key.Matches(msg, m.keys.Top):
		m.selected = 0

	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(0, m.total-1)

	case key.Matches(msg, m.keys.NextCol):
		if count > 0 {
			m.activeCol = (m.activeCol + 1) % count
		}

	case key.Matches(msg, m.keys.PrevCol):
		if count > 0 {
			m.activeCol = (m.activeCol - 1 + count) % count
		}

	case key.Matches(msg, m.keys.Grow):
		return m.resize(m.activeCol, 1)

	case key.Matches(msg, m.keys.Shrink):
		return m.resize(m.activeCol, -1)

	case key.Matches(msg, m.keys.More):
		m.pageSize++
		store.SetPageSize(m.port, m.key, m.pageSize)
		return m, message.GetPageCmd(m.offset, m.PageSize())

	case key.Matches(msg, m.keys.Fewer):
		if m.pageSize > 1 {
			m.pageSize--
			store.SetPageSize(m.port, m.key, m.pageSize)
		}
		return m.follow(max(1, m.PageSize()), true)

	case key.Matches(msg, m.keys.Columns):
		m.editor = editor.New(m.defaults, m.facets)
		m.editing = true
		return m, nil
	}

	return m.follow(pageSize, false)
}

// follow moves the page to keep the selected line visible
func (m Model) follow(pageSize int, force bool) (Model, tea.Cmd) {

	old := m.offset
	if m.selected < m.offset {
		m.offset = m.selected
	} else if m.selected >= m.offset+pageSize {
		m.offset = m.selected - pageSize + 1
	}

	if m.offset != old || force {
		return m, message.GetPageCmd(m.offset, m.PageSize())
	}
	return m, nil
}

func (m Model) resize(idx, delta int) (Model, tea.Cmd) {

	columns := m.resizer.Columns()
	if idx < 0 || idx >= len(columns) {
		return m, nil
	}

	var cmd tea.Cmd
	m.resizer, cmd = m.resizer.Resize(idx, columns[idx].Width+delta)
	m.syncWidth(idx)
	return m, cmd
}

// syncWidth keeps facets in step with the resizer so re-resolves keep widths
func (m *Model) syncWidth(idx int) {

	columns := m.resizer.Columns()
	if idx < 0 || idx >= len(columns) {
		return
	}

	widths := make(map[string]int, len(m.facets.Widths)+1)
	for field, width := range m.facets.Widths {
		widths[field] = width
	}
	widths[columns[idx].Field] = columns[idx].Width
	m.facets.Widths = widths
}

func (m Model) handleClick(mouse tea.Mouse) Model {

	if mouse.Button != tea.MouseLeft || mouse.Y != 0 {
		return m
	}

	start := 0
	for i, col := range m.resizer.Columns() {
		end := start + col.Width
		if mouse.X >= start && mouse.X < end {
			m.activeCol = i
			if mouse.X == end-1 {
				m.resizer = m.resizer.Begin(i, mouse.X)
			}
			break
		}
		start = end
	}
	return m
}

// fillerWidth stretches the filler over what the panel has left
func (m Model) fillerWidth(columns []nt.Column) int {

	used := 0
	for _, col := range columns {
		used += col.Width
	}
	return max(layout.Filler(columns).Width, m.width-used)
}

func (m *Model) setFields(fields []nt.Field) {

	m.fields = fields
	m.fieldIdx = make(map[string]int, len(fields))
	m.fieldTypes = make(map[string]string, len(fields))
	for i, field := range fields {
		m.fieldIdx[field.Name] = i
		m.fieldTypes[field.Name] = field.Type
	}
}

func (m Model) row(line nt.Line, columns []nt.Column, filler int) []string {

	row := make([]string, 0, len(columns)+1)
	for _, col := range columns {
		var text string
		idx, ok := m.fieldIdx[col.Field]
		if ok && idx < len(line.Values) {
			text = format(line.Values[idx], m.fieldTypes[col.Field], col.Format)
		}
		row = append(row, fit(text, col.Width))
	}
	if filler > 0 {
		row = append(row, strings.Repeat(" ", filler))
	}
	return row
}

// help

func headerCell(col nt.Column) string {
	if col.Width < 1 {
		return ""
	}
	return fit(col.Header(), col.Width-1) + style.HandleStyle.Render(handle)
}

func format(val nt.Value, fieldType, timeFmt string) string {
	if timeFmt != "" && strings.HasPrefix(fieldType, "TIMESTAMP") {
		t, err := val.Time()
		if err == nil {
			return t.Format(timeFmt)
		}
	}
	return val.String()
}

// fit truncates or pads text to exactly width cells
func fit(text string, width int) string {
	if width < 1 {
		return ""
	}
	text = strings.ReplaceAll(text, "\n", " ")
	return runewidth.FillRight(runewidth.Truncate(text, width, ellipsis), width)
}
