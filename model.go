package colonnade

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"colonnade/detail"
	nt "colonnade/entity"
	"colonnade/message"
	"colonnade/store"
	"colonnade/style"
	"colonnade/table"
)

const (
	footerHeight = 2 // Help line + status line
)

// Model is the bubbletea model for the table viewer.
type Model struct {
	source      Source
	logger      nt.Logger
	ctx         context.Context
	errorString string

	screen Screen
	reload func() ([]nt.Column, error)

	Table  table.Model
	Detail detail.Panel

	width  int
	height int
}

// NewModel creates a new bt model.
func NewModel(ctx context.Context, source Source, port store.Port, props table.Props, lgr nt.Logger) Model {

	if lgr == nil {
		lgr = nt.Discard
	}

	return Model{
		source: source,
		logger: lgr,
		ctx:    ctx,
		screen: TableScreen,
		Table:  table.New(ctx, port, props, lgr),
		Detail: detail.New(),
	}
}

// WithReload sets where default columns are reloaded from on "r".
func (m Model) WithReload(reload func() ([]nt.Column, error)) Model {
	m.reload = reload
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.GetPageMsg:
		return m, m.getPage(msg.Offset, msg.Size)

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case tea.KeyPressMsg:
		m.errorString = ""

		if msg.String() == "ctrl+c" {
			return m.quit()
		}

		if m.screen == DetailScreen {
			switch msg.String() {
			case "esc", "left", "h", "q":
				m.screen = TableScreen
				return m, nil
			}
			m.Detail, _ = m.Detail.Update(msg)
			return m, nil
		}

		if !m.Table.Editing() {
			switch msg.String() {
			case "q", "esc":
				return m.quit()
			case "enter", "right", "l":
				return m.showLine()
			case "r":
				return m, m.reloadColumns()
			}
		}

	case tea.MouseClickMsg, tea.MouseMotionMsg:
		// the table is hidden behind the record view
		if m.screen == DetailScreen {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		var cmd tea.Cmd
		m.Table, cmd = m.Table.Update(table.SizeMsg{Width: msg.Width, Height: msg.Height - footerHeight})
		m.Detail, _ = m.Detail.Update(detail.SizeMsg{Width: msg.Width, Height: msg.Height - footerHeight})
		return m, cmd
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	if m.width == 0 {
		return tea.NewView("Loading...")
	}

	var content string
	switch m.screen {
	case DetailScreen:
		content = m.Detail.Render()
	default:
		content = m.Table.Screen()
	}
	content = lipgloss.Place(m.width, max(0, m.height-footerHeight), lipgloss.Left, lipgloss.Top, content)

	selected, total := m.Table.Selected()
	current := selected + 1
	if total == 0 {
		current = 0
	}

	status := RenderFooter(current, total, m.source.Name(), m.width)
	if m.errorString != "" {
		status = style.ErrorStyle.Render(m.errorString)
	}

	view := tea.NewView(lipgloss.JoinVertical(lipgloss.Left, content, m.Table.HelpView(), status))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	return view
}
