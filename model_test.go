package colonnade

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "colonnade/entity"
	"colonnade/message"
	"colonnade/store"
	"colonnade/store/memo"
	"colonnade/table"
)

type fakeSource struct {
	lines []nt.Line
	err   error
}

func (fs *fakeSource) Name() string { return "fake.log" }

func (fs *fakeSource) Fields() ([]nt.Field, error) {
	return []nt.Field{{Name: "level"}, {Name: "msg"}}, nil
}

func (fs *fakeSource) Count() (int, error) {
	return len(fs.lines), nil
}

func (fs *fakeSource) GetPage(offset, size int) ([]nt.Line, error) {
	if fs.err != nil {
		return nil, fs.err
	}
	end := min(len(fs.lines), offset+size)
	return fs.lines[min(offset, end):end], nil
}

func newModel(t *testing.T, source Source) Model {
	t.Helper()

	port := store.New(context.Background(), memo.New(), nil)
	return NewModel(context.Background(), source, port, table.Props{
		Columns: []nt.Column{
			{Field: "level", Width: 8},
			{Field: "msg", Title: "Message", Width: 30},
		},
		ShowColumnConfig: true,
	}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// run feeds msg and the messages its commands produce back through the model
func run(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	for range 5 {
		var cmd tea.Cmd
		m, cmd = update(t, m, msg)
		if cmd == nil {
			return m
		}
		msg = cmd()
	}
	return m
}

var source = &fakeSource{
	lines: []nt.Line{
		{Id: "1", Values: []nt.Value{{Raw: "info"}, {Raw: "starting"}}},
		{Id: "2", Values: []nt.Value{{Raw: "warn"}, {Raw: `{"slow":true}`}}},
		{Id: "3", Values: []nt.Value{{Raw: "info"}, {Raw: "done"}}},
	},
}

func TestPagesOnResize(t *testing.T) {
	m := newModel(t, source)

	m = run(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	selected, total := m.Table.Selected()
	assert.Zero(t, selected)
	assert.Equal(t, 3, total)

	out := m.Table.Screen()
	assert.Contains(t, out, "Message")
	assert.Contains(t, out, "starting")
	assert.Contains(t, out, "done")
}

func TestDetailScreen(t *testing.T) {
	m := newModel(t, source)
	m = run(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, DetailScreen, m.screen)
	assert.Contains(t, m.Detail.Render(), `"slow": true`)

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, TableScreen, m.screen)
}

func TestErrorShown(t *testing.T) {
	m := newModel(t, &fakeSource{err: errors.New("oops")})

	m = run(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.errorString, "oops")

	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Empty(t, m.errorString)
}

func TestQuit(t *testing.T) {
	m := newModel(t, source)

	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEscapeClosesDialogFirst(t *testing.T) {
	m := newModel(t, source)
	m = run(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = update(t, m, tea.KeyPressMsg{Code: 'c', Text: "c"})
	require.True(t, m.Table.Editing())

	m = run(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, m.Table.Editing())
}

func TestGetPageRelay(t *testing.T) {
	m := newModel(t, source)

	_, cmd := update(t, m, message.GetPageMsg{Offset: 2, Size: 5})
	require.NotNil(t, cmd)

	page, ok := cmd().(table.PageMsg)
	require.True(t, ok)
	assert.Equal(t, 3, page.Count)
	require.Len(t, page.Lines, 1)
	assert.Equal(t, "3", page.Lines[0].Id)
}

func TestRenderFooter(t *testing.T) {
	footer := RenderFooter(2, 10, "app.log", 30)
	assert.Contains(t, footer, "2/10")
	assert.Contains(t, footer, "app.log")
}

func TestMouseIgnoredUnderDetail(t *testing.T) {
	m := newModel(t, source)
	m = run(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, DetailScreen, m.screen)

	// last cell of the level header holds its handle
	m, cmd := update(t, m, tea.MouseClickMsg{X: 7, Y: 0, Button: tea.MouseLeft})
	assert.Nil(t, cmd)
	m, cmd = update(t, m, tea.MouseMotionMsg{X: 17, Y: 0})
	assert.Nil(t, cmd)

	assert.Equal(t, 8, m.Table.Columns()[0].Width)

	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m, _ = update(t, m, tea.MouseClickMsg{X: 7, Y: 0, Button: tea.MouseLeft})
	m, cmd = update(t, m, tea.MouseMotionMsg{X: 17, Y: 0})
	assert.NotNil(t, cmd)
	assert.Equal(t, 18, m.Table.Columns()[0].Width)
}

func TestReloadColumns(t *testing.T) {
	m := newModel(t, source)

	m = run(t, m, tea.KeyPressMsg{Code: 'r', Text: "r"})
	assert.Equal(t, []string{"level", "msg", "empty"}, nt.Fields(m.Table.Columns()))

	m = m.WithReload(func() ([]nt.Column, error) {
		return []nt.Column{{Field: "msg", Width: 12}}, nil
	})
	m = run(t, m, tea.KeyPressMsg{Code: 'r', Text: "r"})
	assert.Equal(t, []string{"msg", "empty"}, nt.Fields(m.Table.Columns()))

	m = m.WithReload(func() ([]nt.Column, error) {
		return nil, errors.New("bad layout")
	})
	m = run(t, m, tea.KeyPressMsg{Code: 'r', Text: "r"})
	assert.Equal(t, "bad layout", m.errorString)
	assert.Equal(t, []string{"msg", "empty"}, nt.Fields(m.Table.Columns()))
}
