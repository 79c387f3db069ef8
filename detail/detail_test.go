package detail

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	nt "colonnade/entity"
)

var (
	fields = []nt.Field{{Name: "msg"}, {Name: "port"}, {Name: "attrs"}}
	line   = nt.Line{Values: []nt.Value{{Raw: "hello"}, {Raw: 8080}, {Raw: `{"a":1,"b":[2]}`}}}
)

func TestRender(t *testing.T) {
	pnl := New()
	assert.Contains(t, pnl.Render(), "No line selected")

	pnl, _ = pnl.Update(LineMsg{Fields: fields, Line: line})

	out := pnl.Render()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "8080")
	assert.Contains(t, out, `"a": 1,`)
	assert.Len(t, pnl.contentLines, 8)
}

func TestScroll(t *testing.T) {
	pnl := New()
	pnl, _ = pnl.Update(SizeMsg{Width: 40, Height: 4})
	pnl, _ = pnl.Update(LineMsg{Fields: fields, Line: line})

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	for range 10 {
		pnl, _ = pnl.Update(down)
	}
	assert.Equal(t, 4, pnl.offset)

	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 3, pnl.offset)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "plain", prettyJson("plain"))
	assert.Equal(t, "{broken", prettyJson("{broken"))
	assert.Equal(t, "[\n  1\n]", prettyJson("[1]"))
}

func TestMissingValues(t *testing.T) {
	lines := render(fields, nt.Line{Values: []nt.Value{{Raw: "only"}}})
	assert.Len(t, lines, 3)
}
