// Package detail shows every field of one line, hidden columns included.
package detail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"

	nt "colonnade/entity"
	"colonnade/style"
)

// Panel handles the full record view of a line.
type Panel struct {
	contentLines []string // Rendered content split into lines (cached)

	width  int
	height int
	offset int // Line offset for scrolling content
}

func New() Panel {
	return Panel{}
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {

	case LineMsg:
		pnl.contentLines = render(msg.Fields, msg.Line)
		pnl.offset = 0

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.offset = 0

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if pnl.offset > 0 {
				pnl.offset--
			}

		case "down", "j":
			// Only allow scrolling if content exceeds viewport
			if pnl.height > 0 && pnl.offset < len(pnl.contentLines)-pnl.height {
				pnl.offset++
			}
		}
	}

	return pnl, nil
}

// Render renders the visible portion of the record.
func (pnl Panel) Render() string {

	if pnl.contentLines == nil {
		return style.MutedStyle.Render("No line selected")
	}

	visible := pnl.contentLines[pnl.offset:]
	if pnl.height > 0 && len(visible) > pnl.height {
		visible = visible[:pnl.height]
	}

	if pnl.width > 0 {
		cut := make([]string, len(visible))
		for i, line := range visible {
			cut[i] = runewidth.Truncate(line, pnl.width, "…")
		}
		visible = cut
	}

	return strings.Join(visible, "\n")
}

// unexported

// render lists fields in source order, with embedded json pretty-printed
func render(fields []nt.Field, line nt.Line) (contentLines []string) {

	pad := 0
	for _, field := range fields {
		pad = max(pad, runewidth.StringWidth(field.Name))
	}

	for i, field := range fields {
		var val nt.Value
		if i < len(line.Values) {
			val = line.Values[i]
		}

		name := style.HeaderStyle.Render(runewidth.FillRight(field.Name, pad))
		text := strings.Split(prettyJson(val.String()), "\n")

		contentLines = append(contentLines, fmt.Sprintf("%s  %s", name, text[0]))
		for _, more := range text[1:] {
			contentLines = append(contentLines, strings.Repeat(" ", pad+2)+more)
		}
	}

	return
}

// prettyJson indents text that holds a json object or array
func prettyJson(text string) string {

	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return text
	}

	var buf bytes.Buffer
	err := json.Indent(&buf, []byte(trimmed), "", "  ")
	if err != nil {
		return text
	}
	return buf.String()
}
