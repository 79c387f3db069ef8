package colonnade

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"colonnade/style"
)

// RenderFooter renders a footer with metadata about the table.
func RenderFooter(current, total int, name string, width int) string {

	left := fmt.Sprintf("%d/%d", current, total)
	right := name

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}
