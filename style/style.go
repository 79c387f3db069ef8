package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HeaderStyle       = lipgloss.NewStyle().Bold(true)
	ActiveHeaderStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("237")) // Column being resized
	HlRowStyle        = lipgloss.NewStyle().Background(lipgloss.Color("235"))            // Very subtle warm grey row
	MutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))            // Warm muted grey text
	HandleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	SelectedStyle     = lipgloss.NewStyle().Background(lipgloss.Color("240"))
	ErrorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	UnStyle           = lipgloss.NewStyle()

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

// TableStyler returns a StyleFunc highlighting the selected row and the
// header of the active column; pass -1 for none.
func TableStyler(selectedRow, activeCol int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow && col == activeCol:
			return ActiveHeaderStyle
		case row == table.HeaderRow:
			return HeaderStyle
		case row == selectedRow:
			return HlRowStyle
		}
		return UnStyle
	}
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).    // Disable top border
		BorderBottom(false). // Disable bottom border
		BorderLeft(false).   // Disable left border
		BorderRight(false).  // Disable right border
		BorderColumn(false). // Disable column separators
		BorderStyle(TableBorderStyle)
}
