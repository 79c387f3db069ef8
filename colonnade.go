// Package colonnade pages lines from a source through a table whose column
// widths, visibility and order are adjustable and remembered.
package colonnade

import (
	nt "colonnade/entity"
)

// Source specifies a backing source of lines.
type Source interface {
	// Name returns the name of the data source
	Name() string
	// Fields returns the fields lines are made of, in value order
	Fields() (fields []nt.Field, err error)
	// Count returns the number of lines
	Count() (count int, err error)
	// GetPage of lines
	GetPage(offset, size int) (lines []nt.Line, err error)
}
