package table

import nt "colonnade/entity"

type TableMsg interface {
	isTableMsg()
}

func (SizeMsg) isTableMsg()        {}
func (PageMsg) isTableMsg()        {}
func (ScrollToTopMsg) isTableMsg() {}
func (ColumnsMsg) isTableMsg()     {}

// SizeMsg carries the panel size allotted to the table
type SizeMsg struct {
	Width  int
	Height int
}

// PageMsg carries a page of lines and the fields they are made of
type PageMsg struct {
	Fields []nt.Field
	Lines  []nt.Line
	Count  int
}

// ScrollToTopMsg asks the table to return to the first line
type ScrollToTopMsg struct{}

// ColumnsMsg carries new default columns
type ColumnsMsg struct {
	Columns []nt.Column
}
