package detail

import nt "colonnade/entity"

type DetailMsg interface {
	isDetailMsg()
}

func (SizeMsg) isDetailMsg() {}
func (LineMsg) isDetailMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

// LineMsg carries the line to show and the fields it is made of
type LineMsg struct {
	Fields []nt.Field
	Line   nt.Line
}
