package editor

type EditorMsg interface {
	isEditorMsg()
}

func (ReorderMsg) isEditorMsg() {}
func (ConfirmMsg) isEditorMsg() {}
func (ResetMsg) isEditorMsg()   {}
func (CancelMsg) isEditorMsg()  {}

// ReorderMsg carries the order after a move, hidden fields included
type ReorderMsg struct {
	Order []string
}

// ConfirmMsg carries the order and checked fields to be committed
type ConfirmMsg struct {
	Order   []string
	Visible []string
}

// ResetMsg asks for default order and full visibility
type ResetMsg struct{}

// CancelMsg asks to close without committing
type CancelMsg struct{}
