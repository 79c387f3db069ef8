// Package resize tracks column widths under drag and flushes them, debounced.
package resize

import (
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"

	nt "colonnade/entity"
	"colonnade/store"
)

const (
	// DefaultDelay is the quiet period before widths are written
	DefaultDelay = 300 * time.Millisecond
	// MinWidth keeps a column grabbable
	MinWidth = 1
)

// Controller owns the resolved columns of one table while they are resized.
// Every resize schedules a flush tagged with a fresh sequence number;
// only the flush carrying the latest number writes, so a burst of resizes
// yields a single write of the last widths.
type Controller struct {
	columns []nt.Column
	port    store.Port
	key     string
	delay   time.Duration

	seq    int
	drag   drag
	closed bool
}

type drag struct {
	active bool
	col    int
	startX int
	startW int
}

func New(port store.Port, key string, columns []nt.Column) Controller {
	return Controller{
		columns: slices.Clone(columns),
		port:    port,
		key:     key,
		delay:   DefaultDelay,
	}
}

// WithDelay returns the controller with a different debounce delay.
func (ctl Controller) WithDelay(delay time.Duration) Controller {
	ctl.delay = delay
	return ctl
}

// Columns returns the current columns.
func (ctl Controller) Columns() []nt.Column {
	return ctl.columns
}

// SetColumns replaces the columns after a re-resolve, ending any drag.
// A pending flush stays pending and writes the new widths.
func (ctl Controller) SetColumns(columns []nt.Column) Controller {
	ctl.columns = slices.Clone(columns)
	ctl.drag = drag{}
	return ctl
}

// Resize sets the width of column idx and schedules a flush.
func (ctl Controller) Resize(idx, width int) (Controller, tea.Cmd) {

	if ctl.closed || idx < 0 || idx >= len(ctl.columns) {
		return ctl, nil
	}
	width = max(MinWidth, width)

	columns := slices.Clone(ctl.columns)
	columns[idx].Width = width
	ctl.columns = columns

	ctl.seq++
	return ctl, ctl.flushCmd()
}

// Begin starts dragging column idx from screen position x.
func (ctl Controller) Begin(idx, x int) Controller {

	if ctl.closed || idx < 0 || idx >= len(ctl.columns) {
		return ctl
	}

	ctl.drag = drag{
		active: true,
		col:    idx,
		startX: x,
		startW: ctl.columns[idx].Width,
	}
	return ctl
}

// Drag resizes the dragged column to follow x.
func (ctl Controller) Drag(x int) (Controller, tea.Cmd) {

	if !ctl.drag.active {
		return ctl, nil
	}
	return ctl.Resize(ctl.drag.col, ctl.drag.startW+x-ctl.drag.startX)
}

// End finishes a drag.
func (ctl Controller) End() Controller {
	ctl.drag = drag{}
	return ctl
}

// Dragging returns the dragged column, if any.
func (ctl Controller) Dragging() (idx int, ok bool) {
	return ctl.drag.col, ctl.drag.active
}

// Close cancels any pending flush; the controller ignores further resizes.
func (ctl Controller) Close() Controller {
	ctl.closed = true
	ctl.drag = drag{}
	return ctl
}

// Update writes widths when the latest flush comes due.
func (ctl Controller) Update(msg tea.Msg) (Controller, tea.Cmd) {

	switch msg := msg.(type) {
	case FlushMsg:
		if msg.Key != ctl.key || msg.Seq != ctl.seq || ctl.closed {
			return ctl, nil
		}
		ctl.flush()
	}

	return ctl, nil
}

// unexported

func (ctl Controller) flushCmd() tea.Cmd {

	key, seq := ctl.key, ctl.seq
	return tea.Tick(ctl.delay, func(time.Time) tea.Msg {
		return FlushMsg{Key: key, Seq: seq}
	})
}

// flush writes current widths over saved ones, keeping those of hidden columns
func (ctl Controller) flush() {

	widths := store.Widths(ctl.port, ctl.key)
	for _, col := range ctl.columns {
		if col.Field == "" || col.IsFiller() {
			continue
		}
		widths[col.Field] = col.Width
	}

	store.SetWidths(ctl.port, ctl.key, widths)
}
