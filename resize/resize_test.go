package resize

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "colonnade/entity"
	"colonnade/store"
	"colonnade/store/memo"
)

// countingMedium counts writes through to a memo
type countingMedium struct {
	*memo.Memo
	writes int
}

func (cm *countingMedium) SetItem(name, value string) error {
	cm.writes++
	return cm.Memo.SetItem(name, value)
}

func setup(t *testing.T) (Controller, *countingMedium, store.Port) {
	t.Helper()

	cm := &countingMedium{Memo: memo.New()}
	port := store.New(context.Background(), cm, nil)
	columns := []nt.Column{
		{Field: "a", Width: 10},
		{Field: "b", Width: 20},
	}
	return New(port, "k", columns), cm, port
}

func TestResizeUpdatesImmediately(t *testing.T) {
	ctl, cm, _ := setup(t)
	before := ctl.Columns()

	ctl, cmd := ctl.Resize(1, 35)

	assert.NotNil(t, cmd)
	assert.Equal(t, 35, ctl.Columns()[1].Width)
	assert.Equal(t, 20, before[1].Width, "earlier snapshot untouched")
	assert.Zero(t, cm.writes, "nothing written before the debounce")
}

func TestResizeBurstWritesOnce(t *testing.T) {
	ctl, cm, port := setup(t)

	var flushes []FlushMsg
	for width := 21; width <= 25; width++ {
		ctl, _ = ctl.Resize(0, width)
		flushes = append(flushes, FlushMsg{Key: "k", Seq: ctl.seq})
	}

	for _, msg := range flushes {
		ctl, _ = ctl.Update(msg)
	}

	assert.Equal(t, 1, cm.writes)
	assert.Equal(t, map[string]int{"a": 25, "b": 20}, store.Widths(port, "k"))
}

func TestFlushCmdFires(t *testing.T) {
	ctl, cm, port := setup(t)
	ctl = ctl.WithDelay(time.Millisecond)

	ctl, cmd := ctl.Resize(0, 12)
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, FlushMsg{}, msg)

	ctl, _ = ctl.Update(msg)
	assert.Equal(t, 1, cm.writes)
	assert.Equal(t, 12, store.Widths(port, "k")["a"])
}

func TestFlushIgnoresOtherKeys(t *testing.T) {
	ctl, cm, _ := setup(t)

	ctl, _ = ctl.Resize(0, 12)
	ctl, _ = ctl.Update(FlushMsg{Key: "other", Seq: ctl.seq})

	assert.Zero(t, cm.writes)
}

func TestCloseCancelsPending(t *testing.T) {
	ctl, cm, _ := setup(t)

	ctl, _ = ctl.Resize(0, 12)
	seq := ctl.seq
	ctl = ctl.Close()
	ctl, _ = ctl.Update(FlushMsg{Key: "k", Seq: seq})

	assert.Zero(t, cm.writes)

	ctl, cmd := ctl.Resize(0, 40)
	assert.Nil(t, cmd)
	assert.Equal(t, 12, ctl.Columns()[0].Width)
}

func TestFlushKeepsHiddenWidths(t *testing.T) {
	ctl, _, port := setup(t)
	store.SetWidths(port, "k", map[string]int{"hidden": 44, "a": 1})

	ctl, _ = ctl.Resize(1, 22)
	ctl, _ = ctl.Update(FlushMsg{Key: "k", Seq: ctl.seq})

	assert.Equal(t, map[string]int{"hidden": 44, "a": 10, "b": 22}, store.Widths(port, "k"))
}

func TestDrag(t *testing.T) {
	ctl, _, _ := setup(t)

	_, ok := ctl.Dragging()
	assert.False(t, ok)

	ctl = ctl.Begin(1, 29)
	idx, ok := ctl.Dragging()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	ctl, cmd := ctl.Drag(35)
	assert.NotNil(t, cmd)
	assert.Equal(t, 26, ctl.Columns()[1].Width)

	ctl, _ = ctl.Drag(0)
	assert.Equal(t, MinWidth, ctl.Columns()[1].Width)

	ctl = ctl.End()
	ctl, cmd = ctl.Drag(50)
	assert.Nil(t, cmd)
	assert.Equal(t, MinWidth, ctl.Columns()[1].Width)
}

func TestResizeOutOfRange(t *testing.T) {
	ctl, _, _ := setup(t)

	ctl, cmd := ctl.Resize(2, 10)
	assert.Nil(t, cmd)

	ctl = ctl.Begin(-1, 0)
	_, ok := ctl.Dragging()
	assert.False(t, ok)
}

func TestSetColumnsEndsDrag(t *testing.T) {
	ctl, _, _ := setup(t)

	ctl = ctl.Begin(0, 5)
	ctl = ctl.SetColumns([]nt.Column{{Field: "b", Width: 20}})

	_, ok := ctl.Dragging()
	assert.False(t, ok)
	assert.Equal(t, []string{"b"}, nt.Fields(ctl.Columns()))
}
