// Package memo provides an in-memory medium.
package memo

import (
	"maps"
	"sync"
)

// Memo is an in-memory Medium, handy for tests and throwaway sessions.
type Memo struct {
	mu    sync.Mutex
	items map[string]string
}

func New() *Memo {
	return &Memo{
		items: map[string]string{},
	}
}

// GetItem returns the item stored under name.
func (mm *Memo) GetItem(name string) (value string, ok bool, err error) {

	mm.mu.Lock()
	defer mm.mu.Unlock()

	value, ok = mm.items[name]
	return
}

// SetItem stores an item under name.
func (mm *Memo) SetItem(name, value string) (err error) {

	mm.mu.Lock()
	defer mm.mu.Unlock()

	mm.items[name] = value
	return
}

// Items returns a copy of everything stored.
func (mm *Memo) Items() map[string]string {

	mm.mu.Lock()
	defer mm.mu.Unlock()

	return maps.Clone(mm.items)
}
