// ABOUTME: Holder publishes the live index with an atomic pointer swap
// ABOUTME: Readers never observe a partially rebuilt index
package index

import "sync/atomic"

// Holder owns the reference to the currently served Index. Rebuilds construct
// a complete replacement off to the side and publish it with Swap; concurrent
// readers keep using whichever index they loaded.
type Holder struct {
	current atomic.Pointer[Index]
}

// NewHolder creates a Holder serving ix, or an empty index when ix is nil.
func NewHolder(ix *Index) *Holder {
	h := &Holder{}
	if ix == nil {
		ix = New()
	}
	h.current.Store(ix)
	return h
}

// Load returns the currently published index. Never nil.
func (h *Holder) Load() *Index {
	return h.current.Load()
}

// Swap publishes ix as the new live index.
func (h *Holder) Swap(ix *Index) {
	if ix == nil {
		ix = New()
	}
	h.current.Store(ix)
}
