package client

import "sync"

// RefreshSignal coordinates staleness between views that each cache their
// own last-fetched snapshot. It is a single shared flag, not per-view or
// per-date: a write to any date can cause a refetch of a view showing a
// different one. Over-fetching is safe, under-fetching risks staleness.
type RefreshSignal struct {
	mu    sync.Mutex
	dirty bool
}

func NewRefreshSignal() *RefreshSignal {
	return &RefreshSignal{}
}

// Mark records that server-side data changed. Called once per successful
// mutating operation.
func (signal *RefreshSignal) Mark() {
	signal.mu.Lock()
	defer signal.mu.Unlock()
	signal.dirty = true
}

// ShouldRefetch is called by a view on activation. A dirty flag is consumed
// exactly once. A view that has never loaded refetches regardless of the
// flag; a view with a prior snapshot reuses it when the flag is clean.
func (signal *RefreshSignal) ShouldRefetch(viewLoaded bool) bool {
	signal.mu.Lock()
	defer signal.mu.Unlock()
	if signal.dirty {
		signal.dirty = false
		return true
	}
	return !viewLoaded
}
