package choreo

import "sync"

// Registry tracks the live handles of one Choreographer. A handle is in
// the registry exactly while its schedule has started and has neither
// completed nor been cancelled.
//
// The registry is owned by a single Choreographer and not meant for
// concurrent mutation from multiple goroutines; the mutex exists so
// completion callbacks arriving from an engine's frame loop stay safe.
type Registry struct {
	mu   sync.Mutex
	live map[Handle]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[Handle]struct{})}
}

// Register adds a handle to the live set. Registering a handle that is
// already present is a no-op, never a fault.
func (r *Registry) Register(handle Handle) {
	if handle == nil {
		return
	}
	r.mu.Lock()
	r.live[handle] = struct{}{}
	r.mu.Unlock()
}

// Remove drops a handle without cancelling it. This is the completion
// hook: the Choreographer wires it into every schedule's completion
// path so naturally finished flights never leak registry entries.
func (r *Registry) Remove(handle Handle) {
	r.mu.Lock()
	delete(r.live, handle)
	r.mu.Unlock()
}

// Cancel cancels and removes a handle if it is live. Cancelling an
// unknown or already terminal handle is a silent no-op, so redundant
// cancellation never double-cancels.
func (r *Registry) Cancel(handle Handle) {
	r.mu.Lock()
	_, live := r.live[handle]
	if live {
		delete(r.live, handle)
	}
	r.mu.Unlock()

	if live {
		handle.Cancel()
	}
}

// CancelAll cancels every live handle and empties the set. Safe on an
// empty registry.
//
// The live set is snapshotted and cleared before any handle is
// cancelled, so a completion callback firing mid-cancel (or a cancel
// that reenters the registry) sees consistent state instead of
// corrupting the iteration.
func (r *Registry) CancelAll() {
	r.mu.Lock()
	if len(r.live) == 0 {
		r.mu.Unlock()
		return
	}
	handles := make([]Handle, 0, len(r.live))
	for handle := range r.live {
		handles = append(handles, handle)
	}
	r.live = make(map[Handle]struct{})
	r.mu.Unlock()

	for _, handle := range handles {
		handle.Cancel()
	}
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}
