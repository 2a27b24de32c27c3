package choreo

import "testing"

// stubHandle counts cancellations so tests can assert on exactly-once
// semantics.
type stubHandle struct {
	cancels  int
	onCancel func()
}

func (h *stubHandle) Cancel() {
	h.cancels++
	if h.onCancel != nil {
		h.onCancel()
	}
}

func TestRegistry_RegisterIsIdempotent(t *testing.T) {
	r := NewRegistry()
	h := &stubHandle{}

	r.Register(h)
	r.Register(h)

	if r.Len() != 1 {
		t.Errorf("Len = %d after duplicate register, want 1", r.Len())
	}
}

func TestRegistry_RegisterNil(t *testing.T) {
	r := NewRegistry()

	r.Register(nil)
	if r.Len() != 0 {
		t.Errorf("Len = %d after nil register, want 0", r.Len())
	}
}

func TestRegistry_CancelRemovesAndCancels(t *testing.T) {
	r := NewRegistry()
	h := &stubHandle{}
	r.Register(h)

	r.Cancel(h)

	if h.cancels != 1 {
		t.Errorf("handle cancelled %d times, want 1", h.cancels)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d after cancel, want 0", r.Len())
	}
}

func TestRegistry_CancelUnknownIsNoOp(t *testing.T) {
	r := NewRegistry()
	h := &stubHandle{}

	// Never registered: must not be cancelled.
	r.Cancel(h)
	if h.cancels != 0 {
		t.Errorf("unknown handle cancelled %d times, want 0", h.cancels)
	}
}

func TestRegistry_CancelAll(t *testing.T) {
	r := NewRegistry()
	handles := []*stubHandle{{}, {}, {}}
	for _, h := range handles {
		r.Register(h)
	}

	r.CancelAll()

	if r.Len() != 0 {
		t.Fatalf("Len = %d after CancelAll, want 0", r.Len())
	}
	for i, h := range handles {
		if h.cancels != 1 {
			t.Errorf("handle %d cancelled %d times, want 1", i, h.cancels)
		}
	}

	// Terminal handles stay terminal: repeating the cancels must not
	// reach the handles again.
	r.CancelAll()
	for _, h := range handles {
		r.Cancel(h)
	}
	for i, h := range handles {
		if h.cancels != 1 {
			t.Errorf("handle %d cancelled %d times after redundant cancels, want 1", i, h.cancels)
		}
	}
}

func TestRegistry_CancelAllEmpty(t *testing.T) {
	r := NewRegistry()

	// Must not fault on an empty set.
	r.CancelAll()
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestRegistry_RemoveOnCompletion(t *testing.T) {
	r := NewRegistry()
	h := &stubHandle{}
	r.Register(h)

	// Natural completion removes without cancelling.
	r.Remove(h)

	if h.cancels != 0 {
		t.Errorf("completed handle cancelled %d times, want 0", h.cancels)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d after completion removal, want 0", r.Len())
	}
}

func TestRegistry_ReentrantCancelAll(t *testing.T) {
	// A handle whose cancel reenters the registry must not deadlock or
	// double-cancel its peers.
	r := NewRegistry()
	peer := &stubHandle{}
	reentrant := &stubHandle{}
	reentrant.onCancel = func() {
		r.CancelAll()
		r.Cancel(peer)
	}
	r.Register(peer)
	r.Register(reentrant)

	r.CancelAll()

	if peer.cancels != 1 {
		t.Errorf("peer cancelled %d times, want 1", peer.cancels)
	}
	if reentrant.cancels != 1 {
		t.Errorf("reentrant handle cancelled %d times, want 1", reentrant.cancels)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestRegistry_CompletionDuringCancelAll(t *testing.T) {
	// A completion callback firing while CancelAll runs removes its own
	// handle; the snapshot keeps the iteration intact.
	r := NewRegistry()
	other := &stubHandle{}
	completing := &stubHandle{}
	completing.onCancel = func() {
		r.Remove(other)
	}
	r.Register(completing)
	r.Register(other)

	r.CancelAll()

	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}
