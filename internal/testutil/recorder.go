package testutil

import (
	"sync"

	"github.com/atomicstack/scenetui/internal/event"
)

// Recorder captures the contexts passed to a listener.
type Recorder struct {
	mu    sync.Mutex
	calls []event.Context
}

// Listener returns a callback that records into r.
func (r *Recorder) Listener() event.Listener {
	return func(ctx event.Context) {
		r.mu.Lock()
		r.calls = append(r.calls, ctx)
		r.mu.Unlock()
	}
}

// Calls returns the recorded contexts in call order.
func (r *Recorder) Calls() []event.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.Context(nil), r.calls...)
}

// Count returns how many calls were recorded.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}
