package testutil

import (
	"sync"

	"github.com/atomicstack/scenetui/internal/event"
)

// Input is a scripted input source. Poll never blocks.
type Input struct {
	mu    sync.Mutex
	queue []event.Input
	err   error
}

// NewInput returns a source that yields events in order.
func NewInput(events ...event.Input) *Input {
	return &Input{queue: append([]event.Input(nil), events...)}
}

// Push appends events to the script.
func (in *Input) Push(events ...event.Input) {
	in.mu.Lock()
	in.queue = append(in.queue, events...)
	in.mu.Unlock()
}

// FailNext makes the next Poll return err.
func (in *Input) FailNext(err error) {
	in.mu.Lock()
	in.err = err
	in.mu.Unlock()
}

// Pending reports how many scripted events remain.
func (in *Input) Pending() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.queue)
}

// Poll implements backend.InputSource.
func (in *Input) Poll() (event.Input, bool, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.err != nil {
		err := in.err
		in.err = nil
		return nil, false, err
	}
	if len(in.queue) == 0 {
		return nil, false, nil
	}
	next := in.queue[0]
	in.queue = in.queue[1:]
	return next, true, nil
}
