package command

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atomicstack/scenetui/internal/logging/events"
)

// DefaultCapacity is the number of commands a bus buffers before senders
// are turned away.
const DefaultCapacity = 100

var (
	// ErrQueueFull reports that the loop has not caught up yet. The command
	// was not queued; the caller may retry.
	ErrQueueFull = errors.New("command queue full")
	// ErrClosed reports that the bus no longer accepts commands.
	ErrClosed = errors.New("command bus closed")
)

// Bus carries commands from any goroutine to the owning loop. Sends never
// block.
type Bus struct {
	mu     sync.RWMutex
	ch     chan Command
	closed bool
}

// New returns a bus buffering up to capacity commands. Non-positive values
// select DefaultCapacity.
func New(capacity int) *Bus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bus{ch: make(chan Command, capacity)}
}

// TrySend queues cmd, failing fast when the bus is full or closed.
func (b *Bus) TrySend(cmd Command) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return b.reject(cmd, ErrClosed)
	}
	select {
	case b.ch <- cmd:
		events.Command.Queued(cmd.Name(), cmd.Target())
		return nil
	default:
		return b.reject(cmd, ErrQueueFull)
	}
}

func (b *Bus) reject(cmd Command, err error) error {
	events.Command.Rejected(cmd.Name(), cmd.Target(), err)
	return fmt.Errorf("%s %q: %w", cmd.Name(), cmd.Target(), err)
}

// Commands is the receive side, read by the loop. It is closed by Close
// once already queued commands have been read.
func (b *Bus) Commands() <-chan Command {
	return b.ch
}

// Len returns the number of queued commands.
func (b *Bus) Len() int {
	return len(b.ch)
}

// Close stops accepting commands. Safe to call more than once.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.ch)
}

// Closed reports whether Close has been called.
func (b *Bus) Closed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.closed
}
