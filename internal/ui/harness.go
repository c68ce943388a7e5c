package ui

import (
	"github.com/atomicstack/scenetui/internal/event"
	"github.com/atomicstack/scenetui/internal/testutil"
)

// Harness drives a loop one iteration at a time against an in-memory
// terminal and scripted input, for tests.
type Harness struct {
	Loop     *Loop
	Doc      *Document
	Terminal *testutil.Terminal
	Input    *testutil.Input
}

// NewHarness builds an unpaced loop on a width x height terminal.
func NewHarness(width, height int, opts Options) *Harness {
	terminal := testutil.NewTerminal(width, height)
	input := testutil.NewInput()
	opts.FrameInterval = -1
	loop, doc := New(terminal, input, opts)
	return &Harness{Loop: loop, Doc: doc, Terminal: terminal, Input: input}
}

// Step runs one iteration.
func (h *Harness) Step() bool {
	return h.Loop.Step()
}

// Send scripts raw input and runs one iteration to consume it.
func (h *Harness) Send(inputs ...event.Input) bool {
	h.Input.Push(inputs...)
	return h.Step()
}

// Click presses the left button at (x, y) and runs one iteration.
func (h *Harness) Click(x, y int) bool {
	return h.Send(event.Mouse{X: x, Y: y, Kind: event.MouseDown, Button: event.ButtonLeft})
}

// View returns the most recent frame's text.
func (h *Harness) View() string {
	return h.Terminal.LastFrame()
}

// Drain returns every raw event forwarded so far without blocking.
func (h *Harness) Drain() []event.Input {
	var out []event.Input
	for {
		select {
		case in, ok := <-h.Doc.Events():
			if !ok {
				return out
			}
			out = append(out, in)
		default:
			return out
		}
	}
}
