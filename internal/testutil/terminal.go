package testutil

import (
	"sync"

	"github.com/atomicstack/scenetui/internal/canvas"
)

// Terminal is an in-memory frame sink with a fixed size. It records the
// plain text of every frame drawn.
type Terminal struct {
	mu      sync.Mutex
	width   int
	height  int
	frames  []string
	sizeErr error
	drawErr error
}

// NewTerminal returns a terminal reporting width x height.
func NewTerminal(width, height int) *Terminal {
	return &Terminal{width: width, height: height}
}

// Size implements backend.Terminal.
func (t *Terminal) Size() (int, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sizeErr != nil {
		return 0, 0, t.sizeErr
	}
	return t.width, t.height, nil
}

// Draw implements backend.Terminal.
func (t *Terminal) Draw(f *canvas.Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.drawErr != nil {
		return t.drawErr
	}
	t.frames = append(t.frames, f.Plain())
	return nil
}

// SetSize changes the reported size.
func (t *Terminal) SetSize(width, height int) {
	t.mu.Lock()
	t.width, t.height = width, height
	t.mu.Unlock()
}

// FailSize makes Size return err until cleared with nil.
func (t *Terminal) FailSize(err error) {
	t.mu.Lock()
	t.sizeErr = err
	t.mu.Unlock()
}

// FailDraw makes Draw return err until cleared with nil.
func (t *Terminal) FailDraw(err error) {
	t.mu.Lock()
	t.drawErr = err
	t.mu.Unlock()
}

// Frames returns every recorded frame.
func (t *Terminal) Frames() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.frames...)
}

// LastFrame returns the most recent frame, or "" before the first draw.
func (t *Terminal) LastFrame() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.frames) == 0 {
		return ""
	}
	return t.frames[len(t.frames)-1]
}
