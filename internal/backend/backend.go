// Package backend connects the owning loop to a real terminal. The loop
// depends only on the Terminal and InputSource interfaces; Tea implements
// both on top of Bubble Tea.
package backend

import (
	"github.com/atomicstack/scenetui/internal/canvas"
	"github.com/atomicstack/scenetui/internal/event"
)

// Terminal is the frame sink.
type Terminal interface {
	// Size reports the drawable area in cells.
	Size() (width, height int, err error)
	// Draw presents a finished frame.
	Draw(f *canvas.Frame) error
}

// InputSource yields raw terminal input. Poll must not block; it reports
// false when nothing is pending.
type InputSource interface {
	Poll() (event.Input, bool, error)
}
