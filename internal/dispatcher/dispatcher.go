// Package dispatcher turns raw pointer input into semantic events and
// delivers them to the listeners of the node under the pointer.
package dispatcher

import (
	"github.com/atomicstack/scenetui/internal/event"
	"github.com/atomicstack/scenetui/internal/logging/events"
	"github.com/atomicstack/scenetui/internal/tree"
)

// Result describes what one Handle call did.
type Result struct {
	Type    event.Type
	Target  string
	Fired   int
	Handled bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithBubbling delivers each event to the target first and then to every
// ancestor up to the root. Without it only the target's listeners run.
func WithBubbling() Option {
	return func(d *Dispatcher) {
		d.bubble = true
	}
}

// Dispatcher routes input against a tree. It must be used from the goroutine
// that owns the tree.
type Dispatcher struct {
	tree   *tree.Tree
	bubble bool
}

// New returns a dispatcher bound to t.
func New(t *tree.Tree, opts ...Option) *Dispatcher {
	d := &Dispatcher{tree: t}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Translate maps a raw mouse event onto a semantic type. Releases, drags
// and horizontal scrolling have no semantic counterpart and report false.
func Translate(m event.Mouse) (event.Type, int, bool) {
	switch m.Kind {
	case event.MouseDown:
		return event.Click, 0, true
	case event.MouseMoved:
		return event.Hover, 0, true
	case event.MouseScrollUp:
		return event.ScrollUp, 1, true
	case event.MouseScrollDown:
		return event.ScrollDown, -1, true
	default:
		return 0, 0, false
	}
}

// Handle dispatches in. Only mouse input produces events; everything else
// is ignored and reported as unhandled.
func (d *Dispatcher) Handle(in event.Input) Result {
	var res Result
	m, ok := in.(event.Mouse)
	if !ok || d.tree == nil {
		return res
	}
	typ, delta, ok := Translate(m)
	if !ok {
		return res
	}
	res.Type = typ

	target, ok := d.tree.FindWidgetAt(m.X, m.Y)
	if !ok {
		events.Dispatch.Miss(typ.String(), m.X, m.Y)
		return res
	}
	res.Target = target
	res.Handled = true

	ctx := event.Context{
		Type:        typ,
		TargetID:    target,
		X:           m.X,
		Y:           m.Y,
		HasPosition: true,
		ScrollDelta: delta,
	}
	if d.bubble {
		path := d.tree.Path(target)
		for i := len(path) - 1; i >= 0; i-- {
			res.Fired += d.tree.TriggerEvent(path[i], ctx)
		}
	} else {
		res.Fired = d.tree.TriggerEvent(d.tree.Find(target), ctx)
	}
	events.Dispatch.Fired(typ.String(), target, res.Fired)
	return res
}
