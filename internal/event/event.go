// Package event defines the semantic events delivered to node listeners and
// the raw terminal input forwarded to callers.
package event

import (
	"fmt"
	"sync/atomic"
)

// Type is a semantic event kind that listeners register for.
type Type int

const (
	Click Type = iota
	// DoubleClick and RightClick are registrable but never synthesized by
	// the dispatcher; every button press is reported as Click.
	DoubleClick
	RightClick
	Hover
	ScrollUp
	ScrollDown
)

var typeNames = map[Type]string{
	Click:       "click",
	DoubleClick: "double-click",
	RightClick:  "right-click",
	Hover:       "hover",
	ScrollUp:    "scroll-up",
	ScrollDown:  "scroll-down",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// Context describes one dispatched event. A fresh value is built for every
// dispatch; listeners may keep it.
type Context struct {
	Type        Type
	TargetID    string
	X, Y        int
	HasPosition bool
	// ScrollDelta is +1 for ScrollUp and -1 for ScrollDown; zero otherwise.
	ScrollDelta int
	Key         *Key
}

// Listener is a callback attached to a node for one event type.
type Listener func(Context)

// ListenerID identifies a registration for later removal.
type ListenerID uint64

var lastListenerID atomic.Uint64

// NextListenerID allocates a process-wide identifier. Identifiers increase
// monotonically and are never reused.
func NextListenerID() ListenerID {
	return ListenerID(lastListenerID.Add(1))
}
