package ui

import (
	"github.com/atomicstack/scenetui/internal/event"
	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/atomicstack/scenetui/internal/tree"
	"github.com/atomicstack/scenetui/internal/ui/command"
	"github.com/atomicstack/scenetui/internal/widget"
)

// Document is the caller's side of a running loop. Its methods are safe for
// concurrent use and never block: each queues a command and returns
// command.ErrQueueFull when the loop is behind, or command.ErrClosed after
// Close. A nil error means queued, not applied.
type Document struct {
	bus    *command.Bus
	events <-chan event.Input
}

func newDocument(bus *command.Bus, out <-chan event.Input) *Document {
	return &Document{bus: bus, events: out}
}

// Root returns a handle on the root container.
func (d *Document) Root() *ContainerHandle {
	return d.Container(tree.RootID)
}

// Container returns a handle on an existing container. The id is not
// checked.
func (d *Document) Container(id string) *ContainerHandle {
	return &ContainerHandle{doc: d, id: id}
}

// Widget returns a handle on an existing widget leaf. The id is not
// checked.
func (d *Document) Widget(id string) *WidgetHandle {
	return &WidgetHandle{doc: d, id: id}
}

// AddContainer queues a new container under parentID.
func (d *Document) AddContainer(parentID, id string, style layout.Style) (*ContainerHandle, error) {
	if err := d.bus.TrySend(command.AddContainer{ParentID: parentID, ID: id, Style: style}); err != nil {
		return nil, err
	}
	return d.Container(id), nil
}

// AddWidget queues a widget leaf under parentID styled by the widget's hint.
func (d *Document) AddWidget(parentID, id string, w widget.Widget) (*WidgetHandle, error) {
	return d.addWidget(parentID, id, w, nil)
}

// AddWidgetStyled queues a widget leaf with an explicit style.
func (d *Document) AddWidgetStyled(parentID, id string, w widget.Widget, style layout.Style) (*WidgetHandle, error) {
	return d.addWidget(parentID, id, w, &style)
}

func (d *Document) addWidget(parentID, id string, w widget.Widget, style *layout.Style) (*WidgetHandle, error) {
	if err := d.bus.TrySend(command.AddWidget{ParentID: parentID, ID: id, Widget: w, Style: style}); err != nil {
		return nil, err
	}
	return d.Widget(id), nil
}

// UpdateWidget queues a widget swap on id.
func (d *Document) UpdateWidget(id string, w widget.Widget) error {
	return d.bus.TrySend(command.UpdateWidget{ID: id, Widget: w})
}

// UpdateStyle queues a style swap on id.
func (d *Document) UpdateStyle(id string, style layout.Style) error {
	return d.bus.TrySend(command.UpdateStyle{ID: id, Style: style})
}

// RemoveWidget queues removal of id and its subtree. The root is cleared
// rather than removed.
func (d *Document) RemoveWidget(id string) error {
	return d.bus.TrySend(command.RemoveWidget{ID: id})
}

// AddEventListener queues listener for eventType on targetID. The returned
// id is valid as soon as the call succeeds and can be passed to
// RemoveEventListener.
func (d *Document) AddEventListener(targetID string, eventType event.Type, listener event.Listener) (event.ListenerID, error) {
	id := event.NextListenerID()
	err := d.bus.TrySend(command.AddEventListener{
		TargetID:   targetID,
		Type:       eventType,
		Listener:   listener,
		ListenerID: id,
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// RemoveEventListener queues removal of id from every node.
func (d *Document) RemoveEventListener(id event.ListenerID) error {
	return d.bus.TrySend(command.RemoveEventListener{ListenerID: id})
}

// Events delivers raw input in arrival order. It is closed when the loop
// stops. Events are dropped while the channel is full.
func (d *Document) Events() <-chan event.Input {
	return d.events
}

// Close stops the loop once it has applied what is already queued.
func (d *Document) Close() {
	d.bus.Close()
}
