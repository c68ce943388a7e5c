package tree

import (
	"errors"
	"fmt"

	"github.com/atomicstack/scenetui/internal/canvas"
	"github.com/atomicstack/scenetui/internal/event"
	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/atomicstack/scenetui/internal/logging"
	"github.com/atomicstack/scenetui/internal/logging/events"
	"github.com/atomicstack/scenetui/internal/widget"
)

// RootID is the id of the node every tree starts with.
const RootID = "root"

// registration holds a listener callback once, however many nodes refer to
// it.
type registration struct {
	listener event.Listener
	refs     int
}

// Tree owns a root node and the listener registry. It is not safe for
// concurrent use; the owning loop is its only user.
//
// Mutations referring to unknown ids are dropped and traced rather than
// surfaced to the command sender. The returned errors exist for direct
// callers and tests.
type Tree struct {
	root      *Node
	listeners map[event.ListenerID]*registration
}

// New returns a tree holding only the root container.
func New() *Tree {
	return &Tree{
		root:      NewNode(RootID),
		listeners: make(map[event.ListenerID]*registration),
	}
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Find returns the node with id, or nil.
func (t *Tree) Find(id string) *Node {
	return t.root.Find(id)
}

func (t *Tree) traceAdd(parentID, id, kind string, err error) error {
	switch {
	case err == nil:
		events.Node.Added(parentID, id, kind)
	case errors.Is(err, ErrNotFound):
		events.Node.MissingParent(parentID, id)
	default:
		events.Node.Rejected("add-"+kind, id, err)
	}
	return err
}

// AddContainer appends a container under parentID.
func (t *Tree) AddContainer(parentID, id string, style layout.Style) error {
	return t.traceAdd(parentID, id, "container", t.root.AddContainer(parentID, id, style))
}

// AddWidget appends a widget leaf under parentID. A nil style selects the
// widget's hint.
func (t *Tree) AddWidget(parentID, id string, w widget.Widget, style *layout.Style) error {
	return t.traceAdd(parentID, id, "widget", t.root.AddWidget(parentID, id, w, style))
}

// UpdateWidget swaps the widget on node id.
func (t *Tree) UpdateWidget(id string, w widget.Widget) error {
	err := t.root.UpdateWidget(id, w)
	switch {
	case err == nil:
		events.Node.Updated(id)
	case errors.Is(err, ErrNotFound):
		events.Node.Missing("update-widget", id)
	default:
		events.Node.Rejected("update-widget", id, err)
	}
	return err
}

// UpdateStyle swaps the style on node id.
func (t *Tree) UpdateStyle(id string, style layout.Style) error {
	if err := t.root.UpdateStyle(id, style); err != nil {
		events.Node.Missing("update-style", id)
		return err
	}
	events.Node.Restyled(id, style.Direction.String())
	return nil
}

// RemoveChild applies Node.RemoveChild at the root: the root id clears the
// root, any other id detaches a direct child of the root only.
func (t *Tree) RemoveChild(id string) error {
	detached, err := t.root.RemoveChild(id)
	if err != nil {
		events.Node.Missing("remove-child", id)
		return err
	}
	t.release(detached)
	t.traceRemoval(id)
	return nil
}

// Remove deletes node id wherever it is in the tree, together with its
// subtree. Removing the root clears it in place.
func (t *Tree) Remove(id string) error {
	if t.root.ID == id {
		return t.RemoveChild(id)
	}
	parent, _ := t.root.findParent(id)
	if parent == nil {
		events.Node.Missing("remove", id)
		return ErrNotFound
	}
	detached, err := parent.RemoveChild(id)
	if err != nil {
		return err
	}
	t.release(detached)
	t.traceRemoval(id)
	return nil
}

func (t *Tree) traceRemoval(id string) {
	if id == t.root.ID {
		events.Node.Cleared(id)
		return
	}
	events.Node.Removed(id)
}

// release drops registry references held by a detached subtree.
func (t *Tree) release(detached *Node) {
	if detached == nil {
		return
	}
	detached.Walk(func(n *Node) bool {
		for _, ids := range n.listeners {
			for _, id := range ids {
				t.unref(id)
			}
		}
		return true
	})
}

func (t *Tree) unref(id event.ListenerID) {
	reg, ok := t.listeners[id]
	if !ok {
		return
	}
	reg.refs--
	if reg.refs <= 0 {
		delete(t.listeners, id)
	}
}

// AddEventListener attaches listener under id to node targetID for
// eventType. Reusing an id on several nodes shares one callback, and a
// later registration under the same id replaces the callback everywhere.
func (t *Tree) AddEventListener(targetID string, eventType event.Type, listener event.Listener, id event.ListenerID) error {
	target := t.root.Find(targetID)
	if target == nil {
		events.Node.Missing("add-listener", targetID)
		return ErrNotFound
	}
	reg, ok := t.listeners[id]
	if !ok {
		reg = &registration{}
		t.listeners[id] = reg
	}
	reg.listener = listener
	if target.addListener(eventType, id) {
		reg.refs++
	}
	events.Listener.Added(targetID, eventType.String(), uint64(id))
	return nil
}

// RemoveEventListener detaches id from every node in the tree.
func (t *Tree) RemoveEventListener(id event.ListenerID) {
	removed := 0
	t.root.Walk(func(n *Node) bool {
		removed += n.dropListener(id)
		return true
	})
	delete(t.listeners, id)
	events.Listener.Removed(uint64(id), removed)
}

// ListenerCount returns the number of live listener registrations.
func (t *Tree) ListenerCount() int {
	return len(t.listeners)
}

// TriggerEvent invokes the listeners registered on node for ctx.Type, in
// registration order, and returns how many ran to completion. A panicking
// listener is logged and skipped; the rest still run.
func (t *Tree) TriggerEvent(node *Node, ctx event.Context) int {
	if node == nil {
		return 0
	}
	fired := 0
	for _, id := range node.ListenerIDs(ctx.Type) {
		reg, ok := t.listeners[id]
		if !ok || reg.listener == nil {
			continue
		}
		if err := invoke(reg.listener, ctx); err != nil {
			events.Listener.Panicked(node.ID, uint64(id), err.Error())
			logging.Error(fmt.Errorf("listener %d on %q: %w", id, node.ID, err))
			continue
		}
		fired++
	}
	return fired
}

func invoke(listener event.Listener, ctx event.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	listener(ctx)
	return nil
}

// Path returns the nodes from the root down to id, inclusive, or nil when
// id is absent.
func (t *Tree) Path(id string) []*Node {
	var path []*Node
	var walk func(n *Node) bool
	walk = func(n *Node) bool {
		path = append(path, n)
		if n.ID == id {
			return true
		}
		for _, child := range n.Children {
			if walk(child) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if !walk(t.root) {
		return nil
	}
	return path
}

// Layout lays the whole tree out within area.
func (t *Tree) Layout(area layout.Rect) {
	t.root.Layout(area)
}

// Render paints the whole tree into f.
func (t *Tree) Render(f *canvas.Frame) {
	t.root.Render(f)
}

// FindWidgetAt hit-tests the whole tree.
func (t *Tree) FindWidgetAt(x, y int) (string, bool) {
	return t.root.FindWidgetAt(x, y)
}
