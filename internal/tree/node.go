// Package tree implements the scene graph: an ID-addressed hierarchy of
// container nodes and widget leaves that lays itself out, renders, and
// resolves screen coordinates back to nodes.
//
// IDs are expected to be unique among live nodes. Nothing enforces this;
// when duplicates exist, every lookup resolves to the first match in
// depth-first pre-order from where the search starts.
package tree

import (
	"errors"

	"github.com/atomicstack/scenetui/internal/canvas"
	"github.com/atomicstack/scenetui/internal/event"
	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/atomicstack/scenetui/internal/theme"
	"github.com/atomicstack/scenetui/internal/widget"
)

var (
	// ErrNotFound reports that no node in the searched subtree has the id.
	ErrNotFound = errors.New("node not found")
	// ErrWidgetParent reports an attempt to add a child under a widget leaf.
	ErrWidgetParent = errors.New("widget leaves cannot have children")
	// ErrHasChildren reports an attempt to give a container a widget.
	ErrHasChildren = errors.New("containers with children cannot hold a widget")
)

// Node is one element of the scene graph. A node is either a container
// (Widget nil, any number of children) or a widget leaf (Widget set, no
// children).
type Node struct {
	ID    string
	Style layout.Style
	// Area and ContentArea are written only by Layout.
	Area        layout.Rect
	ContentArea layout.Rect
	Widget      widget.Widget
	// Children are kept in layout and paint order.
	Children []*Node

	listeners map[event.Type][]event.ListenerID
}

// NewNode returns an empty column container.
func NewNode(id string) *Node {
	return &Node{ID: id, Style: layout.DefaultStyle().Column()}
}

// IsContainer reports whether n holds no widget.
func (n *Node) IsContainer() bool {
	return n.Widget == nil
}

// Find returns the first node with id in depth-first pre-order, starting at
// n itself.
func (n *Node) Find(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// findParent returns the node whose direct child has id, and that child's
// index.
func (n *Node) findParent(id string) (*Node, int) {
	for i, child := range n.Children {
		if child.ID == id {
			return n, i
		}
	}
	for _, child := range n.Children {
		if parent, idx := child.findParent(id); parent != nil {
			return parent, idx
		}
	}
	return nil, -1
}

// Walk visits n and its descendants in pre-order until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

func (n *Node) appendChild(parentID string, child *Node) error {
	parent := n.Find(parentID)
	if parent == nil {
		return ErrNotFound
	}
	if !parent.IsContainer() {
		return ErrWidgetParent
	}
	parent.Children = append(parent.Children, child)
	return nil
}

// AddContainer appends an empty container under parentID.
func (n *Node) AddContainer(parentID, id string, style layout.Style) error {
	return n.appendChild(parentID, &Node{ID: id, Style: style})
}

// AddWidget appends a widget leaf under parentID. With a nil style the
// widget's style hint is used, falling back to the default style.
func (n *Node) AddWidget(parentID, id string, w widget.Widget, style *layout.Style) error {
	effective := widget.EffectiveStyle(w)
	if style != nil {
		effective = *style
	}
	return n.appendChild(parentID, &Node{ID: id, Style: effective, Widget: w})
}

// UpdateWidget replaces the widget of node id.
func (n *Node) UpdateWidget(id string, w widget.Widget) error {
	target := n.Find(id)
	if target == nil {
		return ErrNotFound
	}
	if len(target.Children) > 0 {
		return ErrHasChildren
	}
	target.Widget = w
	return nil
}

// UpdateStyle replaces the style of node id.
func (n *Node) UpdateStyle(id string, style layout.Style) error {
	target := n.Find(id)
	if target == nil {
		return ErrNotFound
	}
	target.Style = style
	return nil
}

// RemoveChild clears n when id is n's own id: its widget, children and
// listeners are dropped but n stays in place. Otherwise it detaches the
// first direct child with id. Deeper descendants are not searched; see
// Tree.Remove for removal anywhere in the tree.
//
// The detached subtree, or the cleared contents, is returned so callers can
// release listener registrations.
func (n *Node) RemoveChild(id string) (*Node, error) {
	if n.ID == id {
		cleared := &Node{ID: n.ID, Widget: n.Widget, Children: n.Children, listeners: n.listeners}
		n.Widget = nil
		n.Children = nil
		n.listeners = nil
		return cleared, nil
	}
	for i, child := range n.Children {
		if child.ID == id {
			n.Children = append(n.Children[:i:i], n.Children[i+1:]...)
			return child, nil
		}
	}
	return nil, ErrNotFound
}

// Layout assigns area to n and lays out its children.
//
// A widget leaf's ContentArea starts at the area's origin and spans what
// the widget reports it draws inside the padded area, plus the padding.
// Containers use their whole area.
func (n *Node) Layout(area layout.Rect) {
	n.Area = area
	n.ContentArea = area
	if n.Widget != nil {
		w, h := widget.ContentSize(n.Widget, n.Style.Shrink(area))
		if w > 0 && h > 0 {
			w = min(w+n.Style.Padding.Horizontal(), area.Width)
			h = min(h+n.Style.Padding.Vertical(), area.Height)
		}
		n.ContentArea = layout.NewRect(area.X, area.Y, w, h)
	}
	areas := layout.CalculateChildrenAreas(n.Style, n.Area, len(n.Children))
	for i, child := range n.Children {
		child.Layout(areas[i])
	}
}

// Render paints n's border and widget, then its children in order, so
// later siblings and descendants draw over earlier content.
func (n *Node) Render(f *canvas.Frame) {
	if n.Style.Border.Show {
		f.DrawBorder(n.Area, theme.BorderGlyphs(n.Style.Border.Type), theme.Default().Border)
	}
	if n.Widget != nil {
		n.Widget.Render(f, n.Area, n.Style)
	}
	for _, child := range n.Children {
		child.Render(f)
	}
}

// FindWidgetAt returns the deepest node under (x, y). Children are tried
// before n, first match wins. A widget leaf matches inside its ContentArea;
// a container matches anywhere in its Area. Points outside n.Area skip the
// whole subtree.
func (n *Node) FindWidgetAt(x, y int) (string, bool) {
	if !n.Area.Contains(x, y) {
		return "", false
	}
	for _, child := range n.Children {
		if id, ok := child.FindWidgetAt(x, y); ok {
			return id, true
		}
	}
	if n.Widget == nil || n.ContentArea.Contains(x, y) {
		return n.ID, true
	}
	return "", false
}

// ListenerIDs returns the listeners registered on n for t, in registration
// order.
func (n *Node) ListenerIDs(t event.Type) []event.ListenerID {
	ids := n.listeners[t]
	out := make([]event.ListenerID, len(ids))
	copy(out, ids)
	return out
}

func (n *Node) addListener(t event.Type, id event.ListenerID) bool {
	for _, existing := range n.listeners[t] {
		if existing == id {
			return false
		}
	}
	if n.listeners == nil {
		n.listeners = make(map[event.Type][]event.ListenerID)
	}
	n.listeners[t] = append(n.listeners[t], id)
	return true
}

// dropListener removes every reference to id from n and returns how many
// were removed.
func (n *Node) dropListener(id event.ListenerID) int {
	removed := 0
	for t, ids := range n.listeners {
		kept := ids[:0]
		for _, existing := range ids {
			if existing == id {
				removed++
				continue
			}
			kept = append(kept, existing)
		}
		if len(kept) == 0 {
			delete(n.listeners, t)
		} else {
			n.listeners[t] = kept
		}
	}
	return removed
}
