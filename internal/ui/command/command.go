// Package command defines the tree mutations callers submit to the owning
// loop and the bounded bus that carries them.
package command

import (
	"github.com/atomicstack/scenetui/internal/event"
	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/atomicstack/scenetui/internal/tree"
	"github.com/atomicstack/scenetui/internal/widget"
)

// Command is one queued tree mutation. Apply runs on the loop goroutine.
type Command interface {
	Name() string
	Target() string
	Apply(t *tree.Tree) error
}

// AddContainer appends a container under ParentID.
type AddContainer struct {
	ParentID string
	ID       string
	Style    layout.Style
}

func (c AddContainer) Name() string   { return "add-container" }
func (c AddContainer) Target() string { return c.ID }
func (c AddContainer) Apply(t *tree.Tree) error {
	return t.AddContainer(c.ParentID, c.ID, c.Style)
}

// AddWidget appends a widget leaf under ParentID. A nil Style selects the
// widget's hint.
type AddWidget struct {
	ParentID string
	ID       string
	Widget   widget.Widget
	Style    *layout.Style
}

func (c AddWidget) Name() string   { return "add-widget" }
func (c AddWidget) Target() string { return c.ID }
func (c AddWidget) Apply(t *tree.Tree) error {
	return t.AddWidget(c.ParentID, c.ID, c.Widget, c.Style)
}

// RemoveWidget removes node ID, wherever it is, with its subtree. The root
// is cleared instead.
type RemoveWidget struct {
	ID string
}

func (c RemoveWidget) Name() string   { return "remove-widget" }
func (c RemoveWidget) Target() string { return c.ID }
func (c RemoveWidget) Apply(t *tree.Tree) error {
	return t.Remove(c.ID)
}

// UpdateWidget swaps the widget on node ID.
type UpdateWidget struct {
	ID     string
	Widget widget.Widget
}

func (c UpdateWidget) Name() string   { return "update-widget" }
func (c UpdateWidget) Target() string { return c.ID }
func (c UpdateWidget) Apply(t *tree.Tree) error {
	return t.UpdateWidget(c.ID, c.Widget)
}

// UpdateStyle swaps the style on node ID.
type UpdateStyle struct {
	ID    string
	Style layout.Style
}

func (c UpdateStyle) Name() string   { return "update-style" }
func (c UpdateStyle) Target() string { return c.ID }
func (c UpdateStyle) Apply(t *tree.Tree) error {
	return t.UpdateStyle(c.ID, c.Style)
}

// AddEventListener attaches Listener to TargetID under ListenerID. The id is
// allocated by the sender so it can be removed later.
type AddEventListener struct {
	TargetID   string
	Type       event.Type
	Listener   event.Listener
	ListenerID event.ListenerID
}

func (c AddEventListener) Name() string   { return "add-listener" }
func (c AddEventListener) Target() string { return c.TargetID }
func (c AddEventListener) Apply(t *tree.Tree) error {
	return t.AddEventListener(c.TargetID, c.Type, c.Listener, c.ListenerID)
}

// RemoveEventListener detaches ListenerID from every node.
type RemoveEventListener struct {
	ListenerID event.ListenerID
}

func (c RemoveEventListener) Name() string { return "remove-listener" }
func (c RemoveEventListener) Target() string {
	return ""
}
func (c RemoveEventListener) Apply(t *tree.Tree) error {
	t.RemoveEventListener(c.ListenerID)
	return nil
}
