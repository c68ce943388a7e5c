package ui

import (
	"github.com/atomicstack/scenetui/internal/event"
	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/atomicstack/scenetui/internal/widget"
)

// ContainerHandle addresses a container node by id.
type ContainerHandle struct {
	doc *Document
	id  string
}

func (h *ContainerHandle) ID() string {
	return h.id
}

// AddContainer queues a child container.
func (h *ContainerHandle) AddContainer(id string, style layout.Style) (*ContainerHandle, error) {
	return h.doc.AddContainer(h.id, id, style)
}

// AddWidget queues a child widget styled by its hint.
func (h *ContainerHandle) AddWidget(id string, w widget.Widget) (*WidgetHandle, error) {
	return h.doc.AddWidget(h.id, id, w)
}

// AddWidgetStyled queues a child widget with an explicit style.
func (h *ContainerHandle) AddWidgetStyled(id string, w widget.Widget, style layout.Style) (*WidgetHandle, error) {
	return h.doc.AddWidgetStyled(h.id, id, w, style)
}

func (h *ContainerHandle) Restyle(style layout.Style) error {
	return h.doc.UpdateStyle(h.id, style)
}

func (h *ContainerHandle) Remove() error {
	return h.doc.RemoveWidget(h.id)
}

func (h *ContainerHandle) On(eventType event.Type, listener event.Listener) (event.ListenerID, error) {
	return h.doc.AddEventListener(h.id, eventType, listener)
}

func (h *ContainerHandle) Off(id event.ListenerID) error {
	return h.doc.RemoveEventListener(id)
}

// WidgetHandle addresses a widget leaf by id.
type WidgetHandle struct {
	doc *Document
	id  string
}

func (h *WidgetHandle) ID() string {
	return h.id
}

// Update queues a replacement widget.
func (h *WidgetHandle) Update(w widget.Widget) error {
	return h.doc.UpdateWidget(h.id, w)
}

func (h *WidgetHandle) Restyle(style layout.Style) error {
	return h.doc.UpdateStyle(h.id, style)
}

func (h *WidgetHandle) Remove() error {
	return h.doc.RemoveWidget(h.id)
}

func (h *WidgetHandle) On(eventType event.Type, listener event.Listener) (event.ListenerID, error) {
	return h.doc.AddEventListener(h.id, eventType, listener)
}

func (h *WidgetHandle) Off(id event.ListenerID) error {
	return h.doc.RemoveEventListener(id)
}
