package events

import "github.com/atomicstack/scenetui/internal/logging"

type NodeTracer struct{}

var Node = NodeTracer{}

func (NodeTracer) Added(parentID, id, kind string) {
	logging.Trace("node.add", map[string]interface{}{"parent": parentID, "id": id, "kind": kind})
}

// MissingParent records an add whose parent id is not in the tree. The add
// is dropped.
func (NodeTracer) MissingParent(parentID, id string) {
	logging.Trace("node.add.missing-parent", map[string]interface{}{"parent": parentID, "id": id})
}

// Rejected records a mutation refused because it would break the
// container/widget-leaf split.
func (NodeTracer) Rejected(op, id string, err error) {
	logging.Trace("node.rejected", map[string]interface{}{"op": op, "id": id, "error": err.Error()})
}

// Missing records an update or removal targeting an unknown id.
func (NodeTracer) Missing(op, id string) {
	logging.Trace("node.missing", map[string]interface{}{"op": op, "id": id})
}

func (NodeTracer) Removed(id string) {
	logging.Trace("node.remove", map[string]interface{}{"id": id})
}

func (NodeTracer) Cleared(id string) {
	logging.Trace("node.clear", map[string]interface{}{"id": id})
}

func (NodeTracer) Updated(id string) {
	logging.Trace("node.update", map[string]interface{}{"id": id})
}

func (NodeTracer) Restyled(id, direction string) {
	logging.Trace("node.restyle", map[string]interface{}{"id": id, "direction": direction})
}
