package events

import "github.com/atomicstack/scenetui/internal/logging"

type ListenerTracer struct{}

var Listener = ListenerTracer{}

func (ListenerTracer) Added(targetID, eventType string, id uint64) {
	logging.Trace("listener.add", map[string]interface{}{"target": targetID, "type": eventType, "listener": id})
}

func (ListenerTracer) Removed(id uint64, references int) {
	logging.Trace("listener.remove", map[string]interface{}{"listener": id, "references": references})
}

func (ListenerTracer) Panicked(targetID string, id uint64, recovered interface{}) {
	logging.Trace("listener.panic", map[string]interface{}{"target": targetID, "listener": id, "recovered": recovered})
}
