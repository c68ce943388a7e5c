package events

import "github.com/atomicstack/scenetui/internal/logging"

type LoopTracer struct{}

type CommandTracer struct{}

type DispatchTracer struct{}

var (
	Loop     = LoopTracer{}
	Command  = CommandTracer{}
	Dispatch = DispatchTracer{}
)

func (LoopTracer) Started(interval string, capacity int) {
	logging.Trace("loop.start", map[string]interface{}{"interval": interval, "capacity": capacity})
}

func (LoopTracer) Stopped(frames uint64) {
	logging.Trace("loop.stop", map[string]interface{}{"frames": frames})
}

func (LoopTracer) FrameError(stage string, err error) {
	if err == nil {
		return
	}
	logging.Trace("loop.frame.error", map[string]interface{}{"stage": stage, "error": err.Error()})
}

func (LoopTracer) InputError(err error) {
	if err == nil {
		return
	}
	logging.Trace("loop.input.error", map[string]interface{}{"error": err.Error()})
}

func (LoopTracer) EventDropped(kind string) {
	logging.Trace("loop.event.dropped", map[string]interface{}{"kind": kind})
}

func (CommandTracer) Queued(name, id string) {
	logging.Trace("command.queue", map[string]interface{}{"command": name, "id": id})
}

func (CommandTracer) Rejected(name, id string, err error) {
	logging.Trace("command.reject", map[string]interface{}{"command": name, "id": id, "error": err.Error()})
}

func (CommandTracer) Applied(name, id string) {
	logging.Trace("command.apply", map[string]interface{}{"command": name, "id": id})
}

func (DispatchTracer) Fired(eventType, targetID string, listeners int) {
	logging.Trace("dispatch.fire", map[string]interface{}{"type": eventType, "target": targetID, "listeners": listeners})
}

func (DispatchTracer) Miss(eventType string, x, y int) {
	logging.Trace("dispatch.miss", map[string]interface{}{"type": eventType, "x": x, "y": y})
}
