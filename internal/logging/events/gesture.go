package events

import "github.com/atomicstack/clickwheel/internal/logging"

type GestureTracer struct{}

var Gesture = GestureTracer{}

func (GestureTracer) Begin(id, source string, center bool) {
	logging.Trace("gesture.begin", map[string]interface{}{"id": id, "source": source, "center": center})
}

func (GestureTracer) Step(id, direction string) {
	logging.Trace("gesture.step", map[string]interface{}{"id": id, "direction": direction})
}

func (GestureTracer) Click(id, area string) {
	logging.Trace("gesture.click", map[string]interface{}{"id": id, "area": area})
}

func (GestureTracer) End(id, reason string) {
	logging.Trace("gesture.end", map[string]interface{}{"id": id, "reason": reason})
}

func (GestureTracer) Cancel(id string) {
	logging.Trace("gesture.cancel", map[string]interface{}{"id": id})
}

func (GestureTracer) Suppressed(source string) {
	logging.Trace("gesture.suppressed", map[string]interface{}{"source": source})
}

func (GestureTracer) Scroll(direction string) {
	logging.Trace("gesture.scroll", map[string]interface{}{"direction": direction})
}
