package events

import "github.com/atomicstack/clickwheel/internal/logging"

type MediaTracer struct{}

var Media = MediaTracer{}

func (MediaTracer) Load(trackID string, index int) {
	logging.Trace("media.load", map[string]interface{}{"track": trackID, "index": index})
}

func (MediaTracer) Reselect(trackID string) {
	logging.Trace("media.reselect", map[string]interface{}{"track": trackID})
}

func (MediaTracer) Playing(trackID string, playing bool) {
	logging.Trace("media.playing", map[string]interface{}{"track": trackID, "playing": playing})
}

func (MediaTracer) Advance(from, to string) {
	logging.Trace("media.advance", map[string]interface{}{"from": from, "to": to})
}

func (MediaTracer) FullView(enabled bool) {
	logging.Trace("media.full-view", map[string]interface{}{"enabled": enabled})
}

func (MediaTracer) Timer(running bool, generation uint64) {
	logging.Trace("media.timer", map[string]interface{}{"running": running, "generation": generation})
}

func (MediaTracer) StaleTick(generation, current uint64) {
	logging.Trace("media.tick.stale", map[string]interface{}{"generation": generation, "current": current})
}

func (MediaTracer) Intent(intent, trackID string) {
	logging.Trace("media.intent", map[string]interface{}{"intent": intent, "track": trackID})
}
