package events

import "github.com/atomicstack/clickwheel/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) CatalogLoaded(source string, tracks, projects int) {
	logging.Trace("app.catalog", map[string]interface{}{"source": source, "tracks": tracks, "projects": projects})
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}
