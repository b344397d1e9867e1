package events

import "github.com/atomicstack/clickwheel/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Enter(level string, index int) {
	logging.Trace("nav.enter", map[string]interface{}{"level": level, "index": index})
}

func (NavTracer) Cursor(level string, index int) {
	logging.Trace("nav.cursor", map[string]interface{}{"level": level, "index": index})
}

func (NavTracer) Select(level, item string) {
	logging.Trace("nav.select", map[string]interface{}{"level": level, "item": item})
}

func (NavTracer) Back(from, to string) {
	logging.Trace("nav.back", map[string]interface{}{"from": from, "to": to})
}

func (NavTracer) ShowMenu(level string, index int) {
	logging.Trace("nav.menu", map[string]interface{}{"level": level, "index": index})
}

func (NavTracer) Content(tab string) {
	logging.Trace("nav.content", map[string]interface{}{"tab": tab})
}

func (NavTracer) Open(url string) {
	logging.Trace("nav.open", map[string]interface{}{"url": url})
}

func (NavTracer) ScrollMode(enabled bool) {
	logging.Trace("nav.scroll-mode", map[string]interface{}{"enabled": enabled})
}

func (NavTracer) Ignored(command, reason string) {
	logging.Trace("nav.ignored", map[string]interface{}{"command": command, "reason": reason})
}
