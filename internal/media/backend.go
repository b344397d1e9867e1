package media

import (
	"github.com/atomicstack/clickwheel/internal/catalog"
	"github.com/atomicstack/clickwheel/internal/logging/events"
)

// Backend receives playback intents. Implementations must not call back into
// the Controller.
type Backend interface {
	Load(track catalog.Track) error
	Play() error
	Pause() error
}

// TraceBackend records intents in the trace log and plays nothing.
type TraceBackend struct {
	current string
}

func (b *TraceBackend) Load(track catalog.Track) error {
	b.current = track.Ref()
	events.Media.Intent("load", b.current)
	return nil
}

func (b *TraceBackend) Play() error {
	events.Media.Intent("play", b.current)
	return nil
}

func (b *TraceBackend) Pause() error {
	events.Media.Intent("pause", b.current)
	return nil
}
