package command

import (
	"io"
	"sync"
	"time"

	"github.com/atomicstack/clickwheel/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/pkg/browser"
)

// silenceBrowser discards launcher output once; the browser package reads
// these globals from every launch goroutine.
var silenceBrowser sync.Once

// DefaultOpenSpacing is the minimum gap between two browser launches.
const DefaultOpenSpacing = 750 * time.Millisecond

// Opener opens a URL outside the terminal.
type Opener func(url string) error

// Request encapsulates a side effect run off the event loop.
type Request struct {
	ID    string
	Label string
	Run   func() error
}

// Result is delivered back to the model once a request finishes.
type Result struct {
	ID    string
	Label string
	Err   error
}

// Bus coordinates the execution of side effects.
type Bus struct {
	open    Opener
	spacing time.Duration
	gate    *throttle
}

// Option customises a Bus.
type Option func(*Bus)

// WithOpener replaces the system browser.
func WithOpener(open Opener) Option {
	return func(b *Bus) {
		if open != nil {
			b.open = open
		}
	}
}

// WithOpenSpacing sets the minimum gap between launches; zero disables it.
func WithOpenSpacing(d time.Duration) Option {
	return func(b *Bus) {
		b.spacing = d
	}
}

// New initialises a command bus instance.
func New(opts ...Option) *Bus {
	b := &Bus{spacing: DefaultOpenSpacing}
	for _, opt := range opts {
		opt(b)
	}
	if b.open == nil {
		silenceBrowser.Do(func() {
			browser.Stdout = io.Discard
			browser.Stderr = io.Discard
		})
		b.open = browser.OpenURL
	}
	b.gate = newThrottle(b.spacing)
	return b
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		var err error
		if req.Run != nil {
			err = req.Run()
		}
		events.Command.Result(req.ID, req.Label, err)
		return Result{ID: req.ID, Label: req.Label, Err: err}
	}
}

// Open queues opening url.
func (b *Bus) Open(url string) tea.Cmd {
	return b.Execute(Request{
		Label: url,
		Run: func() error {
			b.gate.wait()
			return b.open(url)
		},
	})
}
