package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/clickwheel/internal/catalog"
	"github.com/atomicstack/clickwheel/internal/gesture"
	"github.com/atomicstack/clickwheel/internal/logging/events"
	"github.com/atomicstack/clickwheel/internal/media"
	"github.com/atomicstack/clickwheel/internal/shell"
	"github.com/atomicstack/clickwheel/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath       string
	Play              string
	MouseThresholdDeg float64
	TouchThresholdDeg float64
	ScrollThreshold   float64
	TrackDuration     time.Duration
	Mouse             bool
	ShowFooter        bool
}

// Session holds the wired components for one run.
type Session struct {
	Catalog *catalog.Catalog
	Ticker  *media.Ticker
	Player  *media.Controller
	Model   *ui.Model
}

// Close stops playback and releases the ticker.
func (s *Session) Close() {
	s.Player.Stop()
	s.Ticker.Close()
}

// Build loads the catalog and wires the player, gestures and UI model.
func Build(cfg Config) (*Session, error) {
	cat, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	events.App.CatalogLoaded(catalogSource(cfg.CatalogPath), len(cat.Tracks), len(cat.Projects))

	ticker := media.NewTicker(media.TickInterval)
	opts := []media.Option{media.WithClock(ticker)}
	if secs := int(cfg.TrackDuration / time.Second); secs > 0 {
		opts = append(opts, media.WithDuration(secs))
	}
	player := media.NewController(cat, opts...)

	if cfg.Play != "" {
		track, err := cat.Find(cfg.Play)
		if err != nil {
			ticker.Close()
			return nil, fmt.Errorf("play %q: %w", cfg.Play, err)
		}
		player.LoadAndPlay(track)
	}

	gcfg := gesture.DefaultConfig(shell.WheelCenter)
	gcfg.MouseThresholdDeg = cfg.MouseThresholdDeg
	gcfg.TouchThresholdDeg = cfg.TouchThresholdDeg
	gcfg.ScrollThreshold = cfg.ScrollThreshold

	model := ui.NewModel(ui.Options{
		Catalog:       cat,
		Player:        player,
		Ticker:        ticker,
		Gestures:      gesture.New(gcfg),
		ShowFooter:    cfg.ShowFooter,
		ScrollSeconds: ui.DefaultScrollSeconds,
	})
	return &Session{Catalog: cat, Ticker: ticker, Player: player, Model: model}, nil
}

// LoadCatalog reads the catalog at path, or the built-in one when path is
// empty.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("built-in catalog: %w", err)
		}
		return cat, nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func catalogSource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	session, err := Build(cfg)
	if err != nil {
		return err
	}
	defer session.Close()

	options := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if cfg.Mouse {
		options = append(options, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(session.Model, options...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Stop("killed")
		return nil
	}
	if err != nil {
		events.App.Stop("error")
		return err
	}
	events.App.Stop("quit")
	return nil
}
