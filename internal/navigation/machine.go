// Package navigation implements the click-wheel menu state machine: the
// current level, the selected index, menu visibility, per-level remembered
// indices and the content tab shown while the menu is hidden.
package navigation

import (
	"fmt"

	"github.com/atomicstack/clickwheel/internal/catalog"
	"github.com/atomicstack/clickwheel/internal/gesture"
	"github.com/atomicstack/clickwheel/internal/logging"
	"github.com/atomicstack/clickwheel/internal/logging/events"
	"github.com/atomicstack/clickwheel/internal/menu"
)

// ContentScrollLines is how far one rotation step scrolls a content page.
const ContentScrollLines = 2

// Player is the media side of the machine.
type Player interface {
	Current() (catalog.Track, bool)
	LoadAndPlay(track catalog.Track)
	TogglePlayPause()
	Next()
	Previous()
	ToggleFullView()
}

// Opener opens external links.
type Opener interface {
	Open(url string) error
}

// Scroller scrolls the content view shown while the menu is hidden.
type Scroller interface {
	ScrollBy(lines int)
}

// Snapshot is the read-only view a renderer consumes.
type Snapshot struct {
	Level      menu.Level
	Title      string
	Items      []menu.Item
	Selected   int
	Visible    bool
	Tab        string
	ScrollMode bool
}

// Current returns the selected item, if any.
func (s Snapshot) Current() (menu.Item, bool) {
	if len(s.Items) == 0 || s.Selected < 0 || s.Selected >= len(s.Items) {
		return menu.Item{}, false
	}
	return s.Items[s.Selected], true
}

// Machine is the navigation context. It is not safe for concurrent use; the
// host event loop owns it.
type Machine struct {
	registry *menu.Registry
	player   Player
	opener   Opener
	scroller Scroller

	level      menu.Level
	selected   int
	visible    bool
	remembered map[menu.Kind]int
	tab        string
	scrollMode bool
}

// Option customises a Machine.
type Option func(*Machine)

// WithPlayer attaches the media controller.
func WithPlayer(p Player) Option {
	return func(m *Machine) { m.player = p }
}

// WithOpener attaches the external link opener.
func WithOpener(o Opener) Option {
	return func(m *Machine) { m.opener = o }
}

// WithScroller attaches the content scroller.
func WithScroller(s Scroller) Option {
	return func(m *Machine) { m.scroller = s }
}

// New returns a machine showing the main menu with the first item selected.
func New(registry *menu.Registry, opts ...Option) *Machine {
	m := &Machine{
		registry:   registry,
		level:      menu.At(menu.Main),
		visible:    true,
		remembered: make(map[menu.Kind]int),
		tab:        menu.TabHome,
		scrollMode: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// SetScroller replaces the content scroller.
func (m *Machine) SetScroller(s Scroller) {
	m.scroller = s
}

// Level returns the current level.
func (m *Machine) Level() menu.Level {
	return m.level
}

// Visible reports whether the menu list is shown.
func (m *Machine) Visible() bool {
	return m.visible
}

// Selected is the current index into Items.
func (m *Machine) Selected() int {
	return m.selected
}

// Tab is the content tab shown while the menu is hidden.
func (m *Machine) Tab() string {
	return m.tab
}

// ScrollMode reports whether rotation scrolls the content view.
func (m *Machine) ScrollMode() bool {
	return m.scrollMode
}

// Items lists the entries of the current level.
func (m *Machine) Items() []menu.Item {
	if m.registry == nil {
		return nil
	}
	return m.registry.Items(m.level)
}

// CurrentItem returns the selected entry. Empty lists resolve to none.
func (m *Machine) CurrentItem() (menu.Item, bool) {
	items := m.Items()
	if len(items) == 0 {
		return menu.Item{}, false
	}
	return items[Clamp(m.selected, len(items))], true
}

// Snapshot captures the state for rendering.
func (m *Machine) Snapshot() Snapshot {
	items := m.Items()
	selected := -1
	if len(items) > 0 {
		selected = Clamp(m.selected, len(items))
	}
	return Snapshot{
		Level:      m.level,
		Title:      menu.Title(m.level),
		Items:      items,
		Selected:   selected,
		Visible:    m.visible,
		Tab:        m.tab,
		ScrollMode: m.scrollMode,
	}
}

// RememberIndex stores the index to restore when kind is entered again.
func (m *Machine) RememberIndex(kind menu.Kind, idx int) {
	if idx < 0 {
		idx = 0
	}
	m.remembered[kind] = idx
}

// RecallIndex returns the remembered index for kind, 0 if never visited.
func (m *Machine) RecallIndex(kind menu.Kind) int {
	return m.remembered[kind]
}

// StepForward moves the selection down, or scrolls the content view when a
// content tab is shown. It does nothing on Now Playing.
func (m *Machine) StepForward() {
	m.step(1)
}

// StepBackward moves the selection up, or scrolls the content view when the
// menu is hidden.
func (m *Machine) StepBackward() {
	m.step(-1)
}

func (m *Machine) step(delta int) {
	if !m.visible {
		if m.level.Kind == menu.NowPlaying {
			events.Nav.Ignored("step", "now playing")
			return
		}
		if !m.scrollMode {
			events.Nav.Ignored("step", "scroll mode off")
			return
		}
		if m.scroller != nil {
			m.scroller.ScrollBy(delta * ContentScrollLines)
		}
		return
	}
	n := len(m.Items())
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = Wrap(m.selected, delta, n)
	events.Nav.Cursor(m.level.String(), m.selected)
}

// SelectCurrent performs the selected item's action. It is ignored while the
// menu is hidden.
func (m *Machine) SelectCurrent() error {
	if !m.visible {
		events.Nav.Ignored("select", "menu hidden")
		return nil
	}
	item, ok := m.CurrentItem()
	if !ok {
		events.Nav.Ignored("select", "empty list")
		return nil
	}
	m.selected = Clamp(m.selected, len(m.Items()))
	events.Nav.Select(m.level.String(), item.ID)

	switch action := item.Action.(type) {
	case menu.NavigateTo:
		m.RememberIndex(m.level.Kind, m.selected)
		m.enter(action.Level)
	case menu.OpenExternal:
		m.RememberIndex(m.level.Kind, m.selected)
		events.Nav.Open(action.URL)
		if m.opener == nil {
			return nil
		}
		if err := m.opener.Open(action.URL); err != nil {
			err = fmt.Errorf("open %s: %w", action.URL, err)
			logging.Error(err)
			return err
		}
	case menu.SelectTrack:
		m.RememberIndex(m.level.Kind, m.selected)
		m.selectTrack(action.TrackID)
	case menu.ShowContent:
		m.RememberIndex(m.level.Kind, m.selected)
		m.visible = false
		m.tab = action.Tab
		events.Nav.Content(action.Tab)
	default:
		return fmt.Errorf("unsupported action %T", item.Action)
	}
	return nil
}

func (m *Machine) enter(level menu.Level) {
	m.level = level
	m.visible = true
	m.selected = Clamp(m.RecallIndex(level.Kind), len(m.Items()))
	events.Nav.Enter(level.String(), m.selected)
}

func (m *Machine) selectTrack(id string) {
	if m.player != nil && m.registry != nil {
		cat := m.registry.Catalog()
		if idx := cat.IndexOf(id); idx >= 0 {
			track, _ := cat.At(idx)
			if current, ok := m.player.Current(); !ok || current.ID != track.ID {
				m.player.LoadAndPlay(track)
			} else {
				events.Media.Reselect(track.ID)
			}
		}
	}
	m.level = menu.Level{Kind: menu.NowPlaying, Songs: m.level.Songs}
	m.visible = false
	m.tab = menu.TabNowPlaying
	events.Nav.Enter(m.level.String(), 0)
}

// GoBack re-shows a hidden menu, or pops one level toward Main.
func (m *Machine) GoBack() {
	from := m.level.String()
	if !m.visible {
		m.reshow()
		events.Nav.ShowMenu(m.level.String(), m.selected)
		return
	}
	parent, ok := menu.Parent(m.level)
	if !ok {
		events.Nav.Ignored("back", "at root")
		return
	}
	m.RememberIndex(m.level.Kind, m.selected)
	m.level = parent
	m.selected = Clamp(m.RecallIndex(parent.Kind), len(m.Items()))
	events.Nav.Back(from, parent.String())
}

func (m *Machine) reshow() {
	m.visible = true
	if m.level.Kind == menu.NowPlaying {
		m.level, _ = menu.Parent(m.level)
		m.selected = Clamp(m.RecallIndex(m.level.Kind), len(m.Items()))
		return
	}
	if owner, ok := menu.Owner(m.tab); ok {
		m.level = owner
		items := m.Items()
		if idx := menu.IndexOf(items, m.tab); idx >= 0 {
			m.selected = idx
			return
		}
	}
	m.selected = Clamp(m.RecallIndex(m.level.Kind), len(m.Items()))
}

// DirectionalStep cycles the content tabs while content is shown. It does
// nothing while the menu is visible or in Now Playing.
func (m *Machine) DirectionalStep(delta int) {
	if m.visible || m.level.Kind == menu.NowPlaying {
		events.Nav.Ignored("directional", "no content shown")
		return
	}
	tabs := menu.Tabs()
	current := 0
	for i, tab := range tabs {
		if tab == m.tab {
			current = i
			break
		}
	}
	next := tabs[Wrap(current, delta, len(tabs))]
	m.tab = next
	if owner, ok := menu.Owner(next); ok {
		m.level = owner
		if idx := menu.IndexOf(m.Items(), next); idx >= 0 {
			m.selected = idx
			m.RememberIndex(owner.Kind, idx)
		}
	}
	events.Nav.Content(next)
}

// ToggleScrollMode flips whether rotation scrolls the content view.
func (m *Machine) ToggleScrollMode() {
	m.scrollMode = !m.scrollMode
	events.Nav.ScrollMode(m.scrollMode)
}

// HandleClick dispatches a click on a wheel area according to what is shown.
func (m *Machine) HandleClick(area gesture.Area) error {
	if area == gesture.AreaTop {
		m.GoBack()
		return nil
	}
	switch {
	case m.level.Kind == menu.NowPlaying:
		m.handleNowPlayingClick(area)
	case m.visible:
		if area == gesture.AreaCenter {
			return m.SelectCurrent()
		}
		events.Nav.Ignored("click:"+area.String(), "menu visible")
	default:
		switch area {
		case gesture.AreaLeft:
			m.DirectionalStep(-1)
		case gesture.AreaRight:
			m.DirectionalStep(1)
		case gesture.AreaBottom:
			m.ToggleScrollMode()
		default:
			events.Nav.Ignored("click:"+area.String(), "content shown")
		}
	}
	return nil
}

func (m *Machine) handleNowPlayingClick(area gesture.Area) {
	if m.player == nil {
		events.Nav.Ignored("click:"+area.String(), "no player")
		return
	}
	switch area {
	case gesture.AreaLeft:
		m.player.Previous()
	case gesture.AreaRight:
		m.player.Next()
	case gesture.AreaBottom:
		m.player.TogglePlayPause()
	case gesture.AreaCenter:
		m.player.ToggleFullView()
	}
}
