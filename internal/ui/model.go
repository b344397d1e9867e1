package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/clickwheel/internal/catalog"
	"github.com/atomicstack/clickwheel/internal/gesture"
	"github.com/atomicstack/clickwheel/internal/logging"
	"github.com/atomicstack/clickwheel/internal/media"
	"github.com/atomicstack/clickwheel/internal/menu"
	"github.com/atomicstack/clickwheel/internal/navigation"
	"github.com/atomicstack/clickwheel/internal/shell"
	"github.com/atomicstack/clickwheel/internal/theme"
	"github.com/atomicstack/clickwheel/internal/ui/command"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultScrollSeconds is how long an animated content scroll takes.
const DefaultScrollSeconds = 0.2

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Catalog  *catalog.Catalog
	Player   *media.Controller
	Ticker   *media.Ticker
	Gestures *gesture.Disambiguator
	Bus      *command.Bus

	Width      int
	Height     int
	ShowFooter bool

	// ScrollSeconds animates content scrolling; zero scrolls instantly.
	ScrollSeconds float32
}

// Model implements the Bubble Tea model for the click wheel.
type Model struct {
	catalog *catalog.Catalog
	machine *navigation.Machine
	player  *media.Controller
	ticker  *media.Ticker
	shell   *shell.Shell
	bus     *command.Bus

	content  *contentView
	progress progress.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	menuOffset int
	shownLevel menu.Level
	pressed    bool
	framing    bool
	pending    []tea.Cmd

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	handlers map[reflect.Type]msgHandler
}

// linkOpener hands external links to the command bus.
type linkOpener struct {
	m *Model
}

func (o linkOpener) Open(url string) error {
	o.m.pending = append(o.m.pending, o.m.bus.Open(url))
	o.m.setInfo("opening " + url)
	return nil
}

// NewModel initialises the UI state with the main menu shown.
func NewModel(opts Options) *Model {
	cat := opts.Catalog
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	player := opts.Player
	if player == nil {
		player = media.NewController(cat)
	}
	bus := opts.Bus
	if bus == nil {
		bus = command.New()
	}
	m := &Model{
		catalog:    cat,
		player:     player,
		ticker:     opts.Ticker,
		bus:        bus,
		showFooter: opts.ShowFooter,
		content:    newContentView(screenWidth, screenBodyRows, opts.ScrollSeconds),
		progress: progress.New(
			progress.WithWidth(screenWidth-2),
			progress.WithoutPercentage(),
			progress.WithSolidFill(styles.ProgressFill),
		),
	}
	m.machine = navigation.New(menu.NewRegistry(cat),
		navigation.WithPlayer(player),
		navigation.WithOpener(linkOpener{m: m}),
		navigation.WithScroller(m.content),
	)
	m.shell = shell.New(opts.Gestures, m.machine)
	m.shownLevel = m.machine.Level()
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Machine exposes the navigation state machine.
func (m *Model) Machine() *navigation.Machine {
	return m.machine
}

// Player exposes the media controller.
func (m *Model) Player() *media.Controller {
	return m.player
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return waitForTick(m.ticker)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(mediaTickMsg{}):      m.handleMediaTickMsg,
		reflect.TypeOf(tickerDoneMsg{}):     m.handleTickerDoneMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate syncs derived view state and collects queued side effects.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncScreen()
	if len(m.pending) > 0 {
		cmds = append(cmds, m.pending...)
		m.pending = nil
	}
	if m.content.Animating() && !m.framing {
		m.framing = true
		cmds = append(cmds, frameCmd())
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// syncScreen keeps the menu window and the content page in step with the
// navigation state.
func (m *Model) syncScreen() {
	snap := m.machine.Snapshot()
	if snap.Level != m.shownLevel {
		m.shownLevel = snap.Level
		m.menuOffset = 0
	}
	if snap.Visible {
		m.menuOffset = navigation.VisibleOffset(snap.Selected, m.menuOffset, len(snap.Items), screenBodyRows)
		return
	}
	if _, ok := menu.Owner(snap.Tab); ok && m.content.Tab() != snap.Tab {
		page, _ := m.catalog.Page(snap.Tab)
		m.content.Load(snap.Tab, page)
	}
}

// report surfaces an error from the core in the status line.
func (m *Model) report(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	logging.Error(err)
	m.errMsg = err.Error()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
