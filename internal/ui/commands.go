package ui

import (
	"time"

	"github.com/atomicstack/clickwheel/internal/logging"
	"github.com/atomicstack/clickwheel/internal/media"
	"github.com/atomicstack/clickwheel/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces scroll animation frames.
const frameInterval = time.Second / 60

func waitForTick(t *media.Ticker) tea.Cmd {
	if t == nil {
		return nil
	}
	ticks := t.Ticks()
	return func() tea.Msg {
		tick, ok := <-ticks
		if !ok {
			return tickerDoneMsg{}
		}
		return mediaTickMsg{tick: tick}
	}
}

type mediaTickMsg struct {
	tick media.Tick
}

type tickerDoneMsg struct{}

type frameMsg struct {
	at time.Time
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(at time.Time) tea.Msg {
		return frameMsg{at: at}
	})
}

func (m *Model) handleMediaTickMsg(msg tea.Msg) tea.Cmd {
	tickMsg, ok := msg.(mediaTickMsg)
	if !ok {
		return nil
	}
	m.player.HandleTick(tickMsg.tick)
	return waitForTick(m.ticker)
}

func (m *Model) handleTickerDoneMsg(msg tea.Msg) tea.Cmd {
	m.ticker = nil
	return nil
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	m.framing = false
	m.content.Advance(float32(frameInterval.Seconds()))
	return nil
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		logging.Error(result.Err)
		m.errMsg = result.Err.Error()
		return nil
	}
	m.errMsg = ""
	m.setInfo("opened " + result.Label)
	return nil
}
