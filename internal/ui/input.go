package ui

import (
	"github.com/atomicstack/clickwheel/internal/geometry"
	"github.com/atomicstack/clickwheel/internal/gesture"
	"github.com/atomicstack/clickwheel/internal/shell"
	tea "github.com/charmbracelet/bubbletea"
)

// wheelNotch is the scroll delta one mouse wheel notch reports.
const wheelNotch = gesture.DefaultScrollThreshold

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.errMsg = ""
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "k":
		return m.report(m.shell.Rotate(gesture.Backward))
	case "down", "j":
		return m.report(m.shell.Rotate(gesture.Forward))
	case "enter", " ":
		return m.report(m.shell.Press(gesture.AreaCenter))
	case "esc", "m":
		return m.report(m.shell.Press(gesture.AreaTop))
	case "left", "h":
		return m.report(m.shell.Press(gesture.AreaLeft))
	case "right", "l":
		return m.report(m.shell.Press(gesture.AreaRight))
	case "b", "p":
		return m.report(m.shell.Press(gesture.AreaBottom))
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		return m.report(m.shell.Wheel(-wheelNotch))
	case tea.MouseButtonWheelDown:
		return m.report(m.shell.Wheel(wheelNotch))
	}

	p, inside := wheelPoint(mouse.X, mouse.Y)
	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft || !inside {
			return nil
		}
		m.errMsg = ""
		m.pressed = m.shell.PointerDown(p)
	case tea.MouseActionMotion:
		if !m.pressed {
			return nil
		}
		if !inside {
			m.pressed = false
			m.shell.PointerLeave()
			return nil
		}
		return m.report(m.shell.PointerMove(p))
	case tea.MouseActionRelease:
		if !m.pressed {
			return nil
		}
		m.pressed = false
		return m.report(m.shell.PointerUp())
	}
	return nil
}

func (m *Model) handleBlurMsg(msg tea.Msg) tea.Cmd {
	m.pressed = false
	m.shell.Blur()
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// wheelPoint converts a terminal cell to wheel units. inside is false when
// the cell falls outside the drawn wheel disc.
func wheelPoint(x, y int) (geometry.Point, bool) {
	col := x - wheelLeft
	row := y - wheelTop
	if col < 0 || row < 0 || col >= wheelCols || row >= wheelRows {
		return geometry.Point{}, false
	}
	p := cellCenter(col, row)
	return p, geometry.Distance(shell.WheelCenter, p) <= shell.WheelSize/2
}

// cellCenter is the wheel-unit position of the middle of a wheel cell.
func cellCenter(col, row int) geometry.Point {
	return geometry.Point{
		X: (float64(col) + 0.5) * shell.WheelSize / wheelCols,
		Y: (float64(row) + 0.5) * shell.WheelSize / wheelRows,
	}
}
