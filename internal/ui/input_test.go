package ui

import (
	"math"
	"testing"

	"github.com/atomicstack/clickwheel/internal/geometry"
	"github.com/atomicstack/clickwheel/internal/menu"
	"github.com/atomicstack/clickwheel/internal/shell"
	tea "github.com/charmbracelet/bubbletea"
)

// wheelCell returns the screen position of a wheel cell.
func wheelCell(col, row int) (int, int) {
	return wheelLeft + col, wheelTop + row
}

func mouse(action tea.MouseAction, button tea.MouseButton, col, row int) tea.MouseMsg {
	x, y := wheelCell(col, row)
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestWheelPointMapping(t *testing.T) {
	p, inside := wheelPoint(wheelCell(wheelCols/2, wheelRows/2))
	if !inside || geometry.Distance(p, shell.WheelCenter) > geometry.DefaultCenterRadius {
		t.Fatalf("expected middle cell in the centre button, got %+v inside=%v", p, inside)
	}
	if _, inside := wheelPoint(wheelCell(0, 0)); inside {
		t.Fatalf("expected the box corner to fall outside the disc")
	}
	if _, inside := wheelPoint(0, 0); inside {
		t.Fatalf("expected the screen area to fall outside the wheel")
	}
	if _, inside := wheelPoint(wheelCell(wheelCols, wheelRows/2)); inside {
		t.Fatalf("expected cells right of the box to fall outside")
	}
}

func TestMouseCenterClickSelects(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(mouse(tea.MouseActionPress, tea.MouseButtonLeft, wheelCols/2, wheelRows/2))
	h.Send(mouse(tea.MouseActionRelease, tea.MouseButtonNone, wheelCols/2, wheelRows/2))
	m := h.Model().Machine()
	if m.Visible() || m.Tab() != menu.TabHome {
		t.Fatalf("expected centre click to open Home, got visible=%v tab=%s", m.Visible(), m.Tab())
	}
}

func TestMouseTopClickGoesBack(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(key("down"))
	h.Send(key("enter"))
	h.Send(mouse(tea.MouseActionPress, tea.MouseButtonLeft, wheelCols/2, 1))
	h.Send(mouse(tea.MouseActionRelease, tea.MouseButtonNone, wheelCols/2, 1))
	if got := h.Model().Machine().Level().Kind; got != menu.Main {
		t.Fatalf("expected top click to return to Main, got %s", got)
	}
}

func TestMouseDragRotates(t *testing.T) {
	from := cellCenter(20, 3)
	to := cellCenter(22, 5)
	delta := geometry.AngleDegrees(shell.WheelCenter, to) - geometry.AngleDegrees(shell.WheelCenter, from)
	if delta < 15 || delta >= 30 || math.IsNaN(delta) {
		t.Fatalf("test cells should be one step apart, got %.2f degrees", delta)
	}

	h := NewHarness(newTestModel(t, Options{}))
	h.Send(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 20, 3))
	h.Send(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 22, 5))
	h.Send(mouse(tea.MouseActionRelease, tea.MouseButtonNone, 22, 5))
	m := h.Model().Machine()
	if m.Selected() != 1 {
		t.Fatalf("expected one clockwise step, got %d", m.Selected())
	}
	if !m.Visible() || m.Level().Kind != menu.Main {
		t.Fatalf("expected the drag not to click")
	}
}

func TestMotionOutsideWheelCancels(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(mouse(tea.MouseActionPress, tea.MouseButtonLeft, wheelCols/2, wheelRows/2))
	h.Send(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if h.Model().pressed || h.Model().shell.Tracking() {
		t.Fatalf("expected leaving the wheel to end the gesture")
	}
	h.Send(mouse(tea.MouseActionRelease, tea.MouseButtonNone, wheelCols/2, wheelRows/2))
	if !h.Model().Machine().Visible() {
		t.Fatalf("expected no click after a cancelled gesture")
	}
}

func TestBlurCancelsGesture(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(mouse(tea.MouseActionPress, tea.MouseButtonLeft, wheelCols/2, wheelRows/2))
	h.Send(tea.BlurMsg{})
	h.Send(mouse(tea.MouseActionRelease, tea.MouseButtonNone, wheelCols/2, wheelRows/2))
	if !h.Model().Machine().Visible() {
		t.Fatalf("expected blur to drop the pending click")
	}
}

func TestMouseWheelSteps(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := h.Model().Machine().Selected(); got != 1 {
		t.Fatalf("expected wheel down to step forward, got %d", got)
	}
	h.Send(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if got := h.Model().Machine().Selected(); got != 0 {
		t.Fatalf("expected wheel up to step back, got %d", got)
	}
}

func TestPressOutsideWheelIgnored(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.Send(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	if h.Model().pressed || !h.Model().Machine().Visible() {
		t.Fatalf("expected presses on the screen area to be ignored")
	}
}
