package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderWheelDimensions(t *testing.T) {
	rows := renderWheel()
	if len(rows) != wheelRows {
		t.Fatalf("expected %d rows, got %d", wheelRows, len(rows))
	}
	for i, row := range rows {
		if w := lipgloss.Width(row); w != wheelCols {
			t.Fatalf("row %d has width %d, want %d", i, w, wheelCols)
		}
	}
	joined := strings.Join(rows, "\n")
	for _, label := range []string{"MENU", "|<<", ">>|", ">||"} {
		if !strings.Contains(joined, label) {
			t.Fatalf("expected wheel label %q", label)
		}
	}
}

func TestViewPlacesWheelBelowScreen(t *testing.T) {
	m := newTestModel(t, Options{})
	lines := strings.Split(m.View(), "\n")
	if len(lines) < wheelTop+wheelRows {
		t.Fatalf("expected at least %d lines, got %d", wheelTop+wheelRows, len(lines))
	}
	if w := lipgloss.Width(lines[0]); w != screenOuter {
		t.Fatalf("expected screen width %d, got %d", screenOuter, w)
	}
	if !strings.Contains(lines[wheelTop+1], "MENU") {
		t.Fatalf("expected MENU label on wheel row 1, got %q", lines[wheelTop+1])
	}
}

func TestFooterToggle(t *testing.T) {
	if view := newTestModel(t, Options{}).View(); strings.Contains(view, "rotate") {
		t.Fatalf("expected no footer by default")
	}
	if view := newTestModel(t, Options{ShowFooter: true}).View(); !strings.Contains(view, "rotate") {
		t.Fatalf("expected footer hint")
	}
}

func TestNowPlayingView(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	for _, k := range []string{"down", "down", "enter", "enter", "enter"} {
		h.Send(key(k))
	}
	view := h.View()
	for _, want := range []string{"Now Playing", "Hey Ya!", "OutKast", "1 of 12", "0:00", "-3:00"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in now playing view:\n%s", want, view)
		}
	}

	h.Model().Player().Tick()
	if view := h.View(); !strings.Contains(view, "0:01") {
		t.Fatalf("expected elapsed time to advance:\n%s", view)
	}

	h.Send(key("enter"))
	if view := h.View(); !strings.Contains(view, "full view") {
		t.Fatalf("expected full view marker:\n%s", view)
	}
}

func TestEmptyMenuRendersPlaceholder(t *testing.T) {
	m := newTestModel(t, Options{})
	m.catalog.Projects = nil
	h := NewHarness(m)
	for _, k := range []string{"down", "enter", "down", "enter"} {
		h.Send(key(k))
	}
	if view := h.View(); !strings.Contains(view, "(empty)") {
		t.Fatalf("expected empty placeholder:\n%s", view)
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := map[int]string{0: "0:00", 59: "0:59", 61: "1:01", 180: "3:00", -4: "0:00"}
	for in, want := range cases {
		if got := formatSeconds(in); got != want {
			t.Fatalf("formatSeconds(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("Mr. Brightside", 5); lipgloss.Width(got) != 5 || !strings.HasSuffix(got, "…") {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateText("short", 10); got != "short" {
		t.Fatalf("expected untouched text, got %q", got)
	}
}
