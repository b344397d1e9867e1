package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/clickwheel/internal/geometry"
	"github.com/atomicstack/clickwheel/internal/media"
	"github.com/atomicstack/clickwheel/internal/menu"
	"github.com/atomicstack/clickwheel/internal/navigation"
	"github.com/atomicstack/clickwheel/internal/shell"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Layout of the fixed-size widget, in terminal cells. The screen is drawn
// first with a one cell border, then a blank row, then the wheel.
const (
	screenWidth    = 32
	screenBodyRows = 9
	screenOuter    = screenWidth + 2
	screenRows     = screenBodyRows + 3

	wheelCols = 26
	wheelRows = 13
	wheelLeft = (screenOuter - wheelCols) / 2
	wheelTop  = screenRows + 1
)

const footerHint = "↑↓ rotate  enter select  esc menu  ←→ skip  b/p play  q quit"

type wheelLabel struct {
	row, col int
	text     string
}

var wheelLabels = []wheelLabel{
	{row: 1, col: (wheelCols - 4) / 2, text: "MENU"},
	{row: wheelRows / 2, col: 1, text: "|<<"},
	{row: wheelRows / 2, col: wheelCols - 4, text: ">>|"},
	{row: wheelRows - 2, col: (wheelCols - 3) / 2, text: ">||"},
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, screenRows+wheelRows+4)
	lines = append(lines, strings.Split(m.renderScreen(), "\n")...)
	lines = append(lines, "")
	pad := strings.Repeat(" ", wheelLeft)
	for _, row := range renderWheel() {
		lines = append(lines, pad+row)
	}
	if m.showFooter {
		lines = append(lines, "", styles.Footer.Render(footerHint))
	}
	if m.errMsg != "" {
		lines = append(lines, styles.Error.Render(truncateText(m.errMsg, m.lineWidth())))
	} else if info := m.currentInfo(); info != "" {
		lines = append(lines, styles.Info.Render(truncateText(info, m.lineWidth())))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) lineWidth() int {
	if m.width > 0 {
		return m.width
	}
	return screenOuter
}

func (m *Model) renderScreen() string {
	snap := m.machine.Snapshot()
	state := m.player.State()

	var body []string
	switch {
	case snap.Visible:
		body = m.menuLines(snap)
	case snap.Level.Kind == menu.NowPlaying:
		body = m.nowPlayingLines(state)
	default:
		body = strings.Split(styles.Content.Render(m.content.View()), "\n")
	}
	for len(body) < screenBodyRows {
		body = append(body, "")
	}
	body = body[:screenBodyRows]

	lines := make([]string, 0, screenBodyRows+1)
	lines = append(lines, m.headerLine(snap, state))
	lines = append(lines, body...)
	return styles.Screen.Width(screenWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) headerLine(snap navigation.Snapshot, state media.State) string {
	title := snap.Title
	if !snap.Visible && snap.Level.Kind != menu.NowPlaying {
		if page, ok := m.catalog.Page(snap.Tab); ok && page.Title != "" {
			title = page.Title
		}
	}
	if snap.Level.Kind == menu.NowPlaying {
		title = menu.Title(snap.Level)
	}
	indicator := ""
	if state.Track != nil {
		indicator = "||"
		if state.Playing {
			indicator = "> "
		}
	}
	titleWidth := screenWidth - len(indicator) - 1
	title = padRight(truncateText(title, titleWidth), titleWidth)
	return styles.Header.Render(" "+title) + styles.PlayState.Render(indicator)
}

func (m *Model) menuLines(snap navigation.Snapshot) []string {
	if len(snap.Items) == 0 {
		return []string{styles.Empty.Render("(empty)")}
	}
	start := m.menuOffset
	end := start + screenBodyRows
	if end > len(snap.Items) {
		end = len(snap.Items)
	}
	lines := make([]string, 0, end-start)
	for idx := start; idx < end; idx++ {
		lines = append(lines, buildItemLine(snap.Items[idx], idx == snap.Selected))
	}
	return lines
}

func buildItemLine(item menu.Item, selected bool) string {
	suffix := ""
	switch item.Action.(type) {
	case menu.NavigateTo:
		suffix = " >"
	case menu.OpenExternal:
		suffix = " ^"
	}
	labelWidth := screenWidth - 2 - len(suffix)
	text := padRight(truncateText(item.Label, labelWidth), labelWidth) + suffix
	if selected {
		return styles.SelectedItemIndicator.Render("▸ ") + styles.SelectedItem.Render(text)
	}
	return styles.ItemIndicator.Render("  ") + styles.Item.Render(text)
}

func (m *Model) nowPlayingLines(state media.State) []string {
	if state.Track == nil {
		return []string{"", styles.Empty.Render(" Nothing playing")}
	}
	track := *state.Track
	position := ""
	if state.TrackIndex >= 0 {
		position = fmt.Sprintf(" %d of %d", state.TrackIndex+1, m.catalog.Len())
	}
	if state.FullView {
		return []string{
			styles.TrackTime.Render(position),
			"",
			styles.TrackTitle.Render(" " + truncateText(track.Title, screenWidth-1)),
			"",
			styles.Empty.Render(" [ full view ]"),
			styles.Empty.Render(" press centre to return"),
		}
	}
	remaining := state.Duration - state.Elapsed
	if remaining < 0 {
		remaining = 0
	}
	elapsed := formatSeconds(state.Elapsed)
	left := "-" + formatSeconds(remaining)
	gap := screenWidth - 2 - len(elapsed) - len(left)
	if gap < 1 {
		gap = 1
	}
	return []string{
		styles.TrackTime.Render(position),
		"",
		styles.TrackTitle.Render(" " + truncateText(track.Title, screenWidth-1)),
		styles.TrackArtist.Render(" " + truncateText(track.Artist, screenWidth-1)),
		"",
		" " + m.progress.ViewAs(state.Progress()),
		styles.TrackTime.Render(" " + elapsed + strings.Repeat(" ", gap) + left),
	}
}

// renderWheel draws the wheel disc one row per string, wheelCols cells wide.
func renderWheel() []string {
	grid := make([][]rune, wheelRows)
	label := make([][]bool, wheelRows)
	for row := range grid {
		grid[row] = make([]rune, wheelCols)
		label[row] = make([]bool, wheelCols)
		for col := range grid[row] {
			p := cellCenter(col, row)
			d := geometry.Distance(shell.WheelCenter, p)
			switch {
			case d > shell.WheelSize/2:
				grid[row][col] = ' '
			case d <= geometry.DefaultCenterRadius:
				grid[row][col] = '·'
			default:
				grid[row][col] = '░'
			}
		}
	}
	for _, l := range wheelLabels {
		for i, r := range l.text {
			grid[l.row][l.col+i] = r
			label[l.row][l.col+i] = true
		}
	}

	rows := make([]string, wheelRows)
	for row := range grid {
		var b strings.Builder
		start := 0
		for col := 1; col <= wheelCols; col++ {
			if col < wheelCols && label[row][col] == label[row][start] {
				continue
			}
			style := styles.Wheel
			if label[row][start] {
				style = styles.WheelLabel
			}
			b.WriteString(style.Render(string(grid[row][start:col])))
			start = col
		}
		rows[row] = b.String()
	}
	return rows
}

func formatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func padRight(text string, width int) string {
	if w := lipgloss.Width(text); w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return text
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
