package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Screen                *lipgloss.Style
	Header                *lipgloss.Style
	PlayState             *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Empty                 *lipgloss.Style
	Content               *lipgloss.Style
	TrackTitle            *lipgloss.Style
	TrackArtist           *lipgloss.Style
	TrackTime             *lipgloss.Style
	Wheel                 *lipgloss.Style
	WheelLabel            *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style

	// ProgressFill is the colour of the now-playing bar.
	ProgressFill string
}

var defaultStyles = Styles{
	Screen: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")).Bold(true),
	),
	PlayState: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Background(lipgloss.Color("24")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Content: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	TrackTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	TrackArtist: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	TrackTime: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Wheel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	WheelLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	ProgressFill: "33",
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
