package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Bar             *lipgloss.Style
	Trigger         *lipgloss.Style
	TriggerFocused  *lipgloss.Style
	TriggerOpen     *lipgloss.Style
	Item            *lipgloss.Style
	ActiveItem      *lipgloss.Style
	EmptyList       *lipgloss.Style
	ListFocused     *lipgloss.Style
	Detector        *lipgloss.Style
	DetectorFocused *lipgloss.Style
	Status          *lipgloss.Style
	StatusLabel     *lipgloss.Style
	Footer          *lipgloss.Style
	FooterKey       *lipgloss.Style
}

var defaultStyles = Styles{
	Bar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Trigger: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	TriggerFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true).Bold(true),
	),
	TriggerOpen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("235")),
	),
	ActiveItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	EmptyList: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(lipgloss.Color("235")).Italic(true),
	),
	ListFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Italic(true),
	),
	Detector: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	DetectorFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	StatusLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FooterKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
