package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the shell.
type Styles struct {
	SectionHeader *lipgloss.Style
	Item          *lipgloss.Style
	ActiveItem    *lipgloss.Style
	HoveredItem   *lipgloss.Style
	Icon          *lipgloss.Style
	Sidebar       *lipgloss.Style
	SidebarFooter *lipgloss.Style
	LockIndicator *lipgloss.Style
	Tooltip       *lipgloss.Style
	Content       *lipgloss.Style
	ContentTitle  *lipgloss.Style
	Param         *lipgloss.Style
	Filter        *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	Warning       *lipgloss.Style
	Footer        *lipgloss.Style
}

var defaultStyles = Styles{
	SectionHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ActiveItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	HoveredItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Icon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Sidebar: ptr(
		lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(lipgloss.Color("238")),
	),
	SidebarFooter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	LockIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Tooltip: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250")).Padding(0, 1),
	),
	Content: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1),
	),
	ContentTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Param: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("108")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
