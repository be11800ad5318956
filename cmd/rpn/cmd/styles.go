package cmd

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#7C3AED")
	colorGood   = lipgloss.Color("#50FA7B")
	colorBad    = lipgloss.Color("#FF5555")
	colorInfo   = lipgloss.Color("#8BE9FD")
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGood)
	errorStyle  = lipgloss.NewStyle().Foreground(colorBad)
	dumpStyle   = lipgloss.NewStyle().Foreground(colorInfo)
)

// paint applies st when colored output is enabled.
func paint(st lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return st.Render(s)
}
