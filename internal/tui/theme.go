package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	colorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	colorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	colorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	colorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	colorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	colorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	colorSubtle = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorWhite).
	Background(colorBlue).
	Padding(0, 1)

var listItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

var selectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(colorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(colorBlue)

// dimmedStyle de-emphasizes completed tasks.
var dimmedStyle = lipgloss.NewStyle().
	Foreground(colorGray)

var overdueStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorRed)

var metaStyle = lipgloss.NewStyle().
	Foreground(colorGray)

var statusBarStyle = lipgloss.NewStyle().
	Foreground(colorWhite).
	Background(colorSubtle).
	Padding(0, 1)

var helpStyle = lipgloss.NewStyle().
	Foreground(colorGray).
	Italic(true)

var formStyle = lipgloss.NewStyle().
	Padding(1, 2)

// noticeStyle returns the style for a transient notification of the
// given level.
func noticeStyle(level noticeLevel) lipgloss.Style {
	switch level {
	case noticeSuccess:
		return lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	case noticeError:
		return lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	}
}
