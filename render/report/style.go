package report

import "github.com/charmbracelet/lipgloss"

var (
	colorBright  = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorAdded   = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
	colorRemoved = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
)

var (
	styleTitle     = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleHeading   = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta      = lipgloss.NewStyle().Foreground(colorDim)
	styleColumns   = lipgloss.NewStyle().Foreground(colorDim)
	styleSeparator = lipgloss.NewStyle().Foreground(colorDim)
	styleAdded     = lipgloss.NewStyle().Foreground(colorAdded)
	styleRemoved   = lipgloss.NewStyle().Foreground(colorRemoved)
)
