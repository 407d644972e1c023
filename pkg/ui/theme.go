package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme carries the adaptive colors and renderer used by every widget.
// A renderer is threaded through so views render correctly when the
// program output is not the default terminal (tests, tea over SSH).
type Theme struct {
	Renderer *lipgloss.Renderer

	Base lipgloss.Style

	Primary   lipgloss.AdaptiveColor // accents, selected rows, borders
	Secondary lipgloss.AdaptiveColor // section headers, sort indicator
	Subtext   lipgloss.AdaptiveColor // hints, footers, placeholders
	Muted     lipgloss.AdaptiveColor // disabled placeholder, dividers
	Scope     lipgloss.AdaptiveColor // scope bubble foreground
	ScopeBg   lipgloss.AdaptiveColor // scope bubble background
}

// DefaultTheme returns the stock theme for the given renderer.
func DefaultTheme(renderer *lipgloss.Renderer) Theme {
	return Theme{
		Renderer: renderer,
		Base: renderer.NewStyle().Foreground(
			lipgloss.AdaptiveColor{Light: "#1A1B26", Dark: "#F8F8F2"}),
		Primary:   lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#475A8C", Dark: "#6272A4"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#BFBFBF"},
		Muted:     lipgloss.AdaptiveColor{Light: "#9A9A9A", Dark: "#6272A4"},
		Scope:     lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#8BE9FD"},
		ScopeBg:   lipgloss.AdaptiveColor{Light: "#E0F2FE", Dark: "#1A3344"},
	}
}
