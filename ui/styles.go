package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/wavescope/wavescope/model"
)

var (
	// Colors
	colorYellow = lipgloss.Color("#F1FA8C")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorOrange = lipgloss.Color("#FFB86C")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")
	colorRed    = lipgloss.Color("#FF5555")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	dimStyle      = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	errStyle      = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	modeStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorOrange)
	markerStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle     = lipgloss.NewStyle().Foreground(colorGray)
)

// seriesStyle renders text in a series' own display color.
func seriesStyle(c model.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(c)))
}

func hexColor(c model.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
