// Package ui provides terminal styling for status values. Styles collapse
// to plain text when output is not attached to a colour-capable terminal,
// so machine consumers see the bare status labels.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for job and workflow states
const (
	ColorSuccess = lipgloss.Color("#2ECC40") // Green
	ColorError   = lipgloss.Color("#F45756") // Red
	ColorRunning = lipgloss.Color("#FF6E00") // Orange
	ColorBlocked = lipgloss.Color("#FF841C") // Amber
	ColorPending = lipgloss.Color("#5A5A5A") // Grey
)

// StatusStyle returns the appropriate styling for a status label
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "success", "passed":
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	case "failed", "failing", "error":
		return lipgloss.NewStyle().Foreground(ColorError)
	case "running":
		return lipgloss.NewStyle().Foreground(ColorRunning)
	case "on_hold", "blocked":
		return lipgloss.NewStyle().Foreground(ColorBlocked)
	default:
		return lipgloss.NewStyle().Foreground(ColorPending)
	}
}

// RenderStatus renders a status label with its semantic colour
func RenderStatus(status string) string {
	return StatusStyle(status).Render(status)
}
