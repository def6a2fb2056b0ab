package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-paddle/internal/core"
)

// The original display is monochrome, so the whole buffer renders in a
// single style instead of per-cell colors.
var screenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return screenStyle.Render(s.String())
}
