// Package style holds the colors and glyphs shared by terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)
