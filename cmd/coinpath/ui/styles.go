// Package ui renders the coinpath terminal game: the tile board, the
// guided Kadane walkthrough, and the grading feedback, as a bubbletea
// program styled with lipgloss.
package ui

import "github.com/charmbracelet/lipgloss"

// Tile palette, carried over from the original board design: slate for
// idle tiles, blue for the walking path, green for the best path, purple
// where the two overlap.
var (
	ColorIdle    = lipgloss.Color("#f1f5f9")
	ColorCurrent = lipgloss.Color("#bfdbfe")
	ColorBest    = lipgloss.Color("#bbf7d0")
	ColorBoth    = lipgloss.Color("#e9d5ff")

	ColorInk     = lipgloss.Color("#0f172a")
	ColorFaint   = lipgloss.Color("#64748b")
	ColorBorder  = lipgloss.Color("#cbd5e1")
	ColorSuccess = lipgloss.Color("#16a34a")
	ColorInfo    = lipgloss.Color("#2563eb")
	ColorError   = lipgloss.Color("#dc2626")
)

// Styles holds every lipgloss style the views use.
type Styles struct {
	TileIdle    lipgloss.Style
	TileCurrent lipgloss.Style
	TileBest    lipgloss.Style
	TileBoth    lipgloss.Style
	TileIndex   lipgloss.Style

	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Text      lipgloss.Style
	Muted     lipgloss.Style
	Narrative lipgloss.Style
	Success   lipgloss.Style
	Info      lipgloss.Style
	Error     lipgloss.Style
}

// DefaultStyles builds the standard light theme.
func DefaultStyles() Styles {
	tile := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Foreground(ColorInk).
		Padding(0, 1).
		Align(lipgloss.Center)

	return Styles{
		TileIdle:    tile.Background(ColorIdle),
		TileCurrent: tile.Background(ColorCurrent),
		TileBest:    tile.Background(ColorBest),
		TileBoth:    tile.Background(ColorBoth),
		TileIndex:   lipgloss.NewStyle().Foreground(ColorFaint),

		Title:       lipgloss.NewStyle().Bold(true).Foreground(ColorInk),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(ColorInfo).Underline(true).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(ColorFaint).Padding(0, 1),

		Text:      lipgloss.NewStyle().Foreground(ColorInk),
		Muted:     lipgloss.NewStyle().Foreground(ColorFaint),
		Narrative: lipgloss.NewStyle().Foreground(ColorInk).Italic(true),
		Success:   lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess),
		Info:      lipgloss.NewStyle().Bold(true).Foreground(ColorInfo),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(ColorError),
	}
}
