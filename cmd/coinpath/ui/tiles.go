package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/coinpath/core"
)

// tileKind classifies a board position for coloring.
type tileKind int

const (
	tileIdle tileKind = iota
	tileCurrent
	tileBest
	tileBoth
)

// classify decides the color of tile i given the (optional) walking and
// best ranges. Overlap wins over either single membership.
func classify(i int, current, best *core.Range) tileKind {
	inCurrent := current != nil && current.Contains(i)
	inBest := best != nil && best.Contains(i)

	switch {
	case inCurrent && inBest:
		return tileBoth
	case inBest:
		return tileBest
	case inCurrent:
		return tileCurrent
	default:
		return tileIdle
	}
}

// tileStyle maps a tile kind to its style.
func (s Styles) tileStyle(k tileKind) lipgloss.Style {
	switch k {
	case tileBoth:
		return s.TileBoth
	case tileBest:
		return s.TileBest
	case tileCurrent:
		return s.TileCurrent
	default:
		return s.TileIdle
	}
}

// renderTiles draws the board as a row of boxes, each showing its index
// above its value, colored by range membership.
func (s Styles) renderTiles(seq core.Sequence, current, best *core.Range) string {
	boxes := make([]string, 0, seq.Len())
	for i, v := range seq {
		body := fmt.Sprintf("%s\n%d", s.TileIndex.Render(fmt.Sprintf("idx %d", i)), v)
		boxes = append(boxes, s.tileStyle(classify(i, current, best)).Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// renderLegend draws the color legend shown above the Learn board.
func (s Styles) renderLegend() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		s.TileCurrent.Render("current path"), " ",
		s.TileBest.Render("best so far"), " ",
		s.TileBoth.Render("both"),
	)
}
