package render

import (
	"image/color"

	"minesweep/internal/game"
)

// CellState indexes the palette entry used for a cell's background.
type CellState uint8

const (
	// CellHidden is an untouched, unflagged cell.
	CellHidden CellState = iota
	// CellFlagged is a hidden cell carrying a flag.
	CellFlagged
	// CellRevealed is an uncovered non-mine cell.
	CellRevealed
	// CellMine is an uncovered mine (end-of-game display).
	CellMine
	// CellExploded is the mine whose reveal lost the game.
	CellExploded
	// CellWrongFlag is a flagged non-mine shown after a loss.
	CellWrongFlag

	cellStateCount
)

// Palette maps each CellState to its background color.
type Palette [cellStateCount]color.RGBA

// Style collects the colors used to draw a board.
type Style struct {
	Palette  Palette
	GridLine color.RGBA
	// Digits colors adjacency numbers 1..8; index 0 is unused.
	Digits    [9]color.RGBA
	FlagGlyph color.RGBA
	MineGlyph color.RGBA
}

// CellStateOf reduces a cell view to the state that selects its background.
func CellStateOf(v game.CellView) CellState {
	switch {
	case v.Exploded:
		return CellExploded
	case v.Mine:
		return CellMine
	case v.WrongFlag:
		return CellWrongFlag
	case v.Revealed:
		return CellRevealed
	case v.Flagged:
		return CellFlagged
	default:
		return CellHidden
	}
}

// fillBoardRGBA rasterizes cell backgrounds into buf, one cellSize×cellSize
// rectangle per state with a 1px grid line on the top and left edges. buf must
// hold 4*cols*cellSize*rows*cellSize bytes.
func fillBoardRGBA(buf []byte, states []CellState, cols, rows, cellSize int, pal *Palette, grid color.RGBA) {
	w := cols * cellSize
	for y := 0; y < rows*cellSize; y++ {
		rowBase := (y / cellSize) * cols
		onGridRow := y%cellSize == 0
		for x := 0; x < w; x++ {
			c := pal[states[rowBase+x/cellSize]]
			if onGridRow || x%cellSize == 0 {
				c = grid
			}
			base := (y*w + x) * 4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}
