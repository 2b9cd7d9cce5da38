package render

import (
	"image/color"
	"testing"

	"minesweep/internal/game"
)

func TestCellStateOfPrecedence(t *testing.T) {
	cases := []struct {
		name string
		view game.CellView
		want CellState
	}{
		{"hidden", game.CellView{}, CellHidden},
		{"flagged", game.CellView{Flagged: true}, CellFlagged},
		{"revealed", game.CellView{Revealed: true, Adjacent: 3}, CellRevealed},
		{"mine", game.CellView{Revealed: true, Mine: true}, CellMine},
		{"exploded beats mine", game.CellView{Revealed: true, Mine: true, Exploded: true}, CellExploded},
		{"wrong flag beats flagged", game.CellView{Flagged: true, WrongFlag: true}, CellWrongFlag},
	}
	for _, tc := range cases {
		if got := CellStateOf(tc.view); got != tc.want {
			t.Fatalf("%s: CellStateOf = %d, expected %d", tc.name, got, tc.want)
		}
	}
}

func TestFillBoardRGBA(t *testing.T) {
	const cellSize = 4
	cols, rows := 2, 1
	states := []CellState{CellHidden, CellRevealed}

	var pal Palette
	pal[CellHidden] = color.RGBA{R: 10, G: 20, B: 30, A: 255}
	pal[CellRevealed] = color.RGBA{R: 40, G: 50, B: 60, A: 255}
	grid := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	w := cols * cellSize
	buf := make([]byte, 4*w*rows*cellSize)
	fillBoardRGBA(buf, states, cols, rows, cellSize, &pal, grid)

	at := func(x, y int) color.RGBA {
		base := (y*w + x) * 4
		return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
	}

	// interior pixels take the cell background
	if got := at(2, 2); got != pal[CellHidden] {
		t.Fatalf("pixel (2,2) = %v, expected hidden background %v", got, pal[CellHidden])
	}
	if got := at(6, 2); got != pal[CellRevealed] {
		t.Fatalf("pixel (6,2) = %v, expected revealed background %v", got, pal[CellRevealed])
	}

	// top row and left cell edges carry the grid line
	if got := at(3, 0); got != grid {
		t.Fatalf("pixel (3,0) = %v, expected grid line %v", got, grid)
	}
	if got := at(4, 2); got != grid {
		t.Fatalf("pixel (4,2) = %v, expected grid line %v", got, grid)
	}
}
