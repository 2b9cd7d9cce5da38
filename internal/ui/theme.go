package ui

import (
	"image/color"

	"minesweep/internal/render"
)

// Theme bundles the colors for the window chrome, the HUD panel, and the
// board. Themes are plain values selected by index on the session; nothing
// here is process-global.
type Theme struct {
	Name       string
	Background color.RGBA
	Panel      color.RGBA
	Text       color.RGBA
	TextSoft   color.RGBA
	Board      render.Style
}

// classic minesweeper digit colors, 1..8
var digitColors = [9]color.RGBA{
	{},
	{R: 25, G: 25, B: 220, A: 255},
	{R: 0, G: 130, B: 0, A: 255},
	{R: 210, G: 20, B: 20, A: 255},
	{R: 0, G: 0, B: 135, A: 255},
	{R: 130, G: 0, B: 0, A: 255},
	{R: 0, G: 128, B: 128, A: 255},
	{R: 0, G: 0, B: 0, A: 255},
	{R: 110, G: 110, B: 110, A: 255},
}

var darkDigitColors = [9]color.RGBA{
	{},
	{R: 120, G: 160, B: 255, A: 255},
	{R: 120, G: 220, B: 120, A: 255},
	{R: 255, G: 110, B: 110, A: 255},
	{R: 150, G: 150, B: 255, A: 255},
	{R: 230, G: 140, B: 140, A: 255},
	{R: 110, G: 220, B: 220, A: 255},
	{R: 240, G: 240, B: 240, A: 255},
	{R: 180, G: 180, B: 180, A: 255},
}

var themes = []Theme{
	{
		Name:       "light",
		Background: color.RGBA{R: 242, G: 242, B: 242, A: 255},
		Panel:      color.RGBA{R: 217, G: 217, B: 217, A: 255},
		Text:       color.RGBA{R: 17, G: 17, B: 17, A: 255},
		TextSoft:   color.RGBA{R: 70, G: 70, B: 70, A: 255},
		Board: render.Style{
			Palette: render.Palette{
				render.CellHidden:    {R: 236, G: 236, B: 236, A: 255},
				render.CellFlagged:   {R: 222, G: 222, B: 210, A: 255},
				render.CellRevealed:  {R: 207, G: 207, B: 207, A: 255},
				render.CellMine:      {R: 190, G: 190, B: 190, A: 255},
				render.CellExploded:  {R: 235, G: 120, B: 110, A: 255},
				render.CellWrongFlag: {R: 230, G: 180, B: 175, A: 255},
			},
			GridLine:  color.RGBA{R: 155, G: 155, B: 155, A: 255},
			Digits:    digitColors,
			FlagGlyph: color.RGBA{R: 210, G: 32, B: 32, A: 255},
			MineGlyph: color.RGBA{R: 10, G: 10, B: 10, A: 255},
		},
	},
	{
		Name:       "dark",
		Background: color.RGBA{R: 18, G: 18, B: 18, A: 255},
		Panel:      color.RGBA{R: 30, G: 30, B: 30, A: 255},
		Text:       color.RGBA{R: 234, G: 234, B: 234, A: 255},
		TextSoft:   color.RGBA{R: 170, G: 170, B: 180, A: 255},
		Board: render.Style{
			Palette: render.Palette{
				render.CellHidden:    {R: 42, G: 42, B: 42, A: 255},
				render.CellFlagged:   {R: 56, G: 48, B: 48, A: 255},
				render.CellRevealed:  {R: 32, G: 32, B: 32, A: 255},
				render.CellMine:      {R: 60, G: 60, B: 66, A: 255},
				render.CellExploded:  {R: 140, G: 40, B: 36, A: 255},
				render.CellWrongFlag: {R: 96, G: 52, B: 50, A: 255},
			},
			GridLine:  color.RGBA{R: 68, G: 68, B: 68, A: 255},
			Digits:    darkDigitColors,
			FlagGlyph: color.RGBA{R: 255, G: 88, B: 88, A: 255},
			MineGlyph: color.RGBA{R: 245, G: 245, B: 245, A: 255},
		},
	},
}

// Themes returns the built-in themes, light first.
func Themes() []Theme { return themes }
