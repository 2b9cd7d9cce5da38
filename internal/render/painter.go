//go:build ebiten

package render

import (
	"image/color"
	"strconv"

	"minesweep/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// BoardPainter rasterizes board snapshots into a single RGBA image and draws
// per-cell glyphs (digits, flags, mines) on top.
type BoardPainter struct {
	cols, rows int
	cellSize   int

	img    *ebiten.Image
	buf    []byte
	states []CellState
}

// NewBoardPainter allocates a painter for a cols×rows board drawn at
// cellSize pixels per cell.
func NewBoardPainter(cols, rows, cellSize int) *BoardPainter {
	if cellSize < 16 {
		cellSize = 16
	}
	w, h := cols*cellSize, rows*cellSize
	return &BoardPainter{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		img:      ebiten.NewImage(w, h),
		buf:      make([]byte, 4*w*h),
		states:   make([]CellState, cols*rows),
	}
}

// Size returns the pixel dimensions of the painted board.
func (p *BoardPainter) Size() (int, int) { return p.cols * p.cellSize, p.rows * p.cellSize }

// Draw uploads the snapshot's cell backgrounds into the painter image, blits
// it at (offsetX, offsetY), and overlays the cell glyphs.
func (p *BoardPainter) Draw(dst *ebiten.Image, snap *game.Snapshot, style *Style, offsetX, offsetY int) {
	if len(snap.Cells) != len(p.states) {
		return
	}
	for i, v := range snap.Cells {
		p.states[i] = CellStateOf(v)
	}
	fillBoardRGBA(p.buf, p.states, p.cols, p.rows, p.cellSize, &style.Palette, style.GridLine)
	p.img.ReplacePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), float64(offsetY))
	dst.DrawImage(p.img, op)

	p.drawGlyphs(dst, snap, style, offsetX, offsetY)
}

func (p *BoardPainter) drawGlyphs(dst *ebiten.Image, snap *game.Snapshot, style *Style, offsetX, offsetY int) {
	face := basicfont.Face7x13
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			v := snap.At(r, c)

			var s string
			var col color.RGBA
			switch {
			case v.Mine:
				s, col = "*", style.MineGlyph
			case v.WrongFlag:
				s, col = "X", style.FlagGlyph
			case v.Flagged:
				s, col = "F", style.FlagGlyph
			case v.Revealed && v.Adjacent > 0:
				s, col = strconv.Itoa(v.Adjacent), style.Digits[v.Adjacent]
			default:
				continue
			}

			// Face7x13 glyphs are 7px wide with an 11px ascent.
			x := offsetX + c*p.cellSize + (p.cellSize-7)/2
			y := offsetY + r*p.cellSize + (p.cellSize-13)/2 + 11
			text.Draw(dst, s, face, x, y, col)
		}
	}
}
