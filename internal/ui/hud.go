//go:build ebiten

package ui

import (
	"fmt"

	"minesweep/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Height is the pixel height of the HUD panel across the top of the window.
const Height = 44

const (
	panelPadding = 10
	topBaseline  = 17
	msgBaseline  = 34
)

// HUD renders the status panel: flag counter, elapsed time, and a message line.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD spanning the given pixel width.
func NewHUD(width int) *HUD {
	if width < 1 {
		width = 1
	}
	return &HUD{width: width}
}

// Draw paints the panel onto the top-left corner of screen.
func (h *HUD) Draw(screen *ebiten.Image, st game.Status, mines int, msg string, th *Theme) {
	if h.panel == nil || h.panel.Bounds().Dx() != h.width {
		h.panel = ebiten.NewImage(h.width, Height)
	}
	h.panel.Fill(th.Panel)

	face := basicfont.Face7x13
	flags := fmt.Sprintf("Flags: %d/%d", mines-st.FlagsRemaining, mines)
	text.Draw(h.panel, flags, face, panelPadding, topBaseline, th.Text)

	clock := fmt.Sprintf("Time: %ds", int(st.Elapsed.Seconds()))
	clockX := h.width - panelPadding - 7*len(clock)
	if clockX < panelPadding {
		clockX = panelPadding
	}
	text.Draw(h.panel, clock, face, clockX, topBaseline, th.Text)

	text.Draw(h.panel, msg, face, panelPadding, msgBaseline, th.TextSoft)

	screen.DrawImage(h.panel, nil)
}
