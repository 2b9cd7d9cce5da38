//go:build !ebiten

package ui

import "minesweep/internal/game"

// Height is the pixel height of the HUD panel across the top of the window.
const Height = 44

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, game.Status, int, string, *Theme) {}
