//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"time"

	"minesweep/internal/game"
	"minesweep/internal/render"
	"minesweep/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const boardPadding = 8

// Game adapts the board model to the ebiten.Game interface. It owns the whole
// session: current board, difficulty level, theme index, and the status line.
type Game struct {
	board   *game.Board
	painter *render.BoardPainter
	hud     *ui.HUD

	level    int
	cellSize int
	themeIdx int
	seed     int64
	status   string
}

// New starts a session from the parsed configuration.
func New(cfg *Config) (*Game, error) {
	g := &Game{
		cellSize: cfg.Cell,
		seed:     cfg.Seed,
	}
	if g.cellSize < 16 {
		g.cellSize = 16
	}
	if cfg.Dark {
		g.themeIdx = 1
	}
	if err := g.newGame(cfg.Level); err != nil {
		return nil, err
	}
	return g, nil
}

// newGame discards the board and starts over at the given difficulty.
func (g *Game) newGame(level int) error {
	cfg := game.LevelConfig(level)
	seed := g.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	board, err := game.NewBoard(cfg, seed, nil)
	if err != nil {
		return fmt.Errorf("new game at level %d: %w", level, err)
	}

	g.level = level
	g.board = board
	g.painter = render.NewBoardPainter(cfg.Cols, cfg.Rows, g.cellSize)
	g.hud = ui.NewHUD(g.windowWidth())
	g.status = "Left click to reveal. Right click to flag."

	ebiten.SetWindowSize(g.windowWidth(), g.windowHeight())
	return nil
}

func (g *Game) windowWidth() int {
	return g.board.Cols()*g.cellSize + 2*boardPadding
}

func (g *Game) windowHeight() int {
	return ui.Height + g.board.Rows()*g.cellSize + 2*boardPadding
}

// Update handles one tick of input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.newGame(g.level)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.themeIdx = (g.themeIdx + 1) % len(ui.Themes())
	}
	for lvl := game.MinLevel; lvl <= game.MaxLevel; lvl++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit0 + ebiten.Key(lvl)) {
			return g.newGame(lvl)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if row, col, ok := g.cellAt(ebiten.CursorPosition()); ok {
			g.reveal(row, col)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if row, col, ok := g.cellAt(ebiten.CursorPosition()); ok {
			g.toggleFlag(row, col)
		}
	}
	return nil
}

// cellAt maps window coordinates to a board cell.
func (g *Game) cellAt(mx, my int) (row, col int, ok bool) {
	x := mx - boardPadding
	y := my - ui.Height - boardPadding
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/g.cellSize, x/g.cellSize
	if !g.board.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

func (g *Game) reveal(row, col int) {
	st, err := g.board.Reveal(row, col)
	if err != nil {
		if errors.Is(err, game.ErrInvalidOperation) {
			g.status = "Game over. Press R for a new game."
		}
		return
	}
	switch st {
	case game.Won:
		g.status = "You won! Press R to play again."
	case game.Lost:
		g.status = "Boom! You hit a mine. Press R to retry."
	}
}

func (g *Game) toggleFlag(row, col int) {
	if err := g.board.ToggleFlag(row, col); err != nil {
		if errors.Is(err, game.ErrInvalidOperation) {
			g.status = "Game over. Press R for a new game."
		}
	}
}

// Draw renders the HUD and the board with the active theme.
func (g *Game) Draw(screen *ebiten.Image) {
	themes := ui.Themes()
	th := &themes[g.themeIdx%len(themes)]

	screen.Fill(th.Background)
	snap := g.board.Snapshot()
	g.painter.Draw(screen, &snap, &th.Board, boardPadding, ui.Height+boardPadding)
	g.hud.Draw(screen, snap.Status, snap.Mines, g.status, th)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.windowWidth(), g.windowHeight()
}
