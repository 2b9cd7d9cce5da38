package game

import (
	"fmt"
	"time"

	grid "minesweep/internal/core"
	"minesweep/pkg/core"
)

// State enumerates the lifecycle of a game session.
type State int

const (
	// NotStarted means no cell has been revealed and no mines are placed yet.
	NotStarted State = iota
	// InProgress means mines are placed and the game accepts moves.
	InProgress
	// Won means every non-mine cell is revealed. Terminal.
	Won
	// Lost means a mine was revealed. Terminal.
	Lost
)

// Terminal reports whether the state accepts no further moves.
func (s State) Terminal() bool { return s == Won || s == Lost }

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// cell holds the mutable per-cell flags. Adjacency counts live in a separate
// byte grid since they are written once at mine placement.
type cell struct {
	mine     bool
	revealed bool
	flagged  bool
}

// Board owns the grid state and enforces the game rules. It is not safe for
// concurrent use; the UI drives it from a single goroutine.
type Board struct {
	rows, cols int
	mines      int

	cells []cell
	adj   *grid.ByteGrid
	rng   *core.RNG
	watch *Stopwatch

	state    State
	placed   bool
	revealed int
	flags    int

	// exploded is the linear index of the mine that ended the game, -1 otherwise.
	exploded int
}

// NewBoard constructs an empty board. Mines are placed lazily on the first
// Reveal so the first click can never lose. The seed makes mine placement
// deterministic; pass a clock of nil to time with time.Now.
func NewBoard(cfg Config, seed int64, clock func() time.Time) (*Board, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrConfiguration, cfg.Rows, cfg.Cols)
	}
	if cfg.Mines < 1 || cfg.Mines >= cfg.Rows*cfg.Cols {
		return nil, fmt.Errorf("%w: %d mines on %d cells", ErrConfiguration, cfg.Mines, cfg.Rows*cfg.Cols)
	}
	return &Board{
		rows:     cfg.Rows,
		cols:     cfg.Cols,
		mines:    cfg.Mines,
		cells:    make([]cell, cfg.Rows*cfg.Cols),
		adj:      grid.NewByteGrid(cfg.Cols, cfg.Rows),
		rng:      core.NewRNG(seed),
		watch:    NewStopwatch(clock),
		exploded: -1,
	}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Mines returns the configured mine count.
func (b *Board) Mines() int { return b.mines }

// State returns the current game state.
func (b *Board) State() State { return b.state }

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int { return b.flags }

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return b.adj.InBounds(col, row)
}

func (b *Board) index(row, col int) int { return row*b.cols + col }

// forEachNeighbor calls fn for each of the up-to-8 in-bounds neighbors.
func (b *Board) forEachNeighbor(row, col int, fn func(nr, nc int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if b.InBounds(nr, nc) {
				fn(nr, nc)
			}
		}
	}
}

// placeMines samples mine positions uniformly, excluding the safe cell and
// its neighbors. When the board is too small or dense for that exclusion,
// only the safe cell itself is excluded.
func (b *Board) placeMines(safeRow, safeCol int) {
	forbidden := map[int]bool{b.index(safeRow, safeCol): true}
	b.forEachNeighbor(safeRow, safeCol, func(nr, nc int) {
		forbidden[b.index(nr, nc)] = true
	})

	candidates := make([]int, 0, len(b.cells))
	for i := range b.cells {
		if !forbidden[i] {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) < b.mines {
		candidates = candidates[:0]
		safe := b.index(safeRow, safeCol)
		for i := range b.cells {
			if i != safe {
				candidates = append(candidates, i)
			}
		}
	}

	for _, pick := range b.rng.SampleIndices(len(candidates), b.mines) {
		b.cells[candidates[pick]].mine = true
	}

	b.adj.Clear()
	for i, c := range b.cells {
		if !c.mine {
			continue
		}
		b.forEachNeighbor(i/b.cols, i%b.cols, func(nr, nc int) {
			b.adj.Inc(nc, nr)
		})
	}
	b.placed = true
}

// Adjacent returns the number of mines neighboring (row, col).
func (b *Board) Adjacent(row, col int) int {
	return int(b.adj.At(col, row))
}

// Reveal uncovers the cell at (row, col) and returns the resulting state.
// The first call places the mines and starts the clock. Revealing a flagged
// or already-revealed cell is a no-op; a zero-adjacency cell cascades to its
// neighbors; a mine ends the game.
func (b *Board) Reveal(row, col int) (State, error) {
	if !b.InBounds(row, col) {
		return b.state, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	if b.state.Terminal() {
		return b.state, fmt.Errorf("%w: game is %s", ErrInvalidOperation, b.state)
	}

	c := &b.cells[b.index(row, col)]
	if c.flagged || c.revealed {
		return b.state, nil
	}

	if !b.placed {
		b.placeMines(row, col)
	}
	if b.state == NotStarted {
		b.state = InProgress
		b.watch.Start()
	}

	if c.mine {
		c.revealed = true
		b.exploded = b.index(row, col)
		b.state = Lost
		b.revealAllMines()
		b.watch.Stop()
		return b.state, nil
	}

	b.floodReveal(row, col)

	if b.revealed == b.rows*b.cols-b.mines {
		b.state = Won
		b.watch.Stop()
	}
	return b.state, nil
}

// floodReveal uncovers the start cell and, for zero-adjacency cells, expands
// over the 8-connected region with an explicit stack. Each cell is revealed
// at most once; flagged cells and mines are never enqueued.
func (b *Board) floodReveal(row, col int) {
	stack := []int{b.index(row, col)}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &b.cells[i]
		if c.revealed || c.flagged {
			continue
		}
		c.revealed = true
		b.revealed++

		r, cl := i/b.cols, i%b.cols
		if b.adj.At(cl, r) != 0 {
			continue
		}
		b.forEachNeighbor(r, cl, func(nr, nc int) {
			n := &b.cells[b.index(nr, nc)]
			if !n.revealed && !n.flagged && !n.mine {
				stack = append(stack, b.index(nr, nc))
			}
		})
	}
}

// revealAllMines uncovers every mine for the end-of-game display.
func (b *Board) revealAllMines() {
	for i := range b.cells {
		if b.cells[i].mine {
			b.cells[i].revealed = true
		}
	}
}

// ToggleFlag flips the flag on an unrevealed cell. Revealed cells are a
// no-op; moves after a terminal state are rejected.
func (b *Board) ToggleFlag(row, col int) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	if b.state.Terminal() {
		return fmt.Errorf("%w: game is %s", ErrInvalidOperation, b.state)
	}
	c := &b.cells[b.index(row, col)]
	if c.revealed {
		return nil
	}
	if c.flagged {
		c.flagged = false
		b.flags--
	} else {
		c.flagged = true
		b.flags++
	}
	return nil
}

// Status reports the scalar session state: game state, elapsed time since
// the first reveal, and remaining flags. Read-only.
func (b *Board) Status() Status {
	return Status{
		State:          b.state,
		Elapsed:        b.watch.Elapsed(),
		FlagsRemaining: b.mines - b.flags,
	}
}
