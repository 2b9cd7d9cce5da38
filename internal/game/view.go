package game

import "time"

// Status carries the scalar values shown on the HUD.
type Status struct {
	State          State
	Elapsed        time.Duration
	FlagsRemaining int
}

// CellView is the render-facing view of one cell. Mine contents leak only
// once the cell is revealed, so a renderer cannot accidentally spoil hidden
// state.
type CellView struct {
	Revealed bool
	Flagged  bool
	Mine     bool
	// Exploded marks the mine whose reveal ended the game.
	Exploded bool
	// WrongFlag marks a flagged non-mine cell after a loss.
	WrongFlag bool
	// Adjacent is the neighboring mine count, meaningful for revealed non-mines.
	Adjacent int
}

// Snapshot is the full output surface consumed by the presentation layer:
// every cell view in row-major order plus the scalar status.
type Snapshot struct {
	Rows, Cols int
	Mines      int
	Cells      []CellView
	Status     Status
}

// At returns the cell view at (row, col).
func (s *Snapshot) At(row, col int) CellView { return s.Cells[row*s.Cols+col] }

// Snapshot builds the current view of the board. After a win every mine is
// shown flagged; after a loss every mine is shown revealed and misplaced
// flags are marked wrong.
func (b *Board) Snapshot() Snapshot {
	views := make([]CellView, len(b.cells))
	for i, c := range b.cells {
		v := CellView{
			Revealed: c.revealed,
			Flagged:  c.flagged,
			Mine:     c.revealed && c.mine,
			Adjacent: int(b.adj.Cells()[i]),
		}
		switch b.state {
		case Won:
			if c.mine {
				v.Flagged = true
			}
		case Lost:
			v.Exploded = i == b.exploded
			v.WrongFlag = c.flagged && !c.mine
		}
		views[i] = v
	}
	return Snapshot{
		Rows:   b.rows,
		Cols:   b.cols,
		Mines:  b.mines,
		Cells:  views,
		Status: b.Status(),
	}
}
