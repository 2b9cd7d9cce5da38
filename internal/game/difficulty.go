package game

// Config describes the dimensions and mine count of a board.
type Config struct {
	Rows  int
	Cols  int
	Mines int
}

// Difficulty levels accepted by LevelConfig.
const (
	MinLevel = 1
	MaxLevel = 5
)

// levels maps a difficulty level to a board configuration. Boards grow
// wider faster than taller to suit desktop displays.
var levels = map[int]Config{
	1: {Rows: 8, Cols: 12, Mines: 14},
	2: {Rows: 9, Cols: 14, Mines: 22},
	3: {Rows: 10, Cols: 18, Mines: 38},
	4: {Rows: 12, Cols: 22, Mines: 60},
	5: {Rows: 14, Cols: 26, Mines: 90},
}

// LevelConfig returns the board configuration for a difficulty level,
// clamping out-of-range levels into [MinLevel, MaxLevel].
func LevelConfig(level int) Config {
	if level < MinLevel {
		level = MinLevel
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return levels[level]
}
