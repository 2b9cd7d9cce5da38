package game

import "testing"

func TestLevelConfigTable(t *testing.T) {
	cases := []struct {
		level int
		want  Config
	}{
		{1, Config{Rows: 8, Cols: 12, Mines: 14}},
		{2, Config{Rows: 9, Cols: 14, Mines: 22}},
		{3, Config{Rows: 10, Cols: 18, Mines: 38}},
		{4, Config{Rows: 12, Cols: 22, Mines: 60}},
		{5, Config{Rows: 14, Cols: 26, Mines: 90}},
	}
	for _, tc := range cases {
		if got := LevelConfig(tc.level); got != tc.want {
			t.Fatalf("LevelConfig(%d) = %+v, expected %+v", tc.level, got, tc.want)
		}
	}
}

func TestLevelConfigClamps(t *testing.T) {
	if got := LevelConfig(0); got != levels[MinLevel] {
		t.Fatalf("LevelConfig(0) = %+v, expected level %d config", got, MinLevel)
	}
	if got := LevelConfig(99); got != levels[MaxLevel] {
		t.Fatalf("LevelConfig(99) = %+v, expected level %d config", got, MaxLevel)
	}
}

func TestEveryLevelBuildsAValidBoard(t *testing.T) {
	for lvl := MinLevel; lvl <= MaxLevel; lvl++ {
		if _, err := NewBoard(LevelConfig(lvl), 1, nil); err != nil {
			t.Fatalf("level %d: %v", lvl, err)
		}
	}
}
