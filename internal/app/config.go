package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Level int
	Cell  int
	Seed  int64
	Dark  bool
}

// NewConfig returns a Config populated with sensible defaults. A Seed of
// zero means each game draws its mine layout from the wall clock.
func NewConfig() *Config {
	return &Config{Level: 1, Cell: 24}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Level, "level", c.Level, "difficulty level (1-5)")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "mine placement seed (0 = random)")
	fs.BoolVar(&c.Dark, "dark", c.Dark, "start with the dark theme")
}
