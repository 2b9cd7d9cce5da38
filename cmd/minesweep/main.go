//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"minesweep/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("start game: %v", err)
	}

	ebiten.SetWindowTitle("minesweep")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
