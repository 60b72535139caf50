//go:build ebiten

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func main() {
	cfg := newViewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, err := cfg.newGrid()
	if err != nil {
		log.Fatalf("%+v", err)
	}

	ebiten.SetWindowTitle("cgol")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(grid.GetWidth()*cfg.Scale, grid.GetHeight()*cfg.Scale)

	if err := ebiten.RunGame(newViewer(cfg, grid)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
