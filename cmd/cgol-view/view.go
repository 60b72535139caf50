//go:build ebiten

package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-cgol/model"
)

// viewer adapts a grid to the ebiten.Game interface
type viewer struct {
	cfg  *viewConfig
	grid *model.Grid
	img  *ebiten.Image
	buf  []byte

	colors palette

	paused     bool
	tickOnce   bool
	generation int
}

func newViewer(cfg *viewConfig, grid *model.Grid) *viewer {
	w, h := grid.GetWidth(), grid.GetHeight()
	return &viewer{
		cfg:    cfg,
		grid:   grid,
		img:    ebiten.NewImage(w, h),
		buf:    make([]byte, 4*w*h),
		colors: newPalette(color.White, color.Black),
	}
}

// Update handles input and advances the grid
func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		v.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.cfg.Seed++
		grid, err := v.cfg.newGrid()
		if err != nil {
			return err
		}
		v.grid = grid
		v.generation = 0
	}

	if !v.paused || v.tickOnce {
		v.grid.Step()
		v.generation++
		v.tickOnce = false
	}
	return nil
}

// Draw paints the current generation
func (v *viewer) Draw(screen *ebiten.Image) {
	v.colors.paint(v.buf, v.grid.Cells())
	v.img.WritePixels(v.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.cfg.Scale), float64(v.cfg.Scale))
	screen.DrawImage(v.img, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  alive %d", v.generation, v.grid.CountLivingCells()))
}

// Layout returns the logical screen size
func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.grid.GetWidth() * v.cfg.Scale, v.grid.GetHeight() * v.cfg.Scale
}
