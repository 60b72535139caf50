package main

import (
	"flag"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cgol/model"
	"github.com/sheikhrachel/go-cgol/seed"
)

// viewConfig represents the command-line parameters for the viewer
type viewConfig struct {
	Image   string
	Width   int
	Height  int
	Density float64
	Scale   int
	TPS     int
	Seed    int64
}

// newViewConfig returns a viewConfig populated with sensible defaults
func newViewConfig() *viewConfig {
	return &viewConfig{Width: 160, Height: 120, Density: 0.2, Scale: 4, TPS: 15, Seed: time.Now().UnixNano()}
}

// Bind attaches the configuration to the provided FlagSet
func (c *viewConfig) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Image, "image", c.Image, "image to seed the grid from (png, jpeg, gif, bmp, tiff, webp)")
	fs.IntVar(&c.Width, "width", c.Width, "grid width when no image is given")
	fs.IntVar(&c.Height, "height", c.Height, "grid height when no image is given")
	fs.Float64Var(&c.Density, "density", c.Density, "initial live cell probability when no image is given")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random grids")
}

// newGrid seeds the starting grid. The viewer needs at least one cell to draw.
func (c *viewConfig) newGrid() (*model.Grid, error) {
	var grid *model.Grid
	if c.Image != "" {
		g, err := seed.LoadFile(c.Image)
		if err != nil {
			return nil, err
		}
		grid = g
	} else {
		grid = model.NewGrid(c.Width, c.Height)
		grid.Randomize(model.NewRand(c.Seed), c.Density)
	}

	if grid.GetWidth() == 0 || grid.GetHeight() == 0 {
		return nil, errors.Errorf("[newGrid] cannot view an empty %dx%d grid", grid.GetWidth(), grid.GetHeight())
	}
	return grid, nil
}
