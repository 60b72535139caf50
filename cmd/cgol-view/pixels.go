package main

import (
	"image/color"

	"github.com/sheikhrachel/go-cgol/model"
)

// palette holds the pixel color for each cell state, indexed by model.Cell
type palette [2]color.RGBA

func newPalette(alive, dead color.Color) palette {
	var p palette
	p[model.Alive] = color.RGBAModel.Convert(alive).(color.RGBA)
	p[model.Dead] = color.RGBAModel.Convert(dead).(color.RGBA)
	return p
}

// paint writes one RGBA pixel per cell into pix, which must hold 4 bytes per cell
func (p palette) paint(pix []byte, cells []model.Cell) {
	for i, c := range cells {
		px := p[c]
		copy(pix[i*4:i*4+4], []byte{px.R, px.G, px.B, px.A})
	}
}
