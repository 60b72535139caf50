// Package seed turns decoded still images into initial cell layouts.
// A pixel becomes a live cell when any of its red, green or blue channels
// is brighter than Threshold.
package seed

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cgol/model"
)

// Threshold is the 8-bit channel value a pixel must exceed to seed a live cell
const Threshold = 128

var (
	ErrTooFewChannels = errors.New("pixel data needs at least 3 channels")
	ErrShortBuffer    = errors.New("pixel buffer shorter than width*height*channels")
)

// IsAlive applies the brightness threshold to the first three channels of a pixel
func IsAlive(r, g, b uint8) bool {
	return r > Threshold || g > Threshold || b > Threshold
}

// FromPixels scans row-major pixel data with the given number of channels per
// pixel and returns the coordinates of the live cells. Every returned
// coordinate lies inside width x height.
func FromPixels(width, height, channels int, pix []uint8) ([]model.Coord, error) {
	if channels < 3 {
		return nil, errors.Wrapf(ErrTooFewChannels, "[FromPixels] got %d", channels)
	}
	if width <= 0 || height <= 0 {
		return nil, nil
	}
	if need := width * height * channels; len(pix) < need {
		return nil, errors.Wrapf(ErrShortBuffer, "[FromPixels] have %d bytes, need %d", len(pix), need)
	}

	var coords []model.Coord
	for row := range height {
		for col := range width {
			p := pix[(row*width+col)*channels:]
			if IsAlive(p[0], p[1], p[2]) {
				coords = append(coords, model.Coord{Row: row, Col: col})
			}
		}
	}
	return coords, nil
}

// FromPixelsGrid is FromPixels followed by grid construction
func FromPixelsGrid(width, height, channels int, pix []uint8) (*model.Grid, error) {
	coords, err := FromPixels(width, height, channels, pix)
	if err != nil {
		return nil, err
	}
	return model.NewGridFromSeed(width, height, coords), nil
}

// FromImage builds a grid the size of img. Row follows the image's y axis
// and column its x axis. Channels are compared without alpha premultiplication.
func FromImage(img image.Image) *model.Grid {
	var (
		bounds = img.Bounds()
		grid   = model.NewGrid(bounds.Dx(), bounds.Dy())
	)

	if nrgba, ok := img.(*image.NRGBA); ok {
		coords, err := FromPixels(bounds.Dx(), bounds.Dy(), 4, packedPix(nrgba.Pix, nrgba.Stride, bounds.Dx(), bounds.Dy()))
		if err == nil {
			for _, c := range coords {
				grid.Set(c.Row, c.Col, model.Alive)
			}
			return grid
		}
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if IsAlive(c.R, c.G, c.B) {
				grid.Set(y-bounds.Min.Y, x-bounds.Min.X, model.Alive)
			}
		}
	}
	return grid
}

// packedPix drops any per-row padding so the rows sit back to back
func packedPix(pix []uint8, stride, width, height int) []uint8 {
	rowLen := width * 4
	if stride == rowLen {
		return pix
	}
	out := make([]uint8, 0, rowLen*height)
	for row := range height {
		out = append(out, pix[row*stride:row*stride+rowLen]...)
	}
	return out
}
