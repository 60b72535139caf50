package seed

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/sheikhrachel/go-cgol/model"
)

func TestIsAlive(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    bool
	}{
		{0, 0, 0, false},
		{128, 128, 128, false},
		{129, 0, 0, true},
		{0, 129, 0, true},
		{0, 0, 255, true},
		{100, 120, 128, false},
	}
	for _, tt := range tests {
		if got := IsAlive(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("IsAlive(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestFromPixels(t *testing.T) {
	// 3x2 RGB
	pix := []uint8{
		200, 0, 0, 0, 0, 0, 0, 0, 129,
		128, 128, 128, 0, 255, 0, 10, 10, 10,
	}
	coords, err := FromPixels(3, 2, 3, pix)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}

	want := []model.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 1}}
	if !slices.Equal(coords, want) {
		t.Fatalf("coords = %v, want %v", coords, want)
	}
}

func TestFromPixelsIgnoresExtraChannels(t *testing.T) {
	// alpha above the threshold must not seed a cell
	pix := []uint8{
		0, 0, 0, 255,
		0, 0, 200, 0,
	}
	coords, err := FromPixels(2, 1, 4, pix)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	if want := []model.Coord{{Row: 0, Col: 1}}; !slices.Equal(coords, want) {
		t.Fatalf("coords = %v, want %v", coords, want)
	}
}

func TestFromPixelsErrors(t *testing.T) {
	if _, err := FromPixels(2, 2, 2, make([]uint8, 8)); !errors.Is(err, ErrTooFewChannels) {
		t.Fatalf("err = %v, want ErrTooFewChannels", err)
	}
	if _, err := FromPixels(2, 2, 3, make([]uint8, 11)); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("err = %v, want ErrShortBuffer", err)
	}
	coords, err := FromPixels(0, 4, 3, nil)
	if err != nil || coords != nil {
		t.Fatalf("zero width: coords=%v err=%v", coords, err)
	}
}

func TestFromPixelsGrid(t *testing.T) {
	pix := make([]uint8, 4*3*3)
	// (2, 3) lit
	copy(pix[(2*4+3)*3:], []uint8{255, 255, 255})

	g, err := FromPixelsGrid(4, 3, 3, pix)
	if err != nil {
		t.Fatalf("FromPixelsGrid: %v", err)
	}
	if g.GetWidth() != 4 || g.GetHeight() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.GetWidth(), g.GetHeight())
	}
	if g.CellAt(2, 3) != model.Alive || g.CountLivingCells() != 1 {
		t.Fatalf("unexpected grid state")
	}

	if _, err := FromPixelsGrid(4, 3, 1, pix); err == nil {
		t.Fatalf("expected an error for single channel data")
	}
}

func testImage() *image.NRGBA {
	// wider than tall so a transposed mapping would show up
	img := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	img.Set(4, 0, color.White)
	img.Set(1, 2, color.NRGBA{R: 250, A: 255})
	img.Set(2, 1, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	return img
}

func checkTestImageGrid(t *testing.T, g *model.Grid) {
	t.Helper()
	if g.GetWidth() != 5 || g.GetHeight() != 3 {
		t.Fatalf("size = %dx%d, want 5x3", g.GetWidth(), g.GetHeight())
	}
	if g.CellAt(0, 4) != model.Alive || g.CellAt(2, 1) != model.Alive {
		t.Fatalf("lit pixels did not seed cells")
	}
	if g.CountLivingCells() != 2 {
		t.Fatalf("living cells = %d, want 2", g.CountLivingCells())
	}
}

func TestFromImage(t *testing.T) {
	checkTestImageGrid(t, FromImage(testImage()))
}

func TestFromImageGenericPath(t *testing.T) {
	src := testImage()
	rgba := image.NewRGBA(src.Bounds())
	for y := range 3 {
		for x := range 5 {
			rgba.Set(x, y, src.At(x, y))
		}
	}
	checkTestImageGrid(t, FromImage(rgba))

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 200})
	g := FromImage(gray)
	if g.CellAt(1, 1) != model.Alive || g.CountLivingCells() != 1 {
		t.Fatalf("gray image seeded %d cells", g.CountLivingCells())
	}
}

func TestFromImageSubImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	img.Set(3, 2, color.White)
	sub := img.SubImage(image.Rect(2, 1, 5, 4))

	g := FromImage(sub)
	if g.GetWidth() != 3 || g.GetHeight() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", g.GetWidth(), g.GetHeight())
	}
	if g.CellAt(1, 1) != model.Alive || g.CountLivingCells() != 1 {
		t.Fatalf("sub image seeded wrong cells")
	}
}

func TestDecode(t *testing.T) {
	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, testImage()); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	if err := bmp.Encode(&bmpBuf, testImage()); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}

	for format, buf := range map[string]*bytes.Buffer{"png": &pngBuf, "bmp": &bmpBuf} {
		img, got, err := Decode(buf)
		if err != nil {
			t.Fatalf("%s: Decode: %v", format, err)
		}
		if got != format {
			t.Fatalf("format = %q, want %q", got, format)
		}
		checkTestImageGrid(t, FromImage(img))
	}

	if _, _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatalf("expected an error for garbage input")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	g, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	checkTestImageGrid(t, g)

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
