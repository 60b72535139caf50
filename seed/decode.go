package seed

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/sheikhrachel/go-cgol/model"
)

// Decode reads an image in any registered format (png, jpeg, gif, bmp, tiff, webp)
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "[Decode] failed to decode image")
	}
	return img, format, nil
}

// LoadFile decodes the image at path and seeds a grid from it
func LoadFile(path string) (*model.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to open image: %+v", path)
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] %+v", path)
	}
	return FromImage(img), nil
}
