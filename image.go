package killicons

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// DecodeSheet decodes a sprite sheet image into an NRGBA buffer with its
// min-point at (0, 0). PNG, JPEG and BMP encodings are supported; the
// proprietary texture formats are expected to be converted beforehand.
func DecodeSheet(data []byte) (*image.NRGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "could not decode the sheet image")
	}
	return imaging.Clone(img), nil
}

// CropIcon extracts the region described by the definition out of its sheet
// as a new image. The rectangle is validated against the sheet bounds here,
// at crop time, since the parser accepts whatever coordinates the document
// declares.
func CropIcon(sheet *image.NRGBA, def Definition) (*image.NRGBA, error) {
	if def.Width <= 0 || def.Height <= 0 {
		return nil, errors.Errorf("definition %q has an empty region %dx%d", def.Name, def.Width, def.Height)
	}
	r := image.Rect(def.X, def.Y, def.X+def.Width, def.Y+def.Height)
	if !r.In(sheet.Bounds()) {
		return nil, errors.Errorf("definition %q region %v exceeds the %v bounds of sheet %q",
			def.Name, r, sheet.Bounds().Size(), def.Sheet)
	}
	return imaging.Crop(sheet, r), nil
}

// encodeComposite encodes the composite sheet in the format matching the
// destination file extension.
func encodeComposite(w io.Writer, ext string, img *image.NRGBA, quality int) error {
	switch ext {
	case "", ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return errors.Errorf("unsupported image format %q", ext)
	}
}
