package killicons

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"killicons/utils"
)

const (
	previewWidth     = 800
	previewRowHeight = 40
	previewNameX     = 20
	previewIconX     = 400
)

var (
	previewBackground = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	previewText       = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	previewHeader     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	previewRule       = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	previewSeparator  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// WritePreview renders a human checkable table of the packed icons, one row
// per name with the name on the left and the icon cropped out of the
// composite on the right, and encodes it as PNG. When names is non-empty
// only the listed names which received a placement are shown, otherwise
// every placed name is.
func WritePreview(w io.Writer, composite *image.NRGBA, positions map[string]image.Rectangle, names []string) error {
	var rows []string
	if len(names) > 0 {
		for _, name := range names {
			if _, ok := positions[name]; ok {
				rows = append(rows, name)
			}
		}
	} else {
		for name := range positions {
			rows = append(rows, name)
		}
	}
	sort.Strings(rows)

	height := len(rows)*previewRowHeight + 100
	dst := imaging.New(previewWidth, height, previewBackground)

	drawLabel(dst, previewNameX, 30, "Weapon Name", previewHeader)
	drawLabel(dst, previewIconX, 30, "Icon", previewHeader)
	drawHLine(dst, 50, previewRule)

	y := 60
	for _, name := range rows {
		r := positions[name]
		drawLabel(dst, previewNameX, y+(previewRowHeight+basicfont.Face7x13.Height)/2-2, name, previewText)

		icon := imaging.Crop(composite, r)
		iconY := y + utils.Max(0, (previewRowHeight-r.Dy())/2)
		dst = imaging.Overlay(dst, icon, image.Pt(previewIconX, iconY), 1.0)

		drawHLine(dst, y+previewRowHeight-1, previewSeparator)
		y += previewRowHeight
	}

	if err := png.Encode(w, dst); err != nil {
		return errors.Wrap(err, "unable to encode the preview image")
	}
	return nil
}

// drawLabel draws a single line of text with the text baseline at (x, y).
func drawLabel(dst *image.NRGBA, x, y int, label string, col color.NRGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}

// drawHLine draws a one pixel horizontal rule across the image at y,
// leaving a small margin on both sides.
func drawHLine(dst *image.NRGBA, y int, col color.NRGBA) {
	r := image.Rect(10, y, dst.Bounds().Dx()-10, y+1)
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}
