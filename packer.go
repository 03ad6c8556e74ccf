package killicons

import (
	"image"
	"image/color"
	"sort"

	"github.com/disintegration/imaging"
	"golang.org/x/exp/maps"

	"killicons/utils"
)

// DefaultRowWidth is the target row width of the composite sheet, a
// reasonable size for web delivery.
const DefaultRowWidth = 512

// Pack lays the icon images out into a single composite sheet using a
// deterministic shelf packing: icons are sorted by height descending (ties
// broken by name), placed left to right and wrapped to a new row once the
// target row width would be exceeded. It returns the composite image and
// the placement rectangle of every icon. Placements never overlap since a
// row is never revisited once the cursor moved past it.
func Pack(icons map[string]*image.NRGBA, rowWidth int) (*image.NRGBA, map[string]image.Rectangle) {
	positions := make(map[string]image.Rectangle, len(icons))
	if len(icons) == 0 {
		return imaging.New(1, 1, color.NRGBA{}), positions
	}
	if rowWidth <= 0 {
		rowWidth = DefaultRowWidth
	}

	names := maps.Keys(icons)
	sort.Slice(names, func(i, j int) bool {
		hi, hj := icons[names[i]].Bounds().Dy(), icons[names[j]].Bounds().Dy()
		if hi != hj {
			return hi > hj
		}
		return names[i] < names[j]
	})

	var currentX, currentY, rowHeight, maxWidth int
	for _, name := range names {
		w, h := icons[name].Bounds().Dx(), icons[name].Bounds().Dy()
		if currentX+w > rowWidth && currentX > 0 {
			currentX = 0
			currentY += rowHeight
			rowHeight = 0
		}
		positions[name] = image.Rect(currentX, currentY, currentX+w, currentY+h)
		currentX += w
		rowHeight = utils.Max(rowHeight, h)
		maxWidth = utils.Max(maxWidth, currentX)
	}

	sheet := imaging.New(maxWidth, currentY+rowHeight, color.NRGBA{})
	for _, name := range names {
		// Straight overwrite paste, the source alpha is preserved as is.
		sheet = imaging.Paste(sheet, icons[name], positions[name].Min)
	}

	return sheet, positions
}

// CopyAliasPositions synthesizes a position entry for every alias whose
// canonical name received a placement, so aliases share the canonical pixels
// instead of being packed a second time.
func CopyAliasPositions(positions map[string]image.Rectangle, aliases map[string]string) {
	for alias, canonical := range aliases {
		if pos, ok := positions[canonical]; ok {
			positions[alias] = pos
		}
	}
}
