package killicons

import (
	"bytes"
	"image"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"killicons/utils"
)

// definitionsPath is the location of the icon definition document inside an
// asset source.
const definitionsPath = "scripts/mod_textures.txt"

// Generator holds the options of a sprite sheet generation run. Assets is
// required; Community is an optional supplementary source whose definitions
// and sheets take priority over the official ones.
type Generator struct {
	Assets    AssetSource
	Community AssetSource
	RowWidth  int
	Quality   int
	Verbose   bool
}

// Summary collects the counters of a finished run.
type Summary struct {
	Definitions int
	Icons       int
	Missing     []string
	Width       int
	Height      int
	ImagePath   string
	CSSPath     string
}

// Generate runs the whole pipeline and writes the composite image and the
// stylesheet to the given paths. A missing required input aborts the run
// before any output is produced; unresolvable names are collected in the
// summary instead of failing the run. Once packing succeeded both artifacts
// are written together, a stylesheet write failure removes the image again.
func (g *Generator) Generate(imgOut, cssOut string) (*Summary, error) {
	data, err := g.Assets.Open(definitionsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "required document %s is missing from the asset source", definitionsPath)
	}
	defs, err := ParseDefinitions(bytes.NewReader(data), OfficialSheets)
	if err != nil {
		return nil, err
	}
	g.logf("Parsed %d icon definitions from %s", len(defs), definitionsPath)

	sheets := LoadOfficialSheets(g.Assets)
	if len(sheets) == 0 {
		return nil, errors.New("no sprite sheets could be loaded from the asset source")
	}

	g.mergeCommunity(defs, sheets)

	if len(defs) == 0 {
		return nil, errors.New("the definition document contains no icon definitions")
	}

	icons, missing := g.extractIcons(defs, sheets)
	g.logf("Extracted %d icons, %d names unresolved", len(icons), len(missing))

	sheet, positions := Pack(icons, g.RowWidth)
	CopyAliasPositions(positions, Aliases)

	if err := g.writeOutputs(sheet, positions, imgOut, cssOut); err != nil {
		return nil, err
	}

	return &Summary{
		Definitions: len(defs),
		Icons:       len(icons),
		Missing:     missing,
		Width:       sheet.Bounds().Dx(),
		Height:      sheet.Bounds().Dy(),
		ImagePath:   imgOut,
		CSSPath:     cssOut,
	}, nil
}

// mergeCommunity folds the optional community definitions and sheets into
// the run. Absence of the community source reduces the result set but never
// fails the run.
func (g *Generator) mergeCommunity(defs map[string]Definition, sheets map[string]*SheetImage) {
	if g.Community == nil {
		return
	}

	data, err := g.Community.Open(definitionsPath)
	if err != nil {
		log.Printf(utils.DecorateText("Warning: no community definitions found: %v", utils.ErrorMessage), err)
		return
	}
	communityDefs, err := ParseDefinitions(bytes.NewReader(data), CommunitySheets)
	if err != nil {
		log.Printf(utils.DecorateText("Warning: could not parse the community definitions: %v", utils.ErrorMessage), err)
		return
	}
	MergeDefinitions(defs, communityDefs)

	communitySheets := LoadCommunitySheets(g.Community)
	for id, sheet := range communitySheets {
		sheets[id] = sheet
	}
	g.logf("Merged %d community definitions and %d community sheets", len(communityDefs), len(communitySheets))
}

// extractIcons resolves every defined name and crops its region out of the
// owning sheet. Resolution misses are accumulated into a sorted missing
// list; crop failures and unknown sheets are logged and skipped.
func (g *Generator) extractIcons(defs map[string]Definition, sheets map[string]*SheetImage) (map[string]*image.NRGBA, []string) {
	icons := make(map[string]*image.NRGBA, len(defs))
	var missing []string

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def, ok := Resolve(name, defs)
		if !ok {
			missing = append(missing, name)
			continue
		}
		sheet, ok := sheets[def.Sheet]
		if !ok {
			log.Printf(utils.DecorateText("Warning: sheet %q not found for %s", utils.ErrorMessage), def.Sheet, name)
			continue
		}
		icon, err := CropIcon(sheet.Image, def)
		if err != nil {
			log.Printf(utils.DecorateText("Warning: could not extract %s: %v", utils.ErrorMessage), name, err)
			continue
		}
		icons[name] = icon
	}

	return icons, missing
}

// writeOutputs writes the two output artifacts as a pair.
func (g *Generator) writeOutputs(sheet *image.NRGBA, positions map[string]image.Rectangle, imgOut, cssOut string) error {
	img, err := os.Create(imgOut)
	if err != nil {
		return errors.Wrap(err, "unable to create the composite image file")
	}
	if err := encodeComposite(img, filepath.Ext(imgOut), sheet, g.Quality); err != nil {
		img.Close()
		os.Remove(imgOut)
		return err
	}
	if err := img.Close(); err != nil {
		os.Remove(imgOut)
		return errors.Wrap(err, "unable to write the composite image file")
	}

	css, err := os.Create(cssOut)
	if err != nil {
		os.Remove(imgOut)
		return errors.Wrap(err, "unable to create the stylesheet file")
	}
	defer css.Close()
	if err := WriteCSS(css, positions, Mappings, filepath.Base(imgOut)); err != nil {
		os.Remove(imgOut)
		os.Remove(cssOut)
		return err
	}
	return nil
}

func (g *Generator) logf(format string, args ...interface{}) {
	if g.Verbose {
		log.Printf(format, args...)
	}
}
