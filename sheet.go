package killicons

import (
	"image"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"killicons/utils"
)

// SheetImage is a decoded source sheet identified by its sheet id. Sheets
// are never mutated after loading, only cropped.
type SheetImage struct {
	ID    string
	Image *image.NRGBA
}

// AssetSource abstracts the storage the game assets are read from. The
// production layout is a directory of files extracted (and converted to a
// common image format) from the game's VPK archives, but anything able to
// hand out file contents by slash-separated relative path works.
type AssetSource interface {
	// Open returns the contents of the file at the given relative path.
	Open(path string) ([]byte, error)

	// Glob returns the sorted relative paths matching the given pattern,
	// using filepath.Match syntax.
	Glob(pattern string) ([]string, error)
}

// DirSource is an AssetSource reading from a local directory tree.
type DirSource struct {
	root string
}

// NewDirSource returns an AssetSource over the given directory. The
// directory must exist.
func NewDirSource(root string) (*DirSource, error) {
	fs, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open the asset directory %q", root)
	}
	if !fs.IsDir() {
		return nil, errors.Errorf("asset path %q is not a directory", root)
	}
	return &DirSource{root: root}, nil
}

// Open implements AssetSource.
func (s *DirSource) Open(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, filepath.FromSlash(path)))
}

// Glob implements AssetSource.
func (s *DirSource) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.root, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(s.root, m)
		if err != nil {
			return nil, err
		}
		paths = append(paths, filepath.ToSlash(rel))
	}
	sort.Strings(paths)
	return paths, nil
}

// officialSheetPaths lists the sprite sheets shipped in the official
// textures VPK, keyed by sheet id.
var officialSheetPaths = map[string]string{
	"d_images":    "materials/hud/d_images.png",
	"d_images_v2": "materials/hud/d_images_v2.png",
	"d_images_v3": "materials/hud/d_images_v3.png",
}

// communitySheetGlob matches the sheets of the community icon mod.
const communitySheetGlob = "materials/vgui/logos/improvedkillicons/*.png"

// LoadOfficialSheets loads the known official sprite sheets from the asset
// source. Individual missing or undecodable sheets are logged and skipped;
// the caller decides whether an empty result is fatal.
func LoadOfficialSheets(src AssetSource) map[string]*SheetImage {
	sheets := make(map[string]*SheetImage, len(officialSheetPaths))

	ids := make([]string, 0, len(officialSheetPaths))
	for id := range officialSheetPaths {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		path := officialSheetPaths[id]
		sheet, err := loadSheet(src, id, path)
		if err != nil {
			log.Printf(utils.DecorateText("Warning: could not load sheet %s: %v", utils.ErrorMessage), id, err)
			continue
		}
		sheets[id] = sheet
	}
	return sheets
}

// LoadCommunitySheets discovers and loads the community mod sprite sheets.
// The inverted "dneg" variants are skipped.
func LoadCommunitySheets(src AssetSource) map[string]*SheetImage {
	sheets := make(map[string]*SheetImage)

	paths, err := src.Glob(communitySheetGlob)
	if err != nil {
		log.Printf(utils.DecorateText("Warning: could not list community sheets: %v", utils.ErrorMessage), err)
		return sheets
	}

	for _, path := range paths {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if strings.HasPrefix(stem, "dneg") {
			continue
		}
		id := "community_" + stem
		sheet, err := loadSheet(src, id, path)
		if err != nil {
			log.Printf(utils.DecorateText("Warning: could not load sheet %s: %v", utils.ErrorMessage), id, err)
			continue
		}
		sheets[id] = sheet
	}
	return sheets
}

func loadSheet(src AssetSource, id, path string) (*SheetImage, error) {
	data, err := src.Open(path)
	if err != nil {
		return nil, err
	}
	img, err := DecodeSheet(data)
	if err != nil {
		return nil, err
	}
	return &SheetImage{ID: id, Image: img}, nil
}
