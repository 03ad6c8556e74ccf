package killicons

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"regexp"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// WriteCSS emits the stylesheet lookup table for the packed icons: a base
// .killicon rule referencing the composite image by its relative filename,
// then one .killicon-<name> rule per exported name declaring the pixel size
// and the negative background offset of its region.
//
// The exported name set is the union of the packed names and every mapping
// key whose target received a placement; synthesized entries copy the rect
// of their target verbatim. Rules are sorted by name so the output is
// reproducible.
func WriteCSS(w io.Writer, positions map[string]image.Rectangle, mappings map[string]string, imageName string) error {
	rects := make(map[string]image.Rectangle, len(positions))
	for name, pos := range positions {
		rects[name] = pos
	}
	// A mapping deliberately takes priority over a direct placement of the
	// same name: the external vocabulary entry must point at the icon the
	// game actually shows for it.
	for external, target := range mappings {
		if pos, ok := positions[target]; ok {
			rects[external] = pos
		}
	}

	names := make([]string, 0, len(rects))
	for name := range rects {
		names = append(names, name)
	}
	sort.Strings(names)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "/* TF2 kill icons, generated file */\n\n")
	fmt.Fprintf(bw, ".killicon {\n")
	fmt.Fprintf(bw, "  display: inline-block;\n")
	fmt.Fprintf(bw, "  background-image: url('%s');\n", imageName)
	fmt.Fprintf(bw, "  background-repeat: no-repeat;\n")
	fmt.Fprintf(bw, "  vertical-align: middle;\n")
	fmt.Fprintf(bw, "}\n")

	for _, name := range names {
		r := rects[name]
		fmt.Fprintf(bw, "\n.killicon-%s {\n", name)
		fmt.Fprintf(bw, "  width: %dpx;\n", r.Dx())
		fmt.Fprintf(bw, "  height: %dpx;\n", r.Dy())
		fmt.Fprintf(bw, "  background-position: -%dpx -%dpx;\n", r.Min.X, r.Min.Y)
		fmt.Fprintf(bw, "}\n")
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "unable to write the stylesheet")
	}
	return nil
}

var cssRuleRe = regexp.MustCompile(
	`\.killicon-([a-z0-9_\-]+)\s*\{[^}]*width:\s*(\d+)px;[^}]*height:\s*(\d+)px;[^}]*background-position:\s*-(\d+)px\s*-(\d+)px;`)

// ParseCSSPositions reads the icon regions back out of a generated
// stylesheet. It is the inverse of WriteCSS and lets consumers such as the
// preview renderer work from the published artifacts alone.
func ParseCSSPositions(css string) map[string]image.Rectangle {
	positions := make(map[string]image.Rectangle)
	for _, m := range cssRuleRe.FindAllStringSubmatch(css, -1) {
		w, _ := strconv.Atoi(m[2])
		h, _ := strconv.Atoi(m[3])
		x, _ := strconv.Atoi(m[4])
		y, _ := strconv.Atoi(m[5])
		positions[m[1]] = image.Rect(x, y, x+w, y+h)
	}
	return positions
}
