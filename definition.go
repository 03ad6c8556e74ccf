package killicons

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Definition represents one named rectangular icon region on a source sheet,
// parsed from a mod_textures.txt entry.
type Definition struct {
	Name   string
	Sheet  string
	X      int
	Y      int
	Width  int
	Height int
}

// SheetFamily identifies the group of sprite sheets a definition belongs to.
// A definition is accepted only if its dfile property starts with PathPrefix
// (compared case-insensitively with normalized slashes). The sheet id is the
// last path element prefixed with IDPrefix.
type SheetFamily struct {
	PathPrefix string
	IDPrefix   string
}

// Sheet families found in the official VPK files and in the community
// "Consistent & Missing Kill Icons" mod.
var (
	OfficialSheets  = SheetFamily{PathPrefix: "hud/d_images"}
	CommunitySheets = SheetFamily{PathPrefix: "vgui/logos/improvedkillicons", IDPrefix: "community_"}
)

// SheetID derives the sheet id from a dfile path. The second return value
// reports whether the path belongs to this family.
func (f SheetFamily) SheetID(path string) (string, bool) {
	norm := strings.ToLower(strings.ReplaceAll(path, `\`, "/"))
	if !strings.HasPrefix(norm, f.PathPrefix) {
		return "", false
	}
	tail := norm
	if idx := strings.LastIndex(norm, "/"); idx >= 0 {
		tail = norm[idx+1:]
	}
	return f.IDPrefix + tail, true
}

// The parser is a small line-scanning state machine: it looks for a quoted
// top-level token, skips ahead to the next opening brace and collects the
// quoted key-value pairs until the block closes. Unrelated blocks at the
// same nesting level simply never produce a matching dfile and are dropped.
type parseState int

const (
	seekName parseState = iota
	seekOpenBrace
	collectProperties
)

var (
	nameRe = regexp.MustCompile(`^"([^"]+)"`)
	propRe = regexp.MustCompile(`^"([^"]+)"\s+"([^"]*)"`)
)

// ParseDefinitions parses a mod_textures.txt document and returns the icon
// definitions which belong to one of the given sheet families, keyed by
// name. Malformed blocks are skipped; an unterminated trailing block is
// dropped. Numeric properties default to (0, 0, 32, 32) when absent or
// unparsable.
func ParseDefinitions(r io.Reader, families ...SheetFamily) (map[string]Definition, error) {
	defs := make(map[string]Definition)

	var (
		state = seekName
		name  string
		props map[string]string
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		switch state {
		case seekName:
			if n, ok := blockName(line); ok {
				name = n
				props = make(map[string]string)
				state = seekOpenBrace
			}
		case seekOpenBrace:
			if strings.Contains(line, "{") {
				state = collectProperties
			}
		case collectProperties:
			if strings.Contains(line, "}") {
				if def, ok := makeDefinition(name, props, families); ok {
					defs[def.Name] = def
				}
				state = seekName
				continue
			}
			if m := propRe.FindStringSubmatch(line); m != nil {
				props[strings.ToLower(m[1])] = m[2]
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to scan the definition document")
	}

	return defs, nil
}

// blockName extracts a quoted block name, skipping comment lines.
func blockName(line string) (string, bool) {
	if !strings.HasPrefix(line, `"`) || strings.HasPrefix(line, `"/`) || strings.HasPrefix(line, "//") {
		return "", false
	}
	m := nameRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// makeDefinition converts a collected property block into a Definition in
// case its dfile path belongs to one of the known sheet families.
func makeDefinition(name string, props map[string]string, families []SheetFamily) (Definition, bool) {
	dfile, ok := props["dfile"]
	if !ok {
		return Definition{}, false
	}
	for _, f := range families {
		if id, ok := f.SheetID(dfile); ok {
			return Definition{
				Name:   name,
				Sheet:  id,
				X:      atoiDefault(props["x"], 0),
				Y:      atoiDefault(props["y"], 0),
				Width:  atoiDefault(props["width"], 32),
				Height: atoiDefault(props["height"], 32),
			}, true
		}
	}
	return Definition{}, false
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// MergeDefinitions merges src into dst with overwrite-by-name semantics, so
// later loaded sources take priority over earlier ones.
func MergeDefinitions(dst, src map[string]Definition) {
	for name, def := range src {
		dst[name] = def
	}
}
