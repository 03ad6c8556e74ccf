package killicons

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// resolveSuffixes lists the suffixes tried against the mapped name, in
// order, before falling back to a substring scan.
var resolveSuffixes = []string{"_kill", "death"}

// maxAliasDepth bounds the alias redirection chain. A single redirection is
// expected in practice; the bound exists so a crafted alias cycle terminates
// as a miss instead of recursing unboundedly.
const maxAliasDepth = 8

// Resolve finds the icon definition for a log line weapon name using the
// staged fallback strategy: the name is first translated through Mappings,
// then matched exactly, then with the known suffixes, then as a substring in
// either direction, and finally redirected through Aliases. The substring
// scan iterates the definition names in sorted order so the result is
// deterministic for identical inputs. The second return value reports
// whether a definition was found.
func Resolve(name string, defs map[string]Definition) (Definition, bool) {
	return resolve(name, defs, Mappings, Aliases, 0)
}

func resolve(name string, defs map[string]Definition, mappings, aliases map[string]string, depth int) (Definition, bool) {
	if depth >= maxAliasDepth {
		return Definition{}, false
	}

	mapped := name
	if m, ok := mappings[name]; ok {
		mapped = m
	}

	if def, ok := defs[mapped]; ok {
		return def, true
	}

	for _, suffix := range resolveSuffixes {
		if def, ok := defs[mapped+suffix]; ok {
			return def, true
		}
	}

	names := maps.Keys(defs)
	slices.Sort(names)
	for _, defName := range names {
		if strings.Contains(defName, mapped) || strings.Contains(mapped, defName) {
			return defs[defName], true
		}
	}

	// The alias lookup deliberately uses the original name, not the mapped
	// one, matching the order the tables are maintained in.
	if canonical, ok := aliases[name]; ok {
		return resolve(canonical, defs, mappings, aliases, depth+1)
	}

	return Definition{}, false
}
