/*
Package killicons builds a web-deployable sprite sheet and CSS lookup table
for Team Fortress 2 kill icons. It parses the game's mod_textures.txt icon
definitions, resolves the mismatches between the log/event weapon vocabulary
and the internal asset names through a staged fallback strategy, crops every
resolvable icon out of the source sheets and packs the results into a single
composite image with a stable, reproducible layout.

The package provides a command line interface which generates both artifacts
in one run:

	$ killicons -assets ./assets -community ./community -out ./dist

In case you wish to integrate the API in a self constructed environment here
is a simple example:

	package main

	import (
		"fmt"

		"killicons"
	)

	func main() {
		assets, err := killicons.NewDirSource("./assets")
		if err != nil {
			fmt.Printf("Error opening the asset directory: %s", err.Error())
			return
		}

		g := &killicons.Generator{Assets: assets}
		summary, err := g.Generate("dist/killicons.png", "dist/killicons.css")
		if err != nil {
			fmt.Printf("Error generating the sprite sheet: %s", err.Error())
		}
		fmt.Printf("%d icons packed, %d missing", summary.Icons, len(summary.Missing))
	}
*/
package killicons
