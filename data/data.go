// Package data carries the bundled reference files used by gomkm.
package data

import (
	"embed"
	"io/fs"
)

// bundle embeds the default stopping-power tables and the element lookup.
// The structure is:
//   - defaults/<source>/.source (registry marker)
//   - defaults/<source>/*.txt (per-ion stopping-power tables)
//   - elements.json (periodic-table lookup)
//
//go:embed all:defaults elements.json
var bundle embed.FS

// FS returns the embedded filesystem containing the bundled reference data.
// This is what `gomkm data:install` materializes into the installed data tree.
func FS() fs.FS {
	return bundle
}
