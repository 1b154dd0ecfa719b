// Package romfs loads ROM images from a packaged resource bundle,
// keyed by the "Roms/<name>/<name>[-<page>].rom" convention SPEC_FULL.md
// §10 specifies. Loading a ROM is a configuration-time operation; a
// missing or malformed ROM is a configuration error, never something
// the core recovers from mid-execution.
package romfs

import (
	"fmt"
	"io/fs"
	"path"
)

// Load reads the ROM image for name, optionally a specific page. page
// < 0 means the unpaged single-file form "Roms/<name>/<name>.rom";
// page >= 0 means "Roms/<name>/<name>-<page>.rom".
func Load(fsys fs.FS, name string, page int) ([]byte, error) {
	var file string
	if page < 0 {
		file = path.Join("Roms", name, name+".rom")
	} else {
		file = path.Join("Roms", name, fmt.Sprintf("%s-%d.rom", name, page))
	}

	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("romfs: load %q: %w", file, err)
	}
	return data, nil
}

// Pages loads every page 0..n-1 for name and concatenates them in
// order, for ROM sets split across multiple 16K banks.
func Pages(fsys fs.FS, name string, n int) ([]byte, error) {
	var out []byte
	for i := 0; i < n; i++ {
		page, err := Load(fsys, name, i)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
	}
	return out, nil
}
