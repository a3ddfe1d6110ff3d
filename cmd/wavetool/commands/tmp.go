package commands

import (
	"path/filepath"

	"github.com/rs/xid"
)

// tmpSibling returns a unique temporary path in the same directory as
// path, so the final rename never crosses a filesystem boundary.
func tmpSibling(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+xid.New().String()+".tmp")
}
