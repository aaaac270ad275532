// Package fs provides the filesystem adapters: file enumeration, content
// digesting, and lexical path relativization.
package fs

import (
	iofs "io/fs"
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"
)

// Walker lists regular files under a directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk returns every file under root, sorted by full path string.
// Directories are descended into but not returned. The digest must cover
// every file, so nothing is skipped; any unreadable directory aborts the
// walk.
func (w *Walker) Walk(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk directory"), "root", root)
	}

	sort.Strings(files)
	return files, nil
}
