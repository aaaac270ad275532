// Package archive maintains the generated archive directory.
package archive

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Sweeper = (*Sweeper)(nil)

// Sweeper deletes generated archives past their retention window.
type Sweeper struct{}

// NewSweeper creates a new Sweeper.
func NewSweeper() *Sweeper {
	return &Sweeper{}
}

// Sweep removes every file in dir with the configured suffix whose
// modification time is older than now minus opts.MaxAge, and returns the
// names of the removed archives. Concurrent invocations race over a shared
// builds directory, so files that disappear mid-sweep count as already
// removed. A missing directory is treated as an empty one. Any other
// failure aborts the sweep; archives removed before the failure stay
// removed.
func (s *Sweeper) Sweep(dir string, opts domain.SweepOptions) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read archive directory"), "dir", dir)
	}

	cutoff := time.Now().Add(-opts.MaxAge)
	var removed []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), opts.Suffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return removed, zerr.With(zerr.Wrap(err, "failed to stat archive"), "name", entry.Name())
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		if !opts.DryRun {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				if errors.Is(err, iofs.ErrNotExist) {
					continue
				}
				return removed, zerr.With(zerr.Wrap(err, "failed to remove archive"), "name", entry.Name())
			}
		}
		removed = append(removed, entry.Name())
	}

	return removed, nil
}
