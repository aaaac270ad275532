package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/stamp/internal/core/ports"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver computes lexical relative paths between filesystem locations.
// It does not verify that the emitted climb actually lands on a common
// ancestor; callers must ensure the inputs share one when that matters.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Relativize expresses path relative to referenceRoot's directory tree.
// Files compare by their containing directory, but the returned string still
// refers to the original input. When the two locations share fewer than two
// leading segments the only common ancestor is the filesystem root, and the
// absolute form of path is returned instead of a long climb.
func (r *Resolver) Relativize(path, referenceRoot string) string {
	a := comparableDir(path)
	b := comparableDir(referenceRoot)
	if a == b {
		return path
	}

	aseg := strings.Split(a, "/")
	bseg := strings.Split(b, "/")

	shared := 0
	for shared < len(aseg) && shared < len(bseg) && aseg[shared] == bseg[shared] {
		shared++
	}
	if shared < 2 {
		return abs(path)
	}

	// One climb per reference-root segment beyond the shared prefix, then
	// the original path unchanged.
	return strings.Repeat("../", len(bseg)-shared) + path
}

// comparableDir resolves p to an absolute directory for comparison: file
// paths compare by their parent directory. Paths that do not exist are
// assumed to be directories.
func comparableDir(p string) string {
	resolved := abs(p)
	if info, err := os.Stat(resolved); err == nil && !info.IsDir() {
		return filepath.Dir(resolved)
	}
	return resolved
}

// abs is a non-failing filepath.Abs: on error the input is returned as-is,
// keeping relativization a pure best-effort string computation.
func abs(p string) string {
	resolved, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(resolved)
}
