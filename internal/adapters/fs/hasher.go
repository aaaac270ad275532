package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// chunkSize bounds memory use while folding file contents, regardless of
// file size.
const chunkSize = 64 * 1024

// Hasher folds file names and contents into a content digest.
//
// The fold order is relpath then content for each file, then runtime, then
// build command, with no separators. Hashing the relative name before the
// content detects renames even when total byte content is unchanged; hashing
// runtime and command last invalidates the digest whenever the way the
// artifact would be built changes.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// Digest hashes every file reachable from paths plus the runtime and build
// command, returning the lowercase hex SHA-256. Input paths are deduplicated
// and sorted up front so the result does not depend on argument order.
// Relative paths resolve against baseDir.
func (h *Hasher) Digest(baseDir string, paths []string, runtime, buildCommand string) (string, error) {
	digest := sha256.New()
	buf := make([]byte, chunkSize)

	for _, path := range dedupeSorted(paths) {
		resolved := path
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(baseDir, resolved)
		}

		info, err := os.Stat(resolved)
		if err != nil {
			if os.IsNotExist(err) {
				return "", zerr.With(zerr.Wrap(domain.ErrInputNotFound, "failed to resolve input"), "path", path)
			}
			return "", zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
		}

		root := resolved
		files := []string{resolved}
		if info.IsDir() {
			files, err = h.walker.Walk(resolved)
			if err != nil {
				return "", err
			}
		} else {
			root = filepath.Dir(resolved)
		}

		for _, file := range files {
			if err := h.foldFile(digest, root, file, buf); err != nil {
				return "", err
			}
		}
	}

	_, _ = digest.Write([]byte(runtime))
	_, _ = digest.Write([]byte(buildCommand))

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// foldFile writes the file's root-relative name and then its content into
// the digest. The name uses forward slashes so digests match across
// platforms.
func (h *Hasher) foldFile(digest hash.Hash, root, path string, buf []byte) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to compute relative name"), "path", path)
	}
	_, _ = digest.Write([]byte(filepath.ToSlash(rel)))

	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	// The wrapper hides *os.File's WriteTo so the fixed-size buffer is used.
	if _, err := io.CopyBuffer(digest, struct{ io.Reader }{f}, buf); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return nil
}

func dedupeSorted(paths []string) []string {
	unique := make(map[string]bool, len(paths))
	for _, p := range paths {
		unique[p] = true
	}

	result := make([]string, 0, len(unique))
	for p := range unique {
		result = append(result, p)
	}
	sort.Strings(result)
	return result
}
