// Package ports defines the core interfaces for the application.
package ports

// Hasher computes content digests over sets of source paths.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Digest folds the root-relative names and contents of every file
	// reachable from paths, then runtime and buildCommand, into a lowercase
	// hex digest. Directory paths are hashed recursively with the directory
	// as root; file paths use their parent directory as root. Relative paths
	// are resolved against baseDir. Input order does not affect the result.
	Digest(baseDir string, paths []string, runtime, buildCommand string) (string, error)
}
