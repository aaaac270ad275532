package ports

// PathResolver computes portable relative paths between filesystem locations.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Relativize expresses path relative to referenceRoot's directory tree,
	// falling back to the absolute form of path when the two share no
	// meaningful common ancestor. It never fails; the result is best-effort
	// lexical.
	Relativize(path, referenceRoot string) string
}
