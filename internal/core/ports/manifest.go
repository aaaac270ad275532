package ports

import "go.trai.ch/stamp/internal/core/domain"

// ManifestStore persists records of emitted artifacts alongside the archives
// they describe. dir is the archive directory holding the manifest.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestStore interface {
	// Get retrieves the record for a digest. Returns nil, nil if not found.
	Get(dir, digest string) (*domain.ArtifactRecord, error)

	// Put stores the record, keyed by its digest.
	Put(dir string, record domain.ArtifactRecord) error

	// All returns every record, sorted by digest.
	All(dir string) ([]domain.ArtifactRecord, error)

	// Delete removes the record for a digest. Deleting an absent record is
	// not an error.
	Delete(dir, digest string) error
}
