// Package manifest persists records of emitted artifacts alongside the
// archives they describe.
package manifest

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore using a flat JSON file inside the
// archive directory. The file is reloaded on every call: each invocation of
// the tool is short-lived and other invocations may write concurrently.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record for a digest. Returns nil, nil if not found.
func (s *Store) Get(dir, digest string) (*domain.ArtifactRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(dir)
	if err != nil {
		return nil, err
	}

	record, ok := records[digest]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record, keyed by its digest.
func (s *Store) Put(dir string, record domain.ArtifactRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(dir)
	if err != nil {
		return err
	}

	records[record.Digest] = record
	return s.save(dir, records)
}

// All returns every record, sorted by digest.
func (s *Store) All(dir string) ([]domain.ArtifactRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(dir)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ArtifactRecord, 0, len(records))
	for _, record := range records {
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Digest < result[j].Digest })

	return result, nil
}

// Delete removes the record for a digest. Deleting an absent record is a
// no-op.
func (s *Store) Delete(dir, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(dir)
	if err != nil {
		return err
	}

	if _, ok := records[digest]; !ok {
		return nil
	}
	delete(records, digest)
	return s.save(dir, records)
}

func (s *Store) path(dir string) string {
	return filepath.Join(dir, domain.ManifestFileName)
}

func (s *Store) load(dir string) (map[string]domain.ArtifactRecord, error) {
	records := make(map[string]domain.ArtifactRecord)

	//nolint:gosec // Path is derived from the module root
	data, err := os.ReadFile(s.path(dir))
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return records, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "dir", dir)
	}
	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal manifest"), "dir", dir)
	}
	return records, nil
}

func (s *Store) save(dir string, records map[string]domain.ArtifactRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}

	if err := os.MkdirAll(dir, domain.PrivateDirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create archive directory"), "dir", dir)
	}

	//nolint:gosec // Manifest is shared with other tooling reading the builds dir
	if err := os.WriteFile(s.path(dir), data, domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "dir", dir)
	}
	return nil
}
