// Package config provides the configuration loader for stamp.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file in the module root.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads stamp.yaml from root. A missing file yields the defaults
// matching the original layout: builds/, .zip, 7 days.
func (l *Loader) Load(root string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path := filepath.Join(root, domain.ConfigFileName)
	//nolint:gosec // Path is derived from the module root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if file.RetentionDays < 0 {
		return settings, zerr.With(zerr.Wrap(domain.ErrInvalidRetention, "failed to validate config"), "retention_days", file.RetentionDays)
	}

	if file.BuildsDir != "" {
		settings.BuildsDir = file.BuildsDir
	}
	if file.ArchiveSuffix != "" {
		settings.ArchiveSuffix = file.ArchiveSuffix
	}
	if file.RetentionDays > 0 {
		settings.Retention = time.Duration(file.RetentionDays) * 24 * time.Hour
	}

	return settings, nil
}
