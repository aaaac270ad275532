package domain

import "time"

// Settings carries the tunable layout of a module's builds directory.
type Settings struct {
	// BuildsDir is the archive directory, relative to the module root.
	BuildsDir string
	// ArchiveSuffix is the filename suffix of generated archives.
	ArchiveSuffix string
	// Retention is the maximum age of an archive before it is swept.
	Retention time.Duration
}

// DefaultSettings returns the settings used when no configuration file
// exists.
func DefaultSettings() Settings {
	return Settings{
		BuildsDir:     BuildsDirName,
		ArchiveSuffix: ArchiveSuffix,
		Retention:     RetentionWindow,
	}
}
