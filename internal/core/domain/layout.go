package domain

import "time"

const (
	// BuildsDirName is the default directory for generated archives,
	// relative to the module root.
	BuildsDirName = "builds"

	// ArchiveSuffix is the default filename suffix of generated archives.
	ArchiveSuffix = ".zip"

	// RetentionWindow is the default maximum age of a generated archive
	// before it is swept.
	RetentionWindow = 7 * 24 * time.Hour

	// ManifestFileName is the name of the artifact manifest inside the
	// builds directory.
	ManifestFileName = "manifest.json"

	// ConfigFileName is the name of the optional configuration file in the
	// module root.
	ConfigFileName = "stamp.yaml"

	// PrivateFilePerm is the permission used for files created by stamp.
	PrivateFilePerm = 0o644

	// PrivateDirPerm is the permission used for directories created by stamp.
	PrivateDirPerm = 0o750
)
