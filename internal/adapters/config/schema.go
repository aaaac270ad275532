package config

// File represents the structure of the optional stamp.yaml configuration
// file in the module root. Missing fields keep their defaults.
type File struct {
	BuildsDir     string `yaml:"builds_dir"`
	ArchiveSuffix string `yaml:"archive_suffix"`
	RetentionDays int    `yaml:"retention_days"`
}
