package domain

import "go.trai.ch/zerr"

var (
	// ErrSourcePathRequired is returned when the request document carries an
	// empty source_path.
	ErrSourcePathRequired = zerr.New("source_path must be set")

	// ErrBuildPathsMalformed is returned when the nested build_paths value is
	// not a JSON array of strings.
	ErrBuildPathsMalformed = zerr.New("build_paths must be a JSON-encoded array of strings")

	// ErrInputNotFound is returned when a hashing input path does not exist.
	ErrInputNotFound = zerr.New("input not found")

	// ErrNoPathsSpecified is returned when the hash command is invoked
	// without any input paths.
	ErrNoPathsSpecified = zerr.New("no input paths specified")

	// ErrInvalidRetention is returned when the configured retention window
	// is negative.
	ErrInvalidRetention = zerr.New("retention_days must not be negative")
)
