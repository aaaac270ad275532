package domain

import "time"

// ArtifactRecord describes one emitted archive in the manifest.
type ArtifactRecord struct {
	// Digest is the lowercase hex content digest the archive is named after.
	Digest string `json:"digest"`
	// Filename is the archive path relative to the module root.
	Filename string `json:"filename"`
	// Runtime is the runtime identifier the archive was computed for.
	Runtime string `json:"runtime"`
	// Source is the relativized source path folded into the digest.
	Source string `json:"source"`
	// CreatedAt is the time the record was written.
	CreatedAt time.Time `json:"created_at"`
}
