package domain

import "time"

// SweepOptions configuration for a retention sweep.
type SweepOptions struct {
	// MaxAge is the retention window; archives modified earlier than
	// now-MaxAge are removed.
	MaxAge time.Duration
	// Suffix restricts the sweep to files with this filename suffix.
	Suffix string
	// DryRun reports what would be removed without deleting anything.
	DryRun bool
}
