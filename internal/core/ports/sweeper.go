package ports

import "go.trai.ch/stamp/internal/core/domain"

// Sweeper deletes generated archives past their retention window.
//
//go:generate mockgen -source=sweeper.go -destination=mocks/mock_sweeper.go -package=mocks
type Sweeper interface {
	// Sweep removes every file in dir matching opts.Suffix whose
	// modification time is older than now minus opts.MaxAge, and returns the
	// names of the removed archives. Files that disappear concurrently count
	// as removed by someone else, not as errors.
	Sweep(dir string, opts domain.SweepOptions) ([]string, error)
}
