package ports

import "go.trai.ch/stamp/internal/core/domain"

// ConfigLoader loads the module's settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings for the module rooted at root, falling back to
	// defaults when no configuration file exists.
	Load(root string) (domain.Settings, error)
}
