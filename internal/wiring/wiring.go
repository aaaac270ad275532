// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stamp/internal/adapters/archive"
	_ "go.trai.ch/stamp/internal/adapters/config"
	_ "go.trai.ch/stamp/internal/adapters/fs"
	_ "go.trai.ch/stamp/internal/adapters/logger"
	_ "go.trai.ch/stamp/internal/adapters/manifest"
	_ "go.trai.ch/stamp/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/stamp/internal/app"
)
