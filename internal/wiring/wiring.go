// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/framegraph/internal/adapters/cas"
	_ "go.trai.ch/framegraph/internal/adapters/config"
	_ "go.trai.ch/framegraph/internal/adapters/logger"
	_ "go.trai.ch/framegraph/internal/adapters/telemetry"
	_ "go.trai.ch/framegraph/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/framegraph/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/framegraph/internal/app"
)
