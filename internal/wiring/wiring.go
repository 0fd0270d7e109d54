// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/brewtap/internal/adapters/cas"
	_ "go.trai.ch/brewtap/internal/adapters/config"
	_ "go.trai.ch/brewtap/internal/adapters/fs"
	_ "go.trai.ch/brewtap/internal/adapters/git"
	_ "go.trai.ch/brewtap/internal/adapters/github"
	_ "go.trai.ch/brewtap/internal/adapters/logger"
	_ "go.trai.ch/brewtap/internal/adapters/signature"
	_ "go.trai.ch/brewtap/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/brewtap/internal/app"
)
