// Package app implements the application layer for brewtap.
package app

import (
	"go.trai.ch/brewtap/internal/adapters/detector"
	"go.trai.ch/brewtap/internal/core/ports"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	hosts        ports.ReleaseHostFactory
	artifacts    ports.ArtifactStore
	tap          ports.TapStore
	vcs          ports.VersionControl
	verifier     ports.SignatureVerifier
	tracer       ports.Tracer
	logger       ports.Logger
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	hosts ports.ReleaseHostFactory,
	artifacts ports.ArtifactStore,
	tap ports.TapStore,
	vcs ports.VersionControl,
	verifier ports.SignatureVerifier,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		hosts:        hosts,
		artifacts:    artifacts,
		tap:          tap,
		vcs:          vcs,
		verifier:     verifier,
		tracer:       tracer,
		logger:       log,
	}
}

// WithWorkDir sets the parent directory of the per-release work directory.
// The system temporary directory is used by default.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// ConfigureLogging applies the --log-format and --debug flags to the logger.
func (a *App) ConfigureLogging(format string, debug bool) {
	c, ok := a.logger.(ports.LogConfigurer)
	if !ok {
		return
	}
	mode := detector.ResolveFormat(detector.DetectEnvironment(), format)
	c.SetJSON(mode == detector.FormatJSON)
	if debug {
		c.SetDebug(true)
	}
}

func (a *App) enableDebug() {
	if c, ok := a.logger.(ports.LogConfigurer); ok {
		c.SetDebug(true)
	}
}
