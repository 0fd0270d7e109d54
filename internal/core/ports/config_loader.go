package ports

import "go.trai.ch/brewtap/internal/core/domain"

// ConfigLoader defines the interface for loading the release configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the optional config file at path, overlays the environment and
	// returns the resolved configuration. A missing file is not an error.
	Load(path string) (*domain.Config, error)

	// LoadManifest reads a render manifest.
	LoadManifest(path string) (*domain.Manifest, error)
}
