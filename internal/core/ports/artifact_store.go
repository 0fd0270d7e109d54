package ports

import (
	"io"

	"go.trai.ch/brewtap/internal/core/domain"
)

// ArtifactStore keeps downloaded release artifacts in a work directory.
//
//go:generate mockgen -source=artifact_store.go -destination=mocks/mock_artifact_store.go -package=mocks
type ArtifactStore interface {
	// Put streams r into root/name and returns the stored artifact with its SHA-256 digest.
	Put(root, name string, r io.Reader) (*domain.Artifact, error)

	// WriteManifest writes the checksum manifest for entries into root and returns its path.
	WriteManifest(root string, entries []domain.ChecksumEntry) (string, error)
}
