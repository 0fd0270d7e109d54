package ports

import (
	"context"
	"io"

	"go.trai.ch/brewtap/internal/core/domain"
)

//go:generate mockgen -source=release_host.go -destination=mocks/mock_release_host.go -package=mocks

// ReleaseHostFactory creates authenticated ReleaseHost clients.
type ReleaseHostFactory interface {
	// Connect returns a host that authenticates with the given token.
	Connect(token string) ReleaseHost
}

// ReleaseHost is the repository hosting service the release lives on.
type ReleaseHost interface {
	// Repository returns the metadata of the repository and whether it is private.
	Repository(ctx context.Context, owner, repo string) (*domain.RepositoryMetadata, bool, error)

	// LatestRelease returns the most recent published release.
	LatestRelease(ctx context.Context, owner, repo string) (*domain.Release, error)

	// Open starts a download of url. The caller closes the returned body.
	Open(ctx context.Context, url string) (io.ReadCloser, error)

	// UploadAsset attaches the file at path to the release.
	UploadAsset(ctx context.Context, owner, repo string, releaseID int64, path string) error
}
