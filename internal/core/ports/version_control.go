package ports

import "context"

// VersionControl performs the git operations on the tap checkout.
//
//go:generate mockgen -source=version_control.go -destination=mocks/mock_version_control.go -package=mocks
type VersionControl interface {
	// Clone makes a shallow clone of url into dir.
	Clone(ctx context.Context, url, dir string) error

	// Configure sets the commit identity of the repository in dir.
	Configure(ctx context.Context, dir, name, email string) error

	// Add stages paths.
	Add(ctx context.Context, dir string, paths ...string) error

	// Commit records the staged changes with message.
	Commit(ctx context.Context, dir, message string) error

	// Push publishes the current branch to its upstream.
	Push(ctx context.Context, dir string) error
}
