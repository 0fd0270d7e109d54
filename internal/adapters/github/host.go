// Package github talks to the GitHub REST API.
package github

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	gh "github.com/google/go-github/v52/github"
	"go.trai.ch/brewtap/internal/build"
	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ReleaseHostFactory = (*Factory)(nil)
	_ ports.ReleaseHost        = (*Host)(nil)
)

// Factory creates GitHub hosts.
type Factory struct {
	baseURL   *url.URL
	uploadURL *url.URL
}

// NewFactory creates a Factory for github.com.
func NewFactory() *Factory {
	return &Factory{}
}

// Connect returns a Host authenticated with token.
func (f *Factory) Connect(token string) ports.ReleaseHost {
	var hosts []string
	for _, u := range []*url.URL{f.baseURL, f.uploadURL} {
		if u != nil {
			hosts = append(hosts, u.Host)
		}
	}
	client := gh.NewClient(&http.Client{
		Transport: newBearerTransport(token, build.UserAgent(), hosts...),
	})
	client.UserAgent = build.UserAgent()
	if f.baseURL != nil {
		client.BaseURL = f.baseURL
	}
	if f.uploadURL != nil {
		client.UploadURL = f.uploadURL
	}
	return &Host{client: client}
}

// Host implements ports.ReleaseHost with go-github.
type Host struct {
	client *gh.Client
}

// Repository returns the description and license of owner/repo and whether it is private.
func (h *Host) Repository(ctx context.Context, owner, repo string) (*domain.RepositoryMetadata, bool, error) {
	r, _, err := h.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, false, requestFailed(err, "get repository", owner, repo)
	}

	meta := &domain.RepositoryMetadata{Description: r.GetDescription()}
	if spdx := r.GetLicense().GetSPDXID(); spdx != "" && spdx != "NOASSERTION" {
		meta.License = &domain.License{SPDXID: spdx}
	}
	return meta, r.GetPrivate(), nil
}

// LatestRelease returns the most recent non-draft, non-prerelease release.
func (h *Host) LatestRelease(ctx context.Context, owner, repo string) (*domain.Release, error) {
	rel, _, err := h.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, requestFailed(err, "get latest release", owner, repo)
	}

	return &domain.Release{
		ID:         rel.GetID(),
		TagName:    rel.GetTagName(),
		TarballURL: rel.GetTarballURL(),
	}, nil
}

// Open downloads rawURL. A 404 reports domain.ErrArtifactNotFound as the cause.
func (h *Host) Open(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := h.client.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := h.client.BareDo(ctx, req)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, domain.ErrDownloadFailed.Error()), "url", rawURL)
		}
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
		if resp != nil {
			wrapped = zerr.With(wrapped, "status", strconv.Itoa(resp.StatusCode))
		}
		return nil, wrapped
	}

	return resp.Body, nil
}

// UploadAsset attaches the file at path to the release.
func (h *Host) UploadAsset(ctx context.Context, owner, repo string, releaseID int64, path string) error {
	f, err := os.Open(path) //nolint:gosec // Path is produced by the artifact store
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrUploadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	opts := &gh.UploadOptions{Name: filepath.Base(path)}
	if _, _, err := h.client.Repositories.UploadReleaseAsset(ctx, owner, repo, releaseID, opts, f); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrUploadFailed.Error()), "asset", opts.Name)
		return zerr.With(wrapped, "release_id", releaseID)
	}

	return nil
}

func requestFailed(err error, op, owner, repo string) error {
	wrapped := zerr.With(zerr.Wrap(err, domain.ErrGitHubRequestFailed.Error()), "operation", op)
	return zerr.With(wrapped, "repository", owner+"/"+repo)
}
