package app

import (
	"context"
	"errors"
	"io"
	"os"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxParallelDownloads bounds concurrent artifact downloads.
const maxParallelDownloads = 4

// maxSignatureSize bounds the size of a minisign signature download.
const maxSignatureSize = 64 << 10

type download struct {
	name     string
	url      string
	platform bool
}

type fetched struct {
	entry domain.ChecksumEntry
	path  string
	url   string
}

// releaseDownloads lists the source archive followed by every enabled platform artifact.
func releaseDownloads(cfg *domain.Config, rel *domain.Release, private bool) []download {
	downloads := []download{{
		name: cfg.Repo + "-" + rel.Version() + domain.ArchiveExt,
		url:  rel.ArchiveURL(cfg.Owner, cfg.Repo, private),
	}}
	for _, p := range cfg.Targets.Enabled() {
		name := p.ArtifactName(cfg.Repo, rel.Version())
		downloads = append(downloads, download{
			name:     name,
			url:      rel.AssetURL(cfg.Owner, cfg.Repo, name),
			platform: true,
		})
	}
	return downloads
}

// fetchAll downloads and hashes every artifact concurrently. Results keep the
// order of downloads. A platform artifact missing from the release is skipped.
func (a *App) fetchAll(ctx context.Context, host ports.ReleaseHost, dir string, downloads []download) ([]fetched, error) {
	results := make([]*fetched, len(downloads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDownloads)
	for i, d := range downloads {
		g.Go(func() error {
			f, err := a.fetch(gctx, host, dir, d)
			if err != nil {
				if d.platform && errors.Is(err, domain.ErrArtifactNotFound) {
					a.logger.Warn("artifact " + d.name + " not found in release, skipping")
					return nil
				}
				return err
			}
			results[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]fetched, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (a *App) fetch(ctx context.Context, host ports.ReleaseHost, dir string, d download) (*fetched, error) {
	body, err := host.Open(ctx, d.url)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck // Best effort close in defer

	artifact, err := a.artifacts.Put(dir, d.name, body)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("downloaded " + d.name + " sha256=" + artifact.Checksum)

	return &fetched{
		entry: domain.ChecksumEntry{
			Filename:    d.name,
			Checksum:    artifact.Checksum,
			DownloadURL: d.url,
		},
		path: artifact.Path,
		url:  d.url,
	}, nil
}

// verifySignatures checks the minisign companion of every platform artifact.
func (a *App) verifySignatures(ctx context.Context, host ports.ReleaseHost, keyPath string, artifacts []fetched) error {
	for _, f := range artifacts {
		sig, err := a.readSignature(ctx, host, f)
		if err != nil {
			return err
		}

		//nolint:gosec // Path is produced by the artifact store
		payload, err := os.ReadFile(f.path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", f.path)
		}

		if err := a.verifier.Verify(keyPath, payload, sig); err != nil {
			return zerr.With(err, "artifact", f.entry.Filename)
		}
		a.logger.Debug("verified signature of " + f.entry.Filename)
	}
	return nil
}

func (a *App) readSignature(ctx context.Context, host ports.ReleaseHost, f fetched) ([]byte, error) {
	body, err := host.Open(ctx, f.url+domain.SignatureExt)
	if err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) {
			return nil, zerr.With(zerr.Wrap(domain.ErrSignatureMissing, ""), "artifact", f.entry.Filename)
		}
		return nil, err
	}
	defer body.Close() //nolint:errcheck // Best effort close in defer

	sig, err := io.ReadAll(io.LimitReader(body, maxSignatureSize))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "artifact", f.entry.Filename+domain.SignatureExt)
	}
	return sig, nil
}
