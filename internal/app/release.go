package app

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/core/ports"
	"go.trai.ch/brewtap/internal/engine/formula"
	"go.trai.ch/zerr"
)

// ReleaseOptions configures the Release method.
type ReleaseOptions struct {
	ConfigPath string
	SkipCommit bool
}

// Release generates the formula for the latest release and publishes it to the tap.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Release(ctx context.Context, opts ReleaseOptions) (err error) {
	ctx, span := a.tracer.Start(ctx, "release")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if cfg.Debug {
		a.enableDebug()
	}
	if opts.SkipCommit {
		cfg.SkipCommit = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	span.SetAttribute("repository", cfg.Owner+"/"+cfg.Repo)

	host := a.hosts.Connect(cfg.Token)

	meta, private, err := host.Repository(ctx, cfg.Owner, cfg.Repo)
	if err != nil {
		return err
	}
	rel, err := host.LatestRelease(ctx, cfg.Owner, cfg.Repo)
	if err != nil {
		return err
	}
	span.SetAttribute("tag", rel.TagName)
	a.logger.Info("generating formula for " + cfg.Owner + "/" + cfg.Repo + " " + rel.TagName)

	workDir, err := os.MkdirTemp(a.workDir, "brewtap-")
	if err != nil {
		return zerr.Wrap(err, domain.ErrWorkDirCreateFailed.Error())
	}
	defer func() { _ = os.RemoveAll(workDir) }()
	artifactDir := filepath.Join(workDir, "artifacts")

	downloads := releaseDownloads(cfg, rel, private)
	artifacts, err := traced(ctx, a.tracer, "release.download", func(ctx context.Context) ([]fetched, error) {
		return a.fetchAll(ctx, host, artifactDir, downloads)
	}, ports.WithAttribute("downloads", len(downloads)))
	if err != nil {
		return err
	}

	if cfg.MinisignPublicKey != "" {
		if _, err := traced(ctx, a.tracer, "release.verify", func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.verifySignatures(ctx, host, cfg.MinisignPublicKey, artifacts[1:])
		}); err != nil {
			return err
		}
	}

	entries := make([]domain.ChecksumEntry, 0, len(artifacts))
	for _, f := range artifacts {
		entries = append(entries, f.entry)
	}

	content, err := traced(ctx, a.tracer, "release.render", func(_ context.Context) (string, error) {
		plan, err := formula.NewPlan(entries, cfg.Targets)
		if err != nil {
			return "", err
		}
		return formula.Render(formula.Spec{
			Owner:      cfg.Owner,
			RepoName:   cfg.Repo,
			Repository: *meta,
			Plan:       plan,
			TarURL:     entries[0].DownloadURL,
			Install:    cfg.Install,
			Test:       cfg.Test,
			DependsOn:  cfg.DependsOn,
			Caveats:    cfg.Caveats,
			Version:    cfg.Version,
			Strategy:   formula.DownloadStrategy{Name: cfg.DownloadStrategy, Require: cfg.CustomRequire},
		})
	})
	if err != nil {
		return err
	}

	tapDir := filepath.Join(workDir, "tap")
	changed, err := traced(ctx, a.tracer, "release.tap", func(ctx context.Context) ([]string, error) {
		return a.updateTap(ctx, cfg, tapDir, content)
	}, ports.WithAttribute("tap", cfg.HomebrewOwner+"/"+cfg.HomebrewTap))
	if err != nil {
		return err
	}

	if cfg.SkipCommit {
		a.logger.Info("skip_commit is set, not publishing the formula")
		return nil
	}
	if len(changed) == 0 {
		a.logger.Info("formula for " + cfg.Repo + " is up to date, nothing to commit")
		return nil
	}

	_, err = traced(ctx, a.tracer, "release.publish", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.publish(ctx, host, cfg, rel, tapDir, artifactDir, entries, changed)
	}, ports.WithAttribute("files", len(changed)))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReleaseFailed.Error()), "tag", rel.TagName)
	}

	a.logger.Info("published formula for " + cfg.Repo + " " + rel.TagName + " to " + cfg.HomebrewOwner + "/" + cfg.HomebrewTap)
	return nil
}

// updateTap clones the tap, writes the formula and refreshes the README.
// It returns the paths that changed.
func (a *App) updateTap(ctx context.Context, cfg *domain.Config, tapDir, content string) ([]string, error) {
	if err := a.vcs.Clone(ctx, cfg.TapCloneURL(), tapDir); err != nil {
		return nil, err
	}
	if err := a.vcs.Configure(ctx, tapDir, cfg.CommitOwner, cfg.CommitEmail); err != nil {
		return nil, err
	}

	var changed []string
	formulaPath := domain.FormulaPath(tapDir, cfg.FormulaFolder, cfg.Repo)
	wrote, err := a.tap.WriteFormula(formulaPath, content)
	if err != nil {
		return nil, err
	}
	if wrote {
		changed = append(changed, formulaPath)
	}

	if cfg.UpdateReadmeTable {
		readmePath, wrote, err := a.UpdateReadme(ctx, ReadmeOptions{
			TapDir:        tapDir,
			FormulaFolder: cfg.FormulaFolder,
			HomebrewOwner: cfg.HomebrewOwner,
			HomebrewTap:   cfg.HomebrewTap,
		})
		if err != nil {
			return nil, err
		}
		if wrote {
			changed = append(changed, readmePath)
		}
	}

	return changed, nil
}

func (a *App) publish(
	ctx context.Context,
	host ports.ReleaseHost,
	cfg *domain.Config,
	rel *domain.Release,
	tapDir, artifactDir string,
	entries []domain.ChecksumEntry,
	changed []string,
) error {
	manifest, err := a.artifacts.WriteManifest(artifactDir, entries)
	if err != nil {
		return err
	}
	if err := host.UploadAsset(ctx, cfg.Owner, cfg.Repo, rel.ID, manifest); err != nil {
		return err
	}

	if err := a.vcs.Add(ctx, tapDir, changed...); err != nil {
		return err
	}
	if err := a.vcs.Commit(ctx, tapDir, CommitMessage(cfg.Repo, rel.TagName)); err != nil {
		return err
	}
	return a.vcs.Push(ctx, tapDir)
}

// CommitMessage returns the tap commit message for a release.
func CommitMessage(repo, tag string) string {
	return "Brew formula update for " + repo + " version " + tag
}

// traced runs fn inside a child span named name.
func traced[T any](
	ctx context.Context, tracer ports.Tracer, name string, fn func(context.Context) (T, error), opts ...ports.SpanOption,
) (T, error) {
	ctx, span := tracer.Start(ctx, name, opts...)
	defer span.End()

	v, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return v, err
}
