package app

import (
	"context"
	"io"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/engine/formula"
	"go.trai.ch/zerr"
)

// RenderOptions configures the Render method.
type RenderOptions struct {
	ManifestPath string
	// OutputPath receives the formula. Empty writes it to the stdout writer.
	OutputPath string
}

// Render generates a formula from a manifest without contacting GitHub.
func (a *App) Render(ctx context.Context, opts RenderOptions, stdout io.Writer) (err error) {
	_, span := a.tracer.Start(ctx, "render")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	m, err := a.configLoader.LoadManifest(opts.ManifestPath)
	if err != nil {
		return err
	}

	plan, err := formula.NewPlan(m.Checksums, m.Targets)
	if err != nil {
		return err
	}

	content, err := formula.Render(formula.Spec{
		Owner:      m.Owner,
		RepoName:   m.Repo,
		Repository: m.Metadata(),
		Plan:       plan,
		TarURL:     m.TarURL,
		Install:    m.Install,
		Test:       m.Test,
		DependsOn:  m.DependsOn,
		Caveats:    m.Caveats,
		Version:    m.Version,
		Strategy:   formula.DownloadStrategy{Name: m.DownloadStrategy, Require: m.CustomRequire},
	})
	if err != nil {
		return err
	}

	if opts.OutputPath == "" {
		if _, err := io.WriteString(stdout, content); err != nil {
			return zerr.Wrap(err, domain.ErrFileWriteFailed.Error())
		}
		return nil
	}

	changed, err := a.tap.WriteFormula(opts.OutputPath, content)
	if err != nil {
		return err
	}
	if changed {
		a.logger.Info("wrote " + opts.OutputPath)
	} else {
		a.logger.Info(opts.OutputPath + " is up to date")
	}
	return nil
}
