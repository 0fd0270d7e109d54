package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/core/ports"
	"go.trai.ch/brewtap/internal/engine/readme"
)

// ReadmeOptions configures the UpdateReadme method.
type ReadmeOptions struct {
	TapDir        string
	FormulaFolder string
	HomebrewOwner string
	HomebrewTap   string
}

// UpdateReadme regenerates the project table of the tap README from its formulas.
// It returns the README path and whether the file changed. A README without
// table markers, or a tap without a README, is left alone with a warning.
func (a *App) UpdateReadme(ctx context.Context, opts ReadmeOptions) (path string, changed bool, err error) {
	_, span := a.tracer.Start(ctx, "readme", ports.WithAttribute("tap", opts.TapDir))
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	folder := opts.FormulaFolder
	if folder == "" {
		folder = domain.DefaultFormulaFolder
	}

	files, err := a.tap.ListFormulas(filepath.Join(opts.TapDir, folder))
	if err != nil {
		return "", false, err
	}

	records := make([]domain.FormulaRecord, 0, len(files))
	for _, f := range files {
		content, err := a.tap.ReadFile(f.Path)
		if err != nil {
			return "", false, err
		}
		rec, err := readme.Parse(strings.NewReader(content))
		if err != nil {
			a.logger.Warn("skipping " + f.Name + domain.FormulaExt + ": " + err.Error())
			continue
		}
		records = append(records, rec)
	}

	path, err = a.tap.FindReadme(opts.TapDir)
	if errors.Is(err, domain.ErrReadmeNotFound) {
		a.logger.Warn(err.Error())
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	current, err := a.tap.ReadFile(path)
	if err != nil {
		return "", false, err
	}

	updated, ok := readme.Splice(current, readme.Table(records, opts.HomebrewOwner, opts.HomebrewTap))
	if !ok {
		a.logger.Warn(domain.ErrReadmeMarkersNotFound.Error())
		return path, false, nil
	}

	changed, err = a.tap.WriteFile(path, updated)
	if err != nil {
		return "", false, err
	}
	if changed {
		a.logger.Info("updated project table in " + filepath.Base(path))
	}
	return path, changed, nil
}
