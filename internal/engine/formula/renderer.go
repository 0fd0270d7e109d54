package formula

import (
	"strings"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/zerr"
)

const header = `# typed: true
# frozen_string_literal: true

# This file was generated by Brewtap. DO NOT EDIT.
`

// DownloadStrategy is a custom Homebrew download strategy and the file defining it.
type DownloadStrategy struct {
	Name    string
	Require string
}

// Spec is everything needed to render one formula.
type Spec struct {
	Owner      string
	RepoName   string
	Repository domain.RepositoryMetadata
	Plan       *Plan
	TarURL     string
	Install    string
	Test       string
	DependsOn  string
	Caveats    string
	Version    string
	Strategy   DownloadStrategy
}

// Render produces the formula source for spec. Rendering is deterministic:
// identical specs yield identical text.
func Render(spec Spec) (string, error) {
	if err := validate(spec); err != nil {
		return "", err
	}

	w := &writer{}
	w.raw(header)
	if spec.Strategy.Require != "" {
		w.line(0, `require_relative "`+spec.Strategy.Require+`"`)
		w.blank()
	}

	w.line(0, "class "+ClassName(spec.RepoName)+" < Formula")
	w.line(1, `desc "`+CleanDescription(spec.Repository.Description, spec.RepoName)+`"`)
	w.line(1, `homepage "https://github.com/`+spec.Owner+"/"+spec.RepoName+`"`)
	w.line(1, urlLine(spec.TarURL, spec.Strategy.Name))
	if spec.Version != "" {
		w.line(1, `version "`+spec.Version+`"`)
	}
	w.line(1, `sha256 "`+spec.Plan.Default.Checksum+`"`)
	if license := spec.Repository.SPDXID(); license != "" {
		w.line(1, `license "`+license+`"`)
	}

	if deps := SortDependencies(spec.DependsOn); len(deps) > 0 {
		w.blank()
		for _, d := range deps {
			w.line(1, d.String())
		}
	}

	for _, group := range spec.Plan.Groups {
		w.blank()
		w.line(1, "on_"+string(group.OS)+" do")
		for i, b := range group.Branches {
			if i > 0 {
				w.blank()
			}
			w.line(2, "on_"+string(b.Platform.Arch())+" do")
			w.line(3, urlLine(b.Entry.DownloadURL, spec.Strategy.Name))
			w.line(3, `sha256 "`+b.Entry.Checksum+`"`)
			w.line(2, "end")
		}
		w.line(1, "end")
	}

	w.blank()
	w.line(1, "def install")
	w.raw(IndentBlock(spec.Install, indent(2)))
	w.line(1, "end")

	if strings.TrimSpace(spec.Test) != "" {
		w.blank()
		w.line(1, "test do")
		w.raw(IndentBlock(spec.Test, indent(2)))
		w.line(1, "end")
	}

	if strings.TrimSpace(spec.Caveats) != "" {
		w.blank()
		w.line(1, "def caveats")
		w.line(2, "<<~EOS")
		w.raw(IndentBlock(spec.Caveats, indent(3)))
		w.line(2, "EOS")
		w.line(1, "end")
	}

	w.line(0, "end")
	return w.String(), nil
}

func validate(spec Spec) error {
	required := []struct {
		field string
		value string
	}{
		{"owner", spec.Owner},
		{"repo_name", spec.RepoName},
		{"tar_url", spec.TarURL},
		{"install", spec.Install},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return zerr.With(zerr.Wrap(domain.ErrMissingFormulaField, ""), "field", r.field)
		}
	}
	if spec.Plan == nil {
		return zerr.With(zerr.Wrap(domain.ErrMissingFormulaField, ""), "field", "plan")
	}
	if (spec.Strategy.Name == "") != (spec.Strategy.Require == "") {
		return zerr.With(zerr.Wrap(domain.ErrMissingFormulaField, ""), "field", "download_strategy")
	}

	for _, ce := range spec.Plan.Entries() {
		if !domain.IsHex(ce.Entry.Checksum) {
			err := zerr.With(zerr.Wrap(domain.ErrInvalidChecksum, ""), "artifact", ce.Entry.Filename)
			return zerr.With(err, "condition", ce.Condition.String())
		}
	}
	return nil
}

func urlLine(url, strategy string) string {
	line := `url "` + url + `"`
	if strategy != "" {
		line += ", using: " + strategy
	}
	return line
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}

type writer struct {
	strings.Builder
}

func (w *writer) raw(s string) {
	w.WriteString(s)
}

func (w *writer) line(level int, s string) {
	w.WriteString(indent(level))
	w.WriteString(s)
	w.WriteByte('\n')
}

func (w *writer) blank() {
	w.WriteByte('\n')
}
