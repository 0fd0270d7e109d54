// Package config loads the release configuration and render manifests.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader on a YAML file overlaid with
// GitHub Actions style environment variables.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path (brewtap.yaml when empty),
// applies the environment and fills in defaults. The file is optional.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.ConfigFileName
	}

	var file Configfile
	switch _, err := os.Stat(path); {
	case err == nil:
		if err := readAndUnmarshalYAML(path, &file, domain.ErrConfigReadFailed, domain.ErrConfigParseFailed); err != nil {
			return nil, zerr.With(err, "path", path)
		}
		l.Logger.Debug("loaded configuration from " + path)
	case errors.Is(err, fs.ErrNotExist):
		l.Logger.Debug("no configuration file at " + path + ", using the environment only")
	default:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	cfg := file.toDomain()
	if err := overlayEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	return cfg, nil
}

// LoadManifest reads a render manifest.
func (l *Loader) LoadManifest(path string) (*domain.Manifest, error) {
	var file Manifestfile
	if err := readAndUnmarshalYAML(path, &file, domain.ErrManifestReadFailed, domain.ErrManifestParseFailed); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	m := &domain.Manifest{
		Owner:            file.Owner,
		Repo:             file.Repo,
		Description:      file.Description,
		License:          file.License,
		TarURL:           file.TarURL,
		Version:          file.Version,
		Install:          file.Install,
		Test:             file.Test,
		DependsOn:        file.DependsOn,
		Caveats:          file.Caveats,
		DownloadStrategy: file.DownloadStrategy,
		CustomRequire:    file.CustomRequire,
		Targets:          file.Targets.toDomain(),
	}
	for _, c := range file.Checksums {
		m.Checksums = append(m.Checksums, domain.ChecksumEntry{
			Filename:    c.Filename,
			Checksum:    c.Checksum,
			DownloadURL: c.DownloadURL,
		})
	}
	l.Logger.Debug("loaded manifest for " + m.Owner + "/" + m.Repo)

	return m, nil
}

func (f *Configfile) toDomain() *domain.Config {
	return &domain.Config{
		Owner:             f.Owner,
		Repo:              f.Repo,
		HomebrewOwner:     f.HomebrewOwner,
		HomebrewTap:       f.HomebrewTap,
		FormulaFolder:     f.FormulaFolder,
		CommitOwner:       f.CommitOwner,
		CommitEmail:       f.CommitEmail,
		Install:           f.Install,
		Test:              f.Test,
		DependsOn:         f.DependsOn,
		Caveats:           f.Caveats,
		Version:           f.Version,
		DownloadStrategy:  f.DownloadStrategy,
		CustomRequire:     f.CustomRequire,
		MinisignPublicKey: f.MinisignPublicKey,
		Targets: domain.Targets{
			DarwinAMD64: f.TargetDarwinAMD64.value,
			DarwinARM64: f.TargetDarwinARM64.value,
			LinuxAMD64:  f.TargetLinuxAMD64.value,
			LinuxARM64:  f.TargetLinuxARM64.value,
		},
		SkipCommit:        f.SkipCommit.value,
		UpdateReadmeTable: f.UpdateReadmeTable.value,
		Debug:             f.Debug.value,
	}
}

// overlayEnv applies INPUT_<NAME> variables over cfg. Empty variables are
// treated as unset, matching how GitHub Actions passes omitted inputs.
func overlayEnv(cfg *domain.Config) error {
	if token := firstEnv("GITHUB_TOKEN", "INPUT_GITHUB_TOKEN"); token != "" {
		cfg.Token = token
	}

	if repository := os.Getenv("GITHUB_REPOSITORY"); repository != "" {
		owner, repo, ok := strings.Cut(repository, "/")
		if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfigValue, ""), "GITHUB_REPOSITORY", repository)
		}
		cfg.Owner, cfg.Repo = owner, repo
	}

	texts := []struct {
		name string
		dst  *string
	}{
		{"owner", &cfg.Owner},
		{"repo", &cfg.Repo},
		{"homebrew_owner", &cfg.HomebrewOwner},
		{"homebrew_tap", &cfg.HomebrewTap},
		{"formula_folder", &cfg.FormulaFolder},
		{"commit_owner", &cfg.CommitOwner},
		{"commit_email", &cfg.CommitEmail},
		{"install", &cfg.Install},
		{"test", &cfg.Test},
		{"depends_on", &cfg.DependsOn},
		{"caveats", &cfg.Caveats},
		{"version", &cfg.Version},
		{"download_strategy", &cfg.DownloadStrategy},
		{"custom_require", &cfg.CustomRequire},
		{"minisign_public_key", &cfg.MinisignPublicKey},
	}
	for _, t := range texts {
		if v := input(t.name); v != "" {
			*t.dst = v
		}
	}

	flags := []struct {
		name string
		dst  *bool
	}{
		{"target_darwin_amd64", &cfg.Targets.DarwinAMD64},
		{"target_darwin_arm64", &cfg.Targets.DarwinARM64},
		{"target_linux_amd64", &cfg.Targets.LinuxAMD64},
		{"target_linux_arm64", &cfg.Targets.LinuxARM64},
		{"skip_commit", &cfg.SkipCommit},
		{"update_readme_table", &cfg.UpdateReadmeTable},
		{"debug", &cfg.Debug},
	}
	for _, f := range flags {
		v := input(f.name)
		if v == "" {
			continue
		}
		b, err := parseFlag(v)
		if err != nil {
			return zerr.With(err, "key", f.name)
		}
		*f.dst = b
	}

	return nil
}

func applyDefaults(cfg *domain.Config) {
	if cfg.FormulaFolder == "" {
		cfg.FormulaFolder = domain.DefaultFormulaFolder
	}
	if cfg.CommitOwner == "" {
		cfg.CommitOwner = domain.DefaultCommitOwner
	}
	if cfg.CommitEmail == "" {
		cfg.CommitEmail = domain.DefaultCommitEmail
	}
}

func input(name string) string {
	return os.Getenv("INPUT_" + strings.ToUpper(name))
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func readAndUnmarshalYAML[T any](path string, target *T, readErr, parseErr error) error {
	// #nosec G304 -- path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, readErr.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, parseErr.Error())
	}

	return nil
}
