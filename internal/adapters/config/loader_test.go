package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brewtap/internal/adapters/config"
	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var inputs = []string{
	"owner", "repo", "homebrew_owner", "homebrew_tap", "formula_folder",
	"commit_owner", "commit_email", "install", "test", "depends_on", "caveats",
	"version", "download_strategy", "custom_require", "minisign_public_key",
	"target_darwin_amd64", "target_darwin_arm64", "target_linux_amd64", "target_linux_arm64",
	"skip_commit", "update_readme_table", "debug", "github_token",
}

// newLoader returns a loader running in an environment without any GitHub variables.
func newLoader(t *testing.T) *config.Loader {
	t.Helper()

	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_REPOSITORY", "")
	for _, name := range inputs {
		t.Setenv("INPUT_"+strings.ToUpper(name), "")
	}

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	return config.NewLoader(log)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoader_Load_File(t *testing.T) {
	loader := newLoader(t)
	path := writeFile(t, t.TempDir(), domain.ConfigFileName, `
owner: octo
repo: tool
homebrew_owner: octo
homebrew_tap: homebrew-tools
install: |
  bin.install "tool"
depends_on: |
  "gcc"
target_darwin_amd64: true
target_linux_amd64: "false"
target_linux_arm64: "1"
update_readme_table: yes
`)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "octo", cfg.Owner)
	assert.Equal(t, "tool", cfg.Repo)
	assert.Equal(t, "homebrew-tools", cfg.HomebrewTap)
	assert.Equal(t, "bin.install \"tool\"\n", cfg.Install)
	assert.Equal(t, domain.Targets{DarwinAMD64: true, LinuxARM64: true}, cfg.Targets)
	assert.True(t, cfg.UpdateReadmeTable)
	assert.False(t, cfg.SkipCommit)

	assert.Equal(t, domain.DefaultFormulaFolder, cfg.FormulaFolder)
	assert.Equal(t, domain.DefaultCommitOwner, cfg.CommitOwner)
	assert.Equal(t, domain.DefaultCommitEmail, cfg.CommitEmail)
}

func TestLoader_Load_Environment(t *testing.T) {
	loader := newLoader(t)
	path := writeFile(t, t.TempDir(), domain.ConfigFileName, `
owner: someone
homebrew_tap: homebrew-old
target_darwin_arm64: true
`)

	t.Setenv("GITHUB_TOKEN", "secret")
	t.Setenv("GITHUB_REPOSITORY", "octo/tool")
	t.Setenv("INPUT_HOMEBREW_OWNER", "octo")
	t.Setenv("INPUT_HOMEBREW_TAP", "homebrew-tools")
	t.Setenv("INPUT_INSTALL", `bin.install "tool"`)
	t.Setenv("INPUT_TARGET_DARWIN_ARM64", "false")
	t.Setenv("INPUT_TARGET_LINUX_AMD64", "true")
	t.Setenv("INPUT_SKIP_COMMIT", "TRUE")
	t.Setenv("INPUT_COMMIT_OWNER", "release-bot")

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "octo", cfg.Owner)
	assert.Equal(t, "tool", cfg.Repo)
	assert.Equal(t, "homebrew-tools", cfg.HomebrewTap)
	assert.Equal(t, domain.Targets{LinuxAMD64: true}, cfg.Targets, "the string false disables a flag")
	assert.True(t, cfg.SkipCommit)
	assert.Equal(t, "release-bot", cfg.CommitOwner)
	require.NoError(t, cfg.Validate())
}

func TestLoader_Load_MissingFileIsNotAnError(t *testing.T) {
	loader := newLoader(t)
	t.Setenv("INPUT_GITHUB_TOKEN", "from-input")

	cfg, err := loader.Load(filepath.Join(t.TempDir(), domain.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "from-input", cfg.Token)
	assert.Equal(t, domain.DefaultFormulaFolder, cfg.FormulaFolder)
}

func TestLoader_Load_TokenPrecedence(t *testing.T) {
	loader := newLoader(t)
	t.Setenv("GITHUB_TOKEN", "from-env")
	t.Setenv("INPUT_GITHUB_TOKEN", "from-input")

	cfg, err := loader.Load(filepath.Join(t.TempDir(), domain.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Token)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			file:    "owner: [octo",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unparsable flag in file",
			file:    "skip_commit: sometimes\n",
			wantErr: domain.ErrInvalidConfigValue,
		},
		{
			name:    "unparsable flag in environment",
			env:     map[string]string{"INPUT_TARGET_LINUX_ARM64": "nope"},
			wantErr: domain.ErrInvalidConfigValue,
		},
		{
			name:    "repository without owner",
			env:     map[string]string{"GITHUB_REPOSITORY": "tool"},
			wantErr: domain.ErrInvalidConfigValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newLoader(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeFile(t, t.TempDir(), domain.ConfigFileName, tt.file)

			_, err := loader.Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_LoadManifest(t *testing.T) {
	loader := newLoader(t)
	path := writeFile(t, t.TempDir(), "manifest.yaml", `
owner: octo
repo: tool
description: A tool
license: MIT
tar_url: https://github.com/octo/tool/archive/refs/tags/v1.0.0.tar.gz
install: bin.install "tool"
download_strategy: CustomStrategy
custom_require: lib/custom
targets:
  linux_amd64: "true"
  darwin_arm64: false
checksums:
  - filename: tool.tar.gz
    checksum: "0000000000000000000000000000000000000000000000000000000000000000"
  - filename: tool-1.0.0-linux-amd64.tar.gz
    checksum: "1111111111111111111111111111111111111111111111111111111111111111"
    download_url: https://github.com/octo/tool/releases/download/v1.0.0/tool-1.0.0-linux-amd64.tar.gz
`)

	m, err := loader.LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, "octo", m.Owner)
	assert.Equal(t, "CustomStrategy", m.DownloadStrategy)
	assert.Equal(t, domain.Targets{LinuxAMD64: true}, m.Targets)
	require.Len(t, m.Checksums, 2)
	assert.Equal(t, "tool-1.0.0-linux-amd64.tar.gz", m.Checksums[1].Filename)
	assert.Equal(t, "MIT", m.Metadata().SPDXID())
}

func TestLoader_LoadManifest_Errors(t *testing.T) {
	loader := newLoader(t)

	_, err := loader.LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestReadFailed.Error())

	path := writeFile(t, t.TempDir(), "manifest.yaml", "checksums: {")
	_, err = loader.LoadManifest(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestParseFailed.Error())
}
