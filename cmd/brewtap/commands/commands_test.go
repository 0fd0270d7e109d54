package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brewtap/cmd/brewtap/commands"
	"go.trai.ch/brewtap/internal/app"
	"go.trai.ch/brewtap/internal/build"
	"go.trai.ch/brewtap/internal/core/domain"
)

type mockApp struct {
	releaseFunc func(ctx context.Context, opts app.ReleaseOptions) error
	renderFunc  func(ctx context.Context, opts app.RenderOptions, stdout io.Writer) error
	readmeFunc  func(ctx context.Context, opts app.ReadmeOptions) (string, bool, error)

	logFormat string
	debug     bool
}

func (m *mockApp) Release(ctx context.Context, opts app.ReleaseOptions) error {
	if m.releaseFunc != nil {
		return m.releaseFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Render(ctx context.Context, opts app.RenderOptions, stdout io.Writer) error {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, opts, stdout)
	}
	return nil
}

func (m *mockApp) UpdateReadme(ctx context.Context, opts app.ReadmeOptions) (string, bool, error) {
	if m.readmeFunc != nil {
		return m.readmeFunc(ctx, opts)
	}
	return "", false, nil
}

func (m *mockApp) ConfigureLogging(format string, debug bool) {
	m.logFormat = format
	m.debug = debug
}

func TestCommands_Release(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ReleaseOptions
		called := false

		mock := &mockApp{
			releaseFunc: func(_ context.Context, opts app.ReleaseOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"release", "--config", "ci/brewtap.yaml", "--skip-commit"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "ci/brewtap.yaml", captured.ConfigPath)
		assert.True(t, captured.SkipCommit)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.ReleaseOptions
		mock := &mockApp{
			releaseFunc: func(_ context.Context, opts app.ReleaseOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"release"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.ConfigFileName, captured.ConfigPath)
		assert.False(t, captured.SkipCommit)
	})

	t.Run("returns error on release failure", func(t *testing.T) {
		mock := &mockApp{
			releaseFunc: func(_ context.Context, _ app.ReleaseOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"release"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Render(t *testing.T) {
	t.Run("writes to the command output", func(t *testing.T) {
		var captured app.RenderOptions
		mock := &mockApp{
			renderFunc: func(_ context.Context, opts app.RenderOptions, stdout io.Writer) error {
				captured = opts
				_, err := io.WriteString(stdout, "class Tool < Formula\n")
				return err
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"render", "--manifest", "tool.yaml", "-o", "Formula/tool.rb"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "tool.yaml", captured.ManifestPath)
		assert.Equal(t, "Formula/tool.rb", captured.OutputPath)
		assert.Equal(t, "class Tool < Formula\n", buf.String())
	})

	t.Run("manifest is required", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(_ context.Context, _ app.RenderOptions, _ io.Writer) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"render"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "manifest")
	})
}

func TestCommands_Readme(t *testing.T) {
	var captured app.ReadmeOptions
	mock := &mockApp{
		readmeFunc: func(_ context.Context, opts app.ReadmeOptions) (string, bool, error) {
			captured = opts
			return "tap/README.md", true, nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{
		"readme", "--tap", "tap", "--formula-folder", "Casks",
		"--homebrew-owner", "octo", "--homebrew-tap", "homebrew-tools",
	})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.ReadmeOptions{
		TapDir:        "tap",
		FormulaFolder: "Casks",
		HomebrewOwner: "octo",
		HomebrewTap:   "homebrew-tools",
	}, captured)
}

func TestCommands_LoggingFlags(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetArgs([]string{"release", "--log-format", "json", "--debug"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "json", mock.logFormat)
	assert.True(t, mock.debug)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "brewtap version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}
