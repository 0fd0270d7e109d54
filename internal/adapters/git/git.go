// Package git drives the git binary to update a tap checkout.
package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionControl = (*Git)(nil)

// credentials matches the userinfo part of a URL.
var credentials = regexp.MustCompile(`(://)[^/@\s]+@`)

// Git implements ports.VersionControl using os/exec.
type Git struct {
	logger ports.Logger
	binary string
}

// New creates a Git that runs the git found in PATH.
func New(logger ports.Logger) *Git {
	return &Git{logger: logger, binary: "git"}
}

// Clone makes a single-commit clone of url into dir.
func (g *Git) Clone(ctx context.Context, url, dir string) error {
	return g.run(ctx, "", "clone", "--depth", "1", url, dir)
}

// Configure sets the commit identity used in dir.
func (g *Git) Configure(ctx context.Context, dir, name, email string) error {
	if err := g.run(ctx, dir, "config", "user.name", name); err != nil {
		return err
	}
	return g.run(ctx, dir, "config", "user.email", email)
}

// Add stages paths.
func (g *Git) Add(ctx context.Context, dir string, paths ...string) error {
	return g.run(ctx, dir, append([]string{"add", "--"}, paths...)...)
}

// Commit records the staged changes.
func (g *Git) Commit(ctx context.Context, dir, message string) error {
	return g.run(ctx, dir, "commit", "-m", message)
}

// Push publishes HEAD to the upstream branch.
func (g *Git) Push(ctx context.Context, dir string) error {
	return g.run(ctx, dir, "push", "origin", "HEAD")
}

func (g *Git) run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, g.binary, args...) //nolint:gosec // fixed binary, arguments built here
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	g.logger.Debug("git " + Redact(strings.Join(args, " ")))
	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.Wrap(zerr.New(Redact(err.Error())), domain.ErrGitFailed.Error())
		wrapped = zerr.With(wrapped, "command", args[0])
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		if output := strings.TrimSpace(out.String()); output != "" {
			wrapped = zerr.With(wrapped, "output", Redact(output))
		}
		return wrapped
	}

	return nil
}

// Redact removes credentials embedded in URLs from s.
func Redact(s string) string {
	return credentials.ReplaceAllString(s, "${1}***@")
}
