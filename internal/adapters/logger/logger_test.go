package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brewtap/internal/adapters/logger"
	"go.trai.ch/brewtap/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Logger        = (*logger.Logger)(nil)
	_ ports.LogConfigurer = (*logger.Logger)(nil)
)

// newTestLogger returns a logger writing colourless output into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{"info", func(l *logger.Logger) { l.Info("some message") }, "info_basic"},
		{"multiline info", func(l *logger.Logger) { l.Info("line1\nline2") }, "info_multiline"},
		{"warn", func(l *logger.Logger) { l.Warn("some warning") }, "warn_basic"},
		{"debug hidden by default", func(l *logger.Logger) { l.Debug("resolved 3 artifacts") }, "handler_debug_filtered"},
		{
			"debug enabled",
			func(l *logger.Logger) {
				l.SetDebug(true)
				l.Debug("resolved 3 artifacts")
			},
			"debug_enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{"simple error", os.ErrPermission, "error_simple"},
		{
			"multiline error",
			errors.New("yaml: unmarshal errors:\n  line 30: cannot unmarshal"),
			"error_multiline",
		},
		{
			"zerr chain",
			zerr.Wrap(errors.New("underlying cause"), "wrapped message"),
			"error_chain_zerr_two",
		},
		{
			"stdlib chain is printed flat",
			fmt.Errorf("failed to initialize service: %w",
				fmt.Errorf("failed to connect to database: %w", errors.New("connection refused"))),
			"error_chain_stdlib",
		},
		{
			"metadata on main error",
			func() error {
				err := zerr.Wrap(errors.New("connection refused"), "service unavailable")
				err = zerr.With(err, "service", "auth-api")
				return zerr.With(err, "retry_count", 3)
			}(),
			"error_metadata_main",
		},
		{
			"metadata on foreign error",
			zerr.With(errors.New("disk full"), "path", "/tmp/x"),
			"error_metadata_foreign",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	err := zerr.With(zerr.Wrap(errors.New("connection refused"), "failed to fetch release"), "repo", "octo/tool")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"error":"failed to fetch release: connection refused"`)
	assert.Contains(t, out, `"repo":"octo/tool"`)
	assert.NotContains(t, out, "✗")
}

func TestLogger_SetJSON_KeepsDebugLevel(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetDebug(true)
	lg.SetJSON(true)
	lg.Debug("hidden unless debug")

	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("pretty"))
	pretty := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("json"))
	jsonOut := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("pretty again"))
	back := buf.String()

	assert.Contains(t, pretty, "✗")
	assert.Contains(t, jsonOut, `"error"`)
	assert.NotContains(t, jsonOut, "✗")
	assert.Contains(t, back, "✗")
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		logger.New().SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	for _, fn := range []func(){
		func() { lg.Info("concurrent info") },
		func() { lg.Warn("concurrent warn") },
		func() { lg.Debug("concurrent debug") },
		func() { lg.Error(errors.New("concurrent error")) },
		func() { lg.SetJSON(true) },
		func() { lg.SetDebug(true) },
		func() { lg.SetOutput(&bytes.Buffer{}) },
	} {
		wg.Go(fn)
	}
	wg.Wait()
}
