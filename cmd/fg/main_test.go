package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/adapters/config"
	"go.trai.ch/framegraph/internal/adapters/logger"
	"go.trai.ch/framegraph/internal/adapters/telemetry"
	"go.trai.ch/framegraph/internal/app"
)

const graphFile = `version: "1"
name: forward
framesInFlight: 2
extent: [640, 480]
resources:
  - {name: color, format: rgba8}
  - {name: depth, format: d32}
passes:
  - name: opaque
    output: true
    draws: 2
    uses:
      - {resource: color, usage: color, access: write, clear: [0, 0, 0, 1]}
      - {resource: depth, usage: depth, access: write, clear: 1}
`

func provider(logs *bytes.Buffer) ComponentProvider {
	return func(_ context.Context) (*app.Components, error) {
		log := logger.New()
		log.SetOutput(logs)
		a := app.New(config.NewLoader(log), log, nil, telemetry.NewNoOpTracer(), nil, nil)
		return &app.Components{App: a, Logger: log}, nil
	}
}

func writeGraph(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(graphFile), 0o600))
	return path
}

func TestRun_Plan(t *testing.T) {
	var stdout, stderr, logs bytes.Buffer
	path := writeGraph(t)

	code := run(t.Context(), []string{"plan", "-f", path}, &stdout, &stderr, provider(&logs))

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "#0 640x480 opaque")
}

func TestRun_Run(t *testing.T) {
	var stdout, stderr, logs bytes.Buffer
	path := writeGraph(t)

	code := run(t.Context(), []string{"run", "-f", path, "--frames", "2"}, &stdout, &stderr, provider(&logs))

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), `graph "forward": 2 frames`)
}

func TestRun_MissingFile(t *testing.T) {
	var stdout, stderr, logs bytes.Buffer

	code := run(t.Context(),
		[]string{"plan", "-f", filepath.Join(t.TempDir(), "missing.yaml")},
		&stdout, &stderr, provider(&logs))

	assert.Equal(t, 1, code)
	assert.Contains(t, logs.String(), "failed to load graph file")
}

func TestRun_ProviderError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(t.Context(), []string{"version"}, &stdout, &stderr, func(context.Context) (*app.Components, error) {
		return nil, errors.New("graph resolution failed")
	})

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: graph resolution failed\n", stderr.String())
}
