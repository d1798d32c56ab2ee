package heuristics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blastscope/blastscope/internal/heuristics"
)

const configFilePerm = 0o600

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "heuristics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), configFilePerm))

	return path
}

func TestLoad_MissingExplicitFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	heur, err := heuristics.Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, heuristics.Default(), heur)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
risk_weights:
  function_changes: 3.0
risk_thresholds:
  low: 1.0
`)

	heur, err := heuristics.Load(path)

	require.NoError(t, err)
	assert.InEpsilon(t, 3.0, heur.RiskWeights.FunctionChanges, 1e-9)
	assert.InEpsilon(t, 1.0, heur.RiskThresholds.Low, 1e-9)

	// Untouched keys keep their defaults.
	assert.InEpsilon(t, heuristics.DefaultClassChangeWeight, heur.RiskWeights.ClassChanges, 1e-9)
	assert.InEpsilon(t, heuristics.DefaultMediumThreshold, heur.RiskThresholds.Medium, 1e-9)
}

func TestLoad_MalformedFilePropagates(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "risk_weights: [not, a, mapping\n")

	_, err := heuristics.Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read heuristics")
}

func TestLoad_InvalidValuesFailValidation(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
risk_thresholds:
  low: 6.0
  medium: 5.0
`)

	_, err := heuristics.Load(path)

	require.ErrorIs(t, err, heuristics.ErrThresholdsNotAscending)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
risk_weights:
  function_changes: 3.0
`)

	t.Setenv("BLASTSCOPE_RISK_WEIGHTS_FUNCTION_CHANGES", "4.5")

	heur, err := heuristics.Load(path)

	require.NoError(t, err)
	assert.InEpsilon(t, 4.5, heur.RiskWeights.FunctionChanges, 1e-9)
}
