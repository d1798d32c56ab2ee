package commands_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/blastscope/blastscope/cmd/blastscope/commands"
	"github.com/blastscope/blastscope/internal/heuristics"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestConfigInit_WritesDefaultsOnce(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, commands.NewConfigCommand(), "init")

	require.NoError(t, err)
	assert.Contains(t, out, ".blastscope.yaml")

	// A second init must refuse to overwrite.
	_, err = execute(t, commands.NewConfigCommand(), "init")
	require.ErrorIs(t, err, commands.ErrConfigExists)
}

func TestConfigShow_PrintsEffectiveHeuristics(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, commands.NewConfigCommand(), "show")

	require.NoError(t, err)

	var heur heuristics.Heuristics
	require.NoError(t, yaml.Unmarshal([]byte(out), &heur))
	assert.Equal(t, heuristics.Default(), &heur)
}
