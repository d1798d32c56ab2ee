package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blastscope/blastscope/internal/render"
)

func TestWritePlot_CreatesHTMLPage(t *testing.T) {
	t.Parallel()

	outDir := filepath.Join(t.TempDir(), "charts")

	require.NoError(t, render.WritePlot(sampleReport(), outDir))

	data, readErr := os.ReadFile(filepath.Join(outDir, "report.html"))
	require.NoError(t, readErr)

	html := string(data)
	assert.Contains(t, html, "Changes by kind")
	assert.Contains(t, html, "Impacted modules by category")
}
