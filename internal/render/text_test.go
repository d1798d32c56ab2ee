package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blastscope/blastscope/internal/impact"
	"github.com/blastscope/blastscope/internal/render"
)

func sampleReport() impact.Report {
	return impact.Report{
		Changed:   []string{"FunctionDeclaration.foo", "ClassDeclaration.Widget"},
		Impacted:  []string{"src/core/engine.py"},
		Risk:      impact.RiskMedium,
		Summary:   "2 changes detected, 1 modules impacted, risk: medium",
		Timestamp: 1700000000.0,
	}
}

func TestTextRenderer_Render(t *testing.T) {
	t.Parallel()

	renderer := &render.TextRenderer{NoColor: true}

	out := renderer.Render(sampleReport())

	assert.Contains(t, out, "Risk: MEDIUM")
	assert.Contains(t, out, "2 changes detected, 1 modules impacted, risk: medium")
	assert.Contains(t, out, "FunctionDeclaration.foo")
	assert.Contains(t, out, "ClassDeclaration.Widget")
	assert.Contains(t, out, "src/core/engine.py")
	assert.Contains(t, out, "Changed entities")
	assert.Contains(t, out, "Impacted modules")
}

func TestTextRenderer_RenderEmptyReport(t *testing.T) {
	t.Parallel()

	renderer := &render.TextRenderer{NoColor: true}

	out := renderer.Render(impact.Report{
		Risk:    impact.RiskLow,
		Summary: "0 changes detected, 0 modules impacted, risk: low",
	})

	assert.Contains(t, out, "Risk: LOW")
	assert.Contains(t, out, "No changes detected")
	assert.NotContains(t, out, "Impacted modules")
}

func TestTextRenderer_RenderCompactIsSingleLine(t *testing.T) {
	t.Parallel()

	renderer := &render.TextRenderer{NoColor: true}

	out := renderer.RenderCompact(sampleReport())

	assert.Equal(t, 1, len(strings.Split(out, "\n")))
	assert.Contains(t, out, "Risk: MEDIUM")
	assert.Contains(t, out, "risk: medium")
}
