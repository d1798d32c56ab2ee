package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/blastscope/blastscope/internal/impact"
)

// plotFileName is the HTML page written into the output directory.
const plotFileName = "report.html"

// plotDirPerm is the mode for created output directories.
const plotDirPerm = 0o750

// kindOther labels changes that match no change keyword.
const kindOther = "other"

// categoryOther labels paths that match no module category.
const categoryOther = "uncategorized"

// kindLabels fixes the change-kind bar order.
var kindLabels = []string{"function", "class", "import", "export", kindOther}

// categoryLabels fixes the module-category bar order.
var categoryLabels = []string{
	impact.CategoryCore, impact.CategoryUtility, impact.CategoryTest, categoryOther,
}

// WritePlot renders a report as an HTML chart page under outDir.
func WritePlot(report impact.Report, outDir string) error {
	mkErr := os.MkdirAll(outDir, plotDirPerm)
	if mkErr != nil {
		return fmt.Errorf("create output dir: %w", mkErr)
	}

	page := components.NewPage()
	page.PageTitle = "blastscope impact report"
	page.AddCharts(changeKindChart(report), moduleCategoryChart(report))

	file, createErr := os.Create(filepath.Join(outDir, plotFileName))
	if createErr != nil {
		return fmt.Errorf("create plot file: %w", createErr)
	}

	defer file.Close()

	renderErr := page.Render(file)
	if renderErr != nil {
		return fmt.Errorf("render plot: %w", renderErr)
	}

	return nil
}

// changeKindChart builds a bar chart of change counts per change kind.
func changeKindChart(report impact.Report) *charts.Bar {
	counts := make(map[string]int, len(kindLabels))

	for _, entity := range report.Changed {
		kind, ok := impact.ChangeKind(entityNodeType(entity))
		if !ok {
			kind = kindOther
		}

		counts[kind]++
	}

	return barChart("Changes by kind", report.Summary, kindLabels, counts)
}

// moduleCategoryChart builds a bar chart of impacted modules per category.
func moduleCategoryChart(report impact.Report) *charts.Bar {
	counts := make(map[string]int, len(categoryLabels))

	for _, module := range report.Impacted {
		category, ok := impact.Category(module)
		if !ok {
			category = categoryOther
		}

		counts[category]++
	}

	return barChart("Impacted modules by category", "risk: "+report.Risk, categoryLabels, counts)
}

func barChart(title, subtitle string, labels []string, counts map[string]int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := make([]opts.BarData, len(labels))
	for i, label := range labels {
		data[i] = opts.BarData{Value: counts[label]}
	}

	bar.SetXAxis(labels)
	bar.AddSeries("count", data)

	return bar
}

// entityNodeType extracts the node type from a "<node_type>.<name>" entry.
func entityNodeType(entity string) string {
	idx := strings.LastIndex(entity, ".")
	if idx < 0 {
		return entity
	}

	return entity[:idx]
}
