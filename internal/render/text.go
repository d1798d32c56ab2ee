// Package render turns impact reports into terminal text and HTML charts.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/blastscope/blastscope/internal/impact"
)

const msgNoChanges = "No changes detected"

// TextRenderer formats impact reports for terminal display.
type TextRenderer struct {
	// NoColor disables ANSI colors in the risk line.
	NoColor bool
}

// Render formats a report as a multi-line summary with tables for changed
// entities and impacted modules.
func (r *TextRenderer) Render(report impact.Report) string {
	var parts []string

	parts = append(parts, r.riskLine(report.Risk))
	parts = append(parts, report.Summary)

	if len(report.Changed) > 0 {
		parts = append(parts, renderListTable("Changed entities", report.Changed))
	} else {
		parts = append(parts, msgNoChanges)
	}

	if len(report.Impacted) > 0 {
		parts = append(parts, renderListTable("Impacted modules", report.Impacted))
	}

	return strings.Join(parts, "\n\n")
}

// RenderCompact formats a report as a single line.
func (r *TextRenderer) RenderCompact(report impact.Report) string {
	return fmt.Sprintf("%s | %s", r.riskLine(report.Risk), report.Summary)
}

// riskLine renders the risk level, colored by severity unless disabled.
func (r *TextRenderer) riskLine(risk string) string {
	label := "Risk: " + strings.ToUpper(risk)

	if r.NoColor {
		return label
	}

	switch risk {
	case impact.RiskHigh:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case impact.RiskMedium:
		return color.New(color.FgYellow).Sprint(label)
	default:
		return color.New(color.FgGreen).Sprint(label)
	}
}

// renderListTable formats a titled single-column table using go-pretty.
func renderListTable(title string, items []string) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false

	tbl.AppendHeader(table.Row{title})

	for _, item := range items {
		tbl.AppendRow(table.Row{item})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d", len(items))})

	return tbl.Render()
}
