// Package commands implements the blastscope CLI subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/blastscope/blastscope/internal/heuristics"
	"github.com/blastscope/blastscope/internal/impact"
	"github.com/blastscope/blastscope/internal/render"
)

// Output format modes for the analyze command.
const (
	FormatJSON    = "json"
	FormatText    = "text"
	FormatCompact = "compact"
)

// analyzeArgCount is the number of positional JSON arguments.
const analyzeArgCount = 3

// AnalyzeCommand holds the flags for the analyze command.
type AnalyzeCommand struct {
	configPath string
	format     string
	noColor    bool
}

// NewAnalyzeCommand creates and configures the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	cmd := &AnalyzeCommand{}

	cobraCmd := &cobra.Command{
		Use:   "analyze <ast_diffs_json> <dep_graph_json> <changed_files_json>",
		Short: "Score a change set and print the impact report",
		Long: `Analyze takes three positional JSON arguments: the AST diff list, the
module dependency graph, and the changed-file list. It prints the impact
report as pretty JSON by default.`,
		Args: cobra.ExactArgs(analyzeArgCount),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.configPath, "config", "c", "", "heuristics config file (default: search .blastscope.yaml)")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", FormatJSON, "output format: json, text, or compact")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "disable colored output")

	return cobraCmd
}

// Run executes the analyze command.
func (c *AnalyzeCommand) Run(cobraCmd *cobra.Command, args []string) error {
	heur, loadErr := heuristics.Load(c.configPath)
	if loadErr != nil {
		return loadErr
	}

	diffs, diffsErr := impact.DecodeDiffs([]byte(args[0]))
	if diffsErr != nil {
		return diffsErr
	}

	graph, graphErr := impact.DecodeGraph([]byte(args[1]))
	if graphErr != nil {
		return graphErr
	}

	changedFiles, filesErr := impact.DecodeChangedFiles([]byte(args[2]))
	if filesErr != nil {
		return filesErr
	}

	analyzer := impact.New(heur, impact.WithTracer(otel.Tracer("blastscope")))
	report := analyzer.Analyze(cobraCmd.Context(), diffs, graph, changedFiles)

	return c.write(report, cobraCmd.OutOrStdout())
}

func (c *AnalyzeCommand) write(report impact.Report, writer io.Writer) error {
	switch c.format {
	case FormatText:
		renderer := &render.TextRenderer{NoColor: c.noColor}
		fmt.Fprintln(writer, renderer.Render(report))

		return nil
	case FormatCompact:
		renderer := &render.TextRenderer{NoColor: c.noColor}
		fmt.Fprintln(writer, renderer.RenderCompact(report))

		return nil
	default:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")

		encodeErr := encoder.Encode(report)
		if encodeErr != nil {
			return fmt.Errorf("encode report: %w", encodeErr)
		}

		return nil
	}
}
