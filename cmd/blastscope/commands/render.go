package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blastscope/blastscope/internal/impact"
	"github.com/blastscope/blastscope/internal/render"
)

const (
	renderCmdUse      = "render <report.json>"
	renderCmdShort    = "Chart a saved impact report as HTML"
	renderArgCount    = 1
	renderOutputFlag  = "output"
	renderOutputShort = "o"
	renderOutputUsage = "output directory for HTML files"
)

// ErrNoOutputDir is returned when the --output flag is not set.
var ErrNoOutputDir = errors.New("output directory is required (use --output)")

// NewRenderCommand creates the render subcommand.
func NewRenderCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   renderCmdUse,
		Short: renderCmdShort,
		Args:  cobra.ExactArgs(renderArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			if outputDir == "" {
				return ErrNoOutputDir
			}

			return runRender(args[0], outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, renderOutputFlag, renderOutputShort, "", renderOutputUsage)

	return cmd
}

func runRender(reportPath, outputDir string) error {
	data, readErr := os.ReadFile(reportPath)
	if readErr != nil {
		return fmt.Errorf("read report: %w", readErr)
	}

	var report impact.Report

	unmarshalErr := json.Unmarshal(data, &report)
	if unmarshalErr != nil {
		return fmt.Errorf("parse report: %w", unmarshalErr)
	}

	return render.WritePlot(report, outputDir)
}
