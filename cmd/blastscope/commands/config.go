package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/blastscope/blastscope/internal/heuristics"
)

// configFileName is the file written by config init.
const configFileName = ".blastscope.yaml"

// configFilePerm is the mode of the written config file.
const configFilePerm = 0o644

// ErrConfigExists is returned when config init would overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the heuristics configuration",
	}

	cmd.AddCommand(configInitCmd(), configShowCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default heuristics to " + configFileName,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			_, statErr := os.Stat(configFileName)
			if statErr == nil {
				return fmt.Errorf("%w: %s", ErrConfigExists, configFileName)
			}

			data, marshalErr := yaml.Marshal(heuristics.Default())
			if marshalErr != nil {
				return fmt.Errorf("marshal heuristics: %w", marshalErr)
			}

			writeErr := os.WriteFile(configFileName, data, configFilePerm)
			if writeErr != nil {
				return fmt.Errorf("write config: %w", writeErr)
			}

			fmt.Fprintf(cobraCmd.OutOrStdout(), "Wrote %s\n", configFileName)

			return nil
		},
	}
}

func configShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective heuristics as YAML",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			heur, loadErr := heuristics.Load(configPath)
			if loadErr != nil {
				return loadErr
			}

			data, marshalErr := yaml.Marshal(heur)
			if marshalErr != nil {
				return fmt.Errorf("marshal heuristics: %w", marshalErr)
			}

			fmt.Fprint(cobraCmd.OutOrStdout(), string(data))

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "heuristics config file")

	return cmd
}
