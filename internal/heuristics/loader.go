package heuristics

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".blastscope"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for blastscope settings.
const envPrefix = "BLASTSCOPE"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load reads heuristics from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// A missing config file is not an error; the built-in defaults are used.
// A malformed config file or a failed validation is an error.
func Load(configPath string) (*Heuristics, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil && !isMissingConfig(readErr, configPath) {
		return nil, fmt.Errorf("read heuristics: %w", readErr)
	}

	var heur Heuristics

	unmarshalErr := viperCfg.Unmarshal(&heur)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal heuristics: %w", unmarshalErr)
	}

	validateErr := heur.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate heuristics: %w", validateErr)
	}

	return &heur, nil
}

// isMissingConfig reports whether readErr means the config file is absent.
// Viper only returns ConfigFileNotFoundError for search-path lookups; an
// explicit path that does not exist surfaces as a plain fs error.
func isMissingConfig(readErr error, configPath string) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(readErr, &notFound) {
		return true
	}

	return configPath != "" && errors.Is(readErr, os.ErrNotExist)
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("risk_weights.function_changes", DefaultFunctionChangeWeight)
	viperCfg.SetDefault("risk_weights.class_changes", DefaultClassChangeWeight)
	viperCfg.SetDefault("risk_weights.import_changes", DefaultImportChangeWeight)
	viperCfg.SetDefault("risk_weights.export_changes", DefaultExportChangeWeight)

	viperCfg.SetDefault("impact_multipliers.core_modules", DefaultCoreMultiplier)
	viperCfg.SetDefault("impact_multipliers.utility_modules", DefaultUtilityMultiplier)
	viperCfg.SetDefault("impact_multipliers.test_modules", DefaultTestMultiplier)

	viperCfg.SetDefault("risk_thresholds.low", DefaultLowThreshold)
	viperCfg.SetDefault("risk_thresholds.medium", DefaultMediumThreshold)
	viperCfg.SetDefault("risk_thresholds.high", DefaultHighThreshold)
}
