// Package heuristics holds the tunable weights, multipliers, and thresholds
// that drive impact scoring, plus the loader that reads them from
// configuration with a built-in fallback.
package heuristics

import "errors"

// Heuristics is the full set of scoring knobs.
// Field tags use mapstructure for viper unmarshalling.
type Heuristics struct {
	RiskWeights       RiskWeights       `mapstructure:"risk_weights"       yaml:"risk_weights"`
	ImpactMultipliers ImpactMultipliers `mapstructure:"impact_multipliers" yaml:"impact_multipliers"`
	RiskThresholds    RiskThresholds    `mapstructure:"risk_thresholds"    yaml:"risk_thresholds"`
}

// RiskWeights holds the per-change-kind score contributions.
type RiskWeights struct {
	FunctionChanges float64 `mapstructure:"function_changes" yaml:"function_changes"`
	ClassChanges    float64 `mapstructure:"class_changes"    yaml:"class_changes"`
	ImportChanges   float64 `mapstructure:"import_changes"   yaml:"import_changes"`
	ExportChanges   float64 `mapstructure:"export_changes"   yaml:"export_changes"`
}

// ImpactMultipliers holds the per-module-category score multipliers.
type ImpactMultipliers struct {
	CoreModules    float64 `mapstructure:"core_modules"    yaml:"core_modules"`
	UtilityModules float64 `mapstructure:"utility_modules" yaml:"utility_modules"`
	TestModules    float64 `mapstructure:"test_modules"    yaml:"test_modules"`
}

// RiskThresholds holds the ascending score boundaries for risk levels.
type RiskThresholds struct {
	Low    float64 `mapstructure:"low"    yaml:"low"`
	Medium float64 `mapstructure:"medium" yaml:"medium"`
	High   float64 `mapstructure:"high"   yaml:"high"`
}

// Sentinel errors for heuristics validation.
var (
	// ErrInvalidFunctionWeight indicates the function change weight is not positive.
	ErrInvalidFunctionWeight = errors.New("risk_weights.function_changes must be positive")
	// ErrInvalidClassWeight indicates the class change weight is not positive.
	ErrInvalidClassWeight = errors.New("risk_weights.class_changes must be positive")
	// ErrInvalidImportWeight indicates the import change weight is not positive.
	ErrInvalidImportWeight = errors.New("risk_weights.import_changes must be positive")
	// ErrInvalidExportWeight indicates the export change weight is not positive.
	ErrInvalidExportWeight = errors.New("risk_weights.export_changes must be positive")
	// ErrInvalidCoreMultiplier indicates the core module multiplier is not positive.
	ErrInvalidCoreMultiplier = errors.New("impact_multipliers.core_modules must be positive")
	// ErrInvalidUtilityMultiplier indicates the utility module multiplier is not positive.
	ErrInvalidUtilityMultiplier = errors.New("impact_multipliers.utility_modules must be positive")
	// ErrInvalidTestMultiplier indicates the test module multiplier is not positive.
	ErrInvalidTestMultiplier = errors.New("impact_multipliers.test_modules must be positive")
	// ErrInvalidLowThreshold indicates the low risk threshold is not positive.
	ErrInvalidLowThreshold = errors.New("risk_thresholds.low must be positive")
	// ErrThresholdsNotAscending indicates the thresholds are not strictly increasing.
	ErrThresholdsNotAscending = errors.New("risk_thresholds must be strictly increasing (low < medium < high)")
)

// Validate checks heuristics invariants and returns the first error found.
func (h *Heuristics) Validate() error {
	weightsErr := h.validateWeights()
	if weightsErr != nil {
		return weightsErr
	}

	multipliersErr := h.validateMultipliers()
	if multipliersErr != nil {
		return multipliersErr
	}

	return h.validateThresholds()
}

func (h *Heuristics) validateWeights() error {
	if h.RiskWeights.FunctionChanges <= 0 {
		return ErrInvalidFunctionWeight
	}

	if h.RiskWeights.ClassChanges <= 0 {
		return ErrInvalidClassWeight
	}

	if h.RiskWeights.ImportChanges <= 0 {
		return ErrInvalidImportWeight
	}

	if h.RiskWeights.ExportChanges <= 0 {
		return ErrInvalidExportWeight
	}

	return nil
}

func (h *Heuristics) validateMultipliers() error {
	if h.ImpactMultipliers.CoreModules <= 0 {
		return ErrInvalidCoreMultiplier
	}

	if h.ImpactMultipliers.UtilityModules <= 0 {
		return ErrInvalidUtilityMultiplier
	}

	if h.ImpactMultipliers.TestModules <= 0 {
		return ErrInvalidTestMultiplier
	}

	return nil
}

func (h *Heuristics) validateThresholds() error {
	if h.RiskThresholds.Low <= 0 {
		return ErrInvalidLowThreshold
	}

	if h.RiskThresholds.Low >= h.RiskThresholds.Medium || h.RiskThresholds.Medium >= h.RiskThresholds.High {
		return ErrThresholdsNotAscending
	}

	return nil
}
