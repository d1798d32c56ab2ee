package heuristics

// Built-in default risk weights.
const (
	// DefaultFunctionChangeWeight is the score added per function change.
	DefaultFunctionChangeWeight = 1.0

	// DefaultClassChangeWeight is the score added per class change.
	DefaultClassChangeWeight = 1.5

	// DefaultImportChangeWeight is the score added per import change.
	DefaultImportChangeWeight = 2.0

	// DefaultExportChangeWeight is the score added per export change.
	DefaultExportChangeWeight = 2.5
)

// Built-in default impact multipliers.
const (
	// DefaultCoreMultiplier scales the score for core module involvement.
	DefaultCoreMultiplier = 2.0

	// DefaultUtilityMultiplier scales the score for utility module involvement.
	DefaultUtilityMultiplier = 1.2

	// DefaultTestMultiplier scales the score for test module involvement.
	DefaultTestMultiplier = 0.5
)

// Built-in default risk thresholds.
const (
	// DefaultLowThreshold is the score below which risk is low.
	DefaultLowThreshold = 2.0

	// DefaultMediumThreshold is the score below which risk is medium.
	DefaultMediumThreshold = 5.0

	// DefaultHighThreshold is loaded and validated but never compared during
	// classification; scores at or above the medium threshold are high.
	DefaultHighThreshold = 10.0
)

// Default returns the built-in heuristics used when no configuration exists.
func Default() *Heuristics {
	return &Heuristics{
		RiskWeights: RiskWeights{
			FunctionChanges: DefaultFunctionChangeWeight,
			ClassChanges:    DefaultClassChangeWeight,
			ImportChanges:   DefaultImportChangeWeight,
			ExportChanges:   DefaultExportChangeWeight,
		},
		ImpactMultipliers: ImpactMultipliers{
			CoreModules:    DefaultCoreMultiplier,
			UtilityModules: DefaultUtilityMultiplier,
			TestModules:    DefaultTestMultiplier,
		},
		RiskThresholds: RiskThresholds{
			Low:    DefaultLowThreshold,
			Medium: DefaultMediumThreshold,
			High:   DefaultHighThreshold,
		},
	}
}
