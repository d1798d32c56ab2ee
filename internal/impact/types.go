// Package impact computes the blast radius and risk level of a set of code
// changes from AST-level change descriptors, a module dependency graph, and
// a changed-file list.
package impact

// Change describes a single structural modification to a source entity.
// NodeType is free-form text classified by case-insensitive substring match.
type Change struct {
	NodeType string `json:"node_type"`
	Name     string `json:"name,omitempty"`
}

// ASTDiff is the ordered sequence of changes for one source unit.
type ASTDiff struct {
	Changes []Change `json:"changes"`
}

// DependencyGraph maps each module path to the set of module paths it
// depends on. An edge A -> B means A depends on B.
type DependencyGraph struct {
	Edges map[string][]string `json:"edges"`
}

// Risk levels produced by classification.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Report is the result of a single analysis.
type Report struct {
	// Changed lists "<node_type>.<name>" for every named change, in input order.
	Changed []string `json:"changed"`

	// Impacted lists the transitively-affected module paths, sorted.
	Impacted []string `json:"impacted"`

	// Risk is one of RiskLow, RiskMedium, RiskHigh.
	Risk string `json:"risk"`

	// Summary is a one-line human-readable digest.
	Summary string `json:"summary"`

	// Timestamp is the analysis time in epoch seconds.
	Timestamp float64 `json:"timestamp"`
}
