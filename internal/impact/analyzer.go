package impact

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/blastscope/blastscope/internal/heuristics"
)

// defaultChangeWeight is the score added for an unrecognized node type.
const defaultChangeWeight = 0.5

// nanosPerSecond converts a nanosecond count to epoch seconds.
const nanosPerSecond = 1e9

// changeKeywords lists node-type keywords in classification priority order.
// Classification lowercases the node type and takes the first keyword it
// contains; only that match contributes a weight.
var changeKeywords = []string{"function", "class", "import", "export"}

// Module category names used by multiplier adjustment.
const (
	CategoryCore    = "core"
	CategoryUtility = "utility"
	CategoryTest    = "test"
)

// categoryIndicators maps each category to its path keywords. A path is
// classified by the first category, in categoryOrder, with any keyword
// contained in the lowercased path.
var categoryIndicators = map[string][]string{
	CategoryCore:    {"engine", "core", "main", "index", "app"},
	CategoryUtility: {"util", "helper", "common", "shared"},
	CategoryTest:    {"test", "spec", "__tests__"},
}

// categoryOrder fixes the category matching priority.
var categoryOrder = []string{CategoryCore, CategoryUtility, CategoryTest}

// Analyzer scores change sets against a fixed set of heuristics.
// Analyze is pure and safe for concurrent use.
type Analyzer struct {
	heur   *heuristics.Heuristics
	tracer trace.Tracer
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTracer sets the tracer used for per-stage spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(a *Analyzer) {
		a.tracer = tracer
	}
}

// New creates an Analyzer bound to the given heuristics.
func New(heur *heuristics.Heuristics, opts ...Option) *Analyzer {
	analyzer := &Analyzer{
		heur:   heur,
		tracer: noop.NewTracerProvider().Tracer(""),
	}

	for _, opt := range opts {
		opt(analyzer)
	}

	return analyzer
}

// Analyze computes the impact report for a change set.
func (a *Analyzer) Analyze(
	ctx context.Context, diffs []ASTDiff, graph DependencyGraph, changedFiles []string,
) Report {
	ctx, span := a.tracer.Start(ctx, "impact.analyze")
	defer span.End()

	score := a.scoreChanges(ctx, diffs)
	impacted := a.findImpacted(ctx, graph, changedFiles)
	adjusted := a.applyMultipliers(ctx, score, changedFiles, impacted)
	risk := a.classifyRisk(adjusted)

	span.SetAttributes(
		attribute.Float64("impact.score", adjusted),
		attribute.String("impact.risk", risk),
		attribute.Int("impact.modules", len(impacted)),
	)

	return Report{
		Changed:   extractEntities(diffs),
		Impacted:  impacted,
		Risk:      risk,
		Summary:   summarize(diffs, impacted, risk),
		Timestamp: float64(time.Now().UnixNano()) / nanosPerSecond,
	}
}

// scoreChanges sums the weight of every change across all diffs.
func (a *Analyzer) scoreChanges(ctx context.Context, diffs []ASTDiff) float64 {
	_, span := a.tracer.Start(ctx, "impact.score")
	defer span.End()

	score := 0.0

	for _, diff := range diffs {
		for _, change := range diff.Changes {
			score += a.changeWeight(change.NodeType)
		}
	}

	return score
}

// changeWeight resolves the weight for a node type. The first keyword
// contained in the lowercased type wins; unmatched types get the default.
func (a *Analyzer) changeWeight(nodeType string) float64 {
	kind, ok := ChangeKind(nodeType)
	if !ok {
		return defaultChangeWeight
	}

	return a.keywordWeight(kind)
}

// ChangeKind classifies a node type by the first change keyword contained
// in its lowercased form. The second return is false for unmatched types.
func ChangeKind(nodeType string) (string, bool) {
	lowered := strings.ToLower(nodeType)

	for _, keyword := range changeKeywords {
		if strings.Contains(lowered, keyword) {
			return keyword, true
		}
	}

	return "", false
}

func (a *Analyzer) keywordWeight(keyword string) float64 {
	switch keyword {
	case "function":
		return a.heur.RiskWeights.FunctionChanges
	case "class":
		return a.heur.RiskWeights.ClassChanges
	case "import":
		return a.heur.RiskWeights.ImportChanges
	case "export":
		return a.heur.RiskWeights.ExportChanges
	default:
		return defaultChangeWeight
	}
}

// findImpacted returns the sorted set of modules whose dependency lists
// contain at least one changed file.
func (a *Analyzer) findImpacted(
	ctx context.Context, graph DependencyGraph, changedFiles []string,
) []string {
	_, span := a.tracer.Start(ctx, "impact.discover")
	defer span.End()

	changedSet := make(map[string]bool, len(changedFiles))
	for _, file := range changedFiles {
		changedSet[file] = true
	}

	impacted := make([]string, 0, len(graph.Edges))

	for module, dependencies := range graph.Edges {
		for _, dependency := range dependencies {
			if changedSet[dependency] {
				impacted = append(impacted, module)

				break
			}
		}
	}

	sort.Strings(impacted)

	return impacted
}

// applyMultipliers compounds the category multiplier of every qualifying
// path over the base score. Changed files and impacted modules are
// concatenated without deduplication: a path present in both applies its
// multiplier twice.
func (a *Analyzer) applyMultipliers(
	ctx context.Context, baseScore float64, changedFiles, impacted []string,
) float64 {
	_, span := a.tracer.Start(ctx, "impact.adjust")
	defer span.End()

	adjusted := baseScore

	allPaths := make([]string, 0, len(changedFiles)+len(impacted))
	allPaths = append(allPaths, changedFiles...)
	allPaths = append(allPaths, impacted...)

	for _, path := range allPaths {
		category, ok := Category(path)
		if !ok {
			continue
		}

		adjusted *= a.categoryMultiplier(category)
	}

	return adjusted
}

func (a *Analyzer) categoryMultiplier(category string) float64 {
	switch category {
	case CategoryCore:
		return a.heur.ImpactMultipliers.CoreModules
	case CategoryUtility:
		return a.heur.ImpactMultipliers.UtilityModules
	case CategoryTest:
		return a.heur.ImpactMultipliers.TestModules
	default:
		return 1.0
	}
}

// Category classifies a file path by the first matching category keyword
// set. The second return is false when no category matches.
func Category(path string) (string, bool) {
	lowered := strings.ToLower(path)

	for _, category := range categoryOrder {
		for _, indicator := range categoryIndicators[category] {
			if strings.Contains(lowered, indicator) {
				return category, true
			}
		}
	}

	return "", false
}

// classifyRisk maps an adjusted score to a discrete risk level. Only the
// low and medium boundaries are compared; the high threshold is configured
// but intentionally unused here.
func (a *Analyzer) classifyRisk(score float64) string {
	switch {
	case score < a.heur.RiskThresholds.Low:
		return RiskLow
	case score < a.heur.RiskThresholds.Medium:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// summarize builds the fixed-form one-line digest.
func summarize(diffs []ASTDiff, impacted []string, risk string) string {
	changeCount := 0
	for _, diff := range diffs {
		changeCount += len(diff.Changes)
	}

	return fmt.Sprintf("%d changes detected, %d modules impacted, risk: %s", changeCount, len(impacted), risk)
}

// extractEntities lists "<node_type>.<name>" for every named change,
// preserving input order and the raw node type casing.
func extractEntities(diffs []ASTDiff) []string {
	entities := []string{}

	for _, diff := range diffs {
		for _, change := range diff.Changes {
			if change.Name == "" {
				continue
			}

			entities = append(entities, change.NodeType+"."+change.Name)
		}
	}

	return entities
}
