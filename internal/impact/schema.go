package impact

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

// Schema file names under schema/.
const (
	schemaASTDiffs     = "schema/ast_diffs.schema.json"
	schemaDepGraph     = "schema/dependency_graph.schema.json"
	schemaChangedFiles = "schema/changed_files.schema.json"
)

// maxSchemaErrors caps how many violations a schema error message lists.
const maxSchemaErrors = 3

// ErrSchema indicates input JSON that parsed but does not match the
// expected shape.
var ErrSchema = errors.New("input does not match schema")

// DecodeDiffs parses and validates the AST diff list input.
func DecodeDiffs(data []byte) ([]ASTDiff, error) {
	validateErr := validateAgainst(schemaASTDiffs, data, "ast diffs")
	if validateErr != nil {
		return nil, validateErr
	}

	var diffs []ASTDiff

	unmarshalErr := json.Unmarshal(data, &diffs)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("parse ast diffs: %w", unmarshalErr)
	}

	return diffs, nil
}

// DecodeGraph parses and validates the dependency graph input.
func DecodeGraph(data []byte) (DependencyGraph, error) {
	validateErr := validateAgainst(schemaDepGraph, data, "dependency graph")
	if validateErr != nil {
		return DependencyGraph{}, validateErr
	}

	var graph DependencyGraph

	unmarshalErr := json.Unmarshal(data, &graph)
	if unmarshalErr != nil {
		return DependencyGraph{}, fmt.Errorf("parse dependency graph: %w", unmarshalErr)
	}

	return graph, nil
}

// DecodeChangedFiles parses and validates the changed-file list input.
func DecodeChangedFiles(data []byte) ([]string, error) {
	validateErr := validateAgainst(schemaChangedFiles, data, "changed files")
	if validateErr != nil {
		return nil, validateErr
	}

	var files []string

	unmarshalErr := json.Unmarshal(data, &files)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("parse changed files: %w", unmarshalErr)
	}

	return files, nil
}

// validateAgainst checks raw JSON against an embedded schema. Invalid JSON
// and shape violations are reported distinctly so the CLI can tell a parse
// failure from a semantic one.
func validateAgainst(schemaName string, data []byte, label string) error {
	var inputData any

	decodeErr := json.Unmarshal(data, &inputData)
	if decodeErr != nil {
		return fmt.Errorf("parse %s: %w", label, decodeErr)
	}

	schemaBytes, readErr := schemaFS.ReadFile(schemaName)
	if readErr != nil {
		return fmt.Errorf("read embedded schema %s: %w", schemaName, readErr)
	}

	result, validateErr := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewGoLoader(inputData),
	)
	if validateErr != nil {
		return fmt.Errorf("validate %s: %w", label, validateErr)
	}

	if result.Valid() {
		return nil
	}

	return fmt.Errorf("validate %s: %w: %s", label, ErrSchema, describeViolations(result.Errors()))
}

func describeViolations(violations []gojsonschema.ResultError) string {
	descriptions := make([]string, 0, maxSchemaErrors)

	for _, violation := range violations {
		if len(descriptions) == maxSchemaErrors {
			descriptions = append(descriptions, fmt.Sprintf("and %d more", len(violations)-maxSchemaErrors))

			break
		}

		descriptions = append(descriptions, violation.Field()+": "+violation.Description())
	}

	return strings.Join(descriptions, "; ")
}
