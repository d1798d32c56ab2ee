package impact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blastscope/blastscope/internal/impact"
)

const (
	validDiffsJSON = `[{"changes":[{"node_type":"FunctionDeclaration","name":"foo"},{"node_type":"ImportSpecifier"}]}]`
	validGraphJSON = `{"edges":{"a.py":["b.py","c.py"],"d.py":[]}}`
	validFilesJSON = `["src/foo.py","src/core/engine.py"]`
)

func TestDecodeDiffs_Valid(t *testing.T) {
	t.Parallel()

	diffs, err := impact.DecodeDiffs([]byte(validDiffsJSON))

	require.NoError(t, err)
	require.Len(t, diffs, 1)
	require.Len(t, diffs[0].Changes, 2)
	assert.Equal(t, "FunctionDeclaration", diffs[0].Changes[0].NodeType)
	assert.Equal(t, "foo", diffs[0].Changes[0].Name)
	assert.Empty(t, diffs[0].Changes[1].Name)
}

func TestDecodeDiffs_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := impact.DecodeDiffs([]byte(`[{`))

	require.Error(t, err)
	assert.NotErrorIs(t, err, impact.ErrSchema)
	assert.Contains(t, err.Error(), "parse ast diffs")
}

func TestDecodeDiffs_MissingChangesKey(t *testing.T) {
	t.Parallel()

	_, err := impact.DecodeDiffs([]byte(`[{"renames":[]}]`))

	require.ErrorIs(t, err, impact.ErrSchema)
}

func TestDecodeDiffs_MissingNodeType(t *testing.T) {
	t.Parallel()

	_, err := impact.DecodeDiffs([]byte(`[{"changes":[{"name":"foo"}]}]`))

	require.ErrorIs(t, err, impact.ErrSchema)
}

func TestDecodeGraph_Valid(t *testing.T) {
	t.Parallel()

	graph, err := impact.DecodeGraph([]byte(validGraphJSON))

	require.NoError(t, err)
	assert.Equal(t, []string{"b.py", "c.py"}, graph.Edges["a.py"])
	assert.Empty(t, graph.Edges["d.py"])
}

func TestDecodeGraph_MissingEdges(t *testing.T) {
	t.Parallel()

	_, err := impact.DecodeGraph([]byte(`{"nodes":[]}`))

	require.ErrorIs(t, err, impact.ErrSchema)
}

func TestDecodeGraph_WrongEdgeType(t *testing.T) {
	t.Parallel()

	_, err := impact.DecodeGraph([]byte(`{"edges":{"a.py":"b.py"}}`))

	require.ErrorIs(t, err, impact.ErrSchema)
}

func TestDecodeChangedFiles_Valid(t *testing.T) {
	t.Parallel()

	files, err := impact.DecodeChangedFiles([]byte(validFilesJSON))

	require.NoError(t, err)
	assert.Equal(t, []string{"src/foo.py", "src/core/engine.py"}, files)
}

func TestDecodeChangedFiles_NotAnArrayOfStrings(t *testing.T) {
	t.Parallel()

	_, err := impact.DecodeChangedFiles([]byte(`[1,2,3]`))

	require.ErrorIs(t, err, impact.ErrSchema)
}
