package monitor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blastscope/blastscope/internal/monitor"
)

func TestSessionLog_AppendCreatesDirAndAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "session.log")
	sessionLog := monitor.NewSessionLog(path)

	require.NoError(t, sessionLog.Append("first event"))
	require.NoError(t, sessionLog.Append("second event"))

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "first event\nsecond event\n", string(data))
}

func TestSessionLog_AppendFailsOnUnwritablePath(t *testing.T) {
	t.Parallel()

	// The parent "directory" is a regular file, so MkdirAll must fail.
	parent := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o600))

	sessionLog := monitor.NewSessionLog(filepath.Join(parent, "session.log"))

	assert.Error(t, sessionLog.Append("event"))
}
