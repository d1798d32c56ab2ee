package monitor

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSessionLogPath is the append-only pause event log location,
// relative to the working directory.
const DefaultSessionLogPath = ".blastscope/session.log"

// Session log file permissions.
const (
	sessionLogDirPerm  = 0o750
	sessionLogFilePerm = 0o644
)

// SessionLog appends single-line events to a local text file. Callers that
// treat the log as advisory discard the returned error explicitly.
type SessionLog struct {
	path string
}

// NewSessionLog creates a SessionLog writing to path.
func NewSessionLog(path string) *SessionLog {
	return &SessionLog{path: path}
}

// Append writes one line to the log, creating the parent directory and the
// file as needed.
func (l *SessionLog) Append(line string) error {
	mkErr := os.MkdirAll(filepath.Dir(l.path), sessionLogDirPerm)
	if mkErr != nil {
		return fmt.Errorf("create session log dir: %w", mkErr)
	}

	file, openErr := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, sessionLogFilePerm)
	if openErr != nil {
		return fmt.Errorf("open session log: %w", openErr)
	}

	defer file.Close()

	_, writeErr := file.WriteString(line + "\n")
	if writeErr != nil {
		return fmt.Errorf("append session log: %w", writeErr)
	}

	return nil
}
