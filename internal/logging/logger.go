// Package logging provides the file-based debug log for a guessing session.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DebugLogger appends timestamped lines to a session log file.
// A logger without a file is a no-op.
type DebugLogger struct {
	mu        sync.Mutex
	file      *os.File
	sessionID string
}

// NewDebugLogger creates a logger appending to logPath.
// If logPath is empty, returns a no-op logger.
// Creates parent directories if they don't exist.
func NewDebugLogger(logPath string) (*DebugLogger, error) {
	sessionID := uuid.New().String()[:8]
	if logPath == "" {
		return &DebugLogger{sessionID: sessionID}, nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := &DebugLogger{file: f, sessionID: sessionID}
	logger.Log("=== Session %s started at %s ===", sessionID, time.Now().Format(time.RFC3339))

	return logger, nil
}

// NopLogger returns a no-op logger.
func NopLogger() *DebugLogger {
	return &DebugLogger{}
}

// SessionID returns the short identifier written in the log header.
func (l *DebugLogger) SessionID() string {
	if l == nil {
		return ""
	}
	return l.sessionID
}

// Log writes a timestamped message to the debug log.
// If the logger is nil or has no file, this is a no-op.
func (l *DebugLogger) Log(format string, args ...interface{}) {
	if l == nil || l.file == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.file, "[%s] [%s] %s\n", timestamp, l.sessionID, msg)
	l.file.Sync()
}

// Close closes the log file.
// Safe to call on nil logger or logger without file.
func (l *DebugLogger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.file.Close()
}
