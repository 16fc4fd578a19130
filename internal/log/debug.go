// Package log provides the debug logger for diff-folders.
//
// Messages are buffered in memory until a log file is configured, so that
// anything logged while parsing flags and config is not lost. Setting an empty
// path drops the buffer and discards further messages.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// DebugLogger handles debug logging to file and/or buffering.
// It implements io.Writer and is the output of the logrus logger.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	globalDebugLogger = &DebugLogger{}
	logger            = newLogger(globalDebugLogger)
)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&lineFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Write implements io.Writer.
// It writes to the file if set, otherwise appends to the buffer.
func (l *DebugLogger) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.discard {
		return len(p), nil
	}

	if l.file != nil {
		n, err = l.file.Write(p)
		// Sync errors are not critical for logging.
		_ = l.file.Sync()
		return n, err
	}

	// p might be reused by the caller
	b := make([]byte, len(p))
	copy(b, p)
	l.buffer = append(l.buffer, b...)
	return len(p), nil
}

// DefaultPath returns the log file used when none is configured, under the
// user cache directory.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "diff-folders", "diff-folders.log"), nil
}

// SetFile sets the debug log file path. Creates the file and its parent
// directory if they don't exist, appending otherwise.
// If path is empty, discards all buffered logs and future logs.
func SetFile(path string) error {
	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()

	if globalDebugLogger.file != nil {
		_ = globalDebugLogger.file.Close()
		globalDebugLogger.file = nil
	}

	if path == "" {
		globalDebugLogger.discard = true
		globalDebugLogger.buffer = nil
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		globalDebugLogger.discard = true
		globalDebugLogger.buffer = nil
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		globalDebugLogger.discard = true
		globalDebugLogger.buffer = nil
		return err
	}

	globalDebugLogger.file = f
	globalDebugLogger.discard = false

	if len(globalDebugLogger.buffer) > 0 {
		_, _ = f.Write(globalDebugLogger.buffer)
		_ = f.Sync()
		globalDebugLogger.buffer = nil
	}

	return nil
}

// SetDebug toggles debug level messages.
func SetDebug(enabled bool) {
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
		return
	}
	logger.SetLevel(logrus.InfoLevel)
}

// WithField returns an entry carrying a structured field.
func WithField(key string, value any) *logrus.Entry {
	return logger.WithField(key, value)
}

// Debugf logs a debug message.
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

// Warnf logs a warning.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Errorf logs an error.
func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

// Close closes the debug log file if open.
func Close() error {
	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()

	if globalDebugLogger.file == nil {
		return nil
	}

	err := globalDebugLogger.file.Close()
	globalDebugLogger.file = nil
	return err
}

// lineFormatter renders one entry per line: timestamp, level, message, fields.
type lineFormatter struct{}

// Format implements logrus.Formatter.
func (f *lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Time.Format("2006-01-02 15:04:05.000000"))
	level := entry.Level.String()
	if level == "warning" {
		level = "warn"
	}
	fmt.Fprintf(&b, " [%s] %s", strings.ToUpper(level), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}
