package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/footprint-tools/argot/internal/domain"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a log_level setting to a Level, ignoring case.
// Anything unrecognized means LevelWarn.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger writes leveled messages to a file. It is safe for concurrent use.
// Loggers derived with Named share the file of their parent.
type Logger struct {
	sink     *sink
	minLevel Level
	scope    string
}

type sink struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

// SetDefault installs l as the global logger. A nil l uninstalls it.
func SetDefault(l *Logger) {
	defaultLoggerMu.Lock()
	defaultLogger = l
	defaultLoggerMu.Unlock()
}

// New creates a logger appending to logPath.
func New(logPath string, minLevel Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	// Tighten permissions of an existing file before opening it.
	if info, err := os.Stat(logPath); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(logPath, 0600); err != nil {
			return nil, fmt.Errorf("chmod existing log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		sink:     &sink{file: file, enabled: true},
		minLevel: minLevel,
	}, nil
}

// Named returns a logger that prefixes messages with scope. Nested
// scopes are joined with a dot.
func (l *Logger) Named(scope string) *Logger {
	if l == nil {
		return nil
	}
	if l.scope != "" {
		scope = l.scope + "." + scope
	}
	return &Logger{sink: l.sink, minLevel: l.minLevel, scope: scope}
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.sink == nil {
		return nil
	}
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.file == nil {
		return nil
	}
	err := l.sink.file.Close()
	l.sink.file = nil
	return err
}

// SetEnabled turns logging on or off for l and every logger derived from it.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil || l.sink == nil {
		return
	}
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.enabled = enabled
}

// log formats and writes one line if level passes the filter.
func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || l.sink == nil || level < l.minLevel {
		return
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if !l.sink.enabled || l.sink.file == nil {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	label := level.String()
	if l.scope != "" {
		label += " " + l.scope
	}
	logLine := fmt.Sprintf("[%s] %s: %s\n", timestamp, label, strings.TrimRight(message, "\n"))

	if _, err := l.sink.file.WriteString(logLine); err != nil {
		// The file is unusable; surface errors on stderr.
		if level >= LevelError {
			fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
		}
	}
}

func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Writer returns an io.Writer that logs each write at level.
func (l *Logger) Writer(level Level) io.Writer {
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger *Logger
	level  Level
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.logger.log(w.level, "%s", string(p))
	return len(p), nil
}

// global returns the logger installed with SetDefault. The package-level
// helpers below are no-ops until one is installed, since a nil *Logger
// discards everything.
func global() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

func Debug(format string, args ...any) { global().Debug(format, args...) }
func Info(format string, args ...any)  { global().Info(format, args...) }
func Warn(format string, args ...any)  { global().Warn(format, args...) }
func Error(format string, args ...any) { global().Error(format, args...) }

// Close closes the global logger.
func Close() error { return global().Close() }

// GetLogger returns the global logger, or nil before SetDefault.
func GetLogger() *Logger { return global() }

// NopLogger discards everything. The app falls back to it when the log
// file cannot be opened or enable_log is false.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var (
	_ domain.Logger = (*Logger)(nil)
	_ domain.Logger = NopLogger{}
)
