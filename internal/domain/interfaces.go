package domain

import (
	"io"
)

// HistoryStore defines operations for storing and retrieving invocations.
type HistoryStore interface {
	// Record appends an invocation to the history.
	Record(entry HistoryEntry) error

	// Recent returns up to limit invocations, newest first.
	Recent(limit int) ([]HistoryEntry, error)

	// Lines returns up to limit distinct command lines, oldest first,
	// ready to be walked by a line editor.
	Lines(limit int) ([]string, error)

	// Clear deletes every invocation and returns how many were removed.
	Clear() (int64, error)

	// Trim keeps the newest keep invocations and deletes the rest.
	Trim(keep int) (int64, error)

	// Close closes the store connection.
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string

	// Command styles a command name.
	Command(text string) string

	// Footer styles the footer of a help page.
	Footer(text string) string

	// Syntax styles a syntax line slot by slot.
	Syntax(line string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Store  HistoryStore
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler
}
