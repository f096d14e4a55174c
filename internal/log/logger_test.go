package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, level Level) (*Logger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "test.log")
	logger, err := New(logPath, level)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestLogger_BasicLogging(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelDebug)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning %s", "message")
	logger.Error("error message")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "DEBUG: debug message")
	require.Contains(t, content, "INFO: info message")
	require.Contains(t, content, "WARN: warning message")
	require.Contains(t, content, "ERROR: error message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.NotContains(t, content, "DEBUG")
	require.NotContains(t, content, "INFO")
	require.Contains(t, content, "WARN: warning message")
	require.Contains(t, content, "ERROR: error message")
}

func TestLogger_Named(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelDebug)

	reg := logger.Named("registry")
	reg.Info("registered %d commands", 3)
	reg.Named("help").Debug("page 1")
	logger.Info("root")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "INFO registry: registered 3 commands")
	require.Contains(t, content, "DEBUG registry.help: page 1")
	require.Contains(t, content, "INFO: root")
}

func TestLogger_NamedSharesEnabled(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelInfo)
	child := logger.Named("shell")

	logger.SetEnabled(false)
	child.Info("hidden")
	logger.SetEnabled(true)
	child.Info("shown")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.NotContains(t, content, "hidden")
	require.Contains(t, content, "shown")
}

func TestLogger_FilePermissions(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelInfo)
	logger.Info("test message")
	require.NoError(t, logger.Close())

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLogger_TightensExistingPermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(logPath, nil, 0644))

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLogger_DirectoryPermissions(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := New(filepath.Join(logDir, "test.log"), LevelInfo)
	require.NoError(t, err)
	defer func() { _ = logger.Close() }()

	info, err := os.Stat(logDir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700)|os.ModeDir, info.Mode())
}

func TestLogger_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger1, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	logger1.Info("first message")
	require.NoError(t, logger1.Close())

	logger2, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	logger2.Info("second message")
	require.NoError(t, logger2.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "first message")
	require.Contains(t, content, "second message")
}

func TestLogger_WriteAfterClose(t *testing.T) {
	logger, _ := newTestLogger(t, LevelInfo)
	require.NoError(t, logger.Close())

	require.NotPanics(t, func() { logger.Error("late") })
	require.NoError(t, logger.Close())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"ERROR", LevelError},
		{"unknown", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(99).String())
}

func TestLogger_Writer(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelDebug)

	_, err := logger.Writer(LevelInfo).Write([]byte("message from writer\n"))
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	require.Contains(t, readLog(t, logPath), "INFO: message from writer\n")
}

func TestLogger_Nil(t *testing.T) {
	var logger *Logger
	require.NotPanics(t, func() {
		logger.SetEnabled(true)
		logger.Debug("test")
		logger.Error("test")
		require.Nil(t, logger.Named("x"))
	})
	require.NoError(t, logger.Close())
}

func TestGlobalLogger(t *testing.T) {
	saved := GetLogger()
	t.Cleanup(func() { SetDefault(saved) })

	SetDefault(nil)
	require.NotPanics(t, func() {
		Debug("test debug")
		Error("test error")
	})
	require.NoError(t, Close())
	require.Nil(t, GetLogger())

	logger, logPath := newTestLogger(t, LevelDebug)
	SetDefault(logger)
	require.Same(t, logger, GetLogger())

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	require.NoError(t, Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "debug message")
	require.Contains(t, content, "warn message")
}

func TestNew_MkdirAllError(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "afile")
	require.NoError(t, os.WriteFile(filePath, nil, 0600))

	_, err := New(filepath.Join(filePath, "subdir", "test.log"), LevelInfo)
	require.ErrorContains(t, err, "create log directory")
}

func TestNew_OpenFileError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root can write anywhere")
	}

	readOnlyDir := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.Mkdir(readOnlyDir, 0500))

	_, err := New(filepath.Join(readOnlyDir, "test.log"), LevelInfo)
	require.ErrorContains(t, err, "open log file")
}

func TestNopLogger(t *testing.T) {
	nop := NopLogger{}
	require.NotPanics(t, func() {
		nop.Debug("test %s", "debug")
		nop.Info("test %s", "info")
		nop.Warn("test %s", "warn")
		nop.Error("test %s", "error")
	})
	require.NoError(t, nop.Close())
}
