package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "argot"

// AppDataDir returns the argot directory under os.UserConfigDir, creating
// it with mode 0700. It holds the log file and the history database.
// Without a usable config dir it returns ".".
func AppDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(base, appDirName)
	_ = os.MkdirAll(dir, 0700)
	return dir
}

// ConfigFilePath returns ~/.argotrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".argotrc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "argot.log")
}

// DatabasePath returns the path to the invocation history database.
func DatabasePath() string {
	return filepath.Join(AppDataDir(), "history.db")
}
