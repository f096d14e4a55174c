package completions

import (
	"os"
	"path/filepath"
)

// DefaultBinary is used when the executable cannot be resolved.
const DefaultBinary = "argot"

// Binary returns the resolved path and base name of the running executable.
func Binary() (path, name string) {
	exe, err := os.Executable()
	if err != nil {
		if len(os.Args) == 0 || os.Args[0] == "" {
			return DefaultBinary, DefaultBinary
		}
		exe = os.Args[0]
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	name = filepath.Base(exe)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return DefaultBinary, DefaultBinary
	}
	return exe, name
}
