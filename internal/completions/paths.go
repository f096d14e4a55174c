package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceInstructions returns the line that loads the script of shell for bin.
func SourceInstructions(shell Shell, bin string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions fish | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns where a script for bin would be auto-loaded from,
// or "" when shell has no such directory.
func AutoInstallPath(shell Shell, bin string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	switch shell {
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", bin+".fish")
	case ShellBash:
		return filepath.Join(home, ".local", "share", "bash-completion", "completions", bin)
	default:
		return ""
	}
}
