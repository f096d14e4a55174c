// Package completions generates shell scripts that delegate completion
// to the binary through its --complete flag.
package completions

import (
	"fmt"
	"strings"
)

// Shell is a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells in display order.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ShellNames returns Shells as strings.
func ShellNames() []string {
	out := make([]string, len(Shells))
	for i, s := range Shells {
		out[i] = string(s)
	}
	return out
}

// ParseShell maps a name to a Shell, ignoring case.
func ParseShell(name string) (Shell, error) {
	for _, s := range Shells {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unsupported shell: %s", name)
}
