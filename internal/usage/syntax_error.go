package usage

import "fmt"

// SyntaxError is raised when a command's arguments could not be resolved.
// Syntax is the composed syntax line of the command that failed, so it can
// be shown to the user next to the Reason.
type SyntaxError struct {
	Kind   ErrorKind
	Syntax string
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Syntax == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s\nusage: %s", e.Reason, e.Syntax)
}

// GetExitCode returns the exit code derived from Kind.
func (e *SyntaxError) GetExitCode() int {
	return exitCode(e.Kind)
}

var _ error = (*SyntaxError)(nil)
