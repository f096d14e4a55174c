package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrValidationFailure
	ErrParseFailure
	ErrContractViolation
	ErrUnknownCommand
	ErrMisuse
	ErrInvalidConfigKey
	ErrFailedConfigPath
)

var kindNames = map[ErrorKind]string{
	ErrUnknown:           "unknown",
	ErrInvalidFlag:       "invalid flag",
	ErrMissingArgument:   "missing argument",
	ErrValidationFailure: "validation failure",
	ErrParseFailure:      "parse failure",
	ErrContractViolation: "contract violation",
	ErrUnknownCommand:    "unknown command",
	ErrMisuse:            "misuse",
	ErrInvalidConfigKey:  "invalid config key",
	ErrFailedConfigPath:  "failed config path",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Exit codes:
//
//	Exit 1: Programmer/environment errors
//	  - Unknown errors
//	  - Contract violations (a parser or executor broke its contract)
//	  - Misuse of the argument engine
//	  - Failed config path
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Validation failure
//	  - Parse failure
//	  - Unknown command
//	  - Invalid config key
var exitCodes = map[ErrorKind]int{
	ErrUnknown:           1,
	ErrInvalidFlag:       2,
	ErrMissingArgument:   2,
	ErrValidationFailure: 2,
	ErrParseFailure:      2,
	ErrContractViolation: 1,
	ErrUnknownCommand:    2,
	ErrMisuse:            1,
	ErrInvalidConfigKey:  2,
	ErrFailedConfigPath:  1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // overrides the code derived from Kind when non-zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	return exitCode(e.Kind)
}

func exitCode(kind ErrorKind) int {
	if code, ok := exitCodes[kind]; ok {
		return code
	}
	return 1
}

// Is matches any *Error of the same kind, so errors.Is(err, &Error{Kind: k}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
