package usage

import (
	"fmt"
	"strings"
)

// MissingArgument is recorded when a required slot has no token and no default.
func MissingArgument(typename string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("expected %s; got nothing", typename),
	}
}

// ValidationFailure is recorded when a parsed value is rejected by its check.
// An empty label falls back to "invalid value".
func ValidationFailure(label, consumed string) *Error {
	if label == "" {
		label = "invalid value"
	}
	return &Error{
		Kind:    ErrValidationFailure,
		Message: fmt.Sprintf("%s: %s", label, consumed),
	}
}

// ParseFailure is what parsers return when a token cannot be converted.
func ParseFailure(format string, args ...any) *Error {
	return &Error{
		Kind:    ErrParseFailure,
		Message: fmt.Sprintf(format, args...),
	}
}

// ContractViolation reports a parser or executor that broke its contract.
func ContractViolation(format string, args ...any) *Error {
	return &Error{
		Kind:    ErrContractViolation,
		Message: fmt.Sprintf(format, args...),
	}
}

// Misuse reports an argument engine used in a way it does not allow.
func Misuse(format string, args ...any) *Error {
	return &Error{
		Kind:    ErrMisuse,
		Message: fmt.Sprintf(format, args...),
	}
}

// UnknownCommand is returned when no subcommand matches the given token.
// label is the invocation label of the parent; suggestions are close matches.
func UnknownCommand(token, label string, suggestions []string) *Error {
	hint := "help"
	if label != "" {
		hint = label + " help"
	}

	var b strings.Builder
	if token == "" {
		fmt.Fprintf(&b, "unknown command; try `%s`", hint)
	} else {
		fmt.Fprintf(&b, "unknown command '%s'; try `%s`", token, hint)
	}
	if len(suggestions) > 0 {
		b.WriteString("\n\nThe most similar commands are:")
		for _, s := range suggestions {
			b.WriteString("\n\t")
			b.WriteString(s)
		}
	}

	return &Error{
		Kind:    ErrUnknownCommand,
		Message: b.String(),
	}
}

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("argot: invalid flag '%s'", flag),
	}
}

// InvalidConfigKey is returned for keys that are not in the config key table.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("argot: '%s' is not a valid config key. See 'argot config list'.", key),
	}
}
