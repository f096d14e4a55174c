package command

import (
	"github.com/footprint-tools/argot/internal/tokens"
	"github.com/footprint-tools/argot/internal/usage"
)

// Match is the value produced by a Matcher. The zero Match means no command
// had the given name; it is a valid value, not a parse failure.
type Match struct {
	ctx *Context
}

// Context returns the child context for the matched command.
func (m Match) Context() (*Context, bool) {
	return m.ctx, m.ctx != nil
}

// Found reports whether a command matched.
func (m Match) Found() bool {
	return m.ctx != nil
}

// Matcher is the parser behind a parent's "command" slot.
type Matcher struct {
	parent   *Context
	commands []*Command
}

// NewMatcher matches one token against commands on behalf of parent.
func NewMatcher(parent *Context, commands []*Command) Matcher {
	return Matcher{parent: parent, commands: commands}
}

func (m Matcher) Typename() string {
	return "command"
}

// Parse consumes one token and scans the commands in order for a name or
// alias equal to it, ignoring case. The child context inherits the parent's
// registry and dry flag, is labelled with the token as typed and points back
// at the parent.
func (m Matcher) Parse(c *tokens.Cursor) (any, error) {
	tok, ok := c.Next()
	if !ok {
		return nil, usage.ParseFailure("expected a command")
	}

	for _, cmd := range m.commands {
		if cmd.HasName(tok.Value) {
			var registry Registry
			dry := false
			if m.parent != nil {
				registry = m.parent.registry
				dry = m.parent.dry
			}
			child := NewContext(registry, cmd, tok.Value, dry)
			child.parent = m.parent
			return Match{ctx: child}, nil
		}
	}
	return Match{}, nil
}

// Suggestions are the primary names only.
func (m Matcher) Suggestions() ([]string, error) {
	names := make([]string, 0, len(m.commands))
	for _, cmd := range m.commands {
		names = append(names, cmd.Name())
	}
	return names, nil
}
