package command

import (
	"fmt"

	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/usage"
)

// ParentSpec is the input to NewParent.
type ParentSpec struct {
	Name        string
	Aliases     []string
	Syntax      string
	Summary     string
	Description string
	Commands    []*Command
}

// Parent is the executor of a command that only delegates to subcommands.
type Parent struct {
	commands []*Command
}

// NewParentExecutor builds a Parent over commands and appends a help
// subcommand that lists them.
func NewParentExecutor(commands ...*Command) (*Parent, error) {
	if len(commands) == 0 {
		return nil, ErrNoSubcommands
	}
	for i, cmd := range commands {
		if cmd == nil {
			return nil, fmt.Errorf("command: subcommand %d is nil", i)
		}
	}

	p := &Parent{commands: make([]*Command, 0, len(commands)+1)}
	p.commands = append(p.commands, commands...)
	p.commands = append(p.commands, NewHelp(p.Commands))
	return p, nil
}

// NewParent builds a parent command from spec.
func NewParent(spec ParentSpec) (*Command, error) {
	p, err := NewParentExecutor(spec.Commands...)
	if err != nil {
		if spec.Name != "" {
			return nil, fmt.Errorf("%s: %w", spec.Name, err)
		}
		return nil, err
	}
	return New(Spec{
		Name:        spec.Name,
		Aliases:     spec.Aliases,
		Syntax:      spec.Syntax,
		Summary:     spec.Summary,
		Description: spec.Description,
		Executor:    p,
	})
}

// MustParent is NewParent for statically known trees; it panics on error.
func MustParent(spec ParentSpec) *Command {
	cmd, err := NewParent(spec)
	if err != nil {
		panic(err)
	}
	return cmd
}

// Commands returns the subcommands in order, help last.
func (p *Parent) Commands() []*Command {
	out := make([]*Command, len(p.commands))
	copy(out, p.commands)
	return out
}

// Execute matches the first token against the subcommands and hands the
// rest of the input to the match.
//
// In a dry run the match is only looked at, never pulled. When it exists
// the child is run dry on the same engine, so the child's declarations are
// appended after the command slot is dropped and the composed syntax
// describes the deepest command the input reaches.
func (p *Parent) Execute(ctx *Context, a *args.Arguments, dry bool) error {
	tok, _ := a.Raw().Peek()
	a.Declare(NewMatcher(ctx, p.commands))

	if dry {
		value, ok := a.Peek()
		if !ok {
			return nil
		}
		child, found := value.(Match).Context()
		if !found {
			return nil
		}
		if err := a.Drop(1); err != nil {
			return err
		}
		return child.Execute(a)
	}

	match, err := args.Next[Match](a)
	if err != nil {
		return err
	}
	child, found := match.Context()
	if !found {
		return usage.UnknownCommand(tok.Value, ctx.Path(), Similar(tok.Value, p.commands, 3))
	}
	if err := a.Drop(1); err != nil {
		return err
	}
	return child.Execute(a)
}
