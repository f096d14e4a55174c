// Package command describes commands and dispatches parent/subcommand trees
// on top of the argument engine.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/argot/internal/args"
)

var (
	ErrNoName        = errors.New("command: name is required")
	ErrEmptyAlias    = errors.New("command: aliases cannot be empty")
	ErrNoExecutor    = errors.New("command: executor is required")
	ErrNoSubcommands = errors.New("command: a parent needs at least one subcommand")
)

// Executor runs a command. During a dry run it must only declare its
// parameters on a, never pull them or cause side effects.
type Executor interface {
	Execute(ctx *Context, a *args.Arguments, dry bool) error
}

// ExecutorFunc adapts a function into an Executor.
type ExecutorFunc func(ctx *Context, a *args.Arguments, dry bool) error

func (f ExecutorFunc) Execute(ctx *Context, a *args.Arguments, dry bool) error {
	return f(ctx, a, dry)
}

// Spec is the input to New.
type Spec struct {
	Name        string
	Aliases     []string
	Syntax      string // optional static syntax, replaces the composed one
	Summary     string
	Description string
	Executor    Executor
}

// Command is an immutable command descriptor.
type Command struct {
	names       []string
	syntax      string
	summary     string
	description string
	exec        Executor
}

// New validates spec and builds a Command.
func New(spec Spec) (*Command, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, ErrNoName
	}
	if spec.Executor == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoExecutor, name)
	}

	names := make([]string, 0, len(spec.Aliases)+1)
	names = append(names, name)
	for _, alias := range spec.Aliases {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyAlias, name)
		}
		names = append(names, alias)
	}

	return &Command{
		names:       names,
		syntax:      strings.TrimSpace(spec.Syntax),
		summary:     spec.Summary,
		description: spec.Description,
		exec:        spec.Executor,
	}, nil
}

// MustNew is New for statically known commands; it panics on error.
func MustNew(spec Spec) *Command {
	cmd, err := New(spec)
	if err != nil {
		panic(err)
	}
	return cmd
}

// Name is the primary name.
func (c *Command) Name() string { return c.names[0] }

// Names returns the primary name followed by the aliases.
func (c *Command) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Aliases returns every name except the primary one.
func (c *Command) Aliases() []string {
	out := make([]string, len(c.names)-1)
	copy(out, c.names[1:])
	return out
}

// HasName reports whether name is the primary name or an alias, ignoring case.
func (c *Command) HasName(name string) bool {
	for _, n := range c.names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// Syntax returns the static syntax override, if any.
func (c *Command) Syntax() (string, bool) { return c.syntax, c.syntax != "" }

func (c *Command) Summary() string     { return c.summary }
func (c *Command) Description() string { return c.description }
func (c *Command) Executor() Executor  { return c.exec }

// Subcommands returns the subcommands of a parent command, help included,
// or nil for a leaf.
func (c *Command) Subcommands() []*Command {
	if p, ok := c.exec.(*Parent); ok {
		return p.Commands()
	}
	return nil
}
