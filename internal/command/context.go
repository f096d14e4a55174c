package command

import (
	"fmt"
	"slices"
	"strings"

	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/usage"
)

// Registry is what a command tree needs from whoever owns it.
type Registry interface {
	HelpGenerator() HelpGenerator
}

// Context describes one invocation of a command. It is read-only once built.
type Context struct {
	registry Registry
	command  *Command
	label    string
	dry      bool
	parent   *Context
}

// NewContext binds cmd to an invocation.
func NewContext(registry Registry, cmd *Command, label string, dry bool) *Context {
	return &Context{registry: registry, command: cmd, label: label, dry: dry}
}

func (c *Context) Registry() Registry { return c.registry }
func (c *Context) Command() *Command  { return c.command }
func (c *Context) Label() string      { return c.label }
func (c *Context) Dry() bool          { return c.dry }

// Parent is the context of the command that dispatched to this one, nil
// at the root.
func (c *Context) Parent() *Context { return c.parent }

// Path joins the labels from the root down to c, as the user typed them.
// The root's empty label is skipped.
func (c *Context) Path() string {
	var labels []string
	for cur := c; cur != nil; cur = cur.parent {
		if cur.label != "" {
			labels = append(labels, cur.label)
		}
	}
	slices.Reverse(labels)
	return strings.Join(labels, " ")
}

// Syntax returns the command's static syntax, if it has one.
func (c *Context) Syntax() (string, bool) {
	if c.command == nil {
		return "", false
	}
	return c.command.Syntax()
}

// AsDry returns a copy of the context marked as a dry run.
func (c *Context) AsDry() *Context {
	cp := *c
	cp.dry = true
	return &cp
}

// Execute rebinds a to this context and runs the command's executor.
// A panicking executor is reported as a contract violation.
func (c *Context) Execute(a *args.Arguments) (err error) {
	if c.command == nil {
		return usage.Misuse("context has no command")
	}

	defer func() {
		if r := recover(); r != nil {
			err = usage.ContractViolation("command %s panicked: %v", c.command.Name(), r)
		}
	}()

	return c.command.exec.Execute(c, a.WithContext(c), c.dry)
}

func (c *Context) String() string {
	return fmt.Sprintf("%s (dry=%t)", c.label, c.dry)
}

var _ args.Context = (*Context)(nil)
