// Package registry owns the root commands of the program and runs command
// lines against them.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/command"
	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/log"
	"github.com/footprint-tools/argot/internal/tokens"
	"github.com/footprint-tools/argot/internal/usage"
)

// RootName labels the root command in logs. Users never type it.
const RootName = "argot"

var (
	// ErrDuplicateName is returned when two root commands share a name or alias.
	ErrDuplicateName = errors.New("registry: duplicate command name")
	// ErrNilCommand is returned when registering a nil command.
	ErrNilCommand = errors.New("registry: nil command")
)

// Registry holds the root commands. Register everything before the first
// Execute or Complete; the tree is not guarded for concurrent changes.
type Registry struct {
	commands     []*command.Command
	root         *command.Command
	parent       *command.Parent
	help         command.HelpGenerator
	logger       domain.Logger
	history      domain.HistoryStore
	historyLimit int
}

// Option configures a Registry.
type Option func(*Registry)

// WithHelpGenerator sets the generator used by every help command.
func WithHelpGenerator(gen command.HelpGenerator) Option {
	return func(r *Registry) {
		r.help = gen
	}
}

// WithLogger sets the logger.
func WithLogger(logger domain.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithHistory records every executed line in store and keeps only the
// newest limit entries. A limit of zero or less keeps everything.
func WithHistory(store domain.HistoryStore, limit int) Option {
	return func(r *Registry) {
		r.history = store
		r.historyLimit = limit
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{logger: log.NopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HelpGenerator implements command.Registry.
func (r *Registry) HelpGenerator() command.HelpGenerator {
	return r.help
}

// Register adds root commands. Names and aliases must be unique ignoring
// case, and "help" and "?" are reserved for the root help command.
func (r *Registry) Register(cmds ...*command.Command) error {
	taken := make(map[string]string)
	seed := append([]*command.Command{command.NewHelp(nil)}, r.commands...)
	for _, cmd := range seed {
		for _, name := range cmd.Names() {
			taken[strings.ToLower(name)] = cmd.Name()
		}
	}
	add := func(cmd *command.Command) error {
		for _, name := range cmd.Names() {
			key := strings.ToLower(name)
			if owner, ok := taken[key]; ok {
				return fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateName, name, owner, cmd.Name())
			}
			taken[key] = cmd.Name()
		}
		return nil
	}

	for i, cmd := range cmds {
		if cmd == nil {
			return fmt.Errorf("%w at position %d", ErrNilCommand, i)
		}
		if err := add(cmd); err != nil {
			return err
		}
	}

	next := make([]*command.Command, 0, len(r.commands)+len(cmds))
	next = append(next, r.commands...)
	next = append(next, cmds...)

	parent, err := command.NewParentExecutor(next...)
	if err != nil {
		return err
	}
	root, err := command.New(command.Spec{Name: RootName, Executor: parent})
	if err != nil {
		return err
	}

	r.commands, r.parent, r.root = next, parent, root
	for _, cmd := range cmds {
		r.logger.Debug("registry: registered %s", cmd.Name())
	}
	return nil
}

// MustRegister is Register for statically known commands; it panics on error.
func (r *Registry) MustRegister(cmds ...*command.Command) {
	if err := r.Register(cmds...); err != nil {
		panic(err)
	}
}

// Commands returns the root commands in registration order followed by
// the root help command. It is empty before the first Register.
func (r *Registry) Commands() []*command.Command {
	if r.parent == nil {
		return nil
	}
	return r.parent.Commands()
}

// Lookup finds a root command by name or alias, ignoring case.
func (r *Registry) Lookup(name string) (*command.Command, bool) {
	for _, cmd := range r.Commands() {
		if cmd.HasName(name) {
			return cmd, true
		}
	}
	return nil, false
}

// Execute splits line into tokens and runs it. A blank line does nothing.
func (r *Registry) Execute(line string) error {
	cursor, err := tokens.Parse(line)
	if err != nil {
		return usage.ParseFailure("%v", err)
	}
	return r.run(strings.TrimSpace(line), cursor)
}

// ExecuteTokens runs already split values, as received from os.Args.
func (r *Registry) ExecuteTokens(values ...string) error {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = tokens.Quote(v)
	}
	return r.run(strings.Join(quoted, " "), tokens.Strings(values...))
}

func (r *Registry) run(line string, cursor *tokens.Cursor) error {
	if cursor.Len() == 0 {
		return nil
	}
	if r.root == nil {
		return usage.Misuse("no commands registered")
	}

	first, _ := cursor.Peek()
	r.logger.Debug("registry: execute %q", line)

	ctx := command.NewContext(r, r.root, "", false)
	err := ctx.Execute(args.New(ctx, cursor))

	if err != nil {
		r.logger.Info("registry: %q failed: %v", line, err)
	}
	r.record(line, first.Value, err)
	return err
}

// record stores the invocation. Failures to record are logged, never returned.
func (r *Registry) record(line, first string, runErr error) {
	if r.history == nil {
		return
	}

	entry := domain.HistoryEntry{Line: line, Status: domain.StatusOK}
	if cmd, ok := r.Lookup(first); ok {
		entry.Root = cmd.Name()
	}
	if runErr != nil {
		entry.Status = domain.StatusError
		entry.Message = runErr.Error()
	}

	if err := r.history.Record(entry); err != nil {
		r.logger.Warn("registry: record history: %v", err)
		return
	}
	if r.historyLimit > 0 {
		if _, err := r.history.Trim(r.historyLimit); err != nil {
			r.logger.Warn("registry: trim history: %v", err)
		}
	}
}

// Complete returns the candidates for the last, possibly empty, word of a
// partial line. The root slot offers the primary root names; deeper slots
// come from the commands the line reaches.
func (r *Registry) Complete(line string) ([]string, error) {
	if r.root == nil {
		return []string{}, nil
	}

	ctx := command.NewContext(r, r.root, "", true)
	a := args.New(ctx, tokens.NewCursor(tokens.SplitPartial(line)))
	if err := ctx.Execute(a); err != nil {
		return nil, err
	}
	return a.Complete()
}

// Harvest collects the full help of every root command, help included.
func (r *Registry) Harvest() ([]command.HelpInfo, error) {
	cmds := r.Commands()
	out := make([]command.HelpInfo, 0, len(cmds))
	for _, cmd := range cmds {
		info, err := command.Harvest(command.NewContext(r, cmd, cmd.Name(), true))
		if err != nil {
			return nil, fmt.Errorf("harvest %s: %w", cmd.Name(), err)
		}
		out = append(out, info)
	}
	return out, nil
}

var _ command.Registry = (*Registry)(nil)
