package registry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/command"
	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/help"
	"github.com/footprint-tools/argot/internal/parsers"
	"github.com/footprint-tools/argot/internal/testutil"
	"github.com/footprint-tools/argot/internal/ui"
	"github.com/footprint-tools/argot/internal/ui/style"
	"github.com/footprint-tools/argot/internal/usage"
)

type calls struct {
	sums   []float64
	echoed []string
}

func newTestRegistry(t *testing.T, opts ...Option) (*Registry, *calls, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	c := &calls{}
	gen := help.New(ui.NewWriterTo(&buf), style.NopStyler{}, help.WithPageSize(0))

	add := command.MustNew(command.Spec{
		Name:    "add",
		Aliases: []string{"plus"},
		Summary: "Add two numbers",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.Declare(parsers.Number()).Declare(parsers.Number())
			if dry {
				return nil
			}
			x, err := args.Next[float64](a)
			if err != nil {
				return err
			}
			y, err := args.Next[float64](a)
			if err != nil {
				return err
			}
			c.sums = append(c.sums, x+y)
			return nil
		}),
	})
	math := command.MustParent(command.ParentSpec{
		Name:     "math",
		Aliases:  []string{"calc"},
		Summary:  "Arithmetic",
		Commands: []*command.Command{add},
	})
	echo := command.MustNew(command.Spec{
		Name:    "echo",
		Summary: "Print text",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.Declare(parsers.Text())
			if dry {
				return nil
			}
			text, err := args.Next[string](a)
			if err != nil {
				return err
			}
			c.echoed = append(c.echoed, text)
			return nil
		}),
	})
	theme := command.MustNew(command.Spec{
		Name:    "theme",
		Summary: "Pick a theme",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.Declare(parsers.Choice("theme", "neon", "night owl", "mono"))
			return nil
		}),
	})

	r := New(append([]Option{WithHelpGenerator(gen)}, opts...)...)
	require.NoError(t, r.Register(math, echo, theme))
	return r, c, &buf
}

func TestRegister(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	var names []string
	for _, cmd := range r.Commands() {
		names = append(names, cmd.Name())
	}
	require.Equal(t, []string{"math", "echo", "theme", "help"}, names)

	cmd, ok := r.Lookup("CALC")
	require.True(t, ok)
	require.Equal(t, "math", cmd.Name())

	_, ok = r.Lookup("?")
	require.True(t, ok)

	_, ok = r.Lookup("nope")
	require.False(t, ok)
}

func TestRegister_Duplicates(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	nop := command.ExecutorFunc(func(*command.Context, *args.Arguments, bool) error { return nil })

	err := r.Register(command.MustNew(command.Spec{Name: "Echo", Executor: nop}))
	require.ErrorIs(t, err, ErrDuplicateName)

	err = r.Register(command.MustNew(command.Spec{Name: "x", Aliases: []string{"calc"}, Executor: nop}))
	require.ErrorIs(t, err, ErrDuplicateName)

	err = r.Register(command.MustNew(command.Spec{Name: "help", Executor: nop}))
	require.ErrorIs(t, err, ErrDuplicateName)

	err = r.Register(command.MustNew(command.Spec{Name: "ask", Aliases: []string{"?"}, Executor: nop}))
	require.ErrorContains(t, err, `"?" used by help and ask`)

	err = r.Register(
		command.MustNew(command.Spec{Name: "a", Executor: nop}),
		command.MustNew(command.Spec{Name: "A", Executor: nop}),
	)
	require.ErrorIs(t, err, ErrDuplicateName)

	require.ErrorIs(t, r.Register(nil), ErrNilCommand)

	// Failed registrations leave the registry unchanged.
	require.Len(t, r.Commands(), 4)
}

func TestEmptyRegistry(t *testing.T) {
	r := New()
	require.Empty(t, r.Commands())
	require.NoError(t, r.Execute("   "))
	require.ErrorIs(t, r.Execute("echo"), &usage.Error{Kind: usage.ErrMisuse})

	got, err := r.Complete("")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestExecute(t *testing.T) {
	r, c, _ := newTestRegistry(t)

	require.NoError(t, r.Execute("math add 1 2"))
	require.NoError(t, r.Execute("CALC plus 2.5 0.5"))
	require.NoError(t, r.Execute(`echo "hello   world" again`))
	require.NoError(t, r.ExecuteTokens("echo", "one two"))
	require.NoError(t, r.Execute(""))

	require.Equal(t, []float64{3, 3}, c.sums)
	require.Equal(t, []string{"hello   world again", "one two"}, c.echoed)
}

func TestExecute_Errors(t *testing.T) {
	r, c, _ := newTestRegistry(t)

	err := r.Execute("math add 1")
	var syntaxErr *usage.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, usage.ErrMissingArgument, syntaxErr.Kind)
	require.Equal(t, "add <number> <number>", syntaxErr.Syntax)

	err = r.Execute("math add one 2")
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, usage.ErrParseFailure, syntaxErr.Kind)

	err = r.Execute("ecoh hi")
	require.ErrorIs(t, err, &usage.Error{Kind: usage.ErrUnknownCommand})
	require.Contains(t, err.Error(), "unknown command 'ecoh'; try `help`")
	require.Contains(t, err.Error(), "\techo")

	err = r.Execute("math ad 1 2")
	require.ErrorIs(t, err, &usage.Error{Kind: usage.ErrUnknownCommand})
	require.Contains(t, err.Error(), "try `math help`")

	err = r.Execute(`echo "open`)
	require.ErrorIs(t, err, &usage.Error{Kind: usage.ErrParseFailure})

	require.Empty(t, c.sums)
}

func TestExecute_Help(t *testing.T) {
	r, _, buf := newTestRegistry(t)

	require.NoError(t, r.Execute("help"))
	require.Contains(t, buf.String(), "echo")
	require.Contains(t, buf.String(), "math")
	require.NotContains(t, buf.String(), "page")

	buf.Reset()
	require.NoError(t, r.Execute("help calc"))
	require.Contains(t, buf.String(), "USAGE\n   math <command>\n")
	require.Contains(t, buf.String(), "ALIASES\n   calc\n")

	buf.Reset()
	require.NoError(t, r.Execute("math help add"))
	require.Contains(t, buf.String(), "add <number> <number>")

	err := r.Execute("help nope")
	require.ErrorIs(t, err, &usage.Error{Kind: usage.ErrUnknownCommand})
	require.Contains(t, err.Error(), "try `help`")
}

func TestExecute_NestedHelpPointsAtParent(t *testing.T) {
	r, _, buf := newTestRegistry(t)

	require.NoError(t, r.Execute("help"))
	require.Contains(t, buf.String(), "See 'help <command>'")

	buf.Reset()
	require.NoError(t, r.Execute("math help"))
	require.Contains(t, buf.String(), "See 'math help <command>'")

	buf.Reset()
	require.NoError(t, r.Execute("calc ? 1"))
	require.Contains(t, buf.String(), "See 'calc ? <command>'")

	err := r.Execute("calc help nope")
	require.ErrorIs(t, err, &usage.Error{Kind: usage.ErrUnknownCommand})
	require.Contains(t, err.Error(), "unknown command 'nope'; try `calc help`")
}

func TestComplete(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	tests := []struct {
		line string
		want []string
	}{
		{line: "", want: []string{"math", "echo", "theme", "help"}},
		{line: "m", want: []string{"math"}},
		{line: "calc ", want: []string{"add", "help"}},
		{line: "math a", want: []string{"add"}},
		{line: "math add 1 ", want: []string{}},
		{line: "theme ", want: []string{"neon", `"night owl"`, "mono"}},
		{line: "theme n", want: []string{"neon", `"night owl"`}},
		{line: "help ", want: []string{"math", "echo", "theme", "help"}},
		{line: "zzz ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := r.Complete(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHarvest(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	infos, err := r.Harvest()
	require.NoError(t, err)
	require.Len(t, infos, 4)

	byName := make(map[string]command.HelpInfo)
	for _, info := range infos {
		byName[info.Name] = info
	}
	require.Equal(t, "math <command>", byName["math"].Syntax)
	require.Equal(t, "calc", byName["math"].Aliases)
	require.Equal(t, "echo <text>", byName["echo"].Syntax)
	require.Equal(t, "help [page|command]", byName["help"].Syntax)
	require.Equal(t, "Print text", byName["echo"].Description)
}

func TestHistory(t *testing.T) {
	s := testutil.NewTestStore(t)
	r, _, _ := newTestRegistry(t, WithHistory(s, 3))

	require.NoError(t, r.Execute("calc add 1 2"))
	require.Error(t, r.Execute("nope"))
	require.NoError(t, r.Execute("   "))
	require.Error(t, r.Execute("math add x 1"))
	require.NoError(t, r.ExecuteTokens("echo", "a b"))

	entries, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.Equal(t, `echo "a b"`, entries[0].Line)
	require.Equal(t, "echo", entries[0].Root)
	require.Equal(t, domain.StatusOK, entries[0].Status)

	require.Equal(t, "math add x 1", entries[1].Line)
	require.Equal(t, "math", entries[1].Root)
	require.True(t, entries[1].Failed())
	require.Contains(t, entries[1].Message, "not a number: x")

	require.Equal(t, "nope", entries[2].Line)
	require.Empty(t, entries[2].Root)
}
