package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/footprint-tools/argot/internal/app"
	"github.com/footprint-tools/argot/internal/completions"
	"github.com/footprint-tools/argot/internal/shell"
	"github.com/footprint-tools/argot/internal/ui/style"
	"github.com/footprint-tools/argot/internal/usage"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type cliOptions struct {
	noColor  bool
	noPager  bool
	pager    string
	logLevel string
	command  string
	complete string
	version  bool
	help     bool

	completeSet bool
	args        []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags(args []string) (*cliOptions, *pflag.FlagSet, error) {
	opts := &cliOptions{}
	flags := pflag.NewFlagSet("argot", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	// Flags end at the first command word so arguments like -1 reach the command.
	flags.SetInterspersed(false)

	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&opts.noPager, "no-pager", false, "Print long output directly")
	flags.StringVar(&opts.pager, "pager", "", "Pager command for long output")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVarP(&opts.command, "command", "c", "", "Run one command line and exit")
	flags.StringVar(&opts.complete, "complete", "", "Print completions for a partial command line")
	flags.BoolVar(&opts.version, "version", false, "Print the version")
	flags.BoolVarP(&opts.help, "help", "h", false, "Show this help")

	if err := flags.Parse(args); err != nil {
		return nil, flags, &usage.Error{Kind: usage.ErrInvalidFlag, Message: "argot: " + err.Error()}
	}
	opts.completeSet = flags.Changed("complete")
	opts.args = flags.Args()
	return opts, flags, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		fmt.Fprintf(stderr, "Run 'argot --help' for usage.\n")
		return exitCode(err)
	}
	if opts.help {
		printUsage(stdout, flags)
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "argot version %s\n", version)
		return 0
	}

	appOpts := app.DefaultOptions()
	appOpts.Output = stdout
	appOpts.StyleEnabled = !opts.noColor && !opts.completeSet && isTerminal(stdout)
	appOpts.PagerDisabled = opts.noPager || opts.completeSet
	appOpts.PagerOverride = opts.pager
	appOpts.LogLevel = opts.logLevel

	a, err := app.New(appOpts)
	if err != nil {
		fmt.Fprintln(stderr, shell.FormatError(style.NopStyler{}, err))
		return exitCode(err)
	}
	defer func() { _ = a.Close() }()

	switch {
	case opts.completeSet:
		return complete(a, opts.complete, stdout)
	case opts.command != "":
		err = a.Registry.Execute(opts.command)
	case len(opts.args) > 0:
		err = a.Registry.ExecuteTokens(opts.args...)
	default:
		err = a.Shell(shell.WithIO(stdin, stdout, stderr)).Run()
	}

	if err != nil {
		fmt.Fprintln(stderr, shell.FormatError(a.Styler, err))
		return exitCode(err)
	}
	return 0
}

// complete prints one candidate per line for the completion scripts.
func complete(a *app.App, line string, stdout io.Writer) int {
	candidates, err := a.Registry.Complete(line)
	if err != nil {
		a.Logger.Warn("complete %q: %v", line, err)
		return 1
	}
	for _, c := range candidates {
		fmt.Fprintln(stdout, c)
	}
	return 0
}

// exitCode is 2 for input problems and 1 for everything else.
func exitCode(err error) int {
	var coded interface{ GetExitCode() int }
	if errors.As(err, &coded) {
		return coded.GetExitCode()
	}
	return 1
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printUsage(w io.Writer, flags *pflag.FlagSet) {
	_, bin := completions.Binary()
	fmt.Fprintf(w, `Usage: %[1]s [flags] [command [arguments]]

Without a command an interactive shell is started. Run '%[1]s help' to
list the commands.

Flags:
%[2]s`, bin, flags.FlagUsages())
}
