package builtin

import (
	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/command"
	"github.com/footprint-tools/argot/internal/completions"
	"github.com/footprint-tools/argot/internal/parsers"
)

// Completions prints or installs a shell completion script.
func Completions(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:    "completions",
		Summary: "Print or install a shell completion script",
		Description: "With mode script the completion script is printed, ready to be sourced.\n" +
			"With mode install it is written where the shell loads it automatically, when the shell has such a place.",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.Declare(parsers.Choice("shell", completions.ShellNames()...))
			a.Declare(parsers.DefaultValue(parsers.Choice("mode", "script", "install"), "script"))
			if dry {
				return nil
			}
			name, err := args.Next[string](a)
			if err != nil {
				return err
			}
			mode, err := args.Next[string](a)
			if err != nil {
				return err
			}
			shell, err := completions.ParseShell(name)
			if err != nil {
				return err
			}

			if mode == "script" {
				return completions.Print(deps.Out, shell, deps.Binary)
			}
			return installCompletions(deps, shell)
		}),
	})
}

func installCompletions(deps Deps, shell completions.Shell) error {
	path := completions.AutoInstallPath(shell, deps.Binary)
	if path == "" {
		_, err := deps.Printf("Add this line to %s:\n   %s\n", completions.RcFile(shell), completions.SourceInstructions(shell, deps.Binary))
		return err
	}

	script, err := completions.Script(shell, deps.Binary)
	if err != nil {
		return err
	}
	if err := deps.WriteFile(path, []byte(script)); err != nil {
		return err
	}
	_, err = deps.Printf("installed %s completions to %s\n", shell, path)
	return err
}
