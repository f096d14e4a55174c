package builtin

import (
	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/command"
	"github.com/footprint-tools/argot/internal/parsers"
)

// History inspects and clears the recorded command lines.
func History(deps Deps) *command.Command {
	return command.MustParent(command.ParentSpec{
		Name:    "history",
		Summary: "Show or clear past command lines",
		Commands: []*command.Command{
			historyList(deps),
			historyClear(deps),
		},
	})
}

func historyList(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:        "list",
		Aliases:     []string{"ls"},
		Summary:     "Show recent command lines, oldest first",
		Description: "Pass true as the second argument to show failed lines only.",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.NamedChecked("limit", parsers.Default(parsers.Int(), "20"), func(v any) bool {
				return v.(int) > 0
			}, "limit must be positive")
			a.Named("failed", parsers.DefaultValue(parsers.Bool(), false))
			if dry {
				return nil
			}
			limit, err := args.Next[int](a)
			if err != nil {
				return err
			}
			failedOnly, err := args.Next[bool](a)
			if err != nil {
				return err
			}
			if deps.History == nil {
				return ErrNoHistory
			}

			entries, err := deps.History.Recent(limit)
			if err != nil {
				return err
			}

			now := deps.Now()
			for i := len(entries) - 1; i >= 0; i-- {
				e := entries[i]
				if failedOnly && !e.Failed() {
					continue
				}
				status := deps.Styler.Success(string(e.Status))
				if e.Failed() {
					status = deps.Styler.Error(string(e.Status))
				}
				if _, err := deps.Printf("%s  %-5s  %s\n", deps.Styler.Muted(deps.Format.Relative(e.CreatedAt, now)), status, e.Line); err != nil {
					return err
				}
			}
			return nil
		}),
	})
}

func historyClear(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:    "clear",
		Summary: "Delete every recorded command line",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			if dry {
				return nil
			}
			if deps.History == nil {
				return ErrNoHistory
			}
			n, err := deps.History.Clear()
			if err != nil {
				return err
			}
			_, err = deps.Printf("cleared %d entries\n", n)
			return err
		}),
	})
}
