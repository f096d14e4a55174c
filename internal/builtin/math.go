package builtin

import (
	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/command"
	"github.com/footprint-tools/argot/internal/parsers"
)

// Math is the math command group.
func Math(deps Deps) *command.Command {
	return command.MustParent(command.ParentSpec{
		Name:        "math",
		Aliases:     []string{"calc"},
		Summary:     "Do arithmetic on two numbers",
		Description: "Adds, subtracts, multiplies or divides two numbers and prints the result.",
		Commands: []*command.Command{
			binary(deps, "add", "plus", "Add two numbers", func(x, y float64) float64 { return x + y }),
			binary(deps, "sub", "minus", "Subtract the second number from the first", func(x, y float64) float64 { return x - y }),
			binary(deps, "mul", "times", "Multiply two numbers", func(x, y float64) float64 { return x * y }),
			divide(deps),
		},
	})
}

func binary(deps Deps, name, alias, summary string, op func(x, y float64) float64) *command.Command {
	return command.MustNew(command.Spec{
		Name:    name,
		Aliases: []string{alias},
		Summary: summary,
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.Declare(parsers.Number()).Declare(parsers.Number())
			if dry {
				return nil
			}
			return printResult(deps, a, op)
		}),
	})
}

func divide(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:    "div",
		Aliases: []string{"over"},
		Summary: "Divide the first number by the second",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.Declare(parsers.Number())
			a.NamedChecked("divisor", parsers.Number(), func(v any) bool {
				return v.(float64) != 0
			}, "division by zero")
			if dry {
				return nil
			}
			return printResult(deps, a, func(x, y float64) float64 { return x / y })
		}),
	})
}

func printResult(deps Deps, a *args.Arguments, op func(x, y float64) float64) error {
	x, err := args.Next[float64](a)
	if err != nil {
		return err
	}
	y, err := args.Next[float64](a)
	if err != nil {
		return err
	}
	_, err = deps.Println(formatNumber(op(x, y)))
	return err
}
