package builtin

import (
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/command"
	"github.com/footprint-tools/argot/internal/parsers"
)

// maxSleep bounds the sleep command.
const maxSleep = 10 * time.Second

// Greetings are the accepted greeting words.
var Greetings = []string{"hello", "hi", "hey", "howdy"}

// Echo prints the rest of the line.
func Echo(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
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
			_, err = deps.Println(text)
			return err
		}),
	})
}

// Greet greets someone, the world by default.
func Greet(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:    "greet",
		Summary: "Greet someone",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.Named("name", parsers.Default(parsers.String(), "world"))
			a.Declare(parsers.DefaultValue(parsers.Choice("greeting", Greetings...), "hello"))
			if dry {
				return nil
			}
			name, err := args.Next[string](a)
			if err != nil {
				return err
			}
			greeting, err := args.Next[string](a)
			if err != nil {
				return err
			}
			_, err = deps.Printf("%s, %s!\n", capitalize(greeting), name)
			return err
		}),
	})
}

// Repeat prints text count times.
func Repeat(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:    "repeat",
		Summary: "Print text several times",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.NamedChecked("count", parsers.Int(), func(v any) bool {
				return v.(int) > 0
			}, "count must be positive")
			a.Declare(parsers.Text())
			if dry {
				return nil
			}
			count, err := args.Next[int](a)
			if err != nil {
				return err
			}
			text, err := args.Next[string](a)
			if err != nil {
				return err
			}
			for range count {
				if _, err := deps.Println(text); err != nil {
					return err
				}
			}
			return nil
		}),
	})
}

// Sleep waits for a while, at most maxSleep.
func Sleep(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:    "sleep",
		Summary: fmt.Sprintf("Wait for a duration of at most %s", maxSleep),
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.DeclareChecked(parsers.Duration(), func(v any) bool {
				d := v.(time.Duration)
				return d >= 0 && d <= maxSleep
			}, fmt.Sprintf("duration must be between 0s and %s", maxSleep))
			if dry {
				return nil
			}
			d, err := args.Next[time.Duration](a)
			if err != nil {
				return err
			}
			deps.Sleep(d)
			_, err = deps.Printf("slept %s\n", d)
			return err
		}),
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
