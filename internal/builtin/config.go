package builtin

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/command"
	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/parsers"
)

// ErrNoConfig is returned by the config commands when no provider is wired.
var ErrNoConfig = errors.New("configuration is not available")

// Config reads and edits the configuration file.
func Config(deps Deps) *command.Command {
	return command.MustParent(command.ParentSpec{
		Name:    "config",
		Summary: "Read or change settings",
		Commands: []*command.Command{
			configGet(deps),
			configSet(deps),
			configUnset(deps),
			configList(deps),
		},
	})
}

func keyParser() args.Parser {
	return parsers.Choice("key", domain.ConfigKeyNames()...)
}

func configGet(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:    "get",
		Summary: "Print the value of a setting",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.Declare(keyParser())
			if dry {
				return nil
			}
			key, err := args.Next[string](a)
			if err != nil {
				return err
			}
			if deps.Config == nil {
				return ErrNoConfig
			}
			value, _ := deps.Config.Get(key)
			_, err = deps.Println(value)
			return err
		}),
	})
}

func configSet(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:    "set",
		Summary: "Change a setting",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.Declare(keyParser()).Named("value", parsers.Text())
			if dry {
				return nil
			}
			key, err := args.Next[string](a)
			if err != nil {
				return err
			}
			value, err := args.Next[string](a)
			if err != nil {
				return err
			}
			if deps.Config == nil {
				return ErrNoConfig
			}
			if err := deps.Config.Set(key, value); err != nil {
				return fmt.Errorf("set %s: %w", key, err)
			}
			_, err = deps.Printf("%s=%s\n", key, deps.Styler.Info(value))
			return err
		}),
	})
}

func configUnset(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:    "unset",
		Aliases: []string{"reset"},
		Summary: "Restore the default of a setting",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.Declare(keyParser())
			if dry {
				return nil
			}
			key, err := args.Next[string](a)
			if err != nil {
				return err
			}
			if deps.Config == nil {
				return ErrNoConfig
			}
			if err := deps.Config.Unset(key); err != nil {
				return fmt.Errorf("unset %s: %w", key, err)
			}
			_, err = deps.Printf("%s restored\n", key)
			return err
		}),
	})
}

func configList(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:    "list",
		Aliases: []string{"ls"},
		Summary: "Print every setting grouped by section",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			if dry {
				return nil
			}
			if deps.Config == nil {
				return ErrNoConfig
			}
			values, err := deps.Config.GetAll()
			if err != nil {
				return err
			}

			bySection := domain.ConfigKeysBySection()
			first := true
			for _, section := range domain.ConfigSections() {
				var lines []string
				for _, key := range bySection[section] {
					value := values[key.Name]
					if key.Optional && value == "" {
						continue
					}
					lines = append(lines, fmt.Sprintf("   %s=%s", key.Name, deps.Styler.Info(value)))
				}
				if len(lines) == 0 {
					continue
				}
				if !first {
					if _, err := deps.Println(); err != nil {
						return err
					}
				}
				first = false
				if _, err := deps.Println(deps.Styler.Header(section)); err != nil {
					return err
				}
				for _, line := range lines {
					if _, err := deps.Println(line); err != nil {
						return err
					}
				}
			}
			return nil
		}),
	})
}
