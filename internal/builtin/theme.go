package builtin

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/argot/internal/args"
	"github.com/footprint-tools/argot/internal/command"
	"github.com/footprint-tools/argot/internal/parsers"
	"github.com/footprint-tools/argot/internal/ui/style"
)

// Theme lists and selects color themes.
func Theme(deps Deps) *command.Command {
	return command.MustParent(command.ParentSpec{
		Name:    "theme",
		Summary: "List or pick a color theme",
		Commands: []*command.Command{
			themeList(deps),
			themeSet(deps),
		},
	})
}

func themeChoices() []string {
	names := make([]string, 0, len(style.BaseThemeNames)+len(style.ThemeNames))
	names = append(names, style.BaseThemeNames...)
	return append(names, style.ThemeNames...)
}

func themeList(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:    "list",
		Aliases: []string{"ls"},
		Summary: "Show every theme with a color preview",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			if dry {
				return nil
			}

			current := "default"
			if deps.Config != nil {
				if v, ok := deps.Config.Get("theme"); ok && v != "" {
					current = v
				}
			}
			current = style.ResolveThemeName(current)

			if _, err := deps.Println("Available themes (* = current)"); err != nil {
				return err
			}
			for _, name := range style.ThemeNames {
				marker := "  "
				if name == current {
					marker = deps.Styler.Success("* ")
				}
				if _, err := deps.Printf("%s%-16s  %s\n", marker, name, renderColorPreview(style.Themes[name], deps.Styler.Enabled())); err != nil {
					return err
				}
			}
			_, err := deps.Printf("\nUse '%s theme set <theme>' to change\n", deps.Binary)
			return err
		}),
	})
}

func themeSet(deps Deps) *command.Command {
	return command.MustNew(command.Spec{
		Name:    "set",
		Summary: "Store the theme used from the next start",
		Executor: command.ExecutorFunc(func(ctx *command.Context, a *args.Arguments, dry bool) error {
			a.Declare(parsers.Choice("theme", themeChoices()...))
			if dry {
				return nil
			}
			name, err := args.Next[string](a)
			if err != nil {
				return err
			}
			if deps.Config == nil {
				return ErrNoConfig
			}
			if err := deps.Config.Set("theme", name); err != nil {
				return fmt.Errorf("set theme: %w", err)
			}
			_, err = deps.Printf("theme set to %s\n", deps.Styler.Success(name))
			return err
		}),
	})
}

// renderColorPreview returns samples of the roles a theme colors.
func renderColorPreview(cfg style.ColorConfig, colored bool) string {
	colorize := func(text, color string) string {
		if !colored {
			return text
		}
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted) +
		"   " +
		colorize("command ", cfg.Command) +
		colorize("<required> ", cfg.Required) +
		colorize("[optional] ", cfg.Optional) +
		colorize("prompt>", cfg.Prompt)
}
