// Package style renders semantic roles (success, muted, <required> slot and
// so on) with lipgloss. Nothing outside this package imports lipgloss for
// role colors.
//
// While styling is off every helper returns its input untouched.
package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type role int

const (
	roleSuccess role = iota
	roleWarning
	roleError
	roleInfo
	roleMuted
	roleHeader
	roleCommand
	roleAlias
	roleRequired
	roleOptional
	rolePrompt
	roleFooter
	roleValue
	roleCount
)

var (
	enabled bool
	colors  ColorConfig
	styles  [roleCount]lipgloss.Style
)

// Init turns styling on or off and loads the theme from cfg (nil means the
// default theme). A non-empty NO_COLOR or ARGOT_NO_COLOR forces it off.
// Call it before producing output.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("ARGOT_NO_COLOR") != "" {
		enable = false
	}
	enabled = enable
	if !enabled {
		return
	}

	colors = LoadColorConfig(cfg)
	// 256-color output regardless of what termenv detects, so ANSI codes
	// above 15 survive pipes and test buffers.
	lipgloss.SetColorProfile(termenv.ANSI256)
	for r := range roleCount {
		styles[r] = makeStyle(*colors.field(r))
	}
}

// makeStyle accepts "bold" or an ANSI color number.
func makeStyle(value string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if value == "bold" {
		return s.Bold(true)
	}
	return s.Foreground(lipgloss.Color(value))
}

func render(r role, text string) string {
	if !enabled {
		return text
	}
	return styles[r].Render(text)
}

// GetColors returns the loaded theme. It is zero until styling has been
// enabled once.
func GetColors() ColorConfig { return colors }

func Enabled() bool { return enabled }

func Success(text string) string  { return render(roleSuccess, text) }
func Warning(text string) string  { return render(roleWarning, text) }
func Error(text string) string    { return render(roleError, text) }
func Info(text string) string     { return render(roleInfo, text) }
func Muted(text string) string    { return render(roleMuted, text) }
func Header(text string) string   { return render(roleHeader, text) }
func Command(text string) string  { return render(roleCommand, text) }
func Alias(text string) string    { return render(roleAlias, text) }
func Required(text string) string { return render(roleRequired, text) }
func Optional(text string) string { return render(roleOptional, text) }
func Prompt(text string) string   { return render(rolePrompt, text) }
func Footer(text string) string   { return render(roleFooter, text) }
func Value(text string) string    { return render(roleValue, text) }

// Syntax colors the <required> and [optional] slots of a syntax line and
// leaves literal words alone.
func Syntax(line string) string {
	if !enabled {
		return line
	}
	fields := strings.Fields(line)
	for i, f := range fields {
		switch f[0] {
		case '<':
			fields[i] = Required(f)
		case '[':
			fields[i] = Optional(f)
		}
	}
	return strings.Join(fields, " ")
}
