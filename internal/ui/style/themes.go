package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds the color of every role. A value is an ANSI color
// number (0-255) or "bold".
type ColorConfig struct {
	Success  string
	Warning  string
	Error    string
	Info     string
	Muted    string
	Header   string
	Command  string
	Alias    string
	Required string
	Optional string
	Prompt   string
	Footer   string
	Value    string
}

// roleKeys are the suffixes of the color_* config keys, indexed by role.
var roleKeys = [roleCount]string{
	roleSuccess:  "success",
	roleWarning:  "warning",
	roleError:    "error",
	roleInfo:     "info",
	roleMuted:    "muted",
	roleHeader:   "header",
	roleCommand:  "command",
	roleAlias:    "alias",
	roleRequired: "required",
	roleOptional: "optional",
	rolePrompt:   "prompt",
	roleFooter:   "footer",
	roleValue:    "value",
}

func (c *ColorConfig) field(r role) *string {
	switch r {
	case roleSuccess:
		return &c.Success
	case roleWarning:
		return &c.Warning
	case roleError:
		return &c.Error
	case roleInfo:
		return &c.Info
	case roleMuted:
		return &c.Muted
	case roleHeader:
		return &c.Header
	case roleCommand:
		return &c.Command
	case roleAlias:
		return &c.Alias
	case roleRequired:
		return &c.Required
	case roleOptional:
		return &c.Optional
	case rolePrompt:
		return &c.Prompt
	case roleFooter:
		return &c.Footer
	default:
		return &c.Value
	}
}

// palette is what a theme actually chooses. The command line roles are
// derived from it: the prompt shares the command accent, and the page
// footer shares the muted gray.
type palette struct {
	ok, warn, bad, info string
	accent              string // command names and the prompt
	alias               string
	slot                string // <required>
	soft                string // [optional]
	muted               string
	text                string // echoed values and history lines
}

func (p palette) colors() ColorConfig {
	return ColorConfig{
		Success:  p.ok,
		Warning:  p.warn,
		Error:    p.bad,
		Info:     p.info,
		Muted:    p.muted,
		Header:   "bold",
		Command:  p.accent,
		Alias:    p.alias,
		Required: p.slot,
		Optional: p.soft,
		Prompt:   p.accent,
		Footer:   p.muted,
		Value:    p.text,
	}
}

// Dark variants use light tones and light variants dark ones. Optional
// slots are always quieter than required ones.
var palettes = map[string]palette{
	"default-dark": {
		ok: "42", warn: "214", bad: "203", info: "75",
		accent: "81", alias: "176", slot: "147", soft: "109",
		muted: "244", text: "254",
	},
	"default-light": {
		ok: "34", warn: "172", bad: "160", info: "25",
		accent: "31", alias: "133", slot: "61", soft: "66",
		muted: "242", text: "236",
	},
	"neon-dark": {
		ok: "84", warn: "227", bad: "199", info: "45",
		accent: "207", alias: "123", slot: "171", soft: "117",
		muted: "240", text: "255",
	},
	"neon-light": {
		ok: "35", warn: "136", bad: "162", info: "26",
		accent: "163", alias: "37", slot: "92", soft: "67",
		muted: "246", text: "234",
	},
	"ocean-dark": {
		ok: "79", warn: "222", bad: "210", info: "111",
		accent: "39", alias: "152", slot: "74", soft: "110",
		muted: "243", text: "195",
	},
	"ocean-light": {
		ok: "36", warn: "130", bad: "167", info: "24",
		accent: "25", alias: "30", slot: "32", soft: "67",
		muted: "245", text: "17",
	},
	// Grays only; commands stand out by weight.
	"mono-dark": {
		ok: "250", warn: "252", bad: "255", info: "248",
		accent: "bold", alias: "246", slot: "253", soft: "244",
		muted: "241", text: "231",
	},
	"mono-light": {
		ok: "238", warn: "236", bad: "232", info: "240",
		accent: "bold", alias: "242", slot: "235", soft: "244",
		muted: "247", text: "16",
	},
}

// BaseThemeNames are the themes whose variant follows the terminal
// background.
var BaseThemeNames = []string{"default", "neon", "ocean", "mono"}

// ThemeNames are the explicit variants, in listing order.
var ThemeNames = func() []string {
	names := make([]string, 0, 2*len(BaseThemeNames))
	for _, base := range BaseThemeNames {
		names = append(names, base+"-dark", base+"-light")
	}
	return names
}()

// Themes maps every variant name to its colors.
var Themes = func() map[string]ColorConfig {
	themes := make(map[string]ColorConfig, len(palettes))
	for name, p := range palettes {
		themes[name] = p.colors()
	}
	return themes
}()

// IsDarkBackground asks the terminal; termenv assumes dark when it cannot tell.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig picks the theme from ARGOT_THEME or the theme key, then
// applies per-role overrides. For each role ARGOT_COLOR_<ROLE> beats
// color_<role>. Unknown themes fall back to default-dark.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := os.Getenv("ARGOT_THEME")
	if name == "" {
		name = cfg["theme"]
	}
	if name == "" {
		name = "default"
	}

	out, ok := Themes[ResolveThemeName(name)]
	if !ok {
		out = Themes["default-dark"]
	}

	for r, suffix := range roleKeys {
		value := os.Getenv("ARGOT_COLOR_" + strings.ToUpper(suffix))
		if value == "" {
			value = cfg["color_"+suffix]
		}
		if value != "" {
			*out.field(role(r)) = value
		}
	}
	return out
}
