package domain

import "fmt"

// ConfigKey describes one setting of ~/.argotrc.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string
	// Optional keys have no default and are only listed once set.
	Optional bool
}

// ConfigKeys lists every known setting in `argot config list` order.
var ConfigKeys = joinSections(
	section("Shell",
		setting("prompt", "argot> ", "Prompt shown by the interactive shell"),
		setting("history_limit", "500", "Number of past command lines the shell can recall"),
	),
	section("Display",
		setting("pager", "less -FRSX", "Pager command for long output"),
		setting("theme", "default", "Color theme: default, neon, ocean, mono, or one of their -dark/-light variants"),
		setting("help_page_size", "8", "Commands per help page (0 shows everything on one page)"),
		setting("display_date", "Jan 02", "Date format: dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd, or Go format"),
		setting("display_time", "24h", "Time format: 12h, 24h"),
	),
	section("Logging",
		setting("enable_log", "true", "Enable logging to file (true/false)"),
		setting("log_level", "warn", "Minimum log level: debug, info, warn, error"),
	),
	section("Color Overrides",
		colorOverride("success", "success color"),
		colorOverride("warning", "warning color"),
		colorOverride("error", "error color"),
		colorOverride("info", "info color"),
		colorOverride("muted", "muted text color"),
		colorOverride("header", "header style"),
		colorOverride("command", "command name color"),
		colorOverride("alias", "alias color"),
		colorOverride("required", "<required> slot color"),
		colorOverride("optional", "[optional] slot color"),
		colorOverride("prompt", "shell prompt color"),
		colorOverride("footer", "help footer color"),
		colorOverride("value", "value color"),
	),
)

var sectionOrder []string

func setting(name, def, desc string) ConfigKey {
	return ConfigKey{Name: name, Default: def, Description: desc}
}

func colorOverride(role, what string) ConfigKey {
	desc := fmt.Sprintf("Override %s from current theme (ANSI 0-255)", what)
	if role == "header" {
		desc = fmt.Sprintf("Override %s from current theme (ANSI 0-255 or 'bold')", what)
	}
	return ConfigKey{Name: "color_" + role, Description: desc, Optional: true}
}

func section(name string, keys ...ConfigKey) []ConfigKey {
	sectionOrder = append(sectionOrder, name)
	for i := range keys {
		keys[i].Section = name
	}
	return keys
}

func joinSections(groups ...[]ConfigKey) []ConfigKey {
	var all []ConfigKey
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

var configKeyIndex = func() map[string]int {
	index := make(map[string]int, len(ConfigKeys))
	for i, key := range ConfigKeys {
		index[key.Name] = i
	}
	return index
}()

// IsValidConfigKey reports whether name is a known setting.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyIndex[name]
	return ok
}

// GetDefaultValue returns the default of a known setting.
func GetDefaultValue(name string) (string, bool) {
	i, ok := configKeyIndex[name]
	if !ok {
		return "", false
	}
	return ConfigKeys[i].Default, true
}

// ConfigKeyNames returns every setting name in display order.
func ConfigKeyNames() []string {
	names := make([]string, len(ConfigKeys))
	for i, key := range ConfigKeys {
		names[i] = key.Name
	}
	return names
}

// ConfigSections returns the section names in display order.
func ConfigSections() []string {
	return append([]string(nil), sectionOrder...)
}

func ConfigKeysBySection() map[string][]ConfigKey {
	grouped := make(map[string][]ConfigKey, len(sectionOrder))
	for _, key := range ConfigKeys {
		grouped[key.Section] = append(grouped[key.Section], key)
	}
	return grouped
}
