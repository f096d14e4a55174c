package config

import "strings"

// Set replaces the first assignment of key, or appends one. It reports
// whether an existing assignment was replaced.
func Set(lines []string, key, value string) ([]string, bool) {
	assignment := key + "=" + quote(value)

	for i, line := range lines {
		if lineKey(line) == key {
			lines[i] = assignment
			return lines, true
		}
	}

	lines = append(lines, assignment)
	return lines, false
}

// Unset removes every assignment of key and reports whether any existed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if lineKey(line) == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// lineKey returns the key assigned by line, or "" for comments, blanks and
// malformed lines.
func lineKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}

	key, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return ""
	}
	return strings.TrimSpace(key)
}
