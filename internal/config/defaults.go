package config

import (
	"github.com/footprint-tools/argot/internal/domain"
)

// Defaults returns the built-in value of every known key.
func Defaults() map[string]string {
	out := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		out[key.Name] = key.Default
	}
	return out
}

// Get returns the value for key from the file at path, falling back to the
// key's default. found is false for keys that are neither set nor known.
func Get(path, key string) (value string, found bool) {
	if cfg, err := load(path); err == nil {
		if value, ok := cfg[key]; ok {
			return value, true
		}
	}
	return domain.GetDefaultValue(key)
}

// GetAll returns the defaults overlaid with every key set in the file.
// Unreadable or malformed files yield the defaults alone.
func GetAll(path string) (map[string]string, error) {
	result := Defaults()

	cfg, err := load(path)
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

func load(path string) (map[string]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
