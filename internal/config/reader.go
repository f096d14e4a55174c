package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/log"
)

// ReadLines returns the raw lines of the config file at path. A missing or
// empty file is created with every visible key at its default value.
func ReadLines(path string) ([]string, error) {
	// Check if file exists and has content
	info, err := os.Stat(path)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	// Ensure correct permissions if file already existed
	if err := os.Chmod(path, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(path, lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// initializeDefaults renders every known key grouped by section. Optional
// keys are written commented out.
func initializeDefaults() []string {
	lines := []string{
		"# argot configuration",
		"# Edit values below or use: argot config set <key> <value>",
	}

	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}
		if key.Optional {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}
		lines = append(lines, key.Name+"="+quote(key.Default))
	}
	return lines
}
