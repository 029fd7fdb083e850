// Package config reads the clinesh configuration file, a plain key=value
// file with #-comments. Missing files and missing keys fall back to
// defaults; the shell never refuses to start over configuration.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Config holds the shell's settings.
type Config struct {
	Prompt         string
	Color          bool
	LogLevel       string
	StrictCommands bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Prompt:         ">> ",
		Color:          true,
		LogLevel:       "warn",
		StrictCommands: false,
	}
}

// Load reads the config file at path. A missing file is not an error; the
// defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return cfg, err
	}

	values, err := Parse(lines)
	if err != nil {
		return cfg, err
	}
	cfg.apply(values)
	return cfg, nil
}

// Parse turns key=value lines into a map. Blank lines and #-comments are
// skipped; values may be double-quoted to preserve surrounding spaces.
func Parse(lines []string) (map[string]string, error) {
	values := make(map[string]string)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected key=value, got %q", i+1, line)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", i+1)
		}

		value = strings.TrimSpace(value)
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		values[key] = value
	}

	return values, nil
}

func (c *Config) apply(values map[string]string) {
	if v, ok := values["prompt"]; ok {
		c.Prompt = v
	}
	if v, ok := values["color"]; ok {
		c.Color = v != "false"
	}
	if v, ok := values["log_level"]; ok {
		c.LogLevel = v
	}
	if v, ok := values["strict_commands"]; ok {
		c.StrictCommands = v == "true"
	}
}
