package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	teeerrors "github.com/alexisbeaulieu97/teecraft/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk on top of Default,
// validates it, and returns the resulting model. Unknown keys are rejected.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, teeerrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, teeerrors.NewParseError(path, extractLine(err), err)
		}
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load resolves the effective configuration: defaults, then the optional
// file, then environment overrides.
func Load(path, envFile string) (*Config, error) {
	var cfg *Config
	if path == "" {
		d := Default()
		cfg = &d
	} else {
		parsed, err := ParseConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	if err := ApplyEnv(cfg, envFile); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
