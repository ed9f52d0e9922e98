package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agusx1211/colorls/internal/assets"
)

const configFileName = "config.yaml"

type configProfile struct {
	Ignore    []string `yaml:"ignore"`
	GitIgnore *bool    `yaml:"gitignore"`
}

type configFile struct {
	Format    string                   `yaml:"format"`
	Ignore    []string                 `yaml:"ignore"`
	GitIgnore bool                     `yaml:"gitignore"`
	Profiles  map[string]configProfile `yaml:"profiles"`
}

// settings are the defaults read from the config file, with the selected
// profile applied.
type settings struct {
	format    string
	ignore    []string
	gitIgnore bool
	// profile is the profile that was applied, empty when none matched.
	profile string
}

func defaultConfigPath() (string, error) {
	dir, err := assets.DefaultUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// readConfigFile loads path and applies profile, falling back to the
// "default" profile. A missing or empty file yields zero settings.
func readConfigFile(path string, profile string) (*settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &settings{}, nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return &settings{}, nil
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	s := &settings{
		ignore:    append([]string{}, cfg.Ignore...),
		gitIgnore: cfg.GitIgnore,
	}
	if cfg.Format != "" {
		format, ok := normalizeFormat(cfg.Format)
		if !ok {
			return nil, fmt.Errorf("invalid format %q in %s (expected vertical, horizontal, long, single-column, or tree)", cfg.Format, path)
		}
		s.format = format
	}

	if len(cfg.Profiles) > 0 {
		name := profile
		prof, ok := cfg.Profiles[name]
		if !ok {
			name = "default"
			prof, ok = cfg.Profiles[name]
		}
		if ok {
			s.profile = name
			s.ignore = append(s.ignore, prof.Ignore...)
			if prof.GitIgnore != nil {
				s.gitIgnore = *prof.GitIgnore
			}
		}
	}
	return s, nil
}
