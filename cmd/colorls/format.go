package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agusx1211/colorls/internal/listing"
)

const (
	formatVertical     = "vertical"
	formatHorizontal   = "horizontal"
	formatLong         = "long"
	formatSingleColumn = "single-column"
	formatTree         = "tree"
)

func normalizeFormat(word string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(word))
	switch w {
	case formatVertical, "columns", "column", "-c":
		return formatVertical, true
	case formatHorizontal, "across", "commas", "-x":
		return formatHorizontal, true
	case formatLong, "verbose", "-l":
		return formatLong, true
	case formatSingleColumn, "single", "one-per-line", "1", "-1":
		return formatSingleColumn, true
	case formatTree:
		return formatTree, true
	default:
		return "", false
	}
}

func formatMode(word string) listing.Mode {
	switch word {
	case formatHorizontal:
		return listing.Horizontal
	case formatLong:
		return listing.Long
	case formatSingleColumn:
		return listing.SingleColumn
	case formatTree:
		return listing.Tree
	default:
		return listing.Vertical
	}
}

// writeDefaultFormatToFile stores format in the config file, keeping every
// other key already present.
func writeDefaultFormatToFile(path string, format string) error {
	normalized, ok := normalizeFormat(format)
	if !ok {
		return fmt.Errorf("invalid format %q (expected vertical, horizontal, long, single-column, or tree)", format)
	}
	var cfg map[string]any
	data, err := os.ReadFile(path)
	if err == nil {
		if len(strings.TrimSpace(string(data))) > 0 {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	} else if !os.IsNotExist(err) {
		return err
	}
	if cfg == nil {
		cfg = make(map[string]any)
	}
	cfg["format"] = normalized
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, out, perm)
}
