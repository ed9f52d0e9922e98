// Package assets holds the bundled icon and color tables and merges
// user overrides from ~/.config/colorls on top of them.
package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed yaml/*.yaml
var bundled embed.FS

// Table names understood by Loader.
const (
	Files         = "files.yaml"
	FileAliases   = "file_aliases.yaml"
	Folders       = "folders.yaml"
	FolderAliases = "folder_aliases.yaml"
	DarkColors    = "dark_colors.yaml"
	LightColors   = "light_colors.yaml"
)

// Loader reads key/value tables. A file with the same name inside UserDir
// is merged over the bundled copy, user values winning on collision.
type Loader struct {
	UserDir string
}

// DefaultUserDir returns ~/.config/colorls.
func DefaultUserDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "colorls"), nil
}

// NewLoader returns a loader that honours the user's override directory.
// When the home directory cannot be resolved only bundled tables are used.
func NewLoader() Loader {
	dir, err := DefaultUserDir()
	if err != nil {
		return Loader{}
	}
	return Loader{UserDir: dir}
}

// Load returns the merged table for name.
func (l Loader) Load(name string) (map[string]string, error) {
	data, err := bundled.ReadFile("yaml/" + name)
	if err != nil {
		return nil, fmt.Errorf("unknown table %s: %w", name, err)
	}
	table, err := parseTable(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled %s: %w", name, err)
	}

	if l.UserDir == "" {
		return table, nil
	}
	path := filepath.Join(l.UserDir, name)
	userData, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	override, err := parseTable(userData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for k, v := range override {
		table[k] = v
	}
	return table, nil
}

// LoadAll loads every table in names, failing on the first error.
func (l Loader) LoadAll(names ...string) (map[string]map[string]string, error) {
	out := make(map[string]map[string]string, len(names))
	for _, name := range names {
		t, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		out[name] = t
	}
	return out, nil
}

func parseTable(data []byte) (map[string]string, error) {
	table := make(map[string]string)
	if len(strings.TrimSpace(string(data))) == 0 {
		return table, nil
	}
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for k, v := range raw {
		table[k] = v
	}
	return table, nil
}
