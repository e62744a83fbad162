package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// KeybindingsFile mirrors keybindings.toml.
type KeybindingsFile struct {
	Version  int                 `toml:"version"`
	Bindings map[string][]string `toml:"bindings"`
}

// LoadKeybindings reads action -> keys overrides from path. A missing file
// yields no overrides.
func LoadKeybindings(path string) (map[string][]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	var file KeybindingsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validateKeybindings(&file); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return file.Bindings, nil
}

func validateKeybindings(file *KeybindingsFile) error {
	if file.Version == 0 {
		file.Version = 1
	}
	if file.Version != 1 {
		return fmt.Errorf("unsupported version %d", file.Version)
	}
	out := make(map[string][]string, len(file.Bindings))
	actions := make([]string, 0, len(file.Bindings))
	for action := range file.Bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		name := strings.ToLower(strings.TrimSpace(action))
		if name == "" {
			return fmt.Errorf("empty action name")
		}
		keys := normalizeKeys(file.Bindings[action])
		if len(keys) == 0 {
			return fmt.Errorf("action %q has no keys", name)
		}
		out[name] = keys
	}
	file.Bindings = out
	return nil
}

func normalizeKeys(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
