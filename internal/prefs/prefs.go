// Package prefs persists logsift user preferences.
// Preferences are stored in ~/.config/logsift/prefs.toml and are written when
// the theme is changed from the pager.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/logsift/internal/config"
)

// Prefs holds user preferences for logsift.
type Prefs struct {
	Theme string `toml:"theme"`
}

// DefaultPath is used when no preferences path is given.
const DefaultPath = "~/.config/logsift/prefs.toml"

// Load reads preferences from path. A missing or unreadable file yields the
// zero Prefs; preferences never stop a run.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Prefs{}
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}
	}
	p.Theme = strings.TrimSpace(p.Theme)
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(DefaultPath)
	}
	return config.ExpandPath(path)
}
