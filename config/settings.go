package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Organization and Application key the persisted window state.
const (
	Organization = "n1tr0xs"
	Application  = "fire danger map generator"
)

// WindowSettings is UI state remembered between sessions. Geometry is an
// opaque Tk geometry string such as "900x700+120+80".
type WindowSettings struct {
	Geometry string `json:"geometry"`
}

// SettingsPath returns the per-user file for the given organization and
// application, creating parent directories as needed.
func SettingsPath(org, app string) (string, error) {
	return xdg.ConfigFile(filepath.Join(org, app, "window.json"))
}

// LoadWindowSettings reads settings from path. A missing or unreadable file
// yields zero settings, which callers treat as "use default geometry".
func LoadWindowSettings(path string) (WindowSettings, error) {
	var s WindowSettings
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return WindowSettings{}, err
	}
	return s, nil
}

// Save writes the settings to path.
func (s WindowSettings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
