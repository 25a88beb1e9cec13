package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Settings is the optional settings file. Command-line flags override it;
// it overrides the built-in defaults.
type Settings struct {
	Root      string `koanf:"root" yaml:"root"`
	DocPath   string `koanf:"doc_path" yaml:"doc_path"`
	PrefsFile string `koanf:"prefs_file" yaml:"prefs_file"`
	IconMap   string `koanf:"icon_map" yaml:"icon_map"`
	LogFile   string `koanf:"log_file" yaml:"log_file"`
	Footer    bool   `koanf:"footer" yaml:"footer"`
	Watch     bool   `koanf:"watch" yaml:"watch"`
}

// DefaultSettings returns the built-in settings baseline.
func DefaultSettings() Settings {
	return Settings{
		PrefsFile: "navshell.prefs",
	}
}

// LoadSettings reads the YAML settings file at path and overlays NAVSHELL_*
// environment variables. A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	k := koanf.New(".")
	settings := DefaultSettings()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return settings, fmt.Errorf("reading settings %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return settings, fmt.Errorf("accessing settings %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return settings, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &settings); err != nil {
		return settings, fmt.Errorf("unmarshalling settings: %w", err)
	}
	return settings, nil
}

// Save writes the settings to the given YAML file path.
func (s Settings) Save(path string) error {
	data, err := yamlv3.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshalling settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings to %s: %w", path, err)
	}
	return nil
}
