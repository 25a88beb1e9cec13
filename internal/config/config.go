package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/navkit/navshell/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Settings Settings
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const envPrefix = "NAVSHELL_"

const (
	envSettings  = "NAVSHELL_SETTINGS"
	envRoot      = "NAVSHELL_ROOT"
	envDocPath   = "NAVSHELL_DOC_PATH"
	envPrefsFile = "NAVSHELL_PREFS_FILE"
	envIconMap   = "NAVSHELL_ICON_MAP"
	envWidth     = "NAVSHELL_WIDTH"
	envHeight    = "NAVSHELL_HEIGHT"
	envFooter    = "NAVSHELL_FOOTER"
	envWatch     = "NAVSHELL_WATCH"
	envTrace     = "NAVSHELL_TRACE"
	envLogFile   = "NAVSHELL_LOG_FILE"
)

const defaultSettingsFile = "navshell.yaml"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("navshell", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	settingsPath := fs.String("settings", envOrDefault(env, envSettings, defaultSettingsFile), "path to the YAML settings file")
	root := fs.String("root", envOrDefault(env, envRoot, ""), "navigation config root: an http(s) base URL or a local directory")
	docPath := fs.String("doc-path", envOrDefault(env, envDocPath, ""), "document location of the shell, used to resolve the config path at any depth")
	prefsFile := fs.String("prefs-file", envOrDefault(env, envPrefsFile, ""), "path to the sidebar preference file")
	iconMap := fs.String("icon-map", envOrDefault(env, envIconMap, ""), "optional JSON icon map; loaded with bounded retries")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "enable footer hint row (disabled by default)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload a local navigation config when its file changes")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	settings, err := LoadSettings(*settingsPath)
	if err != nil {
		return Config{}, err
	}

	resolve := func(flagValue, settingsValue, fallback string) string {
		if flagValue != "" {
			return flagValue
		}
		if settingsValue != "" {
			return settingsValue
		}
		return fallback
	}

	initialHash := ""
	if rest := fs.Args(); len(rest) > 0 {
		initialHash = rest[0]
	}

	cfg := Config{
		App: app.Config{
			Root:        resolve(*root, settings.Root, ""),
			DocPath:     resolve(*docPath, settings.DocPath, ""),
			PrefsFile:   resolve(*prefsFile, settings.PrefsFile, DefaultSettings().PrefsFile),
			IconMap:     resolve(*iconMap, settings.IconMap, ""),
			InitialHash: initialHash,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer || settings.Footer,
			WatchConfig: *watch || settings.Watch,
		},
		Logging: Logging{
			FilePath: resolve(*logFile, settings.LogFile, ""),
			Trace:    *trace,
		},
		Settings: settings,
		Flags: map[string]string{
			"settings":  *settingsPath,
			"root":      *root,
			"docPath":   *docPath,
			"prefsFile": *prefsFile,
			"iconMap":   *iconMap,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"watch":     strconv.FormatBool(*watch),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}
