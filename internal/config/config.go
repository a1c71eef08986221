package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/headless-menu/internal/app"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth            = "HEADLESS_MENU_WIDTH"
	envHeight           = "HEADLESS_MENU_HEIGHT"
	envShowFooter       = "HEADLESS_MENU_FOOTER"
	envTrace            = "HEADLESS_MENU_TRACE"
	envLogFile          = "HEADLESS_MENU_LOG_FILE"
	envMenuFile         = "HEADLESS_MENU_MENUS"
	envTypeahead        = "HEADLESS_MENU_TYPEAHEAD"
	envTypeaheadTimeout = "HEADLESS_MENU_TYPEAHEAD_TIMEOUT"
	envCloseOnSelect    = "HEADLESS_MENU_CLOSE_ON_SELECT"

	defaultEnvFile          = ".env"
	defaultTypeaheadTimeout = 500 * time.Millisecond
)

// Load parses configuration from CLI arguments, environment variables and
// an optional .env file in the working directory. The process environment
// wins over the file.
func Load() (Config, error) {
	environ, err := withEnvFile(defaultEnvFile, os.Environ())
	if err != nil {
		return Config{}, err
	}
	return LoadArgs(os.Args[1:], environ)
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	set := pflag.NewFlagSet("headless-menu", pflag.ContinueOnError)
	set.SetOutput(new(strings.Builder))

	width := set.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := set.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := set.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint footer")
	trace := set.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := set.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	menuFile := set.String("menus", envOrDefault(env, envMenuFile, ""), "YAML or TOML file describing the menus")
	typeahead := set.Bool("typeahead", envOrBool(env, envTypeahead, true), "jump to items by typing their label")
	typeaheadTimeout := set.Duration("typeahead-timeout", envOrDuration(env, envTypeaheadTimeout, defaultTypeaheadTimeout), "idle time after which typeahead starts a new query")
	closeOnSelect := set.Bool("close-on-select", envOrBool(env, envCloseOnSelect, true), "close a menu when one of its items is chosen")

	if err := set.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	menus := app.DefaultMenus()
	if strings.TrimSpace(*menuFile) != "" {
		loaded, err := LoadMenus(*menuFile)
		if err != nil {
			return Config{}, err
		}
		menus = loaded
	}

	cfg := Config{
		App: app.Config{
			Width:            *width,
			Height:           *height,
			ShowFooter:       *footer,
			Typeahead:        *typeahead,
			TypeaheadTimeout: *typeaheadTimeout,
			CloseOnSelect:    *closeOnSelect,
			Menus:            menus,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":            strconv.Itoa(*width),
			"height":           strconv.Itoa(*height),
			"footer":           strconv.FormatBool(*footer),
			"trace":            strconv.FormatBool(*trace),
			"logFile":          *logFile,
			"menus":            *menuFile,
			"typeahead":        strconv.FormatBool(*typeahead),
			"typeaheadTimeout": typeaheadTimeout.String(),
			"closeOnSelect":    strconv.FormatBool(*closeOnSelect),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// withEnvFile prepends the entries of a dotenv file to environ so that
// later, real environment entries override them. A missing file is not an
// error.
func withEnvFile(path string, environ []string) ([]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return environ, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	merged := make([]string, 0, len(values)+len(environ))
	for k, v := range values {
		merged = append(merged, k+"="+v)
	}
	return append(merged, environ...), nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
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

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
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

// Validate checks values that flags alone cannot constrain.
func Validate(cfg Config) error {
	if cfg.App.Typeahead && cfg.App.TypeaheadTimeout <= 0 {
		return fmt.Errorf("typeahead timeout must be > 0 (got %s)", cfg.App.TypeaheadTimeout)
	}
	return validateMenus(cfg.App.Menus)
}
