package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/headless-menu/internal/app"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected terminal-sized viewport, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter || !cfg.App.Typeahead || !cfg.App.CloseOnSelect {
		t.Fatalf("expected footer, typeahead and close-on-select on by default: %#v", cfg.App)
	}
	if cfg.App.TypeaheadTimeout != defaultTypeaheadTimeout {
		t.Fatalf("expected default typeahead timeout, got %s", cfg.App.TypeaheadTimeout)
	}
	if len(cfg.App.Menus) != len(app.DefaultMenus()) {
		t.Fatalf("expected default menus, got %d", len(cfg.App.Menus))
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("expected logging defaults, got %#v", cfg.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{
		"--width", "100",
		"--height=30",
		"--footer=false",
		"--trace",
		"--log-file", "/tmp/menu.log",
		"--typeahead=false",
		"--typeahead-timeout", "1s",
		"--close-on-select=false",
	}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 100 || cfg.App.Height != 30 {
		t.Fatalf("unexpected size %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter || cfg.App.Typeahead || cfg.App.CloseOnSelect {
		t.Fatalf("expected toggles off: %#v", cfg.App)
	}
	if cfg.App.TypeaheadTimeout != time.Second {
		t.Fatalf("expected 1s timeout, got %s", cfg.App.TypeaheadTimeout)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/menu.log" {
		t.Fatalf("unexpected logging %#v", cfg.Logging)
	}
	if cfg.Flags["width"] != "100" || cfg.Flags["typeaheadTimeout"] != "1s" {
		t.Fatalf("unexpected flag echo %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args to be kept, got %v", cfg.Args)
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	environ := []string{
		envWidth + "=90",
		envHeight + "=20",
		envShowFooter + "=false",
		envTrace + "=1",
		envLogFile + "=/var/log/menu.log",
		envTypeaheadTimeout + "=250ms",
		"MALFORMED",
		"",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 90 || cfg.App.Height != 20 {
		t.Fatalf("unexpected size %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter || !cfg.Logging.Trace {
		t.Fatalf("expected env toggles to apply: %#v %#v", cfg.App, cfg.Logging)
	}
	if cfg.Logging.FilePath != "/var/log/menu.log" {
		t.Fatalf("unexpected log file %q", cfg.Logging.FilePath)
	}
	if cfg.App.TypeaheadTimeout != 250*time.Millisecond {
		t.Fatalf("unexpected timeout %s", cfg.App.TypeaheadTimeout)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--width", "70"}, []string{envWidth + "=90"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 70 {
		t.Fatalf("expected flag to win, got %d", cfg.App.Width)
	}
}

func TestInvalidEnvironmentValuesFallBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envWidth + "=wide", envShowFooter + "=maybe", envTypeaheadTimeout + "=soon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || !cfg.App.ShowFooter || cfg.App.TypeaheadTimeout != defaultTypeaheadTimeout {
		t.Fatalf("expected defaults for unparsable values: %#v", cfg.App)
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected negative width to fail")
	}
	if _, err := LoadArgs([]string{"--height", "-5"}, nil); err == nil {
		t.Fatalf("expected negative height to fail")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected unknown flag to fail")
	}
}

func TestLoadArgsMenuFile(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envMenuFile + "=testdata/menus.yaml"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.App.Menus) != 2 || cfg.App.Menus[0].ID != "view" {
		t.Fatalf("expected menus from file, got %#v", cfg.App.Menus)
	}
	if cfg.Flags["menus"] != "testdata/menus.yaml" {
		t.Fatalf("expected menus flag echo, got %q", cfg.Flags["menus"])
	}
}

func TestLoadMenusYAMLAndTOMLAgree(t *testing.T) {
	fromYAML, err := LoadMenus("testdata/menus.yaml")
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	fromTOML, err := LoadMenus("testdata/menus.toml")
	if err != nil {
		t.Fatalf("toml: %v", err)
	}
	for _, menus := range [][]app.MenuSpec{fromYAML, fromTOML} {
		if len(menus) != 2 {
			t.Fatalf("expected two menus, got %#v", menus)
		}
		if menus[0].Label != "View" || len(menus[0].Items) != 2 || menus[0].Items[1] != "Zoom out" {
			t.Fatalf("unexpected first menu %#v", menus[0])
		}
		if menus[1].ID != "tools" || menus[1].Label != "tools" || len(menus[1].Items) != 0 {
			t.Fatalf("expected label to default to id, got %#v", menus[1])
		}
	}
}

func TestLoadMenusErrors(t *testing.T) {
	if _, err := LoadMenus("testdata/missing.yaml"); err == nil {
		t.Fatalf("expected missing file to fail")
	}
	if _, err := LoadMenus("testdata/duplicate.yaml"); err == nil {
		t.Fatalf("expected duplicate ids to fail")
	}

	path := filepath.Join(t.TempDir(), "menus.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadMenus(path); !errors.Is(err, ErrMenuFormat) {
		t.Fatalf("expected ErrMenuFormat, got %v", err)
	}

	empty := filepath.Join(t.TempDir(), "menus.yml")
	if err := os.WriteFile(empty, []byte("menus: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadMenus(empty); err == nil {
		t.Fatalf("expected empty menu list to fail")
	}
}

func TestValidateTypeaheadTimeout(t *testing.T) {
	cfg, err := LoadArgs([]string{"--typeahead-timeout", "0s"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected zero timeout to fail validation")
	}
	cfg.App.Typeahead = false
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected timeout to be ignored without typeahead: %v", err)
	}
}

func TestWithEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("HEADLESS_MENU_WIDTH=60\nHEADLESS_MENU_HEIGHT=15\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	environ, err := withEnvFile(path, []string{envWidth + "=75"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 75 {
		t.Fatalf("expected process environment to win, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 15 {
		t.Fatalf("expected .env value, got %d", cfg.App.Height)
	}

	missing, err := withEnvFile(filepath.Join(dir, "absent.env"), []string{"A=1"})
	if err != nil {
		t.Fatalf("expected missing .env to be ignored: %v", err)
	}
	if len(missing) != 1 {
		t.Fatalf("expected environment untouched, got %v", missing)
	}
}
