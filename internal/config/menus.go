package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/headless-menu/internal/app"
	"gopkg.in/yaml.v3"
)

// ErrMenuFormat reports a menu file with an unsupported extension.
var ErrMenuFormat = errors.New("unsupported menu file format")

type menuFile struct {
	Menus []menuEntry `yaml:"menus" toml:"menus"`
}

type menuEntry struct {
	ID    string   `yaml:"id" toml:"id"`
	Label string   `yaml:"label" toml:"label"`
	Items []string `yaml:"items" toml:"items"`
}

// LoadMenus reads menu definitions from a .yaml/.yml or .toml file.
func LoadMenus(path string) ([]app.MenuSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menus: %w", err)
	}
	var file menuFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		_, err = toml.Decode(string(data), &file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrMenuFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	menus := make([]app.MenuSpec, 0, len(file.Menus))
	for _, entry := range file.Menus {
		label := entry.Label
		if label == "" {
			label = entry.ID
		}
		menus = append(menus, app.MenuSpec{
			ID:    strings.TrimSpace(entry.ID),
			Label: label,
			Items: append([]string(nil), entry.Items...),
		})
	}
	if err := validateMenus(menus); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return menus, nil
}

func validateMenus(menus []app.MenuSpec) error {
	if len(menus) == 0 {
		return errors.New("at least one menu is required")
	}
	seen := make(map[string]struct{}, len(menus))
	for i, m := range menus {
		if m.ID == "" {
			return fmt.Errorf("menu %d: id is required", i)
		}
		if _, ok := seen[m.ID]; ok {
			return fmt.Errorf("menu %q: duplicate id", m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}
