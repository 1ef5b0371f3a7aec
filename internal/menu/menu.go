// Package menu loads the static menu shown on the site.
package menu

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed menu.toml
var defaultMenu []byte

// Menu is the ordered list of categories rendered in the menu section.
type Menu struct {
	Categories []Category `toml:"categories" yaml:"categories"`
}

// Category groups related dishes under a heading.
type Category struct {
	Name  string `toml:"name" yaml:"name"`
	Items []Item `toml:"items" yaml:"items"`
}

// Item is a single dish.
type Item struct {
	ID          string   `toml:"id" yaml:"id"`
	Name        string   `toml:"name" yaml:"name"`
	Description string   `toml:"description" yaml:"description"`
	Price       float64  `toml:"price" yaml:"price"`
	Image       string   `toml:"image" yaml:"image"`
	Tags        []string `toml:"tags" yaml:"tags"`
}

// ErrEmpty is returned when a menu has no categories.
var ErrEmpty = errors.New("menu: no categories")

// Default returns the embedded menu.
func Default() Menu {
	m, err := decodeTOML(defaultMenu)
	if err != nil {
		panic(fmt.Sprintf("menu: embedded menu is invalid: %v", err))
	}
	return m
}

// Load reads a menu from path. TOML is used unless the file has a .yaml or
// .yml extension. An empty path returns Default.
func Load(path string) (Menu, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Menu{}, fmt.Errorf("read menu: %w", err)
	}

	var m Menu
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err = decodeYAML(data)
	default:
		m, err = decodeTOML(data)
	}
	if err != nil {
		return Menu{}, fmt.Errorf("decode menu %s: %w", filepath.Base(path), err)
	}
	return m, nil
}

func decodeTOML(data []byte) (Menu, error) {
	var m Menu
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&m)
	if err != nil {
		return Menu{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Menu{}, fmt.Errorf("unknown keys: %v", undecoded)
	}
	return m, m.Validate()
}

func decodeYAML(data []byte) (Menu, error) {
	var m Menu
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return Menu{}, err
	}
	return m, m.Validate()
}

// Validate checks that the menu can be rendered.
func (m Menu) Validate() error {
	if len(m.Categories) == 0 {
		return ErrEmpty
	}
	seen := make(map[string]struct{})
	for _, category := range m.Categories {
		if strings.TrimSpace(category.Name) == "" {
			return errors.New("menu: category name must not be empty")
		}
		for _, item := range category.Items {
			if strings.TrimSpace(item.ID) == "" {
				return fmt.Errorf("menu: item %q in %s has no id", item.Name, category.Name)
			}
			if _, dup := seen[item.ID]; dup {
				return fmt.Errorf("menu: duplicate item id %q", item.ID)
			}
			seen[item.ID] = struct{}{}
			if strings.TrimSpace(item.Name) == "" {
				return fmt.Errorf("menu: item %s has no name", item.ID)
			}
			if item.Price < 0 {
				return fmt.Errorf("menu: item %s has a negative price", item.ID)
			}
		}
	}
	return nil
}

// ItemCount returns the number of dishes across all categories.
func (m Menu) ItemCount() int {
	n := 0
	for _, category := range m.Categories {
		n += len(category.Items)
	}
	return n
}

// FormatPrice renders a price with a dollar sign and two decimals.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
