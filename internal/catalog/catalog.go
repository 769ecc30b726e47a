// Package catalog holds the static store menus, bake profiles and topping
// allow-list for the pizzeria. The reference data ships embedded in the
// binary; an operator may point at an alternative YAML file with the same
// layout to add locations.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// ErrInvalidCatalog is wrapped by every validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// DefaultBakeProfile applies to any pizza without an explicit bake profile.
var DefaultBakeProfile = BakeProfile{Minutes: 20, Temperature: 200, Slices: 8}

// PizzaDefinition is one entry on a store's menu.
type PizzaDefinition struct {
	Name        string          `json:"name"`
	Ingredients []string        `json:"ingredients"`
	BasePrice   decimal.Decimal `json:"base_price"`
}

// BakeProfile describes how a pizza is baked and cut.
type BakeProfile struct {
	Minutes     int `json:"minutes"`
	Temperature int `json:"temperature"`
	Slices      int `json:"slices"`
}

// StoreMenu is the fixed menu of a single location.
type StoreMenu struct {
	Location string            `json:"location"`
	Pizzas   []PizzaDefinition `json:"pizzas"`
}

// Catalog is the full set of static data shared by a session.
type Catalog struct {
	stores   []StoreMenu
	bake     map[string]BakeProfile
	toppings []string
}

// file mirrors the YAML layout.
type file struct {
	Stores []struct {
		Location string `yaml:"location"`
		Pizzas   []struct {
			Name        string   `yaml:"name"`
			Ingredients []string `yaml:"ingredients"`
			Price       string   `yaml:"price"`
		} `yaml:"pizzas"`
	} `yaml:"stores"`
	BakeProfiles []struct {
		Name        string `yaml:"name"`
		Minutes     int    `yaml:"minutes"`
		Temperature int    `yaml:"temperature"`
		Slices      int    `yaml:"slices"`
	} `yaml:"bake_profiles"`
	Toppings []string `yaml:"toppings"`
}

// Default returns the embedded reference catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// LoadFromFile reads and validates a catalog from a YAML file.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	cat := &Catalog{
		bake:     make(map[string]BakeProfile, len(f.BakeProfiles)),
		toppings: make([]string, 0, len(f.Toppings)),
	}

	for _, s := range f.Stores {
		menu := StoreMenu{Location: strings.TrimSpace(s.Location)}
		for _, p := range s.Pizzas {
			price, err := decimal.NewFromString(strings.TrimSpace(p.Price))
			if err != nil {
				return nil, fmt.Errorf("%w: %s/%s: bad price %q", ErrInvalidCatalog, menu.Location, p.Name, p.Price)
			}
			menu.Pizzas = append(menu.Pizzas, PizzaDefinition{
				Name:        strings.TrimSpace(p.Name),
				Ingredients: append([]string(nil), p.Ingredients...),
				BasePrice:   price,
			})
		}
		cat.stores = append(cat.stores, menu)
	}

	for _, b := range f.BakeProfiles {
		key := normalize(b.Name)
		if _, dup := cat.bake[key]; dup {
			return nil, fmt.Errorf("%w: duplicate bake profile %q", ErrInvalidCatalog, b.Name)
		}
		cat.bake[key] = BakeProfile{Minutes: b.Minutes, Temperature: b.Temperature, Slices: b.Slices}
	}

	for _, t := range f.Toppings {
		cat.toppings = append(cat.toppings, normalize(t))
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Validate checks the catalog invariants: unique locations, unique pizza
// names per store (case-insensitive), sane prices and bake parameters.
func (c *Catalog) Validate() error {
	if len(c.stores) == 0 {
		return fmt.Errorf("%w: no stores defined", ErrInvalidCatalog)
	}

	locations := make(map[string]bool, len(c.stores))
	for _, s := range c.stores {
		key := normalize(s.Location)
		if key == "" {
			return fmt.Errorf("%w: store with empty location", ErrInvalidCatalog)
		}
		if locations[key] {
			return fmt.Errorf("%w: duplicate location %q", ErrInvalidCatalog, s.Location)
		}
		locations[key] = true

		names := make(map[string]bool, len(s.Pizzas))
		for _, p := range s.Pizzas {
			name := normalize(p.Name)
			if name == "" {
				return fmt.Errorf("%w: %s: pizza with empty name", ErrInvalidCatalog, s.Location)
			}
			if names[name] {
				return fmt.Errorf("%w: %s: duplicate pizza %q", ErrInvalidCatalog, s.Location, p.Name)
			}
			names[name] = true
			if p.BasePrice.IsNegative() {
				return fmt.Errorf("%w: %s/%s: negative price", ErrInvalidCatalog, s.Location, p.Name)
			}
		}
	}

	for name, b := range c.bake {
		if b.Minutes <= 0 || b.Temperature <= 0 || b.Slices <= 0 {
			return fmt.Errorf("%w: bake profile %q must have positive values", ErrInvalidCatalog, name)
		}
	}

	seen := make(map[string]bool, len(c.toppings))
	for _, t := range c.toppings {
		if t == "" {
			return fmt.Errorf("%w: empty topping", ErrInvalidCatalog)
		}
		if seen[t] {
			return fmt.Errorf("%w: duplicate topping %q", ErrInvalidCatalog, t)
		}
		seen[t] = true
	}

	return nil
}

// Locations returns the supported store locations in catalog order.
func (c *Catalog) Locations() []string {
	out := make([]string, len(c.stores))
	for i, s := range c.stores {
		out[i] = s.Location
	}
	return out
}

// Menu returns the menu for a location, matched case-insensitively.
func (c *Catalog) Menu(location string) (StoreMenu, bool) {
	key := normalize(location)
	for _, s := range c.stores {
		if normalize(s.Location) == key {
			return s.clone(), true
		}
	}
	return StoreMenu{}, false
}

// Menus returns every store menu in catalog order.
func (c *Catalog) Menus() []StoreMenu {
	out := make([]StoreMenu, len(c.stores))
	for i, s := range c.stores {
		out[i] = s.clone()
	}
	return out
}

// BakeProfileFor looks up the bake profile for a pizza name, falling back
// to DefaultBakeProfile for names without an entry.
func (c *Catalog) BakeProfileFor(name string) BakeProfile {
	if b, ok := c.bake[normalize(name)]; ok {
		return b
	}
	return DefaultBakeProfile
}

// ToppingAllowList returns the valid additional toppings.
func (c *Catalog) ToppingAllowList() []string {
	return append([]string(nil), c.toppings...)
}

// IsAllowedTopping reports whether t is on the allow-list. The candidate is
// expected to be trimmed and lower-cased already.
func (c *Catalog) IsAllowedTopping(t string) bool {
	for _, allowed := range c.toppings {
		if allowed == t {
			return true
		}
	}
	return false
}

func (s StoreMenu) clone() StoreMenu {
	out := StoreMenu{Location: s.Location, Pizzas: make([]PizzaDefinition, len(s.Pizzas))}
	for i, p := range s.Pizzas {
		p.Ingredients = append([]string(nil), p.Ingredients...)
		out.Pizzas[i] = p
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
