// Package store resolves a pizzeria location to its fixed menu and turns
// menu lookups into ordered pizzas.
package store

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lor/pizzeria/internal/catalog"
	"github.com/lor/pizzeria/internal/constants"
	"github.com/lor/pizzeria/internal/pizza"
)

var (
	// ErrEmptyLocation is returned when no location was given.
	ErrEmptyLocation = errors.New("no store location provided")

	// ErrUnknownLocation is returned when the location is not in the catalog.
	ErrUnknownLocation = errors.New("unknown store location")

	// ErrPizzaNotFound is returned when a pizza is not on the store's menu.
	ErrPizzaNotFound = errors.New("pizza not found")
)

// Store is one pizzeria location with its menu. It is immutable once
// resolved.
type Store struct {
	location string
	menu     []catalog.PizzaDefinition
	bake     func(name string) catalog.BakeProfile
}

// Resolve finds the store for location, compared trimmed and
// case-insensitively against the catalog's locations.
func Resolve(cat *catalog.Catalog, location string) (*Store, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}

	menu, ok := cat.Menu(location)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, location)
	}

	return &Store{
		location: menu.Location,
		menu:     menu.Pizzas,
		bake:     cat.BakeProfileFor,
	}, nil
}

// Location returns the canonical location name.
func (s *Store) Location() string {
	return s.location
}

// Menu returns a copy of the store's pizzas in menu order.
func (s *Store) Menu() []catalog.PizzaDefinition {
	out := make([]catalog.PizzaDefinition, len(s.menu))
	copy(out, s.menu)
	return out
}

// FindByName performs an exact, case-insensitive lookup on the menu.
func (s *Store) FindByName(name string) (catalog.PizzaDefinition, bool) {
	for _, p := range s.menu {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return catalog.PizzaDefinition{}, false
}

// OrderPizza creates a new ordered pizza for name with its bake profile
// attached.
func (s *Store) OrderPizza(name string) (*pizza.OrderedPizza, error) {
	def, ok := s.FindByName(strings.TrimSpace(name))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPizzaNotFound, name)
	}
	return pizza.New(def, s.bake(def.Name)), nil
}

// WriteMenu writes the menu, one pizza per line.
func (s *Store) WriteMenu(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "MENU"); err != nil {
		return err
	}
	for _, p := range s.menu {
		if _, err := fmt.Fprintln(w, MenuLine(p)); err != nil {
			return err
		}
	}
	return nil
}

// MenuLine formats a single menu entry as
// "{name} - {ingredients} - {price} AUD".
func MenuLine(p catalog.PizzaDefinition) string {
	return fmt.Sprintf("%s - %s - %s %s",
		p.Name, strings.Join(p.Ingredients, ", "), p.BasePrice.String(), constants.Currency)
}
