package store

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lor/pizzeria/internal/catalog"
)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() failed: %v", err)
	}
	return cat
}

func TestResolve(t *testing.T) {
	cat := newTestCatalog(t)

	tests := []struct {
		name     string
		input    string
		want     string
		wantErr  error
		menuSize int
	}{
		{"brisbane", "Brisbane", "Brisbane", nil, 3},
		{"lower case", "sydney", "Sydney", nil, 2},
		{"upper case", "GOLD COAST", "Gold Coast", nil, 3},
		{"padded", "  brisbane \n", "Brisbane", nil, 3},
		{"empty", "", "", ErrEmptyLocation, 0},
		{"blank", "   ", "", ErrEmptyLocation, 0},
		{"unknown", "Melbourne", "", ErrUnknownLocation, 0},
		{"partial", "Gold", "", ErrUnknownLocation, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Resolve(cat, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				if s != nil {
					t.Errorf("Resolve(%q) returned store on error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error = %v", tt.input, err)
			}
			if s.Location() != tt.want {
				t.Errorf("Location() = %q, want %q", s.Location(), tt.want)
			}
			if len(s.Menu()) != tt.menuSize {
				t.Errorf("len(Menu()) = %d, want %d", len(s.Menu()), tt.menuSize)
			}
		})
	}
}

func TestFindByName(t *testing.T) {
	cat := newTestCatalog(t)

	for _, loc := range cat.Locations() {
		s, err := Resolve(cat, loc)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", loc, err)
		}
		for _, p := range s.Menu() {
			for _, variant := range []string{p.Name, strings.ToLower(p.Name), strings.ToUpper(p.Name)} {
				got, ok := s.FindByName(variant)
				if !ok {
					t.Errorf("%s: FindByName(%q) not found", loc, variant)
					continue
				}
				if got.Name != p.Name {
					t.Errorf("%s: FindByName(%q).Name = %q, want %q", loc, variant, got.Name, p.Name)
				}
			}
			if _, ok := s.FindByName(p.Name[:3]); ok {
				t.Errorf("%s: FindByName(%q) matched a prefix", loc, p.Name[:3])
			}
		}
	}
}

func TestFindByName_Examples(t *testing.T) {
	s, err := Resolve(newTestCatalog(t), "Brisbane")
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := s.FindByName("margherita"); !ok {
		t.Error(`FindByName("margherita") should match Margherita`)
	}
	if _, ok := s.FindByName("marg"); ok {
		t.Error(`FindByName("marg") should not match`)
	}
	if _, ok := s.FindByName("Hawaiian"); ok {
		t.Error(`FindByName("Hawaiian") should not match`)
	}
}

func TestOrderPizza(t *testing.T) {
	cat := newTestCatalog(t)

	tests := []struct {
		location string
		name     string
		minutes  int
		temp     int
		slices   int
	}{
		{"Brisbane", "florenza", 25, 220, 6},
		{"Brisbane", "Capriciosa", 20, 200, 8},
		{"Sydney", "Inferno", 30, 230, 8},
		{"Gold Coast", " pepperoni ", 25, 210, 8},
	}

	for _, tt := range tests {
		t.Run(tt.location+"/"+tt.name, func(t *testing.T) {
			s, err := Resolve(cat, tt.location)
			if err != nil {
				t.Fatal(err)
			}
			p, err := s.OrderPizza(tt.name)
			if err != nil {
				t.Fatalf("OrderPizza(%q) error = %v", tt.name, err)
			}
			if p.Bake.Minutes != tt.minutes || p.Bake.Temperature != tt.temp || p.Bake.Slices != tt.slices {
				t.Errorf("Bake = %+v, want %d/%d/%d", p.Bake, tt.minutes, tt.temp, tt.slices)
			}
			if len(p.Toppings) != 0 {
				t.Errorf("Toppings = %v, want empty", p.Toppings)
			}
		})
	}
}

func TestOrderPizza_NotFound(t *testing.T) {
	cat := newTestCatalog(t)

	for _, loc := range cat.Locations() {
		s, _ := Resolve(cat, loc)
		p, err := s.OrderPizza("Hawaiian")
		if !errors.Is(err, ErrPizzaNotFound) {
			t.Errorf("%s: OrderPizza(Hawaiian) error = %v, want ErrPizzaNotFound", loc, err)
		}
		if p != nil {
			t.Errorf("%s: OrderPizza(Hawaiian) returned a pizza", loc)
		}
	}
}

func TestOrderPizza_IndependentInstances(t *testing.T) {
	s, _ := Resolve(newTestCatalog(t), "Sydney")

	a, _ := s.OrderPizza("Inferno")
	b, _ := s.OrderPizza("Inferno")
	a.AddTopping("mayo")
	a.Definition.Ingredients[0] = "pineapple"

	if len(b.Toppings) != 0 {
		t.Errorf("second pizza shares toppings: %v", b.Toppings)
	}
	def, _ := s.FindByName("Inferno")
	if def.Ingredients[0] != "chili peppers" {
		t.Errorf("menu mutated through ordered pizza: %v", def.Ingredients)
	}
}

func TestWriteMenu(t *testing.T) {
	s, _ := Resolve(newTestCatalog(t), "sydney")

	var buf bytes.Buffer
	if err := s.WriteMenu(&buf); err != nil {
		t.Fatalf("WriteMenu() error = %v", err)
	}

	want := "MENU\n" +
		"Capriciosa - mushrooms, cheese, ham, mozzarella - 30 AUD\n" +
		"Inferno - chili peppers, mozzarella, chicken, cheese - 31 AUD\n"
	if buf.String() != want {
		t.Errorf("WriteMenu() =\n%s\nwant:\n%s", buf.String(), want)
	}
}
