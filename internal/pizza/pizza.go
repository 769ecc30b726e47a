// Package pizza models a single pizza on an order and its preparation.
package pizza

import (
	"fmt"
	"io"
	"strings"

	"github.com/lor/pizzeria/internal/catalog"
	"github.com/lor/pizzeria/internal/constants"
)

// OrderedPizza is one pizza instance on an order, with any additional
// toppings the customer chose.
type OrderedPizza struct {
	Definition catalog.PizzaDefinition `json:"definition"`
	Bake       catalog.BakeProfile     `json:"bake"`
	Toppings   []string                `json:"toppings"`
}

// New creates an ordered pizza from a menu definition. The ingredient list
// is copied so the menu cannot be changed through the order.
func New(def catalog.PizzaDefinition, bake catalog.BakeProfile) *OrderedPizza {
	def.Ingredients = append([]string(nil), def.Ingredients...)
	return &OrderedPizza{
		Definition: def,
		Bake:       bake,
		Toppings:   []string{},
	}
}

// Name returns the menu name of the pizza.
func (p *OrderedPizza) Name() string {
	return p.Definition.Name
}

// AddTopping appends a topping. Duplicates are kept.
func (p *OrderedPizza) AddTopping(t string) {
	p.Toppings = append(p.Toppings, t)
}

// Narrate writes the preparation sequence for this pizza: prepare, bake,
// cut, box, then the additional toppings.
func (p *OrderedPizza) Narrate(w io.Writer) error {
	lines := []string{
		strings.Repeat("-", constants.NarrationRuleWidth),
		fmt.Sprintf("Preparing %s...", p.Definition.Name),
		fmt.Sprintf("Adding %s", strings.Join(p.Definition.Ingredients, ", ")),
		fmt.Sprintf("Baking pizza for %d minutes at %d degrees...", p.Bake.Minutes, p.Bake.Temperature),
		fmt.Sprintf("Cutting pizza into %d slices...", p.Bake.Slices),
		"Putting pizza into a nice box...",
		p.toppingsLine(),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (p *OrderedPizza) toppingsLine() string {
	if len(p.Toppings) == 0 {
		return "No additional toppings"
	}
	return "Additional toppings: " + strings.Join(p.Toppings, ", ")
}
