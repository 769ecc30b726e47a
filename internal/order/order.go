// Package order accumulates ordered pizzas, keeps the running total and
// runs the simulated fulfilment.
package order

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/lor/pizzeria/internal/constants"
	"github.com/lor/pizzeria/internal/pizza"
	"github.com/shopspring/decimal"
)

// Order is the set of pizzas for one session. Toppings never change the
// price: the total is always the sum of the items' base prices.
type Order struct {
	id        string
	items     []*pizza.OrderedPizza
	total     decimal.Decimal
	fulfilled bool
}

// New creates an empty order with a fresh ID.
func New() *Order {
	return &Order{
		id:    uuid.New().String(),
		total: decimal.Zero,
	}
}

// AddPizza appends toppings to p, adds p to the order and increases the
// total by its base price. Adding after Prepare is not guarded.
func (o *Order) AddPizza(p *pizza.OrderedPizza, toppings []string) {
	for _, t := range toppings {
		p.AddTopping(t)
	}
	o.items = append(o.items, p)
	o.total = o.total.Add(p.Definition.BasePrice)
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// HasPizzas reports whether at least one pizza has been added.
func (o *Order) HasPizzas() bool {
	return len(o.items) > 0
}

// Items returns the pizzas in insertion order.
func (o *Order) Items() []*pizza.OrderedPizza {
	out := make([]*pizza.OrderedPizza, len(o.items))
	copy(out, o.items)
	return out
}

// Total returns the sum of the base prices of all items.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Fulfilled reports whether Prepare has run.
func (o *Order) Fulfilled() bool {
	return o.fulfilled
}

// Prepare narrates the preparation of every pizza in insertion order.
func (o *Order) Prepare(w io.Writer) error {
	for i, p := range o.items {
		if err := p.Narrate(w); err != nil {
			return fmt.Errorf("narrating pizza %d (%s): %w", i+1, p.Name(), err)
		}
	}
	o.fulfilled = true
	return nil
}

// WriteReceipt writes the total price line.
func (o *Order) WriteReceipt(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Total price: %s %s\n", o.total.String(), constants.Currency)
	return err
}
