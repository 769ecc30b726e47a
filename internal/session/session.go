// Package session drives one interactive ordering dialogue over a
// line-oriented reader and writer: choose a store, order pizzas with
// optional toppings, then watch them being prepared and get a receipt.
//
// Every customer mistake is an expected outcome. Unknown pizzas, empty
// pizza names and rejected toppings are reported and skipped; an empty or
// unknown location and an invalid pizza count end the session early and are
// returned as abort errors (see IsAbort).
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lor/pizzeria/internal/catalog"
	"github.com/lor/pizzeria/internal/constants"
	"github.com/lor/pizzeria/internal/logging"
	"github.com/lor/pizzeria/internal/order"
	"github.com/lor/pizzeria/internal/pizza"
	"github.com/lor/pizzeria/internal/store"
)

// ErrInvalidPizzaCount is returned when the pizza count is not a positive integer.
var ErrInvalidPizzaCount = errors.New("invalid number of pizzas")

// IsAbort reports whether err ended the session because of customer input
// rather than an I/O or context failure.
func IsAbort(err error) bool {
	return errors.Is(err, store.ErrEmptyLocation) ||
		errors.Is(err, store.ErrUnknownLocation) ||
		errors.Is(err, ErrInvalidPizzaCount)
}

// Result summarises a completed session.
type Result struct {
	Store *store.Store
	Order *order.Order

	// Requested is the number of pizzas the customer asked for.
	Requested int

	// Skipped counts slots that produced no pizza (empty or unknown name).
	Skipped int

	// RejectedToppings counts topping candidates not on the allow-list.
	RejectedToppings int
}

// Session is a single ordering dialogue. It is not safe for concurrent use.
type Session struct {
	catalog *catalog.Catalog
	in      *bufio.Reader
	out     io.Writer
	log     *slog.Logger
	err     error
}

// New creates a session reading answers from in and writing prompts to out.
// A nil logger discards log output.
func New(cat *catalog.Catalog, in io.Reader, out io.Writer, log *slog.Logger) *Session {
	if log == nil {
		log = logging.Discard()
	}
	return &Session{
		catalog: cat,
		in:      bufio.NewReader(in),
		out:     out,
		log:     log,
	}
}

// Run executes the dialogue. The returned error is either an abort (see
// IsAbort), in which case the reason has already been shown to the customer,
// or an I/O or context error.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	st, err := s.chooseStore(ctx)
	if err != nil {
		return nil, err
	}

	if err := st.WriteMenu(s.out); err != nil {
		return nil, fmt.Errorf("writing menu: %w", err)
	}

	count, err := s.askCount(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{Store: st, Order: order.New(), Requested: count}
	s.log.Debug("order started", "order_id", res.Order.ID(), "store", st.Location(), "requested", count)

	for i := 0; i < count; i++ {
		if err := s.takePizza(ctx, st, res); err != nil {
			return nil, err
		}
	}

	if err := s.finish(res.Order); err != nil {
		return nil, err
	}

	s.log.Info("session complete",
		"order_id", res.Order.ID(),
		"store", st.Location(),
		"pizzas", len(res.Order.Items()),
		"skipped", res.Skipped,
		"total", res.Order.Total().String(),
	)
	return res, nil
}

func (s *Session) chooseStore(ctx context.Context) (*store.Store, error) {
	s.say("Welcome to LOR Pizzeria! Please select the store location: %s",
		strings.Join(s.catalog.Locations(), " OR "))

	line, err := s.readLine(ctx)
	if err != nil {
		return nil, err
	}

	st, err := store.Resolve(s.catalog, line)
	switch {
	case errors.Is(err, store.ErrEmptyLocation):
		s.say("No store location provided. Please try again...")
	case errors.Is(err, store.ErrUnknownLocation):
		s.say("Invalid store location. Please try again...")
	case err == nil:
		s.log.Debug("store resolved", "location", st.Location())
	}
	if s.err != nil {
		return nil, s.err
	}
	if err != nil {
		s.log.Info("session aborted", "reason", err)
		return nil, err
	}
	return st, nil
}

func (s *Session) askCount(ctx context.Context) (int, error) {
	s.say("How many pizzas would you like to order?")

	line, err := s.readLine(ctx)
	if err != nil {
		return 0, err
	}

	count, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || count < 1 {
		s.say("Invalid number of pizzas. Please try again...")
		if s.err != nil {
			return 0, s.err
		}
		s.log.Info("session aborted", "reason", ErrInvalidPizzaCount, "input", line)
		return 0, fmt.Errorf("%w: %q", ErrInvalidPizzaCount, line)
	}
	return count, nil
}

func (s *Session) takePizza(ctx context.Context, st *store.Store, res *Result) error {
	s.say("What can I get you?")

	name, err := s.readLine(ctx)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	if name == "" {
		s.say("No pizza type provided.")
		res.Skipped++
		return s.err
	}

	p, err := st.OrderPizza(name)
	if err != nil {
		s.log.Debug("pizza not on menu", "name", name, "store", st.Location())
		s.say("Sorry, we don't have %s pizza.", name)
		res.Skipped++
		return s.err
	}

	toppings, rejected, err := s.askToppings(ctx)
	if err != nil {
		return err
	}
	res.RejectedToppings += rejected

	res.Order.AddPizza(p, toppings)
	s.log.Debug("pizza added",
		"order_id", res.Order.ID(),
		"pizza", p.Name(),
		"toppings", toppings,
		"total", res.Order.Total().String(),
	)
	return nil
}

func (s *Session) askToppings(ctx context.Context) ([]string, int, error) {
	s.say("Would you like any additional toppings? Available: %s (comma-separated, press Enter for none)",
		strings.Join(s.catalog.ToppingAllowList(), ", "))

	line, err := s.readLine(ctx)
	if err != nil {
		return nil, 0, err
	}

	sel := pizza.ParseToppings(line, s.catalog.IsAllowedTopping)
	for _, t := range sel.Rejected {
		s.log.Debug("topping rejected", "topping", t)
		s.say("Sorry, %s is not an available topping.", t)
	}
	return sel.Accepted, len(sel.Rejected), s.err
}

func (s *Session) finish(o *order.Order) error {
	if !o.HasPizzas() {
		s.say("\nNo pizzas ordered.")
		return s.err
	}

	if err := o.Prepare(s.out); err != nil {
		return fmt.Errorf("preparing order: %w", err)
	}
	s.say("\nYour order is ready!")
	if s.err != nil {
		return s.err
	}
	if err := o.WriteReceipt(s.out); err != nil {
		return fmt.Errorf("writing receipt: %w", err)
	}
	return nil
}

// readLine returns the next input line. End of input reads as an empty
// line, and so does a line longer than constants.MaxInputLineLen, which is
// consumed in full so the following answers stay aligned with their prompts.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.err != nil {
		return "", s.err
	}

	var buf []byte
	tooLong := false
	for {
		frag, err := s.in.ReadSlice('\n')
		if !tooLong && len(buf)+len(frag) <= constants.MaxInputLineLen+2 {
			buf = append(buf, frag...)
		} else {
			tooLong = true
		}
		if err == nil {
			break
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if len(buf) == 0 && !tooLong {
				s.log.Log(ctx, logging.LevelTrace, "end of input")
				return "", nil
			}
			break
		}
		return "", fmt.Errorf("reading input: %w", err)
	}

	line := strings.TrimRight(string(buf), "\r\n")
	if tooLong || len(line) > constants.MaxInputLineLen {
		s.log.Debug("input line too long, treated as empty", "limit", constants.MaxInputLineLen)
		return "", nil
	}
	s.log.Log(ctx, logging.LevelTrace, "input", "line", line)
	return line, nil
}

// say writes one line to the customer. The first write error sticks and is
// reported by the caller.
func (s *Session) say(format string, args ...any) {
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintf(s.out, format+"\n", args...); err != nil {
		s.err = fmt.Errorf("writing output: %w", err)
	}
}
