package pizza

import "strings"

// Selection is the outcome of checking a customer's topping input against
// the allow-list.
type Selection struct {
	Accepted []string
	Rejected []string
}

// ParseToppings splits comma-separated input, trims and lower-cases each
// candidate, and sorts it into accepted or rejected using allowed. Input
// order is preserved and duplicates are not removed.
func ParseToppings(input string, allowed func(string) bool) Selection {
	sel := Selection{Accepted: []string{}, Rejected: []string{}}
	for _, raw := range strings.Split(input, ",") {
		candidate := strings.ToLower(strings.TrimSpace(raw))
		if candidate == "" {
			continue
		}
		if allowed(candidate) {
			sel.Accepted = append(sel.Accepted, candidate)
		} else {
			sel.Rejected = append(sel.Rejected, candidate)
		}
	}
	return sel
}
