// Package fare prices toll trips.
//
// It holds the fixed route table (interchange positions), the calendar rules
// (national holidays, weekends, plate-parity discount days) and the Calculator
// that combines them into a domain.Fare. Everything here is pure: no I/O and
// no mutable package state.
package fare

import (
	"fmt"

	"github.com/pkordes/toll-plaza/internal/domain"
)

// Interchange is a named point on the route and its position in route units.
type Interchange struct {
	Name     string
	Position int
}

// interchanges is the route in travel order. Positions are unique.
var interchanges = []Interchange{
	{Name: "Zero Point", Position: 0},
	{Name: "NS Interchange", Position: 5},
	{Name: "Ph4 Interchange", Position: 10},
	{Name: "Ferozpur Interchange", Position: 17},
	{Name: "Lake City Interchange", Position: 24},
	{Name: "Raiwand Interchange", Position: 29},
	{Name: "Bahria Interchange", Position: 34},
}

// Route resolves interchange names to positions. The zero value is an empty
// route; use DefaultRoute.
type Route struct {
	ordered   []Interchange
	positions map[string]int
}

// defaultRoute is built once and never mutated.
var defaultRoute = NewRoute(interchanges)

// DefaultRoute returns the tolled route.
func DefaultRoute() Route {
	return defaultRoute
}

// NewRoute builds a Route from the given interchanges. The slice is copied.
func NewRoute(points []Interchange) Route {
	r := Route{
		ordered:   make([]Interchange, len(points)),
		positions: make(map[string]int, len(points)),
	}
	copy(r.ordered, points)
	for _, p := range points {
		r.positions[p.Name] = p.Position
	}
	return r
}

// Has reports whether name is an interchange on the route.
func (r Route) Has(name string) bool {
	_, ok := r.positions[name]
	return ok
}

// Interchanges returns a copy of the route table in travel order.
func (r Route) Interchanges() []Interchange {
	out := make([]Interchange, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Distance returns the absolute distance between two interchanges.
// Returns domain.ErrUnknownInterchange if either name is not on the route.
func (r Route) Distance(from, to string) (int, error) {
	a, ok := r.positions[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownInterchange, from)
	}
	b, ok := r.positions[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownInterchange, to)
	}
	if a > b {
		return a - b, nil
	}
	return b - a, nil
}
