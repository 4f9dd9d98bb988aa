// Package session holds the mutable record of one shopping run: where the
// browser is, what products are on screen, the cart count and the step counters.
package session

import (
	"github.com/entrhq/shopsim/pkg/browser"
)

// PageKind is the engine's view of the current page.
type PageKind string

const (
	PageHomepage       PageKind = "homepage"
	PageSearchResults  PageKind = "search_results"
	PageProductDetails PageKind = "product_details"
	PageCart           PageKind = "cart"
)

// MaxVisibleProducts caps how many product cards are tracked at once.
const MaxVisibleProducts = 6

// Product is one product card as last extracted. Handle is only valid until the
// next navigation.
type Product struct {
	Name   string
	Price  int
	Handle browser.Element
	Index  int
}

// Counters track dispatched operations. Both only ever increase.
type Counters struct {
	Attempts  int `json:"attempts"`
	Successes int `json:"successes"`
}

// SuccessRate is successes/max(attempts,1).
func (c Counters) SuccessRate() float64 {
	attempts := c.Attempts
	if attempts < 1 {
		attempts = 1
	}
	return float64(c.Successes) / float64(attempts)
}

// State is owned by a single engine for the lifetime of a session.
type State struct {
	PageKind PageKind
	Products []Product

	// CartItems is the engine's own count, never negative.
	CartItems int

	// ObservedCartItems is the count last read from the cart page, or -1 if the
	// cart has not been viewed. It may legitimately differ from CartItems.
	ObservedCartItems int

	Counters Counters
}

// NewState returns the state of a fresh session on the homepage.
func NewState() *State {
	return &State{
		PageKind:          PageHomepage,
		ObservedCartItems: -1,
	}
}

// SetProducts replaces the visible products wholesale, keeping at most
// MaxVisibleProducts and renumbering them from zero.
func (s *State) SetProducts(products []Product) {
	if len(products) > MaxVisibleProducts {
		products = products[:MaxVisibleProducts]
	}
	out := make([]Product, len(products))
	for i, p := range products {
		p.Index = i
		out[i] = p
	}
	s.Products = out
}

// ClearProducts forgets the visible products, e.g. after navigating away.
func (s *State) ClearProducts() {
	s.Products = nil
}

// Product returns the product at index, if present.
func (s *State) Product(index int) (Product, bool) {
	if index < 0 || index >= len(s.Products) {
		return Product{}, false
	}
	return s.Products[index], true
}

// AddToCart increments the engine's cart count.
func (s *State) AddToCart() {
	s.CartItems++
}

// RemoveFromCart decrements the engine's cart count, stopping at zero.
func (s *State) RemoveFromCart() {
	if s.CartItems > 0 {
		s.CartItems--
	}
}

// Record counts one dispatched operation.
func (s *State) Record(success bool) {
	s.Counters.Attempts++
	if success {
		s.Counters.Successes++
	}
}

// CartDiverged reports whether the cart was viewed and showed a different count
// than the engine tracks.
func (s *State) CartDiverged() bool {
	return s.ObservedCartItems >= 0 && s.ObservedCartItems != s.CartItems
}
