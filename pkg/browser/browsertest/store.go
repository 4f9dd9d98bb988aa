// Package browsertest provides an in-memory storefront implementing browser.Page
// for engine tests.
package browsertest

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/entrhq/shopsim/pkg/browser"
)

const (
	// HomeURL is the fake storefront's landing page.
	HomeURL = "https://shop.test/"
	// CartURL is the fake storefront's cart page.
	CartURL = "https://shop.test/cart/bag"
)

// Product is a tile in the fake search results. Price is the raw price text.
type Product struct {
	Name  string
	Price string
}

type kind int

const (
	kindCard kind = iota
	kindHoverAdd
	kindDetailAdd
	kindCartLine
	kindRemove
)

type elem struct {
	kind  kind
	index int
}

// Store is a scripted storefront. Fields may be set directly before use; it is not
// safe for concurrent use.
type Store struct {
	Products  []Product
	CartLines int
	Selectors browser.Selectors

	// NoHoverButton hides the add-to-bag button that appears on hover.
	NoHoverButton bool
	// FailOn makes the named method ("Navigate", "Click", ...) return the error.
	FailOn map[string]error
	// PanicOn makes the named method panic.
	PanicOn string

	URL        string
	LastSearch string
	Closed     bool
	Calls      []string

	hovered int
}

var _ browser.Browser = (*Store)(nil)

// NewStore returns a store on its home page listing products.
func NewStore(products ...Product) *Store {
	return &Store{
		Products:  products,
		Selectors: browser.DefaultSelectors(),
		URL:       "about:blank",
		hovered:   -1,
	}
}

func (s *Store) enter(ctx context.Context, method string) error {
	s.Calls = append(s.Calls, method)
	if s.PanicOn == method {
		panic(fmt.Sprintf("browsertest: %s exploded", method))
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err, ok := s.FailOn[method]; ok {
		return err
	}
	return nil
}

func (s *Store) Navigate(ctx context.Context, url string) error {
	if err := s.enter(ctx, "Navigate"); err != nil {
		return err
	}
	s.URL = url
	s.hovered = -1
	return nil
}

func (s *Store) FillAndSubmit(ctx context.Context, locator, text string) error {
	if err := s.enter(ctx, "FillAndSubmit"); err != nil {
		return err
	}
	if locator != s.Selectors.SearchInput {
		return fmt.Errorf("%w: %s", browser.ErrNotFound, locator)
	}
	s.LastSearch = text
	s.URL = strings.TrimSuffix(HomeURL, "/") + "/search?q=" + strings.ReplaceAll(text, " ", "+")
	s.hovered = -1
	return nil
}

func (s *Store) ListVisible(ctx context.Context, locator string) ([]browser.Element, error) {
	if err := s.enter(ctx, "ListVisible"); err != nil {
		return nil, err
	}

	var out []browser.Element
	switch locator {
	case s.Selectors.ProductCards:
		if strings.Contains(s.URL, "/search") {
			for i := range s.Products {
				out = append(out, elem{kind: kindCard, index: i})
			}
		}
	case s.Selectors.HoverAddButton:
		if s.hovered >= 0 && !s.NoHoverButton {
			out = append(out, elem{kind: kindHoverAdd, index: s.hovered})
		}
	case s.Selectors.DetailAddButton:
		if strings.Contains(s.URL, "/product/") {
			out = append(out, elem{kind: kindDetailAdd})
		}
	case s.Selectors.CartItems:
		if strings.HasPrefix(s.URL, CartURL) {
			for i := 0; i < s.CartLines; i++ {
				out = append(out, elem{kind: kindCartLine, index: i})
			}
		}
	case s.Selectors.RemoveButton:
		if strings.HasPrefix(s.URL, CartURL) {
			for i := 0; i < s.CartLines; i++ {
				out = append(out, elem{kind: kindRemove, index: i})
			}
		}
	}
	return out, nil
}

func (s *Store) ReadText(ctx context.Context, el browser.Element) (string, error) {
	if err := s.enter(ctx, "ReadText"); err != nil {
		return "", err
	}
	e, err := s.resolve(el)
	if err != nil {
		return "", err
	}
	if e.kind == kindCard {
		p := s.Products[e.index]
		return p.Name + " " + p.Price, nil
	}
	return "", nil
}

func (s *Store) InnerHTML(ctx context.Context, el browser.Element) (string, error) {
	if err := s.enter(ctx, "InnerHTML"); err != nil {
		return "", err
	}
	e, err := s.resolve(el)
	if err != nil {
		return "", err
	}
	if e.kind != kindCard {
		return "", nil
	}

	p := s.Products[e.index]
	var b strings.Builder
	if p.Name != "" {
		fmt.Fprintf(&b, `<div class="product-name">%s</div>`, html.EscapeString(p.Name))
	}
	if p.Price != "" {
		fmt.Fprintf(&b, `<p class="discount-price">%s</p>`, html.EscapeString(p.Price))
	}
	return b.String(), nil
}

func (s *Store) Hover(ctx context.Context, el browser.Element) error {
	if err := s.enter(ctx, "Hover"); err != nil {
		return err
	}
	e, err := s.resolve(el)
	if err != nil {
		return err
	}
	if e.kind == kindCard {
		s.hovered = e.index
	}
	return nil
}

func (s *Store) Click(ctx context.Context, el browser.Element) error {
	if err := s.enter(ctx, "Click"); err != nil {
		return err
	}
	e, err := s.resolve(el)
	if err != nil {
		return err
	}

	switch e.kind {
	case kindCard:
		s.URL = strings.TrimSuffix(HomeURL, "/") + fmt.Sprintf("/product/%d", e.index)
		s.hovered = -1
	case kindHoverAdd, kindDetailAdd:
		s.CartLines++
	case kindRemove:
		if s.CartLines > 0 {
			s.CartLines--
		}
	}
	return nil
}

func (s *Store) CurrentURL() string {
	return s.URL
}

func (s *Store) Close() error {
	s.Closed = true
	return nil
}

// Count returns how many times method was called.
func (s *Store) Count(method string) int {
	n := 0
	for _, c := range s.Calls {
		if c == method {
			n++
		}
	}
	return n
}

func (s *Store) resolve(el browser.Element) (elem, error) {
	e, ok := el.(elem)
	if !ok {
		return elem{}, browser.ErrInvalidElement
	}
	if e.kind == kindCard && (e.index < 0 || e.index >= len(s.Products)) {
		return elem{}, browser.ErrInvalidElement
	}
	return e, nil
}
