package engine

import (
	"context"
	"fmt"

	"github.com/entrhq/shopsim/pkg/browser"
	"github.com/entrhq/shopsim/pkg/narration"
	"github.com/entrhq/shopsim/pkg/persona"
	"github.com/entrhq/shopsim/pkg/session"
)

// affordableShare is the share of the maximum budget a price-focused shopper
// calls affordable.
const affordableShare = 0.7

func (e *Engine) say(kind narration.Kind, v narration.Vars) {
	v.Name = e.profile.Name()
	if v.Budget == 0 {
		v.Budget = e.profile.Budget().Max
	}
	e.narrator.Say(e.profile.Name(), narration.Line(kind, e.profile.DecisionStyle(), v))
}

func (e *Engine) searchProducts(ctx context.Context) error {
	term := SearchTerm(e.profile, e.rnd)
	e.narrator.Note(fmt.Sprintf("🔍 %s searching: '%s'", e.profile.Name(), term))
	e.say(narration.KindSearch, narration.Vars{Term: term})

	if err := e.page.FillAndSubmit(ctx, e.selectors.SearchInput, term); err != nil {
		return fmt.Errorf("search for %q: %w", term, err)
	}
	e.state.PageKind = session.PageSearchResults
	return nil
}

// extractProducts re-reads the visible product cards. Cards that cannot be
// parsed are skipped; finding none is still a success.
func (e *Engine) extractProducts(ctx context.Context) error {
	e.narrator.Note("📦 Extracting products...")

	cards, err := e.page.ListVisible(ctx, e.selectors.ProductCards)
	if err != nil {
		return fmt.Errorf("list product cards: %w", err)
	}
	if len(cards) > session.MaxVisibleProducts {
		cards = cards[:session.MaxVisibleProducts]
	}

	products := make([]session.Product, 0, len(cards))
	for i, card := range cards {
		markup, err := e.page.InnerHTML(ctx, card)
		if err != nil {
			debugLog.Debugf("Skipping card %d: %v", i, err)
			continue
		}
		parsed, err := browser.ParseCard(markup, e.selectors)
		if err != nil {
			debugLog.Debugf("Skipping card %d: %v", i, err)
			continue
		}
		products = append(products, session.Product{Name: parsed.Name, Price: parsed.Price, Handle: card})
		e.narrator.Note(fmt.Sprintf("📦 %s - ₹%d", parsed.Name, parsed.Price))
	}
	e.state.SetProducts(products)

	if len(products) > 0 {
		count := len(products)
		if e.profile.DecisionStyle() == persona.StylePriceFocused {
			count = e.affordableCount()
		}
		e.say(narration.KindExtract, narration.Vars{Count: count})
	}
	return nil
}

func (e *Engine) affordableCount() int {
	limit := float64(e.profile.Budget().Max) * affordableShare
	n := 0
	for _, p := range e.state.Products {
		if float64(p.Price) <= limit {
			n++
		}
	}
	return n
}

// hoverAddToCart adds a product through the add button revealed on hover. The
// budget gate runs before any page interaction.
func (e *Engine) hoverAddToCart(ctx context.Context, index int) error {
	e.narrator.Note(fmt.Sprintf("🎭 %s hover adding product %d", e.profile.Name(), index))

	product, ok := e.state.Product(index)
	if !ok {
		return fmt.Errorf("%w: %d of %d", ErrInvalidIndex, index, len(e.state.Products))
	}

	budget := e.profile.Budget().Max
	if product.Price > budget {
		e.say(narration.KindOverBudget, narration.Vars{Product: product.Name, Price: product.Price, Budget: budget})
		return fmt.Errorf("%w: ₹%d > ₹%d", ErrOverBudget, product.Price, budget)
	}

	if err := e.page.Hover(ctx, product.Handle); err != nil {
		return fmt.Errorf("hover product: %w", err)
	}
	buttons, err := e.page.ListVisible(ctx, e.selectors.HoverAddButton)
	if err != nil {
		return fmt.Errorf("find add button: %w", err)
	}
	if len(buttons) == 0 {
		return ErrNoAddButton
	}
	if err := e.page.Click(ctx, buttons[0]); err != nil {
		return fmt.Errorf("click add button: %w", err)
	}

	e.say(narration.KindAdded, narration.Vars{Product: product.Name, Price: product.Price})
	e.state.AddToCart()
	return nil
}

func (e *Engine) clickProductDetails(ctx context.Context, index int) error {
	product, ok := e.state.Product(index)
	if !ok {
		return fmt.Errorf("%w: %d of %d", ErrInvalidIndex, index, len(e.state.Products))
	}
	e.say(narration.KindDetails, narration.Vars{Product: product.Name, Price: product.Price})

	if err := e.page.Click(ctx, product.Handle); err != nil {
		return fmt.Errorf("open product details: %w", err)
	}
	e.state.PageKind = session.PageProductDetails
	e.inspected = &product
	return nil
}

func (e *Engine) addFromDetails(ctx context.Context) error {
	if e.state.PageKind != session.PageProductDetails {
		return fmt.Errorf("%w: on %s", ErrNotOnDetails, e.state.PageKind)
	}

	buttons, err := e.page.ListVisible(ctx, e.selectors.DetailAddButton)
	if err != nil {
		return fmt.Errorf("find add button: %w", err)
	}
	if len(buttons) == 0 {
		return ErrNoAddButton
	}
	if err := e.page.Click(ctx, buttons[0]); err != nil {
		return fmt.Errorf("click add button: %w", err)
	}

	v := narration.Vars{Product: "this product"}
	if e.inspected != nil {
		v.Product, v.Price = e.inspected.Name, e.inspected.Price
	}
	e.say(narration.KindAdded, v)
	e.state.AddToCart()
	return nil
}

// viewCart opens the cart and records the item count the page shows. That count
// is kept apart from the engine's own and may differ.
func (e *Engine) viewCart(ctx context.Context) error {
	e.narrator.Note(fmt.Sprintf("🛒 %s checking cart", e.profile.Name()))

	if err := e.page.Navigate(ctx, e.cartURL); err != nil {
		return fmt.Errorf("open cart: %w", err)
	}
	e.state.PageKind = session.PageCart

	items, err := e.page.ListVisible(ctx, e.selectors.CartItems)
	if err != nil {
		return fmt.Errorf("list cart items: %w", err)
	}
	e.state.ObservedCartItems = len(items)

	kind := narration.KindCart
	if len(items) == 0 {
		kind = narration.KindCartEmpty
	}
	e.say(kind, narration.Vars{Count: len(items)})

	if e.state.CartDiverged() {
		debugLog.Warnf("Cart page shows %d items, engine counted %d", e.state.ObservedCartItems, e.state.CartItems)
	}
	return nil
}

func (e *Engine) removeFromCart(ctx context.Context) error {
	e.narrator.Note(fmt.Sprintf("🗑️ %s removing item", e.profile.Name()))

	buttons, err := e.page.ListVisible(ctx, e.selectors.RemoveButton)
	if err != nil {
		return fmt.Errorf("find remove button: %w", err)
	}
	if len(buttons) == 0 {
		return ErrNothingToRemove
	}

	e.say(narration.KindRemove, narration.Vars{})
	if err := e.page.Click(ctx, buttons[0]); err != nil {
		return fmt.Errorf("click remove button: %w", err)
	}
	e.state.RemoveFromCart()
	return nil
}

func (e *Engine) completeSession() error {
	e.say(narration.KindComplete, narration.Vars{})
	return nil
}
