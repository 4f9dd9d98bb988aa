package browser

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a locator matches nothing usable.
	ErrNotFound = errors.New("element not found")

	// ErrTimeout is returned when the page did not become ready in time.
	ErrTimeout = errors.New("timed out waiting for page")

	// ErrInvalidElement is returned when a handle did not come from this page.
	ErrInvalidElement = errors.New("invalid element handle")
)

// Element is an opaque handle to something on the page. Only the Page that
// returned it can interpret it, and it goes stale after navigation.
type Element interface{}

// Page is the page-interaction capability the shopping engine drives. Every call
// may block until the page or element is ready, bounded by the implementation's
// timeout, and may fail with ErrNotFound or ErrTimeout.
type Page interface {
	// Navigate loads url and waits for it to be ready.
	Navigate(ctx context.Context, url string) error

	// FillAndSubmit clears the input matching locator, types text and presses Enter.
	FillAndSubmit(ctx context.Context, locator, text string) error

	// ListVisible returns the visible elements matching locator, in document order.
	ListVisible(ctx context.Context, locator string) ([]Element, error)

	// ReadText returns the element's text content.
	ReadText(ctx context.Context, el Element) (string, error)

	// InnerHTML returns the element's inner markup.
	InnerHTML(ctx context.Context, el Element) (string, error)

	// Hover scrolls the element into view and moves the pointer over it.
	Hover(ctx context.Context, el Element) error

	// Click clicks the element. If the click opens a new tab, the page follows it.
	Click(ctx context.Context, el Element) error

	// CurrentURL returns the URL of the page currently being driven.
	CurrentURL() string
}

// Browser is a Page bound to a live browsing resource that must be released.
type Browser interface {
	Page
	Close() error
}

// Launcher acquires a Browser for one shopping session.
type Launcher interface {
	Launch(ctx context.Context) (Browser, error)
}

// LauncherFunc adapts a function to the Launcher interface.
type LauncherFunc func(ctx context.Context) (Browser, error)

// Launch calls f(ctx).
func (f LauncherFunc) Launch(ctx context.Context) (Browser, error) {
	return f(ctx)
}
