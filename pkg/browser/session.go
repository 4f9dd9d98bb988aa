package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// element wraps a Playwright locator pinned to one match.
type element struct {
	loc playwright.Locator
}

var _ Browser = (*Session)(nil)

// UpdateLastUsed updates the LastUsedAt timestamp to the current time.
func (s *Session) UpdateLastUsed() {
	s.LastUsedAt = time.Now()
}

// Navigate navigates the session's page to the specified URL.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := s.begin(ctx); err != nil {
		return err
	}

	_, err := s.Page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(s.Timeout),
	})
	if err != nil {
		return fmt.Errorf("navigation failed: %w", classify(err))
	}

	s.LastURL = s.Page.URL()
	return nil
}

// FillAndSubmit clears the matching input, types text and presses Enter.
func (s *Session) FillAndSubmit(ctx context.Context, locator, text string) error {
	if err := s.begin(ctx); err != nil {
		return err
	}

	input := s.Page.Locator(locator).First()
	if err := input.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return fmt.Errorf("search input: %w", classify(err))
	}
	if err := input.Fill(text); err != nil {
		return fmt.Errorf("fill failed: %w", classify(err))
	}
	if err := input.Press("Enter"); err != nil {
		return fmt.Errorf("submit failed: %w", classify(err))
	}

	// Results pages keep streaming; a load-state timeout here is not fatal.
	_ = s.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
	s.LastURL = s.Page.URL()
	return nil
}

// ListVisible returns the visible matches for locator. It does not wait; an empty
// result is not an error.
func (s *Session) ListVisible(ctx context.Context, locator string) ([]Element, error) {
	if err := s.begin(ctx); err != nil {
		return nil, err
	}

	all, err := s.Page.Locator(locator).All()
	if err != nil {
		return nil, fmt.Errorf("locator query failed: %w", classify(err))
	}

	visible := make([]Element, 0, len(all))
	for _, loc := range all {
		ok, visErr := loc.IsVisible()
		if visErr != nil || !ok {
			continue
		}
		visible = append(visible, element{loc: loc})
	}
	return visible, nil
}

// ReadText returns the element's text content.
func (s *Session) ReadText(ctx context.Context, el Element) (string, error) {
	loc, err := s.resolve(ctx, el)
	if err != nil {
		return "", err
	}
	text, err := loc.TextContent()
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", classify(err))
	}
	return text, nil
}

// InnerHTML returns the element's inner markup.
func (s *Session) InnerHTML(ctx context.Context, el Element) (string, error) {
	loc, err := s.resolve(ctx, el)
	if err != nil {
		return "", err
	}
	markup, err := loc.InnerHTML()
	if err != nil {
		return "", fmt.Errorf("html extraction failed: %w", classify(err))
	}
	return markup, nil
}

// Hover scrolls the element into view and hovers it.
func (s *Session) Hover(ctx context.Context, el Element) error {
	loc, err := s.resolve(ctx, el)
	if err != nil {
		return err
	}
	if err := loc.ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("scroll failed: %w", classify(err))
	}
	if err := loc.Hover(); err != nil {
		return fmt.Errorf("hover failed: %w", classify(err))
	}
	return nil
}

// Click clicks the element and adopts any tab the click opened.
func (s *Session) Click(ctx context.Context, el Element) error {
	loc, err := s.resolve(ctx, el)
	if err != nil {
		return err
	}
	if err := loc.Click(); err != nil {
		return fmt.Errorf("click failed: %w", classify(err))
	}

	s.adoptNewestTab()
	s.LastURL = s.Page.URL()
	return nil
}

// CurrentURL returns the URL of the page being driven.
func (s *Session) CurrentURL() string {
	if s.Page == nil {
		return s.LastURL
	}
	return s.Page.URL()
}

// Close releases the session's browser resources.
func (s *Session) Close() error {
	if s.release != nil {
		return s.release()
	}
	return s.closeResources()
}

func (s *Session) closeResources() error {
	var errs []error
	if err := s.Context.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := s.Browser.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Session) begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.UpdateLastUsed()
	return nil
}

func (s *Session) resolve(ctx context.Context, el Element) (playwright.Locator, error) {
	if err := s.begin(ctx); err != nil {
		return nil, err
	}
	e, ok := el.(element)
	if !ok || e.loc == nil {
		return nil, ErrInvalidElement
	}
	return e.loc, nil
}

// adoptNewestTab switches to the most recently opened page of the context, if it
// is not the one already being driven.
func (s *Session) adoptNewestTab() {
	pages := s.Context.Pages()
	if len(pages) == 0 {
		return
	}
	newest := pages[len(pages)-1]
	if newest == s.Page {
		return
	}
	s.Page = newest
	s.Page.SetDefaultTimeout(s.Timeout)
	_ = s.Page.BringToFront()
	_ = s.Page.WaitForLoadState()
}

// classify maps Playwright failures onto the package sentinels.
func classify(err error) error {
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}
