package engine

import (
	"context"
	"fmt"

	"github.com/entrhq/shopsim/pkg/browser"
	"github.com/entrhq/shopsim/pkg/persona"
	"github.com/entrhq/shopsim/pkg/session"
	"github.com/entrhq/shopsim/pkg/task"
)

// Run acquires a browser from launcher, opens the storefront and executes tasks.
// The browser is released before Run returns, whatever happened. An error is
// returned only when setup failed; the summary then has status aborted and no
// operations.
func Run(ctx context.Context, launcher browser.Launcher, profile *persona.Profile, tasks []task.Task, opts ...Option) (session.Summary, error) {
	b, err := launcher.Launch(ctx)
	if err != nil {
		debugLog.Errorf("Failed to acquire browser: %v", err)
		e := New(nil, profile, opts...)
		e.setStatus(StatusAborted)
		return e.Summary(), fmt.Errorf("failed to acquire browser: %w", err)
	}
	defer func() {
		if cerr := b.Close(); cerr != nil {
			debugLog.Warnf("Failed to release browser: %v", cerr)
		}
	}()

	e := New(b, profile, opts...)
	if err := e.open(ctx); err != nil {
		e.setStatus(StatusAborted)
		return e.Summary(), err
	}
	return e.Execute(ctx, tasks), nil
}

// open loads the storefront home page.
func (e *Engine) open(ctx context.Context) error {
	debugLog.Infof("Opening %s", e.homeURL)
	if err := e.page.Navigate(ctx, e.homeURL); err != nil {
		debugLog.Errorf("Failed to open %s: %v", e.homeURL, err)
		return fmt.Errorf("failed to open storefront: %w", err)
	}
	e.state.PageKind = e.classifier.Classify(e.page.CurrentURL())
	return nil
}
