// Package engine drives a persona through its shopping tasks against a page.
//
// An Engine owns the session state for one run. Tasks execute strictly in
// order and so do the operations inside each task. A failing operation is
// recorded and narrated and never stops the run; only failing to set up the
// browser does.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/entrhq/shopsim/pkg/browser"
	"github.com/entrhq/shopsim/pkg/catalog"
	"github.com/entrhq/shopsim/pkg/logging"
	"github.com/entrhq/shopsim/pkg/narration"
	"github.com/entrhq/shopsim/pkg/persona"
	"github.com/entrhq/shopsim/pkg/session"
	"github.com/entrhq/shopsim/pkg/task"
)

var debugLog *logging.Logger

func init() {
	var err error
	debugLog, err = logging.NewLogger("engine")
	if err != nil {
		// Logger fell back to stderr due to initialization failure
		debugLog.Warnf("Failed to initialize engine logger, using stderr fallback: %v", err)
	}
}

// Storefront defaults.
const (
	DefaultHomeURL = "https://www.tirabeauty.com/"
	DefaultCartURL = "https://www.tirabeauty.com/cart/bag"
)

// Status is the engine's lifecycle state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusAborted Status = "aborted"
)

var (
	// ErrOverBudget is returned when a product costs more than the persona's maximum.
	ErrOverBudget = errors.New("over budget")

	// ErrNothingToRemove is returned when the cart has no line to remove.
	ErrNothingToRemove = errors.New("nothing to remove")

	// ErrInvalidIndex is returned when no extracted product exists at the index.
	ErrInvalidIndex = errors.New("invalid product index")

	// ErrNotOnDetails is returned when adding from details while not on a product page.
	ErrNotOnDetails = errors.New("not on a product details page")

	// ErrNoAddButton is returned when no visible add-to-bag button was found.
	ErrNoAddButton = errors.New("no add button found")

	// ErrUnknownOperation is the outcome of dispatching a name the engine cannot run.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrOperationPanicked wraps a panic recovered from an operation.
	ErrOperationPanicked = errors.New("operation panicked")
)

// productIndex is the product every index-based operation targets.
const productIndex = 0

// Engine executes tasks for one persona on one page.
type Engine struct {
	page       browser.Page
	profile    *persona.Profile
	state      *session.State
	narrator   narration.Narrator
	rnd        *rand.Rand
	selectors  browser.Selectors
	classifier *session.Classifier
	homeURL    string
	cartURL    string
	stepDelay  time.Duration

	// inspected is the product whose details page was last opened
	inspected *session.Product

	mu        sync.Mutex
	status    Status
	startedAt time.Time
	reports   []session.TaskReport
}

// Option configures an Engine.
type Option func(*Engine)

// WithNarrator sets where commentary goes (default narration.Discard).
func WithNarrator(n narration.Narrator) Option {
	return func(e *Engine) {
		if n != nil {
			e.narrator = n
		}
	}
}

// WithRand sets the random source used to pick search terms.
func WithRand(rnd *rand.Rand) Option {
	return func(e *Engine) {
		if rnd != nil {
			e.rnd = rnd
		}
	}
}

// WithSelectors overrides the storefront selectors.
func WithSelectors(sel browser.Selectors) Option {
	return func(e *Engine) {
		e.selectors = sel
	}
}

// WithHomeURL sets the page the engine returns to between tasks.
func WithHomeURL(url string) Option {
	return func(e *Engine) {
		if url != "" {
			e.homeURL = url
		}
	}
}

// WithCartURL sets the page view_cart navigates to.
func WithCartURL(url string) Option {
	return func(e *Engine) {
		if url != "" {
			e.cartURL = url
		}
	}
}

// WithClassifier sets how URLs map to page kinds.
func WithClassifier(c *session.Classifier) Option {
	return func(e *Engine) {
		if c != nil {
			e.classifier = c
		}
	}
}

// WithStepDelay pauses between operations.
func WithStepDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.stepDelay = d
		}
	}
}

// New creates an idle engine.
func New(page browser.Page, profile *persona.Profile, opts ...Option) *Engine {
	e := &Engine{
		page:       page,
		profile:    profile,
		state:      session.NewState(),
		narrator:   narration.Discard,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
		selectors:  browser.DefaultSelectors(),
		classifier: session.DefaultClassifier(),
		homeURL:    DefaultHomeURL,
		cartURL:    DefaultCartURL,
		status:     StatusIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Status returns the lifecycle state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *Engine) setStatus(s Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	debugLog.Debugf("Engine status %s -> %s", e.status, s)
	e.status = s
}

// State returns the session state. It must not be modified while the engine runs.
func (e *Engine) State() *session.State {
	return e.state
}

// Execute runs every task in order and returns the summary. It only runs from
// idle; a cancelled ctx stops between operations and ends the run aborted.
func (e *Engine) Execute(ctx context.Context, tasks []task.Task) session.Summary {
	if status := e.Status(); status != StatusIdle {
		debugLog.Warnf("Execute called in status %s, ignoring", status)
		return e.Summary()
	}

	e.startedAt = time.Now()
	e.setStatus(StatusRunning)
	debugLog.Infof("Executing %d tasks for %s", len(tasks), e.profile.Name())

	for i, t := range tasks {
		if ctx.Err() != nil {
			break
		}
		if i > 0 {
			e.resetNavigation(ctx)
		}
		e.runTask(ctx, i, len(tasks), t)
	}

	if err := ctx.Err(); err != nil {
		debugLog.Warnf("Execution cancelled: %v", err)
		e.setStatus(StatusAborted)
	} else {
		e.setStatus(StatusDone)
	}

	summary := e.Summary()
	e.narrator.Summary(summary)
	debugLog.Infof("Session %s: %d/%d operations succeeded, %d cart items",
		summary.Status, summary.Successes, summary.Attempts, summary.CartItems)
	return summary
}

func (e *Engine) runTask(ctx context.Context, index, total int, t task.Task) {
	report := session.TaskReport{Name: t.Name}
	e.narrator.TaskStarted(index+1, total, t.Name, t.Description)
	debugLog.Infof("Task %d/%d %q: %v", index+1, total, t.Name, t.Operations)

	for _, op := range t.Operations {
		if ctx.Err() != nil {
			break
		}

		e.narrator.Step(string(op))
		err := e.dispatch(ctx, op)
		if errors.Is(err, ErrUnknownOperation) {
			report.Skipped++
			e.narrator.Note(fmt.Sprintf("skipping unknown operation %q", op))
			debugLog.Warnf("Skipped unknown operation %q", op)
			continue
		}

		e.state.Record(err == nil)
		report.Attempts++
		if err == nil {
			report.Successes++
			debugLog.Debugf("Operation %s succeeded", op)
		} else {
			e.narrator.Failure(string(op), err)
			debugLog.Warnf("Operation %s failed: %v", op, err)
		}

		if op == catalog.CompleteSession {
			report.Completed = true
			break
		}
		e.pause(ctx)
	}

	e.reports = append(e.reports, report)
}

// dispatch runs one operation. Panics are converted into the operation's error.
func (e *Engine) dispatch(ctx context.Context, op catalog.Operation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			debugLog.Errorf("Operation %s panicked: %v", op, r)
			err = fmt.Errorf("%w: %v", ErrOperationPanicked, r)
		}
	}()

	switch op {
	case catalog.SearchProducts:
		return e.searchProducts(ctx)
	case catalog.ExtractProducts:
		return e.extractProducts(ctx)
	case catalog.HoverAddToCart:
		return e.hoverAddToCart(ctx, productIndex)
	case catalog.ClickProductDetails:
		return e.clickProductDetails(ctx, productIndex)
	case catalog.AddFromDetails:
		return e.addFromDetails(ctx)
	case catalog.ViewCart:
		return e.viewCart(ctx)
	case catalog.RemoveFromCart:
		return e.removeFromCart(ctx)
	case catalog.CompleteSession:
		return e.completeSession()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
}

// resetNavigation returns to the home page before the next task. Failures are
// logged and do not count against the session.
func (e *Engine) resetNavigation(ctx context.Context) {
	e.narrator.Note("🔄 Refreshing browser for next task...")
	if err := e.page.Navigate(ctx, e.homeURL); err != nil {
		debugLog.Warnf("Failed to return to %s between tasks: %v", e.homeURL, err)
	}
	e.state.PageKind = e.classifier.Classify(e.page.CurrentURL())
	e.state.ClearProducts()
	e.inspected = nil
}

func (e *Engine) pause(ctx context.Context) {
	if e.stepDelay <= 0 {
		return
	}
	timer := time.NewTimer(e.stepDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Summary reports the counters and task reports so far.
func (e *Engine) Summary() session.Summary {
	s := e.state.Summarize()
	s.SessionID = logging.GetSessionID()
	s.Persona = e.profile.Name()
	s.Status = string(e.Status())
	s.Tasks = append([]session.TaskReport(nil), e.reports...)
	if !e.startedAt.IsZero() {
		s.StartedAt = e.startedAt
		s.Duration = time.Since(e.startedAt).Round(time.Millisecond).String()
	}
	return s
}

// Report is a snapshot of where the session stands.
type Report struct {
	PageKind          session.PageKind `json:"page_type"`
	ProductsAvailable int              `json:"products_available"`
	CartItems         int              `json:"cart_items"`
	ActionsCompleted  int              `json:"actions_completed"`
}

// Context describes the current page and progress.
func (e *Engine) Context() Report {
	return Report{
		PageKind:          e.classifier.Classify(e.page.CurrentURL()),
		ProductsAvailable: len(e.state.Products),
		CartItems:         e.state.CartItems,
		ActionsCompleted:  e.state.Counters.Attempts,
	}
}
