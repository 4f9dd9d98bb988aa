package narration

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/entrhq/shopsim/pkg/session"
)

// Narrator is the user-visible channel of a shopping session.
type Narrator interface {
	// TaskStarted announces task number index (1-based) of total.
	TaskStarted(index, total int, name, description string)

	// Step announces the operation about to run.
	Step(operation string)

	// Say is the shopper speaking.
	Say(speaker, line string)

	// Note is a neutral observation such as an extracted product.
	Note(text string)

	// Failure reports an operation that did not succeed.
	Failure(operation string, err error)

	// Summary reports the end of the session.
	Summary(s session.Summary)
}

// TerminalNarrator writes styled lines to a terminal.
type TerminalNarrator struct {
	writer io.Writer
	mu     sync.Mutex
}

// TerminalOption configures a TerminalNarrator.
type TerminalOption func(*TerminalNarrator)

// WithWriter sets a custom output writer (default is os.Stdout).
func WithWriter(w io.Writer) TerminalOption {
	return func(n *TerminalNarrator) {
		n.writer = w
	}
}

// NewTerminalNarrator creates a narrator that prints to stdout.
func NewTerminalNarrator(opts ...TerminalOption) *TerminalNarrator {
	n := &TerminalNarrator{writer: os.Stdout}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *TerminalNarrator) println(s string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.writer, s)
}

// TaskStarted prints a boxed task banner.
func (n *TerminalNarrator) TaskStarted(index, total int, name, description string) {
	body := TitleStyle.Render(fmt.Sprintf("🎯 TASK %d/%d: %s", index, total, name))
	if description != "" {
		body += "\n" + MutedStyle.Render("📝 Goal: "+description)
	}
	n.println("\n" + BoxStyle.Render(body))
}

// Step prints the operation being executed.
func (n *TerminalNarrator) Step(operation string) {
	n.println(stepStyle.Render("🔄 Executing: " + operation))
}

// Say prints a quoted line from the shopper.
func (n *TerminalNarrator) Say(speaker, line string) {
	if line == "" {
		return
	}
	n.println(speakerStyle.Render(speaker+":") + " " + quoteStyle.Render("'"+line+"'"))
}

// Note prints an indented neutral line.
func (n *TerminalNarrator) Note(text string) {
	n.println("  " + MutedStyle.Render(text))
}

// Failure prints a warning for a failed operation.
func (n *TerminalNarrator) Failure(operation string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	n.println(errorStyle.Render(fmt.Sprintf("⚠️ %s failed: %s", operation, msg)))
}

// Summary prints the final stats block.
func (n *TerminalNarrator) Summary(s session.Summary) {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("🎉 SESSION %s FOR %s", strings.ToUpper(s.Status), s.Persona)))
	b.WriteString("\n📊 Final Stats:")
	fmt.Fprintf(&b, "\n  🎬 Actions: %d", s.Attempts)
	fmt.Fprintf(&b, "\n  ✅ Success Rate: %.1f%%", s.SuccessRate*100)
	fmt.Fprintf(&b, "\n  🛒 Cart Items: %d", s.CartItems)
	if s.CartDiverged {
		fmt.Fprintf(&b, "\n  %s", MutedStyle.Render(fmt.Sprintf("cart page showed %d items", s.ObservedCartItems)))
	}
	n.println("\n" + BoxStyle.Render(b.String()))
}

type discard struct{}

func (discard) TaskStarted(int, int, string, string) {}
func (discard) Step(string)                          {}
func (discard) Say(string, string)                   {}
func (discard) Note(string)                          {}
func (discard) Failure(string, error)                {}
func (discard) Summary(session.Summary)              {}

// Discard is a Narrator that drops everything.
var Discard Narrator = discard{}

// Recorder keeps narration as plain strings, one per event.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *Recorder) add(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *Recorder) TaskStarted(index, total int, name, _ string) {
	r.add("task %d/%d: %s", index, total, name)
}
func (r *Recorder) Step(operation string)     { r.add("step: %s", operation) }
func (r *Recorder) Say(speaker, line string)  { r.add("%s: %s", speaker, line) }
func (r *Recorder) Note(text string)          { r.add("note: %s", text) }
func (r *Recorder) Summary(s session.Summary) { r.add("summary: %s", s.Status) }

func (r *Recorder) Failure(operation string, err error) {
	r.add("failure: %s: %v", operation, err)
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}
