// Package guard gates destructive form submissions behind an explicit user
// confirmation.
//
// A Guard is activated once per page, after the page structure is parsed. It
// attaches one interceptor to every form carrying the marker class. The
// interceptor always suppresses the immediate submission, asks the Decider, and
// re-submits the same form programmatically only when the answer is yes.
// Programmatic submission skips listeners, so a confirmed form is never
// prompted twice. Forms without the marker are never touched.
//
// The same contract ships to browsers as an embedded script, see Script.
package guard

import (
	"context"
	"sync"

	"github.com/ghiac/eventdesk/log"
)

const (
	// DefaultMarker is the class identifying delete forms
	DefaultMarker = "delete-form"
	// DefaultMessage is the fixed confirmation prompt
	DefaultMessage = "Are you sure you want to delete this event?"
)

// Guard intercepts submissions of marked forms.
type Guard struct {
	decider Decider
	marker  string
	message string

	// one decision at a time, as on a browser UI thread
	mu sync.Mutex
}

// Option configures a Guard
type Option func(*Guard)

// WithMarker overrides the marker class
func WithMarker(class string) Option {
	return func(g *Guard) {
		if class != "" {
			g.marker = class
		}
	}
}

// WithMessage overrides the prompt text
func WithMessage(message string) Option {
	return func(g *Guard) {
		if message != "" {
			g.message = message
		}
	}
}

// New creates a guard that asks decider before letting a marked form through.
// A nil decider declines everything.
func New(decider Decider, opts ...Option) *Guard {
	if decider == nil {
		decider = AlwaysDecline{}
	}
	g := &Guard{
		decider: decider,
		marker:  DefaultMarker,
		message: DefaultMessage,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Marker returns the class the guard looks for
func (g *Guard) Marker() string { return g.marker }

// Message returns the prompt text
func (g *Guard) Message() string { return g.message }

// Activate attaches an interceptor to every marked form of doc that does not
// already have one and returns how many were attached. A page without marked
// forms is not an error.
func (g *Guard) Activate(doc *Document) (int, error) {
	if !doc.Ready() {
		return 0, ErrDocumentNotReady
	}

	attached := 0
	for _, form := range doc.FormsWithClass(g.marker) {
		if form.intercepted {
			continue
		}
		form.intercepted = true
		form.AddSubmitListener(g.intercept)
		attached++
	}

	log.Log.Debugf("guard: attached %d interceptor(s) for class %q", attached, g.marker)
	return attached, nil
}

func (g *Guard) intercept(ctx context.Context, e *SubmitEvent) error {
	e.PreventDefault()

	form := e.Form()
	if !g.confirm(ctx) {
		log.Log.Debugf("guard: submission of form #%d declined", form.Index())
		return nil
	}

	log.Log.Debugf("guard: submission of form #%d confirmed", form.Index())
	return form.Submit(ctx)
}

// confirm asks the decider. Only one question is open at a time.
func (g *Guard) confirm(ctx context.Context) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.decider.Confirm(ctx, g.message)
}
