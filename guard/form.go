package guard

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoSubmitter is returned when a form proceeds to submission but its document
// has no Submitter configured.
var ErrNoSubmitter = errors.New("no submitter configured")

// SubmitListener handles a submission intent raised on a form.
type SubmitListener func(ctx context.Context, e *SubmitEvent) error

// SubmitEvent is a submission intent for one form. It lives only for the
// duration of a single RequestSubmit call.
type SubmitEvent struct {
	form             *Form
	defaultPrevented bool
}

// Form returns the form the intent was raised on
func (e *SubmitEvent) Form() *Form { return e.form }

// PreventDefault stops the form from being sent once listeners return
func (e *SubmitEvent) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a listener suppressed the default submission
func (e *SubmitEvent) DefaultPrevented() bool { return e.defaultPrevented }

// Form is one <form> element of a Document.
type Form struct {
	doc         *Document
	node        *html.Node
	index       int
	classes     []string
	listeners   []SubmitListener
	intercepted bool
}

func newForm(doc *Document, n *html.Node, index int) *Form {
	class, _ := attr(n, "class")
	return &Form{
		doc:     doc,
		node:    n,
		index:   index,
		classes: strings.Fields(class),
	}
}

// Index is the position of the form in document order
func (f *Form) Index() int { return f.index }

// ID returns the id attribute, if any
func (f *Form) ID() string {
	id, _ := attr(f.node, "id")
	return id
}

// Classes returns the form's class list
func (f *Form) Classes() []string {
	out := make([]string, len(f.classes))
	copy(out, f.classes)
	return out
}

// HasClass reports whether class is in the form's class list
func (f *Form) HasClass(class string) bool {
	for _, c := range f.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Action returns the raw action attribute
func (f *Form) Action() string {
	action, _ := attr(f.node, "action")
	return strings.TrimSpace(action)
}

// Method returns the lower-cased submission method, "get" when unset or unknown.
func (f *Form) Method() string {
	method, _ := attr(f.node, "method")
	switch m := strings.ToLower(strings.TrimSpace(method)); m {
	case "post", "dialog":
		return m
	default:
		return "get"
	}
}

// ResolvedAction resolves the action against the page URL. An empty action
// targets the page itself.
func (f *Form) ResolvedAction() (*url.URL, error) {
	ref, err := url.Parse(f.Action())
	if err != nil {
		return nil, fmt.Errorf("invalid form action %q: %w", f.Action(), err)
	}
	if f.doc == nil || f.doc.url == nil {
		return ref, nil
	}
	return f.doc.url.ResolveReference(ref), nil
}

// Values collects the successful controls of the form, in document order.
// Submit buttons are not included.
func (f *Form) Values() url.Values {
	values := url.Values{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			_, disabled := attr(n, "disabled")
			if disabled && n.DataAtom == atom.Fieldset {
				return
			}
			if !disabled {
				collectControl(n, values)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := f.node.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return values
}

func collectControl(n *html.Node, values url.Values) {
	name, ok := attr(n, "name")
	if !ok || name == "" {
		return
	}

	switch n.DataAtom {
	case atom.Input:
		typ, _ := attr(n, "type")
		value, _ := attr(n, "value")
		switch strings.ToLower(typ) {
		case "submit", "button", "image", "reset", "file":
			return
		case "checkbox", "radio":
			if _, checked := attr(n, "checked"); !checked {
				return
			}
			if value == "" {
				value = "on"
			}
		}
		values.Add(name, value)
	case atom.Textarea:
		values.Add(name, textContent(n))
	case atom.Select:
		if v, ok := selectedOption(n); ok {
			values.Add(name, v)
		}
	}
}

func selectedOption(sel *html.Node) (string, bool) {
	var first, selected *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Option {
			if first == nil {
				first = n
			}
			if _, ok := attr(n, "selected"); ok && selected == nil {
				selected = n
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(sel)

	opt := selected
	if opt == nil {
		opt = first
	}
	if opt == nil {
		return "", false
	}
	if v, ok := attr(opt, "value"); ok {
		return v, true
	}
	return strings.TrimSpace(textContent(opt)), true
}

// AddSubmitListener registers l to run, in registration order, whenever a
// submission intent is raised on the form.
func (f *Form) AddSubmitListener(l SubmitListener) {
	f.listeners = append(f.listeners, l)
}

// Intercepted reports whether a guard has attached to this form.
func (f *Form) Intercepted() bool { return f.intercepted }

// RequestSubmit raises a submission intent: listeners run first and the form is
// sent only if none of them prevented the default. This is what a click on a
// submit control or an Enter key press does.
func (f *Form) RequestSubmit(ctx context.Context) error {
	e := &SubmitEvent{form: f}
	for _, l := range f.listeners {
		if err := l(ctx, e); err != nil {
			return err
		}
	}
	if e.defaultPrevented {
		return nil
	}
	return f.Submit(ctx)
}

// Submit sends the form directly. Listeners are not invoked.
func (f *Form) Submit(ctx context.Context) error {
	if f.doc == nil || f.doc.submitter == nil {
		return ErrNoSubmitter
	}
	return f.doc.submitter.Submit(ctx, f)
}
