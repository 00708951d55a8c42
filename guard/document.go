package guard

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrDocumentNotReady is returned when a guard is activated on a document whose
// structure has not been parsed yet.
var ErrDocumentNotReady = errors.New("document is not ready")

// Document is a parsed page: its URL plus every form it contains, in document order.
type Document struct {
	url       *url.URL
	root      *html.Node
	forms     []*Form
	submitter Submitter
	ready     bool
}

// Parse reads an HTML page and builds its form model. pageURL is used to resolve
// relative form actions and may be nil. Only the page structure is read; nothing
// referenced by the page (scripts, styles, images) is fetched.
func Parse(r io.Reader, pageURL *url.URL) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := &Document{url: pageURL, root: root}
	doc.collectForms(root)
	doc.ready = true
	return doc, nil
}

// Ready reports whether the document structure has been fully parsed.
func (d *Document) Ready() bool {
	return d != nil && d.ready
}

// URL returns the page URL the document was loaded from (may be nil).
func (d *Document) URL() *url.URL {
	return d.url
}

// SetSubmitter sets how forms of this document are sent once submission proceeds.
func (d *Document) SetSubmitter(s Submitter) {
	d.submitter = s
}

// Forms returns every form in document order.
func (d *Document) Forms() []*Form {
	out := make([]*Form, len(d.forms))
	copy(out, d.forms)
	return out
}

// FormsWithClass returns the forms carrying the given class, in document order.
func (d *Document) FormsWithClass(class string) []*Form {
	var out []*Form
	for _, f := range d.forms {
		if f.HasClass(class) {
			out = append(out, f)
		}
	}
	return out
}

func (d *Document) collectForms(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Form {
		d.forms = append(d.forms, newForm(d, n, len(d.forms)))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.collectForms(c)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
