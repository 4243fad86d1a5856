// Package dom provides a pagekit.Surface backed by a parsed HTML document.
//
// Selectors are evaluated with goquery (cascadia), so any CSS selector
// works, not only the class and id selectors the toolkit's Selector type
// accepts. Invalid selectors match nothing.
//
//	doc, err := dom.ParseString(page)
//	tk := pagekit.New(doc)
//	tk.Disable(pagekit.Selector("#submit"))
//	out, _ := doc.HTML()
package dom

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/pthm/pagekit"
)

// Document is a mutable HTML document. It is not safe for concurrent use.
type Document struct {
	doc    *goquery.Document
	policy *bluemonday.Policy
}

var _ pagekit.Surface = (*Document)(nil)

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc, policy: bluemonday.UGCPolicy()}, nil
}

// ParseString parses an HTML document held in s.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Find implements pagekit.Surface.
func (d *Document) Find(selector string) pagekit.Selection {
	return Wrap(d.doc.Find(selector))
}

// Alert implements pagekit.Surface by appending a sticky error toast to
// the #toasts container, creating the container at the end of <body> when
// the page has none. Message markup is sanitized with a UGC policy.
func (d *Document) Alert(message string) {
	container := d.doc.Find("#" + pagekit.ToastsID)
	if container.Length() == 0 {
		body := d.doc.Find("body")
		if body.Length() == 0 {
			return
		}
		body.AppendHtml(`<div id="` + pagekit.ToastsID + `" class="toast-container"></div>`)
		container = d.doc.Find("#" + pagekit.ToastsID)
	}

	container.First().AppendHtml(`<div class="toast toast-` + pagekit.FlashError + `" role="alertdialog">` +
		d.policy.Sanitize(message) + `</div>`)
}

// Alerts returns the text of every sticky toast on the page.
func (d *Document) Alerts() []string {
	var out []string
	d.doc.Find("#" + pagekit.ToastsID + ` [role="alertdialog"]`).Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.Text())
	})
	return out
}

// Selection exposes the underlying goquery selection for the whole document.
func (d *Document) Selection() *goquery.Selection {
	return d.doc.Selection
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// HTML returns the document as an HTML string.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
