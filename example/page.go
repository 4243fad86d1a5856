package main

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/pthm/pagekit"
	"github.com/pthm/pagekit/lib/dom"
)

// Layout renders the order form page.
func Layout(csrf string, orders []*Order) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><head>`); err != nil {
			return err
		}
		if err := pagekit.CSRFMeta(csrf).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</head><body>`); err != nil {
			return err
		}
		if err := pagekit.LoadingIndicator("Saving...").Render(ctx, w); err != nil {
			return err
		}
		if err := pagekit.ToastContainer().Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<form id="order" hx-post="/orders" hx-indicator="#loading">
<div class="field"><input id="customer" name="customer"></div>
<div class="field"><input id="price" name="price" class="amount"></div>
<div class="field"><input id="delivery" name="delivery" class="date-format"></div>
<button id="submit" name="place" type="submit">Place order</button>
<button id="draft" name="draft" type="submit">Save draft</button>
</form><ul id="orders">`)
		if err != nil {
			return err
		}
		for _, o := range orders {
			if _, err := fmt.Fprintf(w, `<li id="%s">%s <span class="amount">%s</span></li>`,
				html.EscapeString(o.ID), html.EscapeString(pagekit.CapitalizeWords(o.Customer)),
				pagekit.GroupThousands(pagekit.FormatDecimal(o.Price))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul>`); err != nil {
			return err
		}
		if err := pagekit.DecimalGuard().Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</body></html>`)
		return err
	})
}

// renderPage renders c, then runs the toolkit over the result before it is
// sent: decimal guards on price inputs, date picker options on date inputs.
func renderPage(w http.ResponseWriter, r *http.Request, c templ.Component, opts []pagekit.Option) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	doc, err := dom.Parse(&buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	tk := pagekit.New(doc, opts...)
	if err := tk.AllowDecimal(pagekit.Selector("#price")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if _, err := tk.DatePicker(pagekit.DefaultDatePicker()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := doc.Render(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
