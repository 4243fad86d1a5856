package pagekit

import (
	"context"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// LoaderErrorEvent is the HX-Trigger event sent by Loader.Respond.
const LoaderErrorEvent = "loader:error"

// Loader toggles the page's loading indicator.
type Loader struct {
	tk       *Toolkit
	selector Selector
	message  string
}

// Loader returns the loader bound to the toolkit's surface.
func (t *Toolkit) Loader() *Loader {
	return &Loader{tk: t, selector: Selector(t.loaderSelector), message: t.errorMessage}
}

// Show displays the loading indicator.
func (l *Loader) Show() {
	if err := l.tk.Show(l.selector); err != nil {
		l.tk.logger.Error("loader: %v", err)
	}
}

// Hide hides the loading indicator.
func (l *Loader) Hide() {
	if err := l.tk.Hide(l.selector); err != nil {
		l.tk.logger.Error("loader: %v", err)
	}
}

// Error hides the indicator and raises a blocking alert on the surface.
// err is logged when non-nil; the alert text never includes it.
func (l *Loader) Error(err error) {
	l.Hide()
	if err != nil {
		l.tk.logger.Error("loader: %v", err)
	}
	if l.tk.surface != nil {
		l.tk.surface.Alert(l.message)
	}
}

// Message returns the alert text raised by Error.
func (l *Loader) Message() string {
	return l.message
}

// Respond reports a failed request to the client.
//
// HTMX requests get a 200 with HX-Reswap: none, the loader:error event, an
// OOB swap that hides the indicator, and a sticky error toast. Other
// requests get a plain 500 carrying the alert text. The logged error names
// the triggering element, the swap target and the page when HTMX sent them.
func (l *Loader) Respond(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		l.tk.logger.Error("loader: %s %s%s: %v", r.Method, r.URL.Path, requestOrigin(r), err)
	}

	if !IsHTMX(r) {
		http.Error(w, l.message, http.StatusInternalServerError)
		return
	}

	w.Header().Set("HX-Reswap", "none")
	w.Header().Set("HX-Trigger", TriggerHeader(LoaderErrorEvent, map[string]any{"message": l.message}))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	var sb strings.Builder
	sb.WriteString(`<div id="` + html.EscapeString(selectorID(l.selector)) + `" hx-swap-oob="true" style="display: none"></div>`)
	sb.WriteString(RenderFlashesOOB([]Flash{{Level: FlashError, Message: l.message, Sticky: true}}))
	_, _ = io.WriteString(w, sb.String())
}

// LoadingIndicator renders the hidden #loading element Loader toggles.
func LoadingIndicator(label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="loading" class="loading" style="display: none" aria-live="polite">`+
			html.EscapeString(label)+`</div>`)
		return err
	})
}

// requestOrigin describes where an HTMX request came from, e.g.
// " (trigger=save target=order page=https://shop.test/cart)".
func requestOrigin(r *http.Request) string {
	var parts []string
	for _, kv := range [][2]string{
		{"trigger", TriggerID(r)},
		{"target", TargetID(r)},
		{"page", CurrentURL(r)},
	} {
		if kv[1] != "" {
			parts = append(parts, kv[0]+"="+kv[1])
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, " ") + ")"
}

// selectorID returns the id of an id selector, or "loading" for anything else.
func selectorID(s Selector) string {
	if strings.HasPrefix(string(s), "#") && len(s) > 1 {
		return string(s[1:])
	}
	return "loading"
}
