package pagekit

import (
	"context"
	"crypto/subtle"
	"html"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// CSRF token plumbing.
const (
	CSRFHeader       = "X-CSRF-TOKEN"
	CSRFMetaName     = "csrf-token"
	CSRFMetaSelector = `meta[name="csrf-token"]`
)

// CSRFToken reads the content of the csrf-token meta tag on s. It returns
// "" when the page carries none.
func CSRFToken(s Surface) string {
	if s == nil {
		return ""
	}
	token, _ := s.Find(CSRFMetaSelector).Attr("content")
	return token
}

// CSRFMeta renders the csrf-token meta tag for a page head.
func CSRFMeta(token string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<meta name="`+CSRFMetaName+`" content="`+html.EscapeString(token)+`">`)
		return err
	})
}

// CSRFTransport adds the X-CSRF-TOKEN header to every request it sends.
type CSRFTransport struct {
	Token string
	Base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper. The caller's request is not
// modified.
func (t *CSRFTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.Token == "" {
		return base.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set(CSRFHeader, t.Token)
	return base.RoundTrip(clone)
}

// NewCSRFClient returns an http.Client whose requests all carry token.
func NewCSRFClient(token string) *http.Client {
	return &http.Client{Transport: &CSRFTransport{Token: token}}
}

// RequireCSRF returns middleware that rejects mutating requests
// (anything but GET, HEAD, OPTIONS) whose X-CSRF-TOKEN header does not
// match token.
func RequireCSRF(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}
			got := r.Header.Get(CSRFHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				http.Error(w, "Forbidden: invalid CSRF token", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
