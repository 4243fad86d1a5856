package pagekit

import "net/http"

// URLs builds absolute links from the configured site and admin roots.
//
// Paths are appended as given: no escaping, no slash normalisation.
//
//	u := pagekit.URLs{SiteRoot: "https://shop.test/", AdminRoot: "https://shop.test/admin/"}
//	u.Site("orders")  // https://shop.test/orders
//	u.Admin("users")  // https://shop.test/admin/users
type URLs struct {
	SiteRoot  string
	AdminRoot string
}

// Site returns SiteRoot + path.
func (u URLs) Site(path string) string {
	return u.SiteRoot + path
}

// Admin returns AdminRoot + path.
func (u URLs) Admin(path string) string {
	return u.AdminRoot + path
}

// Redirect sends the client to Site(path).
//
// HTMX requests receive an HX-Redirect header so HTMX performs a full
// client-side navigation; other requests get a 302 Found.
func (u URLs) Redirect(w http.ResponseWriter, r *http.Request, path string) {
	target := u.Site(path)
	if IsHTMX(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}
