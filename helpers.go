package pagekit

import (
	"encoding/json"
	"net/http"
)

// IsHTMX returns true if the request originated from HTMX.
//
// HTMX sends HX-Request: true on all requests. Redirect and Loader.Respond
// use it to pick between HTMX response headers and plain HTTP responses.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// CurrentURL returns the page the browser was on (HX-Current-URL), or ""
// for non-HTMX requests.
func CurrentURL(r *http.Request) string {
	return r.Header.Get("HX-Current-URL")
}

// TriggerName returns the name of the element that fired the request, which
// tells submit buttons of one form apart:
//
//	draft := pagekit.TriggerName(r) == "draft"
func TriggerName(r *http.Request) string {
	return r.Header.Get("HX-Trigger-Name")
}

// TriggerID returns the id of the element that fired the request.
func TriggerID(r *http.Request) string {
	return r.Header.Get("HX-Trigger")
}

// TargetID returns the id of the swap target (hx-target).
func TargetID(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

// TriggerHeader builds an HX-Trigger header value.
//
// Without data the event name is returned as is. With data the value is a
// JSON object keyed by the event name, which HTMX delivers as evt.detail:
//
//	TriggerHeader("loader:error", nil)                         // loader:error
//	TriggerHeader("loader:error", map[string]any{"message": m}) // {"loader:error":{"message":"..."}}
func TriggerHeader(event string, data map[string]any) string {
	if event == "" {
		return ""
	}
	if data == nil {
		return event
	}

	encoded, err := json.Marshal(map[string]any{event: data})
	if err != nil {
		return event
	}
	return string(encoded)
}
