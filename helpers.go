package livedom

import (
	"net/http"

	"github.com/a-h/templ"
)

// RequestHeader must be "true" on every mutating request to a Host.
// Browsers never add it cross-origin without a preflight, which makes
// it a CSRF guard.
const RequestHeader = "LV-Request"

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    livedom.Render(w, r, page())
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsLive reports whether the request came from the livedom client.
func IsLive(r *http.Request) bool {
	return r.Header.Get(RequestHeader) == "true"
}
