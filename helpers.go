package hxdialog

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxdialog.Render(w, r, page())
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// BuildTriggerHeader builds an HX-Trigger header value.
//
// Without data the event name is returned as is. With data the value is a
// JSON object keyed by event name, which HTMX delivers as evt.detail:
//
//	BuildTriggerHeader("dialog:cancel", nil)
//	// dialog:cancel
//	BuildTriggerHeader("dialog:cancel", map[string]any{"id": "d1"})
//	// {"dialog:cancel":{"id":"d1"}}
func BuildTriggerHeader(event string, data map[string]any) string {
	if event == "" {
		return ""
	}
	if data == nil {
		return event
	}
	out, _ := json.Marshal(map[string]any{event: data})
	return string(out)
}
