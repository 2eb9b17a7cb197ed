package hxdialog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// WireAttrs builds the minimal HTMX attributes for a component action.
//
// For GET actions, returns hx-get with props encoded in the URL query string.
// For POST/PUT/DELETE/PATCH, returns hx-post (etc.) with props in hx-vals.
func WireAttrs(path, method, encoded string) templ.Attributes {
	attrs := templ.Attributes{}

	if method == http.MethodGet || method == "" {
		url := path
		if encoded != "" {
			url = path + "?p=" + encoded
		}
		attrs["hx-get"] = url
		return attrs
	}

	switch method {
	case http.MethodPost:
		attrs["hx-post"] = path
	case http.MethodPut:
		attrs["hx-put"] = path
	case http.MethodPatch:
		attrs["hx-patch"] = path
	case http.MethodDelete:
		attrs["hx-delete"] = path
	}
	if encoded != "" {
		data, _ := json.Marshal(map[string]string{"p": encoded})
		attrs["hx-vals"] = string(data)
	}
	return attrs
}

// eventTrigger posts clicks and Escape presses bubbled to the wrapper.
// Other keys never leave the browser.
const eventTrigger = "click, keydown[key=='Escape']"

// EventAttrs wires the wrapper's click and key-down events to the event
// action at path. The event payload names the clicked element so the
// server can tell backdrop clicks from clicks inside the panel.
func EventAttrs(path, encoded, wrapperID string) templ.Attributes {
	vals := []string{
		"p: " + strconv.Quote(encoded),
		"type: event.type",
		"key: event.key || ''",
		"keyCode: event.keyCode || 0",
		"target: event.target.id || ''",
		"targetTag: event.target.tagName",
		"currentTarget: " + strconv.Quote(wrapperID),
		"currentTag: 'DIV'",
	}
	return templ.Attributes{
		"hx-post":    path,
		"hx-trigger": eventTrigger,
		"hx-swap":    string(SwapNone),
		"hx-vals":    "js:{" + strings.Join(vals, ", ") + "}",
	}
}
