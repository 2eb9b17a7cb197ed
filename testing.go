package hxdialog

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
)

// TestResult holds the result of rendering a component for testing.
type TestResult struct {
	HTML            string
	StatusCode      int
	Headers         http.Header
	TriggeredEvents []string
}

// TestRender renders a dialog component for props and returns testable
// output. It bypasses HTTP and runs only Render.
//
//	result, err := hxdialog.TestRender(dlg, props)
//	if !result.HTMLContains("el-dialog__wrapper") {
//	    t.Fatal("dialog not rendered")
//	}
func TestRender(comp *Component, props Props) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), comp, props)
}

// TestRenderWithContext renders a component with a custom context.
func TestRenderWithContext(ctx context.Context, comp *Component, props Props) (*TestResult, error) {
	var buf bytes.Buffer
	if err := comp.Render(ctx, props).Render(ctx, &buf); err != nil {
		return nil, err
	}
	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestAction simulates an HTMX request against an HXComponent.
//
//	result, err := hxdialog.TestAction(dlg, dlg.Prefix()+"/event", "POST", map[string]string{
//	    "p":    encoded,
//	    "type": "keydown",
//	    "key":  "Escape",
//	})
//	if !result.HasEvent(hxdialog.EventCancel) {
//	    t.Fatal("expected dismissal")
//	}
func TestAction(comp HXComponent, actionURL, method string, formData map[string]string) (*TestResult, error) {
	form := url.Values{}
	for k, v := range formData {
		form.Set(k, v)
	}

	req := httptest.NewRequest(method, actionURL, strings.NewReader(form.Encode()))
	if len(formData) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("HX-Request", "true")

	rec := httptest.NewRecorder()
	comp.HXServeHTTP(rec, req)

	result := &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
	if trigger := rec.Header().Get("HX-Trigger"); trigger != "" {
		result.TriggeredEvents = parseTriggerHeader(trigger)
	}
	return result, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HasEvent checks if an event was triggered.
func (r *TestResult) HasEvent(event string) bool {
	for _, e := range r.TriggeredEvents {
		if e == event {
			return true
		}
	}
	return false
}

// EventDetail returns the detail object sent with event, if any.
func (r *TestResult) EventDetail(event string) map[string]any {
	var payload map[string]map[string]any
	if err := json.Unmarshal([]byte(r.Headers.Get("HX-Trigger")), &payload); err != nil {
		return nil
	}
	return payload[event]
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// parseTriggerHeader returns the event names in an HX-Trigger value, which
// is either a JSON object keyed by event or a comma-separated list.
func parseTriggerHeader(trigger string) []string {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil
	}

	if strings.HasPrefix(trigger, "{") {
		var payload map[string]json.RawMessage
		if err := json.Unmarshal([]byte(trigger), &payload); err != nil {
			return nil
		}
		events := make([]string, 0, len(payload))
		for name := range payload {
			events = append(events, name)
		}
		return events
	}

	var events []string
	for _, p := range strings.Split(trigger, ",") {
		if p = strings.TrimSpace(p); p != "" {
			events = append(events, p)
		}
	}
	return events
}

// TestHost is a Host that records every committed view. The returned node
// counts Focus calls.
type TestHost struct {
	Commits []View
	Nodes   []*TestNode
}

// Commit records v and returns a node when v contains a wrapper.
func (h *TestHost) Commit(v View) Node {
	h.Commits = append(h.Commits, v)
	if v.Find(ClassWrapper) == nil {
		return nil
	}
	n := &TestNode{}
	h.Nodes = append(h.Nodes, n)
	return n
}

// Last returns the last committed view.
func (h *TestHost) Last() View {
	if len(h.Commits) == 0 {
		return View{}
	}
	return h.Commits[len(h.Commits)-1]
}

// Focused returns the total number of Focus calls across all nodes.
func (h *TestHost) Focused() int {
	total := 0
	for _, n := range h.Nodes {
		total += n.Focused
	}
	return total
}

// TestNode is a Node that counts Focus calls.
type TestNode struct {
	Focused int
}

// Focus records the call.
func (n *TestNode) Focus() {
	n.Focused++
}
