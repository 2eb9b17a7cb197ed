package hxdialog

import "log/slog"

// Event is an input event that can request dismissal. It is passed through
// to Config.OnCancel unchanged.
type Event interface {
	EventType() string
}

// KeyEvent is a key-down event bubbled from inside the dialog.
type KeyEvent struct {
	Key     string
	KeyCode int
}

func (KeyEvent) EventType() string { return "keydown" }

// IsEscape reports whether the event is the Escape key.
func (e KeyEvent) IsEscape() bool {
	return e.Key == "Escape" || e.Key == "Esc" || e.KeyCode == 27
}

// Element identifies a DOM element by id and tag name.
type Element struct {
	ID  string
	Tag string
}

// ClickEvent is a click bubbled to the wrapper. Target is the element that
// was clicked, CurrentTarget the element handling the event.
type ClickEvent struct {
	Target        Element
	CurrentTarget Element
}

func (ClickEvent) EventType() string { return "click" }

// OnBackdrop reports whether the click landed on the handling element
// itself rather than on one of its descendants.
func (e ClickEvent) OnBackdrop() bool {
	return e.Target.ID != "" && e.Target == e.CurrentTarget && isDiv(e.Target.Tag)
}

func isDiv(tag string) bool {
	return tag == "div" || tag == "DIV"
}

// CloseEvent is raised by the header close button.
type CloseEvent struct{}

func (CloseEvent) EventType() string { return "close" }

// Router turns input events into dismissal requests. It never changes
// visibility; it only calls Config.OnCancel.
type Router struct {
	logger *slog.Logger
}

// NewRouter creates a router. A nil logger uses slog.Default().
func NewRouter(logger *slog.Logger) Router {
	if logger == nil {
		logger = slog.Default()
	}
	return Router{logger: logger}
}

// KeyDown dismisses on Escape when CloseOnPressEscape is set.
func (r Router) KeyDown(cfg Config, ev KeyEvent) bool {
	if !cfg.CloseOnPressEscape || !ev.IsEscape() {
		return false
	}
	r.Close(cfg, ev)
	return true
}

// Click dismisses when the click landed on the wrapper itself and
// CloseOnClickModal is set.
func (r Router) Click(cfg Config, ev ClickEvent) bool {
	if !cfg.CloseOnClickModal || !ev.OnBackdrop() {
		return false
	}
	r.Close(cfg, ev)
	return true
}

// Close requests dismissal unconditionally. A nil OnCancel is a caller
// contract violation and panics.
func (r Router) Close(cfg Config, ev Event) {
	if cfg.OnCancel == nil {
		panic("hxdialog: dismissal requested but Config.OnCancel is nil")
	}
	logger := r.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("dialog: dismissal requested", "event", ev.EventType(), "title", cfg.Title)
	cfg.OnCancel(ev)
}
