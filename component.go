package hxdialog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/hxdialog/lib/encoding"
)

// EventCancel is the HX-Trigger event sent to the owner when dismissal is
// requested. Its detail carries the dialog id and the reason.
const EventCancel = "dialog:cancel"

// Dismissal reasons reported in the EventCancel detail.
const (
	ReasonEscape   = "escape"
	ReasonBackdrop = "backdrop"
	ReasonClose    = "close"
)

// CancelFunc is the server-side OnCancel for an HTTP dialog.
type CancelFunc func(ctx context.Context, props Props, ev Event)

// ContentFunc renders the panel content for props.
type ContentFunc func(ctx context.Context, props Props) templ.Component

// Component serves a dialog over HTTP.
//
// GET renders the dialog for the encoded props. POST /event receives
// clicks and Escape presses from the wrapper, POST /close the close
// button. Dismissal is answered with 204 and an EventCancel trigger; the
// server never changes Visible; the owner reacts to the event instead.
//
//	dlg := hxdialog.NewComponent("confirm").
//	    WithContent(confirmBody).
//	    OnCancel(func(ctx context.Context, p hxdialog.Props, ev hxdialog.Event) {
//	        slog.Info("dismissed", "id", p.ID, "event", ev.EventType())
//	    })
//	reg.Add(dlg)
//
// Each component receives a deterministic URL prefix based on its name and
// the source location of NewComponent.
type Component struct {
	name     string
	prefix   string
	mode     encoding.Mode
	encoder  *Encoder
	router   Router
	logger   *slog.Logger
	content  ContentFunc
	onCancel CancelFunc
	onError  func(http.ResponseWriter, *http.Request, error)
}

// NewComponent creates a dialog component with the given name.
//
// Props are signed by default. Call Sensitive to encrypt them.
func NewComponent(name string) *Component {
	return &Component{
		name:   name,
		prefix: "/_c/" + name + "-" + componentHash(name, 1),
		mode:   encoding.Signed,
		router: NewRouter(nil),
		logger: slog.Default(),
	}
}

// Sensitive switches props to AES-GCM encryption.
func (c *Component) Sensitive() *Component {
	c.mode = encoding.Encrypted
	return c
}

// WithContent sets the panel content renderer.
func (c *Component) WithContent(fn ContentFunc) *Component {
	c.content = fn
	return c
}

// OnCancel sets the server-side cancel hook. It runs before the
// EventCancel trigger is written.
func (c *Component) OnCancel(fn CancelFunc) *Component {
	c.onCancel = fn
	return c
}

// WithLogger sets the structured logger.
func (c *Component) WithLogger(l *slog.Logger) *Component {
	c.logger = l
	c.router = NewRouter(l)
	return c
}

// Name returns the component's name.
func (c *Component) Name() string {
	return c.name
}

// Prefix returns the component's URL prefix.
func (c *Component) Prefix() string {
	return c.prefix
}

// IsSensitive returns whether the component encrypts its props.
func (c *Component) IsSensitive() bool {
	return c.mode == encoding.Encrypted
}

// SetEncoder sets the encoder for this component (called by registry).
func (c *Component) SetEncoder(enc *Encoder) {
	c.encoder = enc
}

// Encoder returns the encoder for this component.
func (c *Component) Encoder() *Encoder {
	return c.encoder
}

// SetErrorHandler sets the error handler (called by registry).
func (c *Component) SetErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) {
	c.onError = fn
}

// HXPrefix returns the component's URL prefix.
func (c *Component) HXPrefix() string {
	return c.prefix
}

// Encode returns the encoded form of props.
func (c *Component) Encode(props Props) (string, error) {
	if c.encoder == nil {
		return "", fmt.Errorf("hxdialog: component %q is not registered", c.name)
	}
	return c.encoder.Encode(props, c.mode)
}

// URL returns the render URL for props.
func (c *Component) URL(props Props) (string, error) {
	encoded, err := c.Encode(props)
	if err != nil {
		return "", err
	}
	return c.prefix + "/?p=" + encoded, nil
}

// Hooks returns the transport attributes wiring the dialog markup for
// props to this component's event and close actions.
func (c *Component) Hooks(props Props) (Hooks, error) {
	encoded, err := c.Encode(props)
	if err != nil {
		return Hooks{}, err
	}

	closeAttrs := WireAttrs(c.prefix+"/close", http.MethodPost, encoded)
	closeAttrs["hx-swap"] = string(SwapNone)

	hooks := Hooks{
		WrapperID: props.WrapperID(),
		Wrapper:   EventAttrs(c.prefix+"/event", encoded, props.WrapperID()),
		Close:     closeAttrs,
	}
	if props.ID != "" {
		hooks.TitleID = props.ID + "-title"
		hooks.Wrapper["aria-labelledby"] = hooks.TitleID
	}
	return hooks, nil
}

// Render produces the dialog markup for props, wired to this component's
// event and close actions.
func (c *Component) Render(ctx context.Context, props Props) templ.Component {
	hooks, err := c.Hooks(props)
	if err != nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return err
		})
	}

	var content templ.Component
	if c.content != nil {
		content = c.content(ctx, props)
	}
	return Build(props.Config(nil, content), hooks).Component()
}

// HXServeHTTP handles HTTP requests for this component.
func (c *Component) HXServeHTTP(w http.ResponseWriter, r *http.Request) {
	props, err := c.decodeProps(r)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, c.prefix)
	switch r.Method + " " + path {
	case "GET /", "GET ":
		if err := Render(w, r, c.Render(r.Context(), props)); err != nil {
			c.logger.Error("dialog: render failed", "component", c.name, "err", err)
		}
	case "POST /event":
		c.serveEvent(w, r, props)
	case "POST /close":
		c.serveClose(w, r, props)
	default:
		http.NotFound(w, r)
	}
}

func (c *Component) decodeProps(r *http.Request) (Props, error) {
	var props Props
	if c.encoder == nil {
		return props, fmt.Errorf("hxdialog: component %q is not registered", c.name)
	}
	encoded := r.FormValue("p")
	if encoded == "" {
		return props, fmt.Errorf("%w: missing props", ErrInvalidFormat)
	}
	if err := c.encoder.Decode(encoded, c.mode, &props); err != nil {
		return props, wrapEncodingError(err)
	}
	return props, nil
}

func (c *Component) serveEvent(w http.ResponseWriter, r *http.Request, props Props) {
	var reason string
	cfg := props.Config(c.cancel(r.Context(), props, &reason), nil)

	switch typ := r.FormValue("type"); typ {
	case "keydown":
		keyCode, _ := strconv.Atoi(r.FormValue("keyCode"))
		c.router.KeyDown(cfg, KeyEvent{Key: r.FormValue("key"), KeyCode: keyCode})
	case "click":
		c.router.Click(cfg, ClickEvent{
			Target:        Element{ID: r.FormValue("target"), Tag: r.FormValue("targetTag")},
			CurrentTarget: Element{ID: r.FormValue("currentTarget"), Tag: r.FormValue("currentTag")},
		})
	default:
		c.fail(w, r, fmt.Errorf("%w: unknown event type %q", ErrInvalidFormat, typ))
		return
	}
	c.respond(w, props, reason)
}

func (c *Component) serveClose(w http.ResponseWriter, r *http.Request, props Props) {
	var reason string
	c.router.Close(props.Config(c.cancel(r.Context(), props, &reason), nil), CloseEvent{})
	c.respond(w, props, reason)
}

// cancel builds the OnCancel for one request. It records the reason for
// the response and forwards to the server-side hook.
func (c *Component) cancel(ctx context.Context, props Props, reason *string) func(Event) {
	return func(ev Event) {
		*reason = reasonFor(ev)
		if c.onCancel != nil {
			c.onCancel(ctx, props, ev)
		}
	}
}

func (c *Component) respond(w http.ResponseWriter, props Props, reason string) {
	if reason != "" {
		w.Header().Set("HX-Trigger", BuildTriggerHeader(EventCancel, map[string]any{
			"id":     props.ID,
			"reason": reason,
		}))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *Component) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.logger.Debug("dialog: request failed", "component", c.name, "path", r.URL.Path, "err", err)
	if c.onError != nil {
		c.onError(w, r, err)
		return
	}
	defaultErrorHandler(w, r, err)
}

func reasonFor(ev Event) string {
	switch ev.(type) {
	case KeyEvent:
		return ReasonEscape
	case ClickEvent:
		return ReasonBackdrop
	default:
		return ReasonClose
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsNotFound(err):
		http.Error(w, "Not found", http.StatusNotFound)
	case IsDecryptionError(err), errors.Is(err, ErrInvalidFormat):
		http.Error(w, "Bad request", http.StatusBadRequest)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

// componentHash generates a deterministic hash based on component name and source location.
func componentHash(name string, skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	var input string
	if ok {
		input = fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, name)
	} else {
		input = name
	}
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:4])
}
