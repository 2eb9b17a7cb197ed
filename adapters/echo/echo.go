// Package hxdialogecho mounts hxdialog components on an Echo server.
//
//	e := echo.New()
//	reg := hxdialogecho.Mount(e, hxdialogecho.WithKey(key))
//	reg.Add(confirm)
//
// Component URLs are absolute ("/_c/..."), so MountGroup expects a group
// that only adds middleware:
//
//	g := e.Group("", sessionMiddleware)
//	reg := hxdialogecho.MountGroup(g)
package hxdialogecho

import (
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/hxdialog"
)

const routePattern = "/_c/*"

// Option configures Mount and MountGroup.
type Option func(*options)

type options struct {
	key     []byte
	onError func(http.ResponseWriter, *http.Request, error)
}

// WithKey sets the props key for the registry. Without it a random key is
// generated, which only suits development: props issued before a restart
// stop verifying.
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithErrorHandler replaces the registry's default error responses.
func WithErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// Mount creates a registry and routes component requests on e to it.
func Mount(e *echo.Echo, opts ...Option) *hxdialog.Registry {
	reg := newRegistry(opts)
	e.Any(routePattern, echo.WrapHandler(reg.Handler()))
	return reg
}

// MountGroup creates a registry and routes component requests on g to it,
// so they pass through the group's middleware.
func MountGroup(g *echo.Group, opts ...Option) *hxdialog.Registry {
	reg := newRegistry(opts)
	g.Any(routePattern, echo.WrapHandler(reg.Handler()))
	return reg
}

func newRegistry(opts []Option) *hxdialog.Registry {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("hxdialogecho: failed to generate random key: %v", err))
		}
	}

	reg := hxdialog.NewRegistry(key)
	if o.onError != nil {
		reg.OnError = o.onError
	}
	return reg
}

// Render writes a templ component to the Echo response.
//
//	func page(c echo.Context) error {
//	    return hxdialogecho.Render(c, http.StatusOK, layout(dialog))
//	}
func Render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}

// Trigger sets an HX-Trigger response header on c.
func Trigger(c echo.Context, event string, data map[string]any) {
	if v := hxdialog.BuildTriggerHeader(event, data); v != "" {
		c.Response().Header().Set("HX-Trigger", v)
	}
}
