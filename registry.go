package hxdialog

import (
	"fmt"
	"net/http"
	"sync"
)

// HXComponent is implemented by components the registry can route to.
type HXComponent interface {
	HXPrefix() string
	HXServeHTTP(w http.ResponseWriter, r *http.Request)
}

// Registry manages component registration and routing.
type Registry struct {
	mu         sync.RWMutex
	mux        *http.ServeMux
	encoder    *Encoder
	components map[string]HXComponent

	// OnError is called when a component request fails.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewRegistry creates a new component registry with the given key.
func NewRegistry(key []byte) *Registry {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("hxdialog: failed to create encoder: %v", err))
	}
	return &Registry{
		mux:        http.NewServeMux(),
		encoder:    enc,
		components: make(map[string]HXComponent),
		OnError:    defaultErrorHandler,
	}
}

// Encoder returns the registry's encoder (used by components).
func (reg *Registry) Encoder() *Encoder {
	return reg.encoder
}

// Add registers components with the registry.
// Panics on a prefix collision.
func (reg *Registry) Add(components ...HXComponent) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, comp := range components {
		reg.register(comp)
	}
}

func (reg *Registry) register(comp HXComponent) {
	prefix := comp.HXPrefix()
	if _, exists := reg.components[prefix]; exists {
		panic(fmt.Sprintf("hxdialog: prefix collision for %q", prefix))
	}

	if c, ok := comp.(interface{ SetEncoder(*Encoder) }); ok {
		c.SetEncoder(reg.encoder)
	}
	if c, ok := comp.(interface {
		SetErrorHandler(func(http.ResponseWriter, *http.Request, error))
	}); ok {
		c.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			reg.OnError(w, r, err)
		})
	}

	reg.components[prefix] = comp
	reg.mux.HandleFunc(prefix+"/", comp.HXServeHTTP)
}

// Get returns the component registered under prefix.
func (reg *Registry) Get(prefix string) (HXComponent, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	comp, ok := reg.components[prefix]
	return comp, ok
}

// Handler returns the HTTP handler for component routes.
// Mount this at "/_c/" in your application.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CSRF protection: mutating methods require HX-Request header
		if r.Method != http.MethodGet && r.Method != http.MethodHead && !IsHTMX(r) {
			http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
			return
		}
		reg.mux.ServeHTTP(w, r)
	})
}
