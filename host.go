package hxdialog

import (
	"context"
	"io"
	"sync"

	"github.com/a-h/templ"
)

// HTMLHost is a Host for server-side rendering. It keeps the last
// committed view and writes it as HTML on demand. Focusing the root marks
// the wrapper with autofocus, so the browser applies focus when the
// response is swapped in.
//
// HTMLHost is safe for concurrent use. Committed views are never mutated;
// focus is applied to a copy when the view is read.
type HTMLHost struct {
	mu      sync.Mutex
	view    View
	gen     uint64
	focused bool
}

// Commit stores v and returns a handle to its wrapper element.
func (h *HTMLHost) Commit(v View) Node {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view = v
	h.gen++
	h.focused = false
	if h.view.Find(ClassWrapper) == nil {
		return nil
	}
	return &htmlNode{host: h, gen: h.gen}
}

// View returns the committed view, with autofocus on the wrapper when the
// root was focused.
func (h *HTMLHost) View() View {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.focused {
		return h.view
	}
	return withAttr(h.view, ClassWrapper, "autofocus", true)
}

// Component renders the committed view.
func (h *HTMLHost) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return h.View().Render(ctx, w)
	})
}

type htmlNode struct {
	host *HTMLHost
	gen  uint64
}

// Focus marks the wrapper of the commit that returned n. Stale handles
// are ignored.
func (n *htmlNode) Focus() {
	n.host.mu.Lock()
	defer n.host.mu.Unlock()
	if n.gen == n.host.gen {
		n.host.focused = true
	}
}

// withAttr returns a copy of v in which the first element carrying class
// has the attribute set. Only the path to that element is copied.
func withAttr(v View, class, name string, value any) View {
	if v.HasClass(class) {
		attrs := make(templ.Attributes, len(v.Attrs)+1)
		for k, val := range v.Attrs {
			attrs[k] = val
		}
		attrs[name] = value
		v.Attrs = attrs
		return v
	}
	for i := range v.Children {
		if v.Children[i].Find(class) == nil {
			continue
		}
		children := make([]View, len(v.Children))
		copy(children, v.Children)
		children[i] = withAttr(children[i], class, name, value)
		v.Children = children
		return v
	}
	return v
}
