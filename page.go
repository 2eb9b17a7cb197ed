package hxdialog

import (
	"sort"
	"strings"
	"sync"
)

const overflowHidden = "hidden"

// Page is the page-global style resource the scroll lock operates on: the
// inline overflow property of the document body.
//
// Every dialog mounted on the same page shares one Page.
type Page interface {
	Overflow() string
	SetOverflow(v string)
	// RemoveOverflow drops the inline property so the computed default
	// applies again.
	RemoveOverflow()
}

// ScrollbarCleaner removes scrollbar compensation artifacts before the page
// is locked. It must be idempotent.
type ScrollbarCleaner func()

// Body is an in-memory model of the document body's inline style. It is safe
// for concurrent use so several dialogs can share one page.
type Body struct {
	mu    sync.Mutex
	style map[string]string
}

// NewBody creates a body from an inline style declaration such as
// "overflow: auto; color: red".
func NewBody(style string) *Body {
	b := &Body{style: make(map[string]string)}
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		b.style[name] = strings.TrimSpace(value)
	}
	return b
}

// Overflow returns the inline overflow value, or "" when unset.
func (b *Body) Overflow() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.style["overflow"]
}

// SetOverflow sets the inline overflow value. Setting "" removes it, as a
// browser does for an empty style assignment.
func (b *Body) SetOverflow(v string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v == "" {
		delete(b.style, "overflow")
		return
	}
	b.style["overflow"] = v
}

// RemoveOverflow drops the inline overflow property.
func (b *Body) RemoveOverflow() {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.style, "overflow")
}

// HasOverflow reports whether an inline overflow value is present.
func (b *Body) HasOverflow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.style["overflow"]
	return ok
}

// StyleAttr renders the inline style as a style attribute value with
// properties in name order.
func (b *Body) StyleAttr() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Style(b.style).String()
}

// Style is an inline style map. Empty values are omitted when rendered.
type Style map[string]string

// MergeStyles combines style fragments; later fragments win.
func MergeStyles(fragments ...Style) Style {
	out := make(Style)
	for _, f := range fragments {
		for k, v := range f {
			out[k] = v
		}
	}
	return out
}

// String renders the style as "name: value; ..." in name order.
func (s Style) String() string {
	names := make([]string, 0, len(s))
	for k, v := range s {
		if v != "" {
			names = append(names, k)
		}
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(s[name])
		sb.WriteString(";")
	}
	return sb.String()
}
