package hxdialog

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// View is a structured description of a rendered element: tag, classes,
// inline style, attributes and children. Layer carries the stacking order
// for renderers that do not read the style map.
//
// The zero View renders nothing. A View with no Tag renders only its
// children.
type View struct {
	Tag      string
	Classes  []string
	Style    Style
	Attrs    templ.Attributes
	Layer    int
	Text     string
	Content  templ.Component
	Children []View
}

// IsZero reports whether v renders nothing.
func (v View) IsZero() bool {
	return v.Tag == "" && v.Text == "" && v.Content == nil && len(v.Children) == 0
}

// HasClass reports whether class is one of v's classes.
func (v View) HasClass(class string) bool {
	for _, c := range v.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns the first element in v's subtree (v included) carrying
// class, depth first. The pointer aliases the tree so callers can update
// attributes of a committed view in place.
func (v *View) Find(class string) *View {
	if v.HasClass(class) {
		return v
	}
	for i := range v.Children {
		if found := v.Children[i].Find(class); found != nil {
			return found
		}
	}
	return nil
}

// SetAttr sets an attribute, allocating the map on first use.
func (v *View) SetAttr(name string, value any) {
	if v.Attrs == nil {
		v.Attrs = templ.Attributes{}
	}
	v.Attrs[name] = value
}

// Show is the conditional-mount wrapper: the child is rendered when show
// is true and unmounted otherwise.
func Show(show bool, child View) View {
	if !show {
		return View{}
	}
	return child
}

// Transition tags the child's root with the named enter/leave transition.
// Playing the animation is left to the client stylesheet.
func Transition(name string, child View) View {
	if child.Tag == "" {
		return child
	}
	attrs := make(templ.Attributes, len(child.Attrs)+1)
	for k, val := range child.Attrs {
		attrs[k] = val
	}
	attrs["data-transition"] = name
	child.Attrs = attrs
	return child
}

// Component returns the templ component that writes v as HTML.
func (v View) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return v.render(ctx, w)
	})
}

// Render writes v as HTML.
func (v View) Render(ctx context.Context, w io.Writer) error {
	return v.render(ctx, w)
}

func (v View) render(ctx context.Context, w io.Writer) error {
	if v.Tag != "" {
		if err := writeOpenTag(w, v); err != nil {
			return err
		}
	}
	if v.Text != "" {
		if _, err := io.WriteString(w, templ.EscapeString(v.Text)); err != nil {
			return err
		}
	}
	for _, child := range v.Children {
		if err := child.render(ctx, w); err != nil {
			return err
		}
	}
	if v.Content != nil {
		if err := v.Content.Render(ctx, w); err != nil {
			return err
		}
	}
	if v.Tag != "" {
		if _, err := io.WriteString(w, "</"+v.Tag+">"); err != nil {
			return err
		}
	}
	return nil
}

func writeOpenTag(w io.Writer, v View) error {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(v.Tag)

	if len(v.Classes) > 0 {
		sb.WriteString(` class="`)
		sb.WriteString(templ.EscapeString(strings.Join(v.Classes, " ")))
		sb.WriteString(`"`)
	}
	if style := v.Style.String(); style != "" {
		sb.WriteString(` style="`)
		sb.WriteString(templ.EscapeString(style))
		sb.WriteString(`"`)
	}

	names := make([]string, 0, len(v.Attrs))
	for name := range v.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		switch val := v.Attrs[name].(type) {
		case bool:
			if val {
				sb.WriteString(" " + name)
			}
		case string:
			sb.WriteString(" " + name + `="` + templ.EscapeString(val) + `"`)
		default:
			sb.WriteString(" " + name + `="` + templ.EscapeString(fmt.Sprint(val)) + `"`)
		}
	}

	sb.WriteString(">")
	_, err := io.WriteString(w, sb.String())
	return err
}
