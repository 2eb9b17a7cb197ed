package hxdialog

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
)

func TestShow(t *testing.T) {
	child := View{Tag: "div", Classes: []string{"x"}}

	assert.Equal(t, child, Show(true, child))
	assert.True(t, Show(false, child).IsZero())
}

func TestTransition(t *testing.T) {
	child := View{Tag: "div", Attrs: templ.Attributes{"id": "a"}}
	got := Transition("fade", child)

	assert.Equal(t, "fade", got.Attrs["data-transition"])
	assert.Equal(t, "a", got.Attrs["id"])
	_, mutated := child.Attrs["data-transition"]
	assert.False(t, mutated)

	assert.True(t, Transition("fade", View{}).IsZero())
}

func TestFindAliasesTree(t *testing.T) {
	v := View{Tag: "div", Children: []View{
		{Tag: "span", Classes: []string{"a"}},
		{Tag: "div", Children: []View{{Tag: "b", Classes: []string{"target"}}}},
	}}

	found := v.Find("target")
	if assert.NotNil(t, found) {
		found.SetAttr("autofocus", true)
	}
	assert.Equal(t, true, v.Children[1].Children[0].Attrs["autofocus"])
	assert.Nil(t, v.Find("missing"))
}

func TestRenderAttributes(t *testing.T) {
	v := View{Tag: "div", Attrs: templ.Attributes{
		"tabindex":  -1,
		"autofocus": true,
		"hidden":    false,
		"title":     `a "b"`,
	}}

	assert.Equal(t, `<div autofocus tabindex="-1" title="a &#34;b&#34;"></div>`, renderHTML(t, v))
}

func TestStyleString(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{nil, ""},
		{Style{"top": ""}, ""},
		{Style{"z-index": "1013"}, "z-index: 1013;"},
		{Style{"top": "15%", "color": "red"}, "color: red; top: 15%;"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("Style(%v).String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestNewBody(t *testing.T) {
	b := NewBody(" overflow : auto ;color:red; ;junk")

	assert.Equal(t, "auto", b.Overflow())
	assert.Equal(t, "color: red; overflow: auto;", b.StyleAttr())

	b.SetOverflow("")
	assert.False(t, b.HasOverflow())
}
