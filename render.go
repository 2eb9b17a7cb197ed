package hxdialog

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Class names and stacking orders are a public styling contract.
const (
	ClassDialog     = "el-dialog"
	ClassWrapper    = "el-dialog__wrapper"
	ClassHeader     = "el-dialog__header"
	ClassTitle      = "el-dialog__title"
	ClassHeaderBtn  = "el-dialog__headerbtn"
	ClassClose      = "el-dialog__close"
	ClassBackdrop   = "v-modal"
	TransitionName  = "dialog-fade"
	WrapperZIndex   = 1013
	BackdropZIndex  = 1012
	sizeClassPrefix = "el-dialog--"
)

// Hooks attach transport attributes to the interactive elements without
// the renderer knowing about the transport.
type Hooks struct {
	// WrapperID is the id of the wrapper element. Backdrop click detection
	// compares event targets by id, so transports need it set.
	WrapperID string
	// TitleID is the id of the title element, for aria-labelledby.
	TitleID string
	Wrapper templ.Attributes
	Close   templ.Attributes
}

// Build composes the dialog tree for cfg.
func Build(cfg Config, hooks Hooks) View {
	root := View{Tag: "div"}

	wrapperAttrs := copyAttrs(hooks.Wrapper)
	wrapperAttrs["tabindex"] = "-1"
	if hooks.WrapperID != "" {
		wrapperAttrs["id"] = hooks.WrapperID
	}

	wrapper := View{
		Tag:      "div",
		Classes:  []string{ClassWrapper},
		Style:    Style{"z-index": strconv.Itoa(WrapperZIndex)},
		Attrs:    wrapperAttrs,
		Layer:    WrapperZIndex,
		Children: []View{buildPanel(cfg, hooks)},
	}
	root.Children = append(root.Children, Transition(TransitionName, Show(cfg.Visible, wrapper)))

	if cfg.Modal {
		root.Children = append(root.Children, Show(cfg.Visible, View{
			Tag:     "div",
			Classes: []string{ClassBackdrop},
			Style:   Style{"z-index": strconv.Itoa(BackdropZIndex)},
			Layer:   BackdropZIndex,
		}))
	}
	return root
}

func buildPanel(cfg Config, hooks Hooks) View {
	title := View{Tag: "span", Classes: []string{ClassTitle}, Text: cfg.Title}
	if hooks.TitleID != "" {
		title.Attrs = templ.Attributes{"id": hooks.TitleID}
	}
	header := View{
		Tag:      "div",
		Classes:  []string{ClassHeader},
		Children: []View{title},
	}
	if cfg.ShowClose {
		closeAttrs := copyAttrs(hooks.Close)
		closeAttrs["type"] = "button"
		header.Children = append(header.Children, View{
			Tag:     "button",
			Classes: []string{ClassHeaderBtn},
			Attrs:   closeAttrs,
			Children: []View{
				{Tag: "i", Classes: []string{ClassClose, "el-icon", "el-icon-close"}},
			},
		})
	}

	var position Style
	if cfg.Size != SizeFull {
		position = Style{"top": cfg.Top}
	}

	return View{
		Tag:      "div",
		Classes:  panelClasses(cfg),
		Style:    MergeStyles(position),
		Children: []View{header},
		Content:  cfg.Content,
	}
}

func panelClasses(cfg Config) []string {
	classes := templ.Classes(
		ClassDialog,
		sizeClassPrefix+string(cfg.Size),
		templ.KV(cfg.CustomClass, cfg.CustomClass != ""),
	)
	return strings.Fields(classes.String())
}

func copyAttrs(src templ.Attributes) templ.Attributes {
	dst := make(templ.Attributes, len(src)+2)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
