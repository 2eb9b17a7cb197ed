package hxdialog

import (
	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/pthm/hxdialog/lib/encoding"
)

// Props is the serializable part of a Config, carried in component URLs
// and form values. Callbacks and content live on the server side.
type Props struct {
	ID                 string
	Visible            bool
	Title              string
	Size               Size
	Top                string
	Modal              bool
	CustomClass        string
	LockScroll         bool
	CloseOnClickModal  bool
	CloseOnPressEscape bool
	ShowClose          bool
}

// Compile-time interface compliance
var (
	_ encoding.Encodable = Props{}
	_ encoding.Decodable = (*Props)(nil)
)

// NewID returns a fresh element id for a dialog.
func NewID() string {
	return "dialog-" + uuid.NewString()[:8]
}

// PropsFrom extracts the serializable fields of cfg.
func PropsFrom(id string, cfg Config) Props {
	return Props{
		ID:                 id,
		Visible:            cfg.Visible,
		Title:              cfg.Title,
		Size:               cfg.Size,
		Top:                cfg.Top,
		Modal:              cfg.Modal,
		CustomClass:        cfg.CustomClass,
		LockScroll:         cfg.LockScroll,
		CloseOnClickModal:  cfg.CloseOnClickModal,
		CloseOnPressEscape: cfg.CloseOnPressEscape,
		ShowClose:          cfg.ShowClose,
	}
}

// Config rebuilds a Config from p with the given callback and content.
func (p Props) Config(onCancel func(Event), content templ.Component) Config {
	return Config{
		Visible:            p.Visible,
		Title:              p.Title,
		Size:               p.Size,
		Top:                p.Top,
		Modal:              p.Modal,
		CustomClass:        p.CustomClass,
		LockScroll:         p.LockScroll,
		CloseOnClickModal:  p.CloseOnClickModal,
		CloseOnPressEscape: p.CloseOnPressEscape,
		ShowClose:          p.ShowClose,
		OnCancel:           onCancel,
		Content:            content,
	}
}

// WrapperID is the element id of the dialog wrapper.
func (p Props) WrapperID() string {
	if p.ID == "" {
		return ""
	}
	return p.ID + "-wrapper"
}

// HXEncode encodes props to a map for serialization.
func (p Props) HXEncode() encoding.Fields {
	m := encoding.Fields{
		"id": p.ID,
		"sz": string(p.Size),
	}
	if p.Title != "" {
		m["t"] = p.Title
	}
	if p.Top != "" {
		m["top"] = p.Top
	}
	if p.CustomClass != "" {
		m["cc"] = p.CustomClass
	}
	m["f"] = p.flags()
	return m
}

// HXDecode decodes props from a map.
func (p *Props) HXDecode(m encoding.Fields) error {
	if v, ok := m["id"].(string); ok {
		p.ID = v
	}
	if v, ok := m["sz"].(string); ok {
		p.Size = Size(v)
	}
	if v, ok := m["t"].(string); ok {
		p.Title = v
	}
	if v, ok := m["top"].(string); ok {
		p.Top = v
	}
	if v, ok := m["cc"].(string); ok {
		p.CustomClass = v
	}
	if v, ok := m["f"]; ok {
		p.setFlags(toInt64(v))
	}
	return nil
}

const (
	flagVisible = 1 << iota
	flagModal
	flagLockScroll
	flagCloseOnClickModal
	flagCloseOnPressEscape
	flagShowClose
)

func (p Props) flags() int64 {
	var f int64
	set := func(on bool, bit int64) {
		if on {
			f |= bit
		}
	}
	set(p.Visible, flagVisible)
	set(p.Modal, flagModal)
	set(p.LockScroll, flagLockScroll)
	set(p.CloseOnClickModal, flagCloseOnClickModal)
	set(p.CloseOnPressEscape, flagCloseOnPressEscape)
	set(p.ShowClose, flagShowClose)
	return f
}

func (p *Props) setFlags(f int64) {
	p.Visible = f&flagVisible != 0
	p.Modal = f&flagModal != 0
	p.LockScroll = f&flagLockScroll != 0
	p.CloseOnClickModal = f&flagCloseOnClickModal != 0
	p.CloseOnPressEscape = f&flagCloseOnPressEscape != 0
	p.ShowClose = f&flagShowClose != 0
}

// toInt64 normalizes the integer widths msgpack picks when decoding.
func toInt64(v any) int64 {
	switch n := v.(type) {
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
