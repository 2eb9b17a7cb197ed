// Package config loads dialog defaults and server settings from TOML.
package config

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/a-h/templ"
	"github.com/pthm/hxdialog"
)

// DefaultAddr is the listen address when neither the file nor a flag sets one.
const DefaultAddr = ":8080"

// File is the on-disk configuration.
type File struct {
	Server Server `toml:"server"`
	Dialog Dialog `toml:"dialog"`
}

// Server configures the demo server.
type Server struct {
	Addr string `toml:"addr,omitempty"`
	// Key signs and encrypts dialog props. Empty means a random key per run.
	Key string `toml:"key,omitempty"`
}

// Dialog overrides hxdialog.DefaultConfig. Unset fields keep the default.
type Dialog struct {
	Title       string `toml:"title,omitempty"`
	Size        string `toml:"size,omitempty"`
	Top         string `toml:"top,omitempty"`
	CustomClass string `toml:"custom_class,omitempty"`
	// Body is plain text rendered as the panel content.
	Body string `toml:"body,omitempty"`

	Visible            *bool `toml:"visible,omitempty"`
	Modal              *bool `toml:"modal,omitempty"`
	LockScroll         *bool `toml:"lock_scroll,omitempty"`
	CloseOnClickModal  *bool `toml:"close_on_click_modal,omitempty"`
	CloseOnPressEscape *bool `toml:"close_on_press_escape,omitempty"`
	ShowClose          *bool `toml:"show_close,omitempty"`
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}

// Parse parses TOML from a string.
func Parse(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &f, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}

// Addr returns the configured listen address or DefaultAddr.
func (f *File) Addr() string {
	if f == nil || f.Server.Addr == "" {
		return DefaultAddr
	}
	return f.Server.Addr
}

// Apply layers the dialog section over base.
func (d Dialog) Apply(base hxdialog.Config) hxdialog.Config {
	cfg := base
	if d.Title != "" {
		cfg.Title = d.Title
	}
	if d.Size != "" {
		cfg.Size = hxdialog.Size(d.Size)
	}
	if d.Top != "" {
		cfg.Top = d.Top
	}
	if d.CustomClass != "" {
		cfg.CustomClass = d.CustomClass
	}
	if d.Body != "" {
		cfg.Content = Text(d.Body)
	}
	setBool(&cfg.Visible, d.Visible)
	setBool(&cfg.Modal, d.Modal)
	setBool(&cfg.LockScroll, d.LockScroll)
	setBool(&cfg.CloseOnClickModal, d.CloseOnClickModal)
	setBool(&cfg.CloseOnPressEscape, d.CloseOnPressEscape)
	setBool(&cfg.ShowClose, d.ShowClose)
	return cfg
}

// Config returns hxdialog.DefaultConfig with the dialog section applied.
func (f *File) Config() hxdialog.Config {
	if f == nil {
		return hxdialog.DefaultConfig()
	}
	return f.Dialog.Apply(hxdialog.DefaultConfig())
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Text renders s as an escaped paragraph.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>"+templ.EscapeString(s)+"</p>")
		return err
	})
}
