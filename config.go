package hxdialog

import (
	"errors"
	"fmt"

	"github.com/a-h/templ"
)

// Size selects the panel width modifier class (el-dialog--{size}).
type Size string

const (
	SizeTiny  Size = "tiny"
	SizeSmall Size = "small"
	SizeLarge Size = "large"
	SizeFull  Size = "full"
)

// Valid reports whether s is one of the supported sizes.
func (s Size) Valid() bool {
	switch s {
	case SizeTiny, SizeSmall, SizeLarge, SizeFull:
		return true
	}
	return false
}

// Config is the owner-supplied configuration for one update of a dialog.
//
// The owner replaces the whole Config on every update. Visible is owned by
// the caller: the dialog reports dismissal through OnCancel and waits for
// the caller to pass a Config with Visible set to false.
type Config struct {
	Visible bool
	Title   string
	Size    Size

	// Top is the CSS offset of the panel from the top of the viewport.
	// Ignored when Size is SizeFull.
	Top string

	// Modal renders the backdrop layer and allows scroll restore on close.
	Modal       bool
	CustomClass string

	// LockScroll hides page overflow while the dialog is open.
	LockScroll         bool
	CloseOnClickModal  bool
	CloseOnPressEscape bool
	ShowClose          bool

	// OnCancel is required. It receives the event that requested dismissal.
	OnCancel func(Event)

	// Content is rendered inside the panel below the header.
	Content templ.Component
}

// DefaultConfig returns a closed dialog with the standard defaults:
// small size, 15% top offset, modal with scroll lock, and every dismissal
// path enabled.
func DefaultConfig() Config {
	return Config{
		Size:               SizeSmall,
		Top:                "15%",
		Modal:              true,
		LockScroll:         true,
		CloseOnClickModal:  true,
		CloseOnPressEscape: true,
		ShowClose:          true,
	}
}

// Validate performs development-time shape checks. The lifecycle never
// calls it; an invalid Size simply renders an unknown modifier class.
func (c Config) Validate() error {
	var errs []error
	if c.OnCancel == nil {
		errs = append(errs, ErrMissingOnCancel)
	}
	if c.Size != "" && !c.Size.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidSize, c.Size))
	}
	return errors.Join(errs...)
}
