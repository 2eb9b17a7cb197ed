package hxdialog

import (
	"log/slog"
)

// State is the open/closed state of a dialog instance.
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Host commits a built view and returns the handle to the dialog root
// (the wrapper element), or nil when nothing focusable was mounted.
// Committing the zero View unmounts.
type Host interface {
	Commit(v View) Node
}

// HostFunc adapts a function to Host.
type HostFunc func(View) Node

func (f HostFunc) Commit(v View) Node { return f(v) }

// Option configures a Dialog.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	cleaner ScrollbarCleaner
	hooks   Hooks
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithScrollbarCleaner sets the routine invoked before the page is locked.
func WithScrollbarCleaner(fn ScrollbarCleaner) Option {
	return func(o *options) {
		o.cleaner = fn
	}
}

// WithHooks sets the transport attributes passed to Build.
func WithHooks(h Hooks) Option {
	return func(o *options) {
		o.hooks = h
	}
}

// Dialog is one mounted modal dialog instance.
//
// The owner drives it with Mount, Update and Unmount. Each update runs
// OnConfigUpdate before the view is committed and OnAfterCommit after, so
// the page is locked before the open state is painted and focus only moves
// once the root exists.
//
// A Dialog is not safe for concurrent use.
type Dialog struct {
	lock   *ScrollLock
	router Router
	host   Host
	hooks  Hooks
	logger *slog.Logger

	cfg           Config
	root          Node
	mounted       bool
	mayHaveLocked bool
}

// New creates an unmounted dialog that locks page scrolling on page and
// commits its views to host. Without a Hooks.WrapperID the wrapper gets a
// generated id, see WrapperID.
func New(page Page, host Host, opts ...Option) *Dialog {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if o.hooks.WrapperID == "" {
		o.hooks.WrapperID = NewID() + "-wrapper"
	}
	return &Dialog{
		lock:   NewScrollLock(page, o.cleaner, o.logger),
		router: NewRouter(o.logger),
		host:   host,
		hooks:  o.hooks,
		logger: o.logger,
	}
}

// Mount commits the first configuration. A dialog mounted with Visible set
// goes through a regular opening edge.
func (d *Dialog) Mount(cfg Config) {
	if d.mounted {
		d.Update(cfg)
		return
	}
	d.mounted = true
	d.cfg = Config{}
	d.Update(cfg)
}

// Update replaces the configuration. Updating an unmounted dialog mounts it.
func (d *Dialog) Update(next Config) {
	if !d.mounted {
		d.Mount(next)
		return
	}
	prev := d.cfg
	d.OnConfigUpdate(prev, next)
	d.cfg = next
	d.root = d.host.Commit(Build(next, d.hooks))
	d.OnAfterCommit(prev, next)
}

// Unmount tears the dialog down and removes any page override it may have
// applied.
func (d *Dialog) Unmount() {
	if !d.mounted {
		return
	}
	d.OnTeardown()
	d.host.Commit(View{})
	d.mounted = false
	d.cfg = Config{}
}

// OnConfigUpdate runs before the commit for next. It engages the scroll
// lock on an opening edge and releases it on a closing edge. Release uses
// the settings of the configuration the dialog was open under.
func (d *Dialog) OnConfigUpdate(prev, next Config) Edge {
	if next.LockScroll {
		d.mayHaveLocked = true
	}
	edge := Classify(prev, next)
	switch edge {
	case EdgeOpening:
		d.lock.Engage(next.LockScroll)
	case EdgeClosing:
		d.lock.Release(prev.Modal, prev.LockScroll)
	}
	if edge != EdgeNone {
		d.logger.Debug("dialog: visibility edge", "edge", edge, "title", next.Title)
	}
	return edge
}

// OnAfterCommit runs after the commit for next and focuses the root on an
// opening edge.
func (d *Dialog) OnAfterCommit(prev, next Config) {
	if focusOnOpen(prev, next, d.root) {
		d.logger.Debug("dialog: focused root", "title", next.Title)
	}
}

// OnTeardown clears the page override and drops the root handle.
func (d *Dialog) OnTeardown() {
	d.lock.ForceClear(d.mayHaveLocked)
	d.root = nil
}

// KeyDown routes a key-down event from inside the dialog.
func (d *Dialog) KeyDown(ev KeyEvent) bool {
	return d.router.KeyDown(d.cfg, ev)
}

// Click routes a click bubbled to the wrapper. Elements are matched by id,
// so a backdrop click carries WrapperID as both target and current target.
func (d *Dialog) Click(ev ClickEvent) bool {
	return d.router.Click(d.cfg, ev)
}

// Close routes the header close button.
func (d *Dialog) Close() {
	d.router.Close(d.cfg, CloseEvent{})
}

// WrapperID returns the id of the wrapper element.
func (d *Dialog) WrapperID() string {
	return d.hooks.WrapperID
}

// State returns whether the dialog is currently open.
func (d *Dialog) State() State {
	if d.mounted && d.cfg.Visible {
		return StateOpen
	}
	return StateClosed
}

// Config returns the configuration of the last update.
func (d *Dialog) Config() Config {
	return d.cfg
}

// Root returns the current root handle, nil when not mounted or hidden.
func (d *Dialog) Root() Node {
	return d.root
}

// SavedOverflow returns the captured pre-dialog overflow value.
func (d *Dialog) SavedOverflow() (string, bool) {
	return d.lock.Saved()
}
