package hxdialog

import "log/slog"

// ScrollLock coordinates one dialog instance's use of the page overflow
// style. It captures the pre-dialog value once per open episode, forces
// "hidden" while open, and restores the captured value on close.
//
// ScrollLock does not count references across instances. Two dialogs open
// at the same time on one Page can restore each other's locked value.
type ScrollLock struct {
	page   Page
	clean  ScrollbarCleaner
	logger *slog.Logger

	saved    string
	captured bool
}

// NewScrollLock creates a lock over page. clean may be nil.
func NewScrollLock(page Page, clean ScrollbarCleaner, logger *slog.Logger) *ScrollLock {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScrollLock{page: page, clean: clean, logger: logger}
}

// Engage runs on an opening edge.
func (l *ScrollLock) Engage(lockScroll bool) {
	if !lockScroll {
		return
	}
	if l.clean != nil {
		l.clean()
	}
	if !l.captured {
		l.saved = l.page.Overflow()
		l.captured = true
		l.logger.Debug("scroll lock: captured page overflow", "overflow", l.saved)
	}
	l.page.SetOverflow(overflowHidden)
}

// Release runs on a closing edge. The captured value is only written back
// for modal dialogs, and never when it is itself "hidden".
func (l *ScrollLock) Release(modal, lockScroll bool) {
	if !lockScroll {
		return
	}
	if l.captured && modal && l.saved != overflowHidden {
		l.page.SetOverflow(l.saved)
		l.logger.Debug("scroll lock: restored page overflow", "overflow", l.saved)
	}
	l.captured = false
}

// ForceClear runs on teardown and removes the inline overflow property
// whenever this instance may have set it, whether or not a close edge ran.
func (l *ScrollLock) ForceClear(mayHaveLocked bool) {
	if !mayHaveLocked {
		return
	}
	l.page.RemoveOverflow()
	l.captured = false
	l.logger.Debug("scroll lock: cleared page overflow")
}

// Saved returns the last captured overflow value and whether the current
// open episode holds a capture.
func (l *ScrollLock) Saved() (string, bool) {
	return l.saved, l.captured
}
