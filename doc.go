// Package hxdialog provides a modal dialog component for server-rendered Go
// web applications built with templ and HTMX.
//
// A dialog is controlled: the owner supplies a Config with Visible on every
// update and the dialog never hides itself. Dismissal (Escape, a click on
// the backdrop, the close button) is reported through Config.OnCancel and
// the owner answers by passing a Config with Visible set to false.
//
// # Lifecycle
//
// A Dialog instance turns configuration updates into side effects:
//
//	page := hxdialog.NewBody("overflow: auto")
//	host := &hxdialog.HTMLHost{}
//	dlg := hxdialog.New(page, host, hxdialog.WithLogger(logger))
//
//	cfg := hxdialog.DefaultConfig()
//	cfg.Title = "Delete file?"
//	cfg.OnCancel = func(ev hxdialog.Event) { cfg.Visible = false; dlg.Update(cfg) }
//	dlg.Mount(cfg)
//
//	cfg.Visible = true
//	dlg.Update(cfg) // page overflow is now "hidden", wrapper has focus
//
// Each update is classified as an opening edge, a closing edge or neither
// (WasOpening, WasClosing). On an opening edge the page scroll is locked
// before the view is committed and focus moves to the dialog root after
// the commit. On a closing edge the captured overflow is restored. Unmount
// removes the overflow override whatever state the dialog was in.
//
// The three steps are exposed separately as OnConfigUpdate, OnAfterCommit
// and OnTeardown for hosts that drive their own commit.
//
// # Rendering
//
// Build produces a View tree, a structured description of the markup,
// which renders to HTML as a templ.Component. Class names (el-dialog,
// el-dialog__wrapper, el-dialog--{size}, ...) and the stacking orders of
// the wrapper (1013) and backdrop (1012) are part of the public contract.
//
// # HTTP
//
// Component serves a dialog over HTTP. Its markup posts wrapper events and
// close-button clicks back to the component, which routes them through the
// same dismissal rules and answers with an HX-Trigger "dialog:cancel"
// event for the owner:
//
//	reg := hxdialog.NewRegistry(key)
//	confirm := hxdialog.NewComponent("confirm").WithContent(confirmBody)
//	reg.Add(confirm)
//	http.Handle("/_c/", reg.Handler())
//
// Props are encoded in URLs and form values, signed by default and
// encrypted with Sensitive. Mutating requests require the HX-Request
// header.
//
// # Shared page state
//
// The page overflow style is global. ScrollLock coordinates a single
// instance's capture and restore; two dialogs open on the same page at
// once can restore each other's locked value.
package hxdialog
