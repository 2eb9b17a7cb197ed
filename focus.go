package hxdialog

// Node is the handle to the committed dialog root. It is only valid between
// the commit that returned it and the next commit or teardown.
type Node interface {
	Focus()
}

// focusOnOpen moves focus to root on an opening edge. It must run after the
// commit that produced root.
func focusOnOpen(prev, next Config, root Node) bool {
	if !WasOpening(prev, next) || root == nil {
		return false
	}
	root.Focus()
	return true
}
