package hxdialog

// Edge classifies a configuration update by its visibility transition.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeOpening
	EdgeClosing
)

func (e Edge) String() string {
	switch e {
	case EdgeOpening:
		return "opening"
	case EdgeClosing:
		return "closing"
	default:
		return "none"
	}
}

// WasOpening reports a false→true visibility transition.
func WasOpening(prev, next Config) bool {
	return !prev.Visible && next.Visible
}

// WasClosing reports a true→false visibility transition.
func WasClosing(prev, next Config) bool {
	return prev.Visible && !next.Visible
}

// Classify returns the edge for the prev→next update.
func Classify(prev, next Config) Edge {
	switch {
	case WasOpening(prev, next):
		return EdgeOpening
	case WasClosing(prev, next):
		return EdgeClosing
	default:
		return EdgeNone
	}
}
