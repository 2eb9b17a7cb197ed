package hxdialog

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		prev, next  bool
		wantEdge    Edge
		wantOpening bool
		wantClosing bool
	}{
		{"stays closed", false, false, EdgeNone, false, false},
		{"opens", false, true, EdgeOpening, true, false},
		{"stays open", true, true, EdgeNone, false, false},
		{"closes", true, false, EdgeClosing, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := Config{Visible: tt.prev}
			next := Config{Visible: tt.next}

			if got := Classify(prev, next); got != tt.wantEdge {
				t.Errorf("Classify() = %v, want %v", got, tt.wantEdge)
			}
			if got := WasOpening(prev, next); got != tt.wantOpening {
				t.Errorf("WasOpening() = %v, want %v", got, tt.wantOpening)
			}
			if got := WasClosing(prev, next); got != tt.wantClosing {
				t.Errorf("WasClosing() = %v, want %v", got, tt.wantClosing)
			}
		})
	}
}

func TestEdgesMutuallyExclusive(t *testing.T) {
	// Walk an arbitrary visibility sequence; every true edge fires exactly
	// one detector and no pair fires both.
	seq := []bool{false, true, true, false, false, true, false, true, true, true, false}
	for i := 1; i < len(seq); i++ {
		prev, next := Config{Visible: seq[i-1]}, Config{Visible: seq[i]}
		opening, closing := WasOpening(prev, next), WasClosing(prev, next)
		if opening && closing {
			t.Fatalf("step %d: both edges fired", i)
		}
		if edge := seq[i-1] != seq[i]; edge != (opening || closing) {
			t.Errorf("step %d: edge=%v but opening=%v closing=%v", i, edge, opening, closing)
		}
	}
}

func TestEdgeString(t *testing.T) {
	for edge, want := range map[Edge]string{
		EdgeNone:    "none",
		EdgeOpening: "opening",
		EdgeClosing: "closing",
	} {
		if got := edge.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", edge, got, want)
		}
	}
}
