package hxdialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func recordingConfig() (Config, *[]Event) {
	var got []Event
	cfg := DefaultConfig()
	cfg.Visible = true
	cfg.OnCancel = func(ev Event) { got = append(got, ev) }
	return cfg, &got
}

func TestRouterKeyDown(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		ev      KeyEvent
		want    bool
	}{
		{"escape enabled", true, KeyEvent{Key: "Escape"}, true},
		{"legacy key name", true, KeyEvent{Key: "Esc"}, true},
		{"key code only", true, KeyEvent{KeyCode: 27}, true},
		{"escape disabled", false, KeyEvent{Key: "Escape"}, false},
		{"other key", true, KeyEvent{Key: "Enter", KeyCode: 13}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, got := recordingConfig()
			cfg.CloseOnPressEscape = tt.enabled

			assert.Equal(t, tt.want, NewRouter(nil).KeyDown(cfg, tt.ev))
			if tt.want {
				assert.Equal(t, []Event{tt.ev}, *got)
			} else {
				assert.Empty(t, *got)
			}
		})
	}
}

func TestRouterClick(t *testing.T) {
	wrapper := Element{ID: "d1-wrapper", Tag: "DIV"}
	panel := Element{ID: "d1-panel", Tag: "DIV"}

	tests := []struct {
		name    string
		enabled bool
		ev      ClickEvent
		want    bool
	}{
		{"backdrop enabled", true, ClickEvent{Target: wrapper, CurrentTarget: wrapper}, true},
		{"backdrop disabled", false, ClickEvent{Target: wrapper, CurrentTarget: wrapper}, false},
		{"descendant enabled", true, ClickEvent{Target: panel, CurrentTarget: wrapper}, false},
		{"descendant disabled", false, ClickEvent{Target: panel, CurrentTarget: wrapper}, false},
		{"anonymous target", true, ClickEvent{Target: Element{Tag: "DIV"}, CurrentTarget: Element{Tag: "DIV"}}, false},
		{"non-div target", true, ClickEvent{Target: Element{ID: "b", Tag: "BUTTON"}, CurrentTarget: Element{ID: "b", Tag: "BUTTON"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, got := recordingConfig()
			cfg.CloseOnClickModal = tt.enabled

			assert.Equal(t, tt.want, NewRouter(nil).Click(cfg, tt.ev))
			assert.Len(t, *got, map[bool]int{true: 1, false: 0}[tt.want])
		})
	}
}

func TestRouterCloseNeverChangesVisibility(t *testing.T) {
	cfg, got := recordingConfig()
	NewRouter(nil).Close(cfg, CloseEvent{})

	assert.True(t, cfg.Visible)
	assert.Equal(t, []Event{CloseEvent{}}, *got)
}

func TestRouterMissingOnCancelPanics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Visible = true

	assert.Panics(t, func() {
		NewRouter(nil).KeyDown(cfg, KeyEvent{Key: "Escape"})
	})
	// Non-dismissing events never reach the callback.
	assert.NotPanics(t, func() {
		NewRouter(nil).KeyDown(cfg, KeyEvent{Key: "a"})
	})
}

func TestZeroRouter(t *testing.T) {
	cfg, got := recordingConfig()
	var r Router
	r.Close(cfg, CloseEvent{})
	assert.Len(t, *got, 1)
}
