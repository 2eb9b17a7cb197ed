package hxdialog

import (
	"strings"
	"testing"

	"github.com/pthm/hxdialog/lib/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropsCarryConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Visible = true
	cfg.Title = "Rename"
	cfg.Size = SizeFull
	cfg.CustomClass = "wide"
	cfg.CloseOnClickModal = false

	enc, err := NewEncoder([]byte("props-key"))
	require.NoError(t, err)

	encoded, err := enc.Encode(PropsFrom("d9", cfg), encoding.Encrypted)
	require.NoError(t, err)

	var props Props
	require.NoError(t, enc.Decode(encoded, encoding.Encrypted, &props))

	var called bool
	got := props.Config(func(Event) { called = true }, nil)
	got.OnCancel(CloseEvent{})
	assert.True(t, called)

	got.OnCancel = nil
	assert.Equal(t, cfg, got)
	assert.Equal(t, "d9", props.ID)
}

func TestPropsWrapperID(t *testing.T) {
	assert.Equal(t, "d1-wrapper", Props{ID: "d1"}.WrapperID())
	assert.Equal(t, "", Props{}.WrapperID())
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.True(t, strings.HasPrefix(a, "dialog-"))
	assert.Len(t, a, len("dialog-")+8)
	assert.NotEqual(t, a, b)
}

func TestToInt64(t *testing.T) {
	for _, v := range []any{int8(5), int16(5), int32(5), int64(5), 5, uint8(5), uint16(5), uint32(5), uint64(5), float64(5)} {
		if got := toInt64(v); got != 5 {
			t.Errorf("toInt64(%T) = %d, want 5", v, got)
		}
	}
	if got := toInt64("5"); got != 0 {
		t.Errorf("toInt64(string) = %d, want 0", got)
	}
}
