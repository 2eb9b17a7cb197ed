package hxdialog

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLHostFocusLeavesCommittedViewAlone(t *testing.T) {
	host := &HTMLHost{}
	v := Build(openConfig(), Hooks{WrapperID: "w"})

	node := host.Commit(v)
	require.NotNil(t, node)
	node.Focus()

	_, ok := v.Find(ClassWrapper).Attrs["autofocus"]
	assert.False(t, ok, "committed tree must not be mutated")

	got := host.View()
	assert.Equal(t, true, got.Find(ClassWrapper).Attrs["autofocus"])
}

func TestHTMLHostStaleNode(t *testing.T) {
	host := &HTMLHost{}
	stale := host.Commit(Build(openConfig(), Hooks{}))
	require.NotNil(t, stale)

	host.Commit(Build(openConfig(), Hooks{}))
	stale.Focus()

	got := host.View()
	_, ok := got.Find(ClassWrapper).Attrs["autofocus"]
	assert.False(t, ok)
}

func TestHTMLHostHiddenReturnsNoNode(t *testing.T) {
	cfg := openConfig()
	cfg.Visible = false
	assert.Nil(t, (&HTMLHost{}).Commit(Build(cfg, Hooks{})))
}

// Run with -race: renders overlap opening and closing updates.
func TestHTMLHostConcurrentRender(t *testing.T) {
	host := &HTMLHost{}
	dlg := New(NewBody(""), host)
	cfg := openConfig()
	cfg.Visible = false
	dlg.Mount(cfg)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			mu.Lock()
			cfg.Visible = i%2 == 0
			dlg.Update(cfg)
			mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if err := host.Component().Render(context.Background(), io.Discard); err != nil {
				t.Error(err)
				return
			}
		}
	}()
	wg.Wait()
}
