package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pthm/hxdialog"
	hxdialogecho "github.com/pthm/hxdialog/adapters/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, g *globals, args ...string) string {
	t.Helper()
	root := renderCmd(g)
	if args[0] == "preview" {
		root = previewCmd(g)
	}
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args[1:])
	require.NoError(t, root.ExecuteContext(context.Background()))
	return out.String()
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dialog.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRenderCommand(t *testing.T) {
	g := &globals{ConfigPath: writeConfig(t, "[dialog]\ntitle = \"Rename\"\nsize = \"large\"\n")}

	hidden := runCommand(t, g, "render")
	assert.Equal(t, "<div></div>\n", hidden)

	open := runCommand(t, g, "render", "--visible", "--id", "d1")
	assert.Contains(t, open, `class="el-dialog el-dialog--large"`)
	assert.Contains(t, open, `id="d1-wrapper"`)
	assert.Contains(t, open, `<span class="el-dialog__title" id="d1-title">Rename</span>`)
}

func TestPreviewCommand(t *testing.T) {
	g := &globals{ConfigPath: writeConfig(t, "[dialog]\ntitle = \"Rename\"\nbody = \"Pick a new name.\"\n")}

	out := runCommand(t, g, "preview")
	assert.Contains(t, out, "Rename")
	assert.Contains(t, out, "Pick a new name.")

	closed := runCommand(t, g, "preview", "--visible=false")
	assert.Contains(t, closed, "(dialog hidden)")
}

func TestRenderCommandBadConfig(t *testing.T) {
	g := &globals{ConfigPath: writeConfig(t, "[dialog]\nunknown = 1\n")}
	cmd := renderCmd(g)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dialog.unknown")
	assert.Empty(t, stderr.String(), "the command must leave error output to main")
	assert.Empty(t, stdout.String())
}

func TestDemoFlow(t *testing.T) {
	e := echo.New()
	reg := hxdialogecho.Mount(e, hxdialogecho.WithKey([]byte("demo-test-key")))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	d, err := newDemo(reg, logger, hxdialog.DefaultConfig())
	require.NoError(t, err)
	e.GET("/", d.index)
	e.GET("/dialog", d.fragment)

	get := func(target string) string {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	index := get("/")
	assert.Contains(t, index, "body { overflow: auto; }")
	assert.NotContains(t, index, `class="el-dialog__wrapper"`)

	opened := get("/dialog?open=1")
	assert.Contains(t, opened, `class="el-dialog__wrapper"`)
	assert.Contains(t, opened, "autofocus")
	assert.Contains(t, opened, `<style id="page-lock" hx-swap-oob="true">body { overflow: hidden; }</style>`)

	closed := get("/dialog?open=0")
	assert.False(t, strings.Contains(closed, `class="el-dialog__wrapper"`))
	assert.Contains(t, closed, "body { overflow: auto; }")

	d.close()
	assert.False(t, d.page.HasOverflow())
}
