package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pthm/hxdialog"
	hxdialogecho "github.com/pthm/hxdialog/adapters/echo"
	"github.com/pthm/hxdialog/internal/config"
	"github.com/spf13/cobra"
)

func serveCmd(g *globals) *cobra.Command {
	var (
		addr string
		key  string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a demo page with one dialog",
		Args:  cobra.NoArgs,
		// main prints the error once.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(g.Debug)
			slog.SetDefault(logger)

			f, err := g.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = f.Addr()
			}
			if key == "" {
				key = f.Server.Key
			}
			return serve(cmd.Context(), logger, addr, key, f)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "Listen address")
	cmd.Flags().StringVar(&key, "key", "", "Props signing key (random per run when empty)")
	return cmd
}

func serve(ctx context.Context, logger *slog.Logger, addr, key string, f *config.File) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))

	var opts []hxdialogecho.Option
	if key != "" {
		opts = append(opts, hxdialogecho.WithKey([]byte(key)))
	}
	reg := hxdialogecho.Mount(e, opts...)

	d, err := newDemo(reg, logger, f.Config())
	if err != nil {
		return err
	}
	e.GET("/", d.index)
	e.GET("/dialog", d.fragment)

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving demo", "addr", addr)
		errc <- e.Start(addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("shutting down")
	d.close()
	return e.Shutdown(shutdownCtx)
}

// demo owns the single dialog instance of the demo page. Visibility is
// driven by the page: the open button and the dialog:cancel event both
// fetch /dialog with the wanted state.
type demo struct {
	mu     sync.Mutex
	page   *hxdialog.Body
	host   *hxdialog.HTMLHost
	dlg    *hxdialog.Dialog
	cfg    hxdialog.Config
	logger *slog.Logger
}

func newDemo(reg *hxdialog.Registry, logger *slog.Logger, cfg hxdialog.Config) (*demo, error) {
	comp := hxdialog.NewComponent("demo").
		WithLogger(logger).
		OnCancel(func(_ context.Context, p hxdialog.Props, ev hxdialog.Event) {
			logger.Info("dialog dismissal requested", "id", p.ID, "event", ev.EventType())
		})
	reg.Add(comp)

	id := hxdialog.NewID()
	open := cfg
	open.Visible = true
	hooks, err := comp.Hooks(hxdialog.PropsFrom(id, open))
	if err != nil {
		return nil, err
	}

	d := &demo{
		page:   hxdialog.NewBody("overflow: auto"),
		host:   &hxdialog.HTMLHost{},
		logger: logger,
	}
	d.dlg = hxdialog.New(d.page, d.host, hxdialog.WithLogger(logger), hxdialog.WithHooks(hooks))

	cfg.Visible = false
	cfg.OnCancel = func(ev hxdialog.Event) {
		logger.Debug("dialog cancel", "event", ev.EventType())
	}
	d.cfg = cfg
	d.dlg.Mount(cfg)
	return d, nil
}

func (d *demo) setVisible(visible bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cfg.Visible = visible
	d.dlg.Update(d.cfg)
}

func (d *demo) close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dlg.Unmount()
}

func (d *demo) index(c echo.Context) error {
	return hxdialogecho.Render(c, http.StatusOK, d.layout())
}

func (d *demo) fragment(c echo.Context) error {
	d.setVisible(c.QueryParam("open") == "1")
	return hxdialogecho.Render(c, http.StatusOK, d.dialogFragment())
}

// dialogFragment writes the dialog markup plus an out-of-band update of
// the page lock style.
func (d *demo) dialogFragment() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := d.host.Component().Render(ctx, w); err != nil {
			return err
		}
		return d.lockStyle(true).Render(ctx, w)
	})
}

func (d *demo) lockStyle(oob bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		attr := ""
		if oob {
			attr = ` hx-swap-oob="true"`
		}
		_, err := io.WriteString(w, `<style id="page-lock"`+attr+`>body { `+
			templ.EscapeString(d.page.StyleAttr())+` }</style>`)
		return err
	})
}

func (d *demo) layout() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		if err := d.lockStyle(false).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, pageBodyOpen); err != nil {
			return err
		}
		if err := d.host.Component().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageBodyClose)
		return err
	})
}

const pageHead = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>hxdialog demo</title>
<script src="https://unpkg.com/htmx.org@2.0.4"></script>
<style>
.el-dialog__wrapper { position: fixed; inset: 0; overflow: auto; }
.v-modal { position: fixed; inset: 0; background: #000; opacity: .5; }
.el-dialog { position: relative; margin: 0 auto 50px; background: #fff; border-radius: 2px; }
.el-dialog--tiny { width: 30%; } .el-dialog--small { width: 50%; }
.el-dialog--large { width: 90%; } .el-dialog--full { width: 100%; top: 0; margin-bottom: 0; height: 100%; }
.el-dialog__header { padding: 20px 20px 0; display: flex; justify-content: space-between; }
.el-dialog__headerbtn { border: none; background: transparent; cursor: pointer; }
.el-icon-close::before { content: "\2715"; }
</style>
`

const pageBodyOpen = `</head>
<body>
<button hx-get="/dialog?open=1" hx-target="#dialog">Open dialog</button>
<div id="dialog" hx-get="/dialog?open=0" hx-trigger="dialog:cancel from:body">
`

const pageBodyClose = `</div>
</body>
</html>
`
