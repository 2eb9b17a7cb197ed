package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pthm/hxdialog"
	"github.com/pthm/hxdialog/internal/config"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// globals holds the flags shared by every command.
type globals struct {
	Debug      bool
	ConfigPath string
}

func main() {
	var g globals

	rootCmd := &cobra.Command{
		Use:   "hxdialog",
		Short: "Modal dialog component for templ and HTMX",
		Long: `hxdialog renders modal dialogs for server-rendered Go applications.
The commands here serve a demo page, print dialog markup and preview a
dialog configuration in the terminal.`,
		Example: `  # Serve the demo page
  hxdialog serve --addr :8080

  # Print the markup for a configured dialog
  hxdialog render --config dialog.toml --visible

  # Preview the dialog in the terminal
  hxdialog preview --config dialog.toml`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&g.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&g.ConfigPath, "config", "c", "", "TOML file with server settings and dialog defaults")

	rootCmd.AddCommand(serveCmd(&g), renderCmd(&g), previewCmd(&g))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// loadConfig reads the config file when one was given.
func (g *globals) loadConfig() (*config.File, error) {
	if g.ConfigPath == "" {
		return &config.File{}, nil
	}
	return config.Load(g.ConfigPath)
}

// dialogConfig builds the dialog configuration for the render and preview
// commands, honouring an explicit --visible flag.
func dialogConfig(cmd *cobra.Command, f *config.File, visible bool) hxdialog.Config {
	cfg := f.Config()
	if cmd.Flags().Changed("visible") {
		cfg.Visible = visible
	}
	return cfg
}
