package main

import (
	"fmt"

	"github.com/pthm/hxdialog"
	"github.com/pthm/hxdialog/lib/preview"
	"github.com/spf13/cobra"
)

func renderCmd(g *globals) *cobra.Command {
	var (
		visible bool
		id      string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the dialog markup for a configuration",
		Args:  cobra.NoArgs,
		// main prints the error once.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := g.loadConfig()
			if err != nil {
				return err
			}
			cfg := dialogConfig(cmd, f, visible)

			hooks := hxdialog.Hooks{}
			if id != "" {
				hooks.WrapperID = id + "-wrapper"
				hooks.TitleID = id + "-title"
			}
			out := cmd.OutOrStdout()
			if err := hxdialog.Build(cfg, hooks).Render(cmd.Context(), out); err != nil {
				return fmt.Errorf("rendering dialog: %w", err)
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&visible, "visible", false, "Override the configured visibility")
	cmd.Flags().StringVar(&id, "id", "", "Element id prefix for the wrapper and title")
	return cmd
}

func previewCmd(g *globals) *cobra.Command {
	var (
		visible bool
		width   int
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw the dialog in the terminal",
		Args:  cobra.NoArgs,
		// main prints the error once.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := g.loadConfig()
			if err != nil {
				return err
			}
			cfg := dialogConfig(cmd, f, visible)
			if !cmd.Flags().Changed("visible") {
				cfg.Visible = true
			}

			view := hxdialog.Build(cfg, hxdialog.Hooks{})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), preview.Render(view, preview.Options{
				Width: width,
				Body:  f.Dialog.Body,
			}))
			return err
		},
	}
	cmd.Flags().BoolVar(&visible, "visible", true, "Preview the dialog open or closed")
	cmd.Flags().IntVar(&width, "width", 80, "Terminal width in cells")
	return cmd
}
