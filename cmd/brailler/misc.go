package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/brailler/internal/braille"
	"github.com/san-kum/brailler/internal/signage"
	"github.com/san-kum/brailler/internal/viz"
)

func themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "preview the color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sample := braille.Encode("Hola")
			for _, t := range viz.Themes {
				st := viz.NewStyles(t)
				body := st.Braille.Render(sample) + "  " + st.Text.Render("Hola") + "\n\n" + st.BigCells(sample, 2)
				fmt.Println(st.BoxWithTitle(t.Name, body, 36))
				fmt.Println()
			}
			return nil
		},
	}
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list signage layout presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCELLS/LINE\tDOT\tDOT SPACING\tCELL SPACING\tGUIDES")
			for _, name := range signage.ListPresets() {
				l, _ := signage.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%.1fmm\t%.1fmm\t%.1fmm\t%v\n",
					l.Name, l.CellsPerLine, l.DotDiameter, l.DotSpacing, l.CellSpacing, l.Guides)
			}
			return w.Flush()
		},
	}
}

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "check the remote conversion backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			if a.client == nil {
				fmt.Println(a.styles.Warn.Render(a.msg.Sprintf("no remote backend configured")))
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
			defer cancel()

			start := time.Now()
			if err := a.client.Ping(ctx); err != nil {
				return err
			}
			elapsed := time.Since(start).Round(time.Millisecond)
			fmt.Println(a.styles.OK.Render(a.msg.Sprintf("remote backend reachable in %v", elapsed)))
			return nil
		},
	}
}
