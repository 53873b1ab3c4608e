package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/brailler/internal/gateway"
	"github.com/san-kum/brailler/internal/history"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "inspect stored conversions",
	}

	var (
		limit     int
		direction string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recent conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			var entries []history.Entry
			if direction != "" {
				dir, err := gateway.ParseDirection(direction)
				if err != nil {
					return err
				}
				entries, err = st.ListByDirection(cmd.Context(), dir, limit)
				if err != nil {
					return err
				}
			} else {
				entries, err = st.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
			}

			if len(entries) == 0 {
				fmt.Println(a.msg.Sprintf("history is empty"))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tDIRECTION\tSOURCE\tORIGINAL\tRESULT")
			for _, e := range entries {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					e.ID,
					e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					e.Direction,
					e.Source,
					truncate(e.Original, 24),
					truncate(e.Result, 24),
				)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum entries")
	listCmd.Flags().StringVar(&direction, "direction", "", "texto-a-braille or braille-a-texto")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "delete one conversion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println(a.msg.Sprintf("deleted entry %d", id))
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "delete every conversion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := st.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(a.msg.Sprintf("cleared %d entries", n))
			return nil
		},
	}

	var days int
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "conversion totals and a daily chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			stats, err := st.Stats(cmd.Context())
			if err != nil {
				return err
			}
			daily, err := st.Daily(cmd.Context(), days, time.Now())
			if err != nil {
				return err
			}

			row := func(label string, v int) string {
				return fmt.Sprintf("  %-24s %s", a.styles.Label.Render(label), a.styles.Value.Render(strconv.Itoa(v)))
			}
			fmt.Println()
			fmt.Println(row(a.msg.Sprintf("total conversions"), stats.Total))
			fmt.Println(row(a.msg.Sprintf("text to braille"), stats.TextToBraille))
			fmt.Println(row(a.msg.Sprintf("braille to text"), stats.BrailleToText))
			fmt.Println(row(a.msg.Sprintf("characters converted"), stats.CharsConverted))
			fmt.Println()

			data := make([]float64, len(daily))
			busy := false
			for i, d := range daily {
				data[i] = float64(d.Count)
				busy = busy || d.Count > 0
			}
			if !busy {
				return nil
			}
			graph := asciigraph.Plot(data,
				asciigraph.Height(8),
				asciigraph.Width(60),
				asciigraph.Precision(0),
				asciigraph.Caption(a.msg.Sprintf("conversions in the last %d days", days)),
			)
			fmt.Println(graph)
			fmt.Println()
			return nil
		},
	}
	statsCmd.Flags().IntVar(&days, "days", 14, "days shown in the chart")

	var (
		format  string
		outPath string
	)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export conversions as json or csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			entries, err := st.List(cmd.Context(), 0)
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "json":
				stats, err := st.Stats(cmd.Context())
				if err != nil {
					return err
				}
				err = history.ExportJSON(w, entries, stats, time.Now())
				if err != nil {
					return err
				}
			case "csv":
				if err := history.ExportCSV(w, entries); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (json, csv)", format)
			}

			if outPath != "" {
				fmt.Fprintln(os.Stderr, a.msg.Sprintf("exported %d entries to %s", len(entries), outPath))
			}
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "json or csv")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	cmd.AddCommand(listCmd, deleteCmd, clearCmd, statsCmd, exportCmd)
	return cmd
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
