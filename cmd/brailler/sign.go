package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/brailler/internal/history"
	"github.com/san-kum/brailler/internal/signage"
)

func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "create and export braille placards",
	}

	var (
		contrast bool
		preset   string
		outPath  string
		dots     bool
	)

	createCmd := &cobra.Command{
		Use:   "create [title] [text...]",
		Short: "store a new sign and show it",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			layout, err := a.layout(preset)
			if err != nil {
				return err
			}
			sign, err := signage.New(a.codec, args[0], strings.Join(args[1:], " "), contrast)
			if err != nil {
				return err
			}

			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.CreateSign(cmd.Context(), history.SignRecord{
				Title:        sign.Title,
				Text:         sign.Text,
				Braille:      sign.Braille,
				HighContrast: sign.HighContrast,
			})
			if err != nil {
				return err
			}

			fmt.Println(signage.RenderTerminal(sign, layout, a.theme, dots))
			fmt.Println(a.styles.OK.Render(a.msg.Sprintf("sign %d saved", id)))

			if outPath != "" {
				return a.writeSVG(cmd.Context(), st, id, sign, layout, outPath)
			}
			return nil
		},
	}
	createCmd.Flags().BoolVar(&contrast, "contrast", false, "high contrast colors")
	createCmd.Flags().StringVar(&preset, "preset", "", "signage layout preset")
	createCmd.Flags().StringVarP(&outPath, "out", "o", "", "also write the sign as svg")
	createCmd.Flags().BoolVar(&dots, "dots", false, "draw large dot grids")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored signs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSigns(cmd, func(ctx context.Context, st *history.Store) ([]history.SignRecord, error) {
				return st.ListSigns(ctx)
			})
		},
	}

	var popularLimit int
	popularCmd := &cobra.Command{
		Use:   "popular",
		Short: "list the most downloaded signs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSigns(cmd, func(ctx context.Context, st *history.Store) ([]history.SignRecord, error) {
				return st.PopularSigns(ctx, popularLimit)
			})
		},
	}
	popularCmd.Flags().IntVarP(&popularLimit, "limit", "n", 5, "maximum signs")

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "render a stored sign in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSign(cmd, args[0], func(a *app, st *history.Store, rec history.SignRecord) error {
				layout, err := a.layout(preset)
				if err != nil {
					return err
				}
				fmt.Println(signage.RenderTerminal(toSign(rec), layout, a.theme, dots))
				return nil
			})
		},
	}
	showCmd.Flags().StringVar(&preset, "preset", "", "signage layout preset")
	showCmd.Flags().BoolVar(&dots, "dots", false, "draw large dot grids")

	svgCmd := &cobra.Command{
		Use:   "svg [id]",
		Short: "export a stored sign as svg",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSign(cmd, args[0], func(a *app, st *history.Store, rec history.SignRecord) error {
				layout, err := a.layout(preset)
				if err != nil {
					return err
				}
				path := outPath
				if path == "" {
					path = fmt.Sprintf("sign_%d.svg", rec.ID)
				}
				return a.writeSVG(cmd.Context(), st, rec.ID, toSign(rec), layout, path)
			})
		},
	}
	svgCmd.Flags().StringVar(&preset, "preset", "", "signage layout preset")
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default sign_<id>.svg)")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "delete a stored sign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSign(cmd, args[0], func(a *app, st *history.Store, rec history.SignRecord) error {
				if err := st.DeleteSign(cmd.Context(), rec.ID); err != nil {
					return err
				}
				fmt.Println(a.msg.Sprintf("deleted sign %d", rec.ID))
				return nil
			})
		},
	}

	cmd.AddCommand(createCmd, listCmd, popularCmd, showCmd, svgCmd, deleteCmd)
	return cmd
}

// layout resolves a preset flag, falling back to the configured preset.
func (a *app) layout(name string) (signage.Layout, error) {
	if name == "" {
		name = a.cfg.Signage
	}
	l, ok := signage.GetPreset(name)
	if !ok {
		return signage.Layout{}, fmt.Errorf("unknown preset %q (%s)", name, strings.Join(signage.ListPresets(), ", "))
	}
	return l, nil
}

func (a *app) writeSVG(ctx context.Context, st *history.Store, id int64, sign signage.Sign, l signage.Layout, path string) error {
	svg := signage.RenderSVG(sign, l, a.theme)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	if err := st.RecordDownload(ctx, id, time.Now()); err != nil {
		return err
	}
	fmt.Println(a.msg.Sprintf("wrote %s", path))
	return nil
}

func withSign(cmd *cobra.Command, arg string, fn func(*app, *history.Store, history.SignRecord) error) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", arg)
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

	rec, err := st.GetSign(cmd.Context(), id)
	if err != nil {
		return err
	}
	return fn(a, st, rec)
}

func listSigns(cmd *cobra.Command, query func(context.Context, *history.Store) ([]history.SignRecord, error)) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	st, err := a.openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	signs, err := query(cmd.Context(), st)
	if err != nil {
		return err
	}
	if len(signs) == 0 {
		fmt.Println(a.msg.Sprintf("no signs yet"))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTITLE\tTEXT\t%s\tCREATED\n", strings.ToUpper(a.msg.Sprintf("downloads")))
	for _, s := range signs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			s.ID,
			truncate(s.Title, 20),
			truncate(s.Text, 28),
			s.Downloads,
			s.CreatedAt.Local().Format("2006-01-02"),
		)
	}
	return w.Flush()
}

func toSign(rec history.SignRecord) signage.Sign {
	return signage.Sign{
		Title:        rec.Title,
		Text:         rec.Text,
		Braille:      rec.Braille,
		HighContrast: rec.HighContrast,
	}
}
