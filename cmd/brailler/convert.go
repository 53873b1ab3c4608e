package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/brailler/internal/gateway"
	"github.com/san-kum/brailler/internal/tui"
)

func newConvertCmd(use, short string, dir gateway.Direction) *cobra.Command {
	var (
		dots   bool
		asJSON bool
		noSave bool
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + ". Without arguments, lines are read from stdin and converted as they arrive.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			if noSave {
				a.cfg.SaveHistory = false
			}

			if len(args) == 0 {
				r := tui.NewLiveRenderer(os.Stdout, a.codec, a.styles).
					Decoding(dir == gateway.BrailleToText).
					WithDots(dots)
				return r.Run(cmd.Context(), os.Stdin)
			}

			res, err := a.convert(cmd.Context(), strings.Join(args, " "), dir)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			fmt.Println(res.Output)
			if dots && dir == gateway.TextToBraille {
				fmt.Println()
				fmt.Println(a.styles.BigCells(res.Output, 2))
			}
			a.logger.Debug("converted",
				"direction", res.Direction,
				"source", res.Source,
				"elapsed", res.Elapsed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dots, "dots", false, "draw large dot grids")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as json")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record in history")
	return cmd
}

// convert bounds the gateway call by the configured timeout and records
// the result.
func (a *app) convert(ctx context.Context, text string, dir gateway.Direction) (gateway.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	res, err := a.gw.Convert(ctx, text, dir)
	if errors.Is(err, context.DeadlineExceeded) {
		// remote hung past the deadline; the local codec still answers
		a.logger.Warn("remote conversion timed out, using local codec", "timeout", a.cfg.Timeout)
		res, err = a.gw.Local(text, dir), nil
	}
	if err != nil {
		return gateway.Result{}, err
	}
	a.record(context.WithoutCancel(ctx), res)
	return res, nil
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [text...]",
		Short: "report whether text can be converted to braille",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			chk := a.codec.CanConvert(strings.Join(args, " "))
			if chk.Valid {
				fmt.Println(a.styles.OK.Render("✓ " + a.msg.Sprintf("text can be converted")))
				return nil
			}
			fmt.Println(a.styles.Err.Render("✗ " + a.msg.Sprintf("text cannot be converted: %s", chk.Error)))
			return chk.Err()
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [braille...]",
		Short: "report whether a string only holds known braille cells",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			if a.codec.IsValidBraille(strings.Join(args, " ")) {
				fmt.Println(a.styles.OK.Render("✓ " + a.msg.Sprintf("valid braille")))
				return nil
			}
			fmt.Println(a.styles.Err.Render("✗ " + a.msg.Sprintf("invalid braille")))
			return errInvalidBraille
		},
	}
}

var errInvalidBraille = errors.New("input is not valid braille")

func runKeyboard(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	k, err := tui.RunKeyboard(a.codec, a.theme)
	if err != nil {
		return err
	}
	cells := k.Braille()
	if strings.Trim(cells, "⠀ ") == "" {
		return nil
	}

	res := a.gw.Local(cells, gateway.BrailleToText)
	a.record(cmd.Context(), res)

	fmt.Println(a.styles.Label.Render(a.msg.Sprintf("braille")+": ") + a.styles.Braille.Render(res.Original))
	fmt.Println(a.styles.Label.Render(a.msg.Sprintf("text")+": ") + a.styles.Text.Render(res.Output))
	return nil
}

func batchCmd() *cobra.Command {
	var (
		direction string
		workers   int
		noSave    bool
	)
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "convert every line of a file concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := gateway.ParseDirection(direction)
			if err != nil {
				return err
			}
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			if noSave {
				a.cfg.SaveHistory = false
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

			results, err := a.gw.Batch(cmd.Context(), lines, dir, workers)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Println(r.Output)
			}
			a.record(cmd.Context(), results...)
			return nil
		},
	}
	cmd.Flags().StringVarP(&direction, "direction", "d", string(gateway.TextToBraille), "texto-a-braille or braille-a-texto")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "concurrent conversions")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record in history")
	return cmd
}
