package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/brailler/internal/braille"
	"github.com/san-kum/brailler/internal/config"
	"github.com/san-kum/brailler/internal/gateway"
	"github.com/san-kum/brailler/internal/history"
	"github.com/san-kum/brailler/internal/i18n"
	"github.com/san-kum/brailler/internal/viz"
)

var (
	configFile string
	dataDir    string
	apiURL     string
	lang       string
	themeName  string
	verbose    bool
)

// main runs the brailler CLI; it exits with status 1 when a command fails.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd wires every command. Without a subcommand the Braille
// keyboard starts.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "brailler",
		Short:         "spanish braille transcription toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runKeyboard,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&apiURL, "api", "", "remote conversion backend url")
	pf.StringVar(&lang, "lang", config.DefaultLang, "message language (es, en)")
	pf.StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		newConvertCmd("encode [text...]", "convert text to braille", gateway.TextToBraille),
		newConvertCmd("decode [braille...]", "convert braille to text", gateway.BrailleToText),
		batchCmd(),
		checkCmd(),
		validateCmd(),
		&cobra.Command{
			Use:   "keyboard",
			Short: "type braille with the six-key perkins layout",
			Args:  cobra.NoArgs,
			RunE:  runKeyboard,
		},
		historyCmd(),
		signCmd(),
		themesCmd(),
		presetsCmd(),
		pingCmd(),
	)
	return rootCmd
}

// app is the per-invocation environment shared by every command.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	codec  *braille.Codec
	client *gateway.Client
	gw     *gateway.Gateway
	theme  viz.Theme
	styles viz.Styles
	msg    i18n.Printer
}

// setup layers configuration as defaults, file, environment, then flags
// the user set explicitly.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("api") {
		cfg.APIURL = apiURL
	}
	if flags.Changed("lang") {
		cfg.Lang = lang
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	var opts []braille.Option
	if cfg.Codec.Normalize {
		opts = append(opts, braille.WithNormalization())
	}
	if cfg.Codec.NumberRuns {
		opts = append(opts, braille.WithNumberRuns())
	}
	codec := braille.New(nil, opts...)

	a := &app{
		cfg:    cfg,
		logger: logger,
		codec:  codec,
		msg:    i18n.New(cfg.Lang),
	}

	var remote gateway.Remote
	if cfg.APIURL != "" {
		a.client = gateway.NewClient(cfg.APIURL, cfg.UserID, cfg.Timeout)
		remote = a.client
		logger.Debug("remote backend configured", "url", cfg.APIURL)
	}
	a.gw = gateway.New(codec, remote, cfg.SaveHistory, logger)

	theme, ok := viz.GetTheme(cfg.Theme)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme, "available", strings.Join(viz.ThemeNames(), ","))
	}
	a.theme = theme
	a.styles = viz.NewStyles(theme)
	return a, nil
}

func (a *app) openStore(ctx context.Context) (*history.Store, error) {
	return history.Open(ctx, a.cfg.HistoryPath(), a.logger)
}

// record stores conversions when history is enabled. Failures are logged
// and never fail the conversion itself.
func (a *app) record(ctx context.Context, results ...gateway.Result) {
	if !a.cfg.SaveHistory || len(results) == 0 {
		return
	}
	st, err := a.openStore(ctx)
	if err != nil {
		a.logger.Warn("history unavailable", "error", err)
		return
	}
	defer st.Close()

	for _, res := range results {
		if res.Original == "" {
			continue
		}
		id, err := st.Save(ctx, history.FromResult(res))
		if err != nil {
			a.logger.Warn("history save failed", "error", err)
			continue
		}
		a.logger.Debug("conversion recorded", "id", id, "source", res.Source)
	}
}
