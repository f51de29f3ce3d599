package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cardpanel/cmd/cardpanel/ui"
	"cardpanel/internal/card"
	"cardpanel/internal/config"
	"cardpanel/internal/logging"
	"cardpanel/internal/payload"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	verbose    bool
	watch      bool

	// Logger for non-interactive commands
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cardpanel [payload.json]",
	Short: "cardpanel - terminal viewer for virtual payment cards",
	Long: `cardpanel renders the detail panel for a resolved virtual-card payload:
labeled fields with copy-to-clipboard affordances, plus a step-by-step
tutorial for entering the card into a third-party payment form.

The payload is an already-resolved JSON object (card or error) produced by
the surrounding application; cardpanel performs no data fetching itself.

Run with a payload file to open the panel, or use 'sample' to generate one.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The panel owns the terminal; zap is for the non-interactive commands.
		if cmd.Name() == "view" || cmd.Name() == cmd.Root().Name() {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runView(cmd, args)
	},
}

// viewCmd renders the panel for a payload file
var viewCmd = &cobra.Command{
	Use:   "view [payload.json]",
	Short: "Render the card detail panel for a resolved payload",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

// sampleCmd prints a demo payload
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a demo payload JSON with full card details",
	RunE: func(cmd *cobra.Command, args []string) error {
		res := payload.Sample()
		data, err := payload.Encode(res)
		if err != nil {
			return err
		}
		logger.Debug("generated sample payload", zap.String("card_id", res.Card.ID))
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := logging.Initialize(".", logging.Options{
		DebugMode:  cfg.Logging.DebugMode,
		Level:      cfg.Logging.Level,
		Categories: cfg.Logging.Categories,
	}); err != nil {
		return err
	}
	defer logging.CloseAll()

	res, err := payload.Load(args[0])
	if err != nil {
		return err
	}
	logging.Boot("loaded payload from %s", args[0])

	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
	page := ui.NewCardPageModel(styles)
	page.UpdateContent(res)

	p := tea.NewProgram(ui.NewAppModel(page), tea.WithAltScreen())

	if watch {
		w, err := payload.NewWatcher(args[0], func(r *card.Result) {
			p.Send(ui.PayloadMsg{Result: r})
		})
		if err != nil {
			return fmt.Errorf("create payload watcher: %w", err)
		}
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("start payload watcher: %w", err)
		}
		defer w.Stop()
	}

	_, err = p.Run()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .cardpanel/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging for non-interactive commands")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload the panel when the payload file changes")
	viewCmd.Flags().BoolVar(&watch, "watch", false, "reload the panel when the payload file changes")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(sampleCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
