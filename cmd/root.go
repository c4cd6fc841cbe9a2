// Package cmd provides the CLI commands for the ringdown application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xvierd/ringdown/internal/adapters/tui"
	"github.com/xvierd/ringdown/internal/config"
	"github.com/xvierd/ringdown/internal/domain"
	"github.com/xvierd/ringdown/internal/theme"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath string
	inlineMode bool
	themeFlag  string

	// Loaded preferences, shared with subcommands
	appConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ringdown [duration]",
	Short: "ringdown - a countdown timer for the terminal",
	Long: `ringdown is a countdown timer that lives in your terminal: set hours,
minutes and seconds, then watch the ring drain as time runs out.

Run "ringdown" with no arguments to enter a duration interactively, or
pass one directly, like "ringdown 25m" or "ringdown 1:30:00".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appConfig, err = config.Load(configPath)
		if err != nil {
			// An unreadable config file never blocks the timer
			fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
			appConfig = config.DefaultConfig()
		}
		return nil
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.ringdown/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&inlineMode, "inline", "i", false, "Compact inline timer (no fullscreen)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Color theme: light, dark, or auto")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("ringdown\nVersion: {{.Version}}\n")
}

// runTimer starts the timer UI, optionally pre-started from a positional
// duration argument.
func runTimer(cmd *cobra.Command, args []string) error {
	if err := validateThemeFlag(themeFlag); err != nil {
		return err
	}

	machine := domain.New()
	prefill, _ := appConfig.PrefillFields()

	if len(args) == 1 {
		fields, err := domain.ParseClock(args[0])
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", args[0], err)
		}
		machine.SetConfig(fields)
		machine.Start()
	}

	detector := theme.NewTerminalDetector()
	mode := theme.InitialMode(themePreference(), detector)
	themes := theme.NewController(mode, appConfig.Theme.Light, appConfig.Theme.Dark)

	timer := tui.New(tui.Options{
		Machine:  machine,
		Themes:   themes,
		Detector: detector,
		Prefill:  prefill,
		Inline:   inlineMode || appConfig.Inline,
	})

	return timer.Run(setupSignalHandler())
}

// themePreference resolves the initial theme request: --theme flag > config.
func themePreference() string {
	if themeFlag != "" {
		return themeFlag
	}
	return appConfig.Theme.Mode
}

func validateThemeFlag(s string) error {
	switch s {
	case "", "auto", "light", "dark":
		return nil
	}
	return fmt.Errorf("invalid theme %q (want light, dark, or auto)", s)
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
