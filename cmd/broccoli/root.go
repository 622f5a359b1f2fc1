// ABOUTME: Root Cobra command for the broccoli CLI.
// ABOUTME: Loads config, sets up logging, and builds the page service in PersistentPreRunE.
package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/harperreed/broccoli/internal/api"
	"github.com/harperreed/broccoli/internal/config"
	"github.com/harperreed/broccoli/internal/logging"
	"github.com/harperreed/broccoli/internal/notify"
	"github.com/harperreed/broccoli/internal/pages"
	"github.com/harperreed/broccoli/internal/prefs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	svc       *pages.Service
	prefStore *prefs.Store
	userPrefs prefs.Prefs
	notifier  *notify.Terminal
	registry  *prometheus.Registry

	flagYes      bool
	flagVerbose  bool
	flagNoColor  bool
	flagLogLevel string
)

// newBackend builds the backend used by every command. Tests swap it for a fake.
var newBackend = func(c *config.Config, reg prometheus.Registerer) api.Backend {
	return c.NewClient(api.WithMetrics(api.NewMetrics("broccoli", reg)))
}

var rootCmd = &cobra.Command{
	Use:   "broccoli",
	Short: "Workout tracker client",
	Long: `Broccoli is a client for a workout tracking REST backend.

WHAT IT TRACKS:

  Categories   muscle groups or disciplines (legs, back, cardio, ...)
  Exercises    named movements, each in exactly one category
  Records      one logged set: weight x reps on a date

QUICK START:

  $ broccoli category add Legs              # Create a category
  $ broccoli exercise add Squat -c 1        # Add an exercise to it
  $ broccoli record add 2 100 5             # Log 100 x 5 for exercise 2 today
  $ broccoli record today                   # Review today's sets
  $ broccoli dashboard                      # Workout days and last 7 days

VIEWS:

  $ broccoli calendar --view month          # Heat-map of sets per day
  $ broccoli history --category 1 --page 2  # Filtered, paginated record list

SERVERS:

  broccoli mcp      Model Context Protocol server on stdio
  broccoli serve    JSON view-model HTTP server with /metrics

CONFIGURATION:

  Backend URL comes from BROCCOLI_API_BASE_URL, then api_base_url in
  ~/.config/broccoli/config.json, then http://localhost:8000.
  Display preferences live in ~/.local/share/broccoli/prefs.
  Workout data is never stored locally.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logging.Setup(flagLogLevel, cfg.LogLevel, flagNoColor)

		// PersistentPostRunE is skipped when RunE fails.
		closePrefs()

		userPrefs = prefs.Defaults()
		prefStore, err = cfg.OpenPrefs()
		if err != nil {
			// Another broccoli process may hold the store; fall back to defaults.
			slog.Debug("preferences unavailable", "error", err)
			prefStore = nil
		} else if userPrefs, err = prefStore.Load(); err != nil {
			slog.Debug("failed to load preferences", "error", err)
			userPrefs = prefs.Defaults()
		}
		applyTheme(userPrefs.Theme)

		registry = prometheus.NewRegistry()
		svc = pages.NewService(newBackend(cfg, registry))
		notifier = notify.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), flagYes, flagVerbose)

		slog.Debug("backend configured", "base_url", cfg.GetBaseURL(), "cache_ttl", cfg.GetCacheTTL())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closePrefs()
	},
}

func closePrefs() error {
	if prefStore == nil {
		return nil
	}
	err := prefStore.Close()
	prefStore = nil
	return err
}

func applyTheme(theme prefs.Theme) {
	switch {
	case flagNoColor || theme == prefs.ThemePlain:
		color.NoColor = true
	case theme == prefs.ThemeColor:
		color.NoColor = false
	}
}

// fail reports a failed action through the notifier and returns err so the
// command exits non-zero. Details are logged at debug level.
func fail(msg string, err error) error {
	slog.Debug(msg, "error", err)
	notifier.Failure(msg, err)
	return fmt.Errorf("%s: %w", msg, err)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "broccoli %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "skip confirmation prompts")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "include error details in failure messages")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}
