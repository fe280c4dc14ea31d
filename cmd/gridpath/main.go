// Command gridpath solves, compares, renders and serves grid path searches.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

var (
	logger       = logrus.New()
	flagLogLevel string
	flagLogFmt   string
	flagFmt      string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("gridpath version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("gridpath version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gridpath",
		Short:   "A* and BFS shortest paths on 4-connected grids, plus a Nim solver",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envOr("GRIDPATH_LOG_LEVEL", "warn"), "Log level: debug|info|warn|error (env: GRIDPATH_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagLogFmt, "log-format", envOr("GRIDPATH_LOG_FORMAT", "text"), "Log format: text|json (env: GRIDPATH_LOG_FORMAT)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "table", "Output format: table|json")

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newScenariosCmd())
	rootCmd.AddCommand(newNimCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogger applies the persistent log flags to the shared logger. Logs
// go to stderr so stdout stays parseable.
func setupLogger(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger.SetLevel(level)
	logger.SetOutput(cmd.ErrOrStderr())
	switch flagLogFmt {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("--log-format must be text or json, got %q", flagLogFmt)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
