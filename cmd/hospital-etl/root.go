package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

// Exit codes returned by the CLI.
const (
	exitSuccess     = 0
	exitError       = 1
	exitCancelled   = 4
	exitConfigError = 10
)

// Global flags shared by every subcommand.
var (
	configPath string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "hospital-etl",
	Short: "Bulk-load the hospital dataset into Neo4j",
	Long: `hospital-etl is a one-shot bulk loader that materializes six hospital
system CSV extracts (hospitals, payers, physicians, patients, visits,
reviews) as a labeled property graph in Neo4j.

Every write is an idempotent merge, so rerunning a finished or interrupted
load converges on the same graph. Transient store failures retry the whole
run from scratch on a fixed delay; anything else fails the run immediately.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// exitCodeFor maps an error to the process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, context.Canceled) {
		return exitCancelled
	}

	switch types.CodeOf(err) {
	case types.CONFIG_MISSING_SETTING, types.CONFIG_PARSE_FAILED, types.CONFIG_VALIDATION_FAILED:
		return exitConfigError
	case types.RUN_CANCELLED:
		return exitCancelled
	}
	return exitError
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a YAML config file (optional; environment variables win)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (overrides config)")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}
