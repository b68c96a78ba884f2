package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/config"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/graph"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/schema"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/source"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

var dryRun bool

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Run the full load: constraints, nodes, relationships",
	Long: `Load runs the complete pipeline against the configured Neo4j instance:
uniqueness constraints for every label, then all six node extracts, then all
six relationship extracts. The run is idempotent and safe to repeat.

Configuration comes from defaults, an optional YAML file (--config), and
environment variables (NEO4J_URI, NEO4J_USERNAME, NEO4J_PASSWORD,
HOSPITALS_CSV_PATH, ... REVIEWS_CSV_PATH), in that order.`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"read and validate every extract without touching the graph store")
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}

	logger, err := setupLogger(cfg.Logging)
	if err != nil {
		return err
	}

	if dryRun {
		return runDryRun(cmd, cfg, logger)
	}

	client, err := graph.NewNeo4jClient(clientConfig(cfg))
	if err != nil {
		return err
	}

	runner := etl.NewRunner(client, cfg, logger)
	report, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	totals := report.Totals()
	cmd.Printf("Load complete: state=%s attempts=%d duration=%s\n",
		report.State, report.Attempts, report.Duration.Round(time.Millisecond))
	cmd.Printf("  rows read:             %d\n", totals.RowsRead)
	cmd.Printf("  nodes created:         %d\n", totals.NodesCreated)
	cmd.Printf("  relationships created: %d\n", totals.RelationshipsCreated)
	cmd.Printf("  properties set:        %d\n", totals.PropertiesSet)
	cmd.Printf("  constraints added:     %d\n", totals.ConstraintsAdded)
	return nil
}

// runDryRun walks every extract through the same reader and coercion the
// real load uses, without opening a graph connection. It catches missing
// files, missing columns, malformed rows, and uncoercible values.
func runDryRun(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("dry run: validating extracts without writing")

	totalRows := 0
	scans := 0
	for _, spec := range schema.Nodes() {
		n, err := scanExtract(cfg.CSV.PathFor(spec.Source), spec.Columns(), spec.Params)
		if err != nil {
			return err
		}
		logger.Info("extract validated", "source", spec.Source, "label", spec.Label, "rows", n)
		totalRows += n
		scans++
	}
	for _, spec := range schema.Relationships() {
		n, err := scanExtract(cfg.CSV.PathFor(spec.Source), spec.Columns(), spec.Params)
		if err != nil {
			return err
		}
		logger.Info("extract validated", "source", spec.Source, "type", spec.Type, "rows", n)
		totalRows += n
		scans++
	}

	cmd.Printf("Dry run OK: %d rows across %d extract scans\n", totalRows, scans)
	return nil
}

func scanExtract(path string, columns []string, params func(source.Row) (map[string]any, error)) (int, error) {
	src, err := source.OpenCSV(path, columns)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	n := 0
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, err
		}
		if _, err := params(row); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// loadRuntimeConfig assembles the configuration from defaults, the optional
// config file, and the environment, then applies flag overrides.
func loadRuntimeConfig() (*config.Config, error) {
	loader := config.NewConfigLoader(config.NewValidator())
	cfg, err := loader.LoadWithDefaults(configPath)
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	return cfg, nil
}

// setupLogger builds the process logger from the logging configuration and
// installs it as the slog default.
func setupLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("unknown log level %q", cfg.Level))
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	case "text", "":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		return nil, types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("unknown log format %q", cfg.Format))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}

func clientConfig(cfg *config.Config) graph.ClientConfig {
	cc := graph.DefaultClientConfig()
	cc.URI = cfg.Neo4j.URI
	cc.Username = cfg.Neo4j.Username
	cc.Password = cfg.Neo4j.Password
	cc.Database = cfg.Neo4j.Database
	return cc
}
