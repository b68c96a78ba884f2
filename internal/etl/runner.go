// Package etl drives one complete load run: uniqueness constraints, then
// nodes, then relationships, wrapped in a bounded whole-run retry. A run is
// idempotent end to end, so a failed attempt is repeated from scratch rather
// than resumed.
package etl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/config"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/graph"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/loader"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/schema"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

// Runner owns one load run end to end: it acquires the graph connection,
// walks the state machine, and applies the whole-run retry policy.
type Runner struct {
	client graph.Client
	loader *loader.GraphLoader
	cfg    *config.Config
	logger *slog.Logger
}

// NewRunner creates a Runner over the given client and configuration.
// A nil logger falls back to the process default.
func NewRunner(client graph.Client, cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default().With("component", "runner")
	}
	return &Runner{
		client: client,
		loader: loader.NewGraphLoader(client, cfg.CSV, cfg.Load.BatchSize),
		cfg:    cfg,
		logger: logger,
	}
}

// Run executes the load, retrying the whole run on transient store failures
// up to Retry.MaxAttempts with a fixed delay between attempts. Any other
// failure ends the run immediately. The returned report always carries the
// terminal state and the step results of the final attempt.
func (r *Runner) Run(ctx context.Context) (RunReport, error) {
	report := RunReport{RunID: types.NewID(), State: StateInit}
	logger := r.logger.With("run_id", report.RunID)
	start := time.Now()

	logger.Info("starting load run",
		"max_attempts", r.cfg.Retry.MaxAttempts,
		"retry_delay", r.cfg.Retry.Delay,
		"batch_size", r.cfg.Load.BatchSize,
		"workers", r.cfg.Load.Workers)

	var err error
	for attempt := 1; attempt <= r.cfg.Retry.MaxAttempts; attempt++ {
		report.Attempts = attempt

		if attempt > 1 {
			logger.Warn("retrying run after transient failure",
				"attempt", attempt,
				"max_attempts", r.cfg.Retry.MaxAttempts,
				"delay", r.cfg.Retry.Delay)
			if werr := r.wait(ctx); werr != nil {
				report.State = StateFailed
				report.Duration = time.Since(start)
				return report, werr
			}
		}

		err = r.attempt(ctx, logger, &report)
		if err == nil {
			report.State = StateDone
			report.Duration = time.Since(start)
			totals := report.Totals()
			logger.Info("run complete",
				"state", report.State,
				"attempts", report.Attempts,
				"duration", report.Duration,
				"rows_read", totals.RowsRead,
				"nodes_created", totals.NodesCreated,
				"relationships_created", totals.RelationshipsCreated,
				"properties_set", totals.PropertiesSet,
				"constraints_added", totals.ConstraintsAdded)
			return report, nil
		}

		if !types.IsRetryable(err) {
			break
		}
		logger.Warn("attempt failed with transient error",
			"attempt", attempt,
			"error", err)
	}

	report.State = StateFailed
	report.Duration = time.Since(start)
	if types.IsRetryable(err) {
		err = types.WrapError(types.RUN_RETRIES_EXHAUSTED,
			fmt.Sprintf("gave up after %d attempts", report.Attempts), err)
	}
	logger.Error("run failed",
		"state", report.State,
		"attempts", report.Attempts,
		"duration", report.Duration,
		"error", err)
	return report, err
}

// attempt runs the state machine once. The connection is acquired at the
// start and released on every exit path; step results are rebuilt from
// scratch because nothing carries over between attempts.
func (r *Runner) attempt(ctx context.Context, logger *slog.Logger, report *RunReport) error {
	report.State = StateInit
	report.Constraints = loader.Result{}
	report.Nodes = nil
	report.Relationships = nil

	if err := r.client.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if cerr := r.client.Close(ctx); cerr != nil {
			logger.Warn("closing graph client failed", "error", cerr)
		}
	}()

	health := r.client.Health(ctx)
	logger.Info("graph store health",
		"state", health.State,
		"message", health.Message)

	r.transition(logger, report, StateConstraints)
	res, err := r.loader.EnsureConstraints(ctx)
	report.Constraints = res
	if err != nil {
		return err
	}
	logger.Info("constraints ensured", "constraints_added", res.ConstraintsAdded)

	r.transition(logger, report, StateNodes)
	if err := r.loadNodes(ctx, logger, report); err != nil {
		return err
	}

	r.transition(logger, report, StateRelationships)
	for _, spec := range schema.Relationships() {
		res, err := r.loader.LoadRelationships(ctx, spec)
		report.Relationships = append(report.Relationships, res)
		if err != nil {
			return err
		}
		logger.Info("relationships merged",
			"type", spec.Type,
			"rows_read", res.RowsRead,
			"relationships_created", res.RelationshipsCreated)
	}

	return nil
}

// loadNodes runs every node extract through the loader. With Workers > 1
// the extracts load in parallel; node labels never depend on each other, so
// the only ordering requirement is that all of them finish before the
// relationship phase starts.
func (r *Runner) loadNodes(ctx context.Context, logger *slog.Logger, report *RunReport) error {
	specs := schema.Nodes()
	results := make([]loader.Result, len(specs))

	workers := r.cfg.Load.Workers
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.loader.LoadNodes(gctx, spec)
			results[i] = res
			if err != nil {
				return err
			}
			logger.Info("nodes merged",
				"label", spec.Label,
				"rows_read", res.RowsRead,
				"nodes_created", res.NodesCreated)
			return nil
		})
	}
	err := g.Wait()
	report.Nodes = results
	return err
}

// wait sleeps for the configured retry delay, ending early when the context
// is cancelled.
func (r *Runner) wait(ctx context.Context) error {
	timer := time.NewTimer(r.cfg.Retry.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return types.WrapError(types.RUN_CANCELLED, "run cancelled while waiting to retry", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (r *Runner) transition(logger *slog.Logger, report *RunReport, next RunState) {
	logger.Info("state transition", "from", report.State, "to", next)
	report.State = next
}
