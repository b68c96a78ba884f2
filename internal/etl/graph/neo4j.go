package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

// Neo4jClient implements Client for Neo4j graph databases.
type Neo4jClient struct {
	config ClientConfig
	driver neo4j.DriverWithContext
}

// NewNeo4jClient creates a new Neo4j client with the given configuration.
// The client must be connected via Connect() before use.
func NewNeo4jClient(config ClientConfig) (*Neo4jClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Neo4jClient{
		config: config,
	}, nil
}

// Connect creates the driver and verifies connectivity. It performs a single
// attempt: the run orchestrator owns the retry policy, so the client must not
// layer its own backoff on top.
func (c *Neo4jClient) Connect(ctx context.Context) error {
	auth := neo4j.BasicAuth(c.config.Username, c.config.Password, "")

	driverConfig := func(config *neo4j.Config) {
		config.MaxConnectionPoolSize = c.config.MaxConnectionPoolSize
		config.ConnectionAcquisitionTimeout = c.config.ConnectionTimeout
		config.MaxTransactionRetryTime = c.config.MaxTransactionRetryTime
		// Encryption is controlled by the URI scheme (bolt:// vs bolt+s://).
	}

	driver, err := neo4j.NewDriverWithContext(c.config.URI, auth, driverConfig)
	if err != nil {
		return types.WrapError(types.GRAPH_INVALID_CONFIG,
			"failed to create driver", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return classifyConnectError(err)
	}

	c.driver = driver
	return nil
}

// Close releases all resources and closes the database connection.
func (c *Neo4jClient) Close(ctx context.Context) error {
	if c.driver == nil {
		return nil
	}

	if err := c.driver.Close(ctx); err != nil {
		return types.WrapError(types.GRAPH_CONNECTION_FAILED,
			"failed to close driver", err)
	}

	c.driver = nil
	return nil
}

// Health returns the current health status of the Neo4j connection.
func (c *Neo4jClient) Health(ctx context.Context) types.HealthStatus {
	if c.driver == nil {
		return types.Unhealthy("driver not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.driver.VerifyConnectivity(healthCtx); err != nil {
		return types.Unhealthy(fmt.Sprintf("connectivity check failed: %v", err))
	}

	return types.Healthy("connected to Neo4j")
}

// Write executes all statements in order inside one managed write
// transaction. The returned summary aggregates update counters and records
// the number of rows each statement returned.
func (c *Neo4jClient) Write(ctx context.Context, stmts []Statement) (WriteSummary, error) {
	if c.driver == nil {
		return WriteSummary{}, types.NewError(types.GRAPH_NOT_CONNECTED,
			"driver not connected")
	}

	if len(stmts) == 0 {
		return WriteSummary{}, nil
	}

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.config.Database,
	})
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		summary := WriteSummary{RowCounts: make([]int, 0, len(stmts))}

		for _, stmt := range stmts {
			neoResult, err := tx.Run(ctx, stmt.Cypher, stmt.Params)
			if err != nil {
				return nil, err
			}

			records, err := neoResult.Collect(ctx)
			if err != nil {
				return nil, err
			}

			stmtSummary, err := neoResult.Consume(ctx)
			if err != nil {
				return nil, err
			}

			counters := stmtSummary.Counters()
			summary.NodesCreated += counters.NodesCreated()
			summary.RelationshipsCreated += counters.RelationshipsCreated()
			summary.PropertiesSet += counters.PropertiesSet()
			summary.ConstraintsAdded += counters.ConstraintsAdded()
			summary.RowCounts = append(summary.RowCounts, len(records))
		}

		return summary, nil
	})
	if err != nil {
		return WriteSummary{}, classifyWriteError(err)
	}

	return result.(WriteSummary), nil
}
