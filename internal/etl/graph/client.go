// Package graph provides the write-side client for the Neo4j graph store.
//
// The package exposes a narrow Client interface so that loaders can be
// exercised against a mock in unit tests and against a real Neo4j instance
// in integration tests. All writes are expressed as parameterized Cypher
// statements executed inside managed write transactions.
package graph

import (
	"context"
	"time"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

// Statement is a single parameterized Cypher statement. Labels and
// relationship types are baked into the text; row values travel in Params.
type Statement struct {
	Cypher string
	Params map[string]any
}

// WriteSummary aggregates server-side counters for one Write call.
type WriteSummary struct {
	// NodesCreated is the number of nodes created across all statements.
	NodesCreated int

	// RelationshipsCreated is the number of relationships created.
	RelationshipsCreated int

	// PropertiesSet is the number of properties written.
	PropertiesSet int

	// ConstraintsAdded is the number of schema constraints added.
	ConstraintsAdded int

	// RowCounts records, per statement, how many records the statement
	// returned. Statements without a RETURN clause report zero.
	RowCounts []int
}

// Merge folds another summary into this one. RowCounts are appended in
// order, so merging batch summaries preserves statement positions.
func (s *WriteSummary) Merge(other WriteSummary) {
	s.NodesCreated += other.NodesCreated
	s.RelationshipsCreated += other.RelationshipsCreated
	s.PropertiesSet += other.PropertiesSet
	s.ConstraintsAdded += other.ConstraintsAdded
	s.RowCounts = append(s.RowCounts, other.RowCounts...)
}

// Client provides an interface for graph store write operations.
// Implementations must be thread-safe for concurrent access.
type Client interface {
	// Connect acquires the underlying driver and verifies connectivity.
	// It performs a single attempt; callers own any retry policy.
	Connect(ctx context.Context) error

	// Close releases the driver and all pooled connections.
	// Safe to call on a client that never connected.
	Close(ctx context.Context) error

	// Health reports whether the graph store is currently reachable.
	Health(ctx context.Context) types.HealthStatus

	// Write executes all statements in order inside a single write
	// transaction. Either every statement commits or none do.
	Write(ctx context.Context, stmts []Statement) (WriteSummary, error)
}

// ClientConfig contains connection options for graph store clients.
type ClientConfig struct {
	// URI is the connection URI for the graph store.
	// For Neo4j, use:
	//   - "bolt://host:port" for unencrypted connections
	//   - "bolt+s://host:port" for TLS encrypted connections
	//   - "bolt+ssc://host:port" for TLS with self-signed certificates
	//   - "neo4j://" or "neo4j+s://" for routing
	URI string

	// Username for authentication.
	Username string

	// Password for authentication.
	Password string

	// Database name to connect to.
	// Empty string uses the server default database.
	Database string

	// MaxConnectionPoolSize limits the number of connections in the pool.
	// Zero or negative values use the driver default.
	MaxConnectionPoolSize int

	// ConnectionTimeout is the maximum time to wait for a connection.
	ConnectionTimeout time.Duration

	// MaxTransactionRetryTime is the maximum time the driver retries a
	// single managed transaction.
	MaxTransactionRetryTime time.Duration
}

// DefaultClientConfig returns a ClientConfig with sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		URI:                     "bolt://localhost:7687",
		Username:                "neo4j",
		Password:                "password",
		Database:                "neo4j",
		MaxConnectionPoolSize:   50,
		ConnectionTimeout:       30 * time.Second,
		MaxTransactionRetryTime: 30 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c ClientConfig) Validate() error {
	if c.URI == "" {
		return types.NewError(types.GRAPH_INVALID_CONFIG, "URI cannot be empty")
	}
	if c.Username == "" {
		return types.NewError(types.GRAPH_INVALID_CONFIG, "Username cannot be empty")
	}
	if c.Password == "" {
		return types.NewError(types.GRAPH_INVALID_CONFIG, "Password cannot be empty")
	}
	if c.ConnectionTimeout <= 0 {
		return types.NewError(types.GRAPH_INVALID_CONFIG, "ConnectionTimeout must be positive")
	}
	if c.MaxTransactionRetryTime <= 0 {
		return types.NewError(types.GRAPH_INVALID_CONFIG, "MaxTransactionRetryTime must be positive")
	}
	return nil
}
