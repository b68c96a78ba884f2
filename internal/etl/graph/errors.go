package graph

import (
	"context"
	"errors"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

// Neo4j status code prefixes used to classify server errors.
const (
	transientErrorPrefix  = "Neo.TransientError"
	constraintErrorPrefix = "Neo.ClientError.Schema.ConstraintValidationFailed"
	securityErrorPrefix   = "Neo.ClientError.Security"
)

// classifyConnectError maps a connectivity-phase failure onto the loader
// error taxonomy. An unreachable or unresponsive server is retryable;
// rejected credentials and cancellation are not.
func classifyConnectError(err error) error {
	var neoErr *neo4j.Neo4jError
	switch {
	case errors.As(err, &neoErr) && strings.HasPrefix(neoErr.Code, securityErrorPrefix):
		return types.WrapError(types.GRAPH_AUTH_FAILED,
			"server rejected credentials", err)
	case errors.Is(err, context.Canceled):
		return types.WrapError(types.RUN_CANCELLED,
			"connect cancelled", err)
	default:
		return types.WrapRetryableError(types.GRAPH_CONNECTION_FAILED,
			"could not reach graph store", err)
	}
}

// classifyWriteError maps a write-phase failure onto the loader error
// taxonomy. Only transient server states and lost connectivity are
// retryable; everything else fails the run.
func classifyWriteError(err error) error {
	var neoErr *neo4j.Neo4jError
	switch {
	case errors.As(err, &neoErr):
		switch {
		case strings.HasPrefix(neoErr.Code, transientErrorPrefix):
			return types.WrapRetryableError(types.GRAPH_UNAVAILABLE,
				"transient server error", err)
		case strings.HasPrefix(neoErr.Code, constraintErrorPrefix):
			return types.WrapError(types.GRAPH_CONSTRAINT_VIOLATION,
				"uniqueness constraint violated", err)
		case strings.HasPrefix(neoErr.Code, securityErrorPrefix):
			return types.WrapError(types.GRAPH_AUTH_FAILED,
				"server rejected credentials", err)
		default:
			return types.WrapError(types.GRAPH_WRITE_FAILED,
				"write rejected by server", err)
		}
	case neo4j.IsConnectivityError(err), errors.Is(err, context.DeadlineExceeded):
		return types.WrapRetryableError(types.GRAPH_UNAVAILABLE,
			"lost connection to graph store", err)
	case errors.Is(err, context.Canceled):
		return types.WrapError(types.RUN_CANCELLED,
			"write cancelled", err)
	default:
		return types.WrapError(types.GRAPH_WRITE_FAILED,
			"write failed", err)
	}
}
