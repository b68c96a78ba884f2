package loader

import (
	"context"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/graph"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/schema"
)

// EnsureConstraints creates the uniqueness constraint on id for every node
// label in the catalog. Each constraint runs in its own transaction because
// schema statements cannot share a transaction with data writes. IF NOT
// EXISTS makes the whole step safe to repeat.
func (l *GraphLoader) EnsureConstraints(ctx context.Context) (Result, error) {
	var res Result
	for _, spec := range schema.Nodes() {
		stmt := graph.Statement{Cypher: schema.ConstraintCypher(spec.Label)}
		summary, err := l.client.Write(ctx, []graph.Statement{stmt})
		if err != nil {
			return res, err
		}
		res.absorb(summary)
	}
	return res, nil
}
