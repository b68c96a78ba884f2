package loader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/graph"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/schema"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/source"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

// edgeRef ties a batched statement back to its source row so a zero-row
// result can name the row that produced it.
type edgeRef struct {
	ordinal int64
	fromID  any
	toID    any
}

// LoadRelationships reads the spec's extract and merges one relationship per
// row. Every statement matches both endpoints by id and returns one record
// on success; a statement returning no record means an endpoint node was
// never loaded, and the load fails naming the row instead of silently
// skipping it. Statements already merged from the same batch stay merged,
// which is safe because every merge is idempotent.
func (l *GraphLoader) LoadRelationships(ctx context.Context, spec schema.RelationshipSpec) (Result, error) {
	path := l.paths.PathFor(spec.Source)
	src, err := source.OpenCSV(path, spec.Columns())
	if err != nil {
		return Result{Source: spec.Source}, err
	}
	defer src.Close()

	res := Result{Source: spec.Source}
	cypher := spec.MergeCypher()
	batch := make([]graph.Statement, 0, l.batchSize)
	refs := make([]edgeRef, 0, l.batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		summary, err := l.client.Write(ctx, batch)
		if err != nil {
			return err
		}
		res.absorb(summary)
		for i, count := range summary.RowCounts {
			if count == 0 {
				ref := refs[i]
				return types.NewError(types.GRAPH_ENDPOINT_MISSING, fmt.Sprintf(
					"%s row %d: %s endpoint missing: %s id=%v -> %s id=%v",
					path, ref.ordinal, spec.Type,
					spec.From.Label, ref.fromID, spec.To.Label, ref.toID))
			}
		}
		batch = batch[:0]
		refs = refs[:0]
		return nil
	}

	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, err
		}

		params, err := spec.Params(row)
		if err != nil {
			return res, err
		}

		res.RowsRead++
		batch = append(batch, graph.Statement{Cypher: cypher, Params: params})
		refs = append(refs, edgeRef{ordinal: row.Ordinal(), fromID: params["from_id"], toID: params["to_id"]})
		if len(batch) == l.batchSize {
			if err := flush(); err != nil {
				return res, err
			}
		}
	}

	if err := flush(); err != nil {
		return res, err
	}
	return res, nil
}
