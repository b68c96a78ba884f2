package loader

import (
	"context"
	"errors"
	"io"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/graph"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/schema"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/source"
)

// LoadNodes reads the spec's extract and merges one node per row. Rows are
// grouped into batches of batchSize statements per transaction. The first
// malformed or uncoercible row aborts the load with file and row context.
func (l *GraphLoader) LoadNodes(ctx context.Context, spec schema.NodeSpec) (Result, error) {
	src, err := source.OpenCSV(l.paths.PathFor(spec.Source), spec.Columns())
	if err != nil {
		return Result{Source: spec.Source}, err
	}
	defer src.Close()

	res := Result{Source: spec.Source}
	cypher := spec.MergeCypher()
	batch := make([]graph.Statement, 0, l.batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		summary, err := l.client.Write(ctx, batch)
		if err != nil {
			return err
		}
		res.absorb(summary)
		batch = batch[:0]
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
