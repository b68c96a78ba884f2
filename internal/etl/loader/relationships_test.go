package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/config"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/graph"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

func TestLoadRelationships(t *testing.T) {
	dir := t.TempDir()
	paths := config.CSVConfig{Visits: writeExtract(t, dir, "visits.csv",
		"visit_id,hospital_id,billing_amount\n100,1,37924.57\n101,2,8253.10\n")}

	client := connectedMock(t)
	client.EnqueueWriteSummary(graph.WriteSummary{RelationshipsCreated: 2, RowCounts: []int{1, 1}})

	l := NewGraphLoader(client, paths, 500)
	res, err := l.LoadRelationships(context.Background(), relSpec(t, "AT"))

	require.NoError(t, err)
	assert.Equal(t, "visits", res.Source)
	assert.Equal(t, 2, res.RowsRead)
	assert.Equal(t, 2, res.RelationshipsCreated)

	calls := client.WriteCalls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0], 2)

	first := calls[0][0]
	assert.Equal(t,
		"MATCH (a:Visit {id: $from_id})\n"+
			"MATCH (b:Hospital {id: $to_id})\n"+
			"MERGE (a)-[r:AT]->(b)\n"+
			"RETURN r",
		first.Cypher)
	assert.Equal(t, map[string]any{"from_id": int64(100), "to_id": int64(1)}, first.Params)
}

func TestLoadRelationships_CreateOnlyAttributes(t *testing.T) {
	dir := t.TempDir()
	paths := config.CSVConfig{Visits: writeExtract(t, dir, "visits.csv",
		"visit_id,payer_id,discharge_date,billing_amount\n100,5,2022-11-28,37924.57\n")}

	client := connectedMock(t)
	l := NewGraphLoader(client, paths, 500)
	_, err := l.LoadRelationships(context.Background(), relSpec(t, "COVERED_BY"))

	require.NoError(t, err)
	stmts := client.Statements()
	require.Len(t, stmts, 1)
	assert.Contains(t, stmts[0].Cypher, "ON CREATE SET r.service_date = $service_date, r.billing_amount = $billing_amount")
	assert.Equal(t, map[string]any{
		"from_id":        int64(100),
		"to_id":          int64(5),
		"service_date":   "2022-11-28",
		"billing_amount": 37924.57,
	}, stmts[0].Params)
}

func TestLoadRelationships_EndpointMissing(t *testing.T) {
	dir := t.TempDir()
	paths := config.CSVConfig{Visits: writeExtract(t, dir, "visits.csv",
		"visit_id,hospital_id\n100,1\n101,2\n102,99\n")}

	client := connectedMock(t)
	client.EnqueueWriteSummary(graph.WriteSummary{RelationshipsCreated: 2, RowCounts: []int{1, 1}})
	client.EnqueueWriteSummary(graph.WriteSummary{RowCounts: []int{0}})

	l := NewGraphLoader(client, paths, 2)
	res, err := l.LoadRelationships(context.Background(), relSpec(t, "AT"))

	require.Error(t, err)
	assert.Equal(t, types.GRAPH_ENDPOINT_MISSING, types.CodeOf(err))
	assert.Contains(t, err.Error(), "AT endpoint missing")
	assert.Contains(t, err.Error(), "Visit id=102")
	assert.Contains(t, err.Error(), "Hospital id=99")
	assert.Contains(t, err.Error(), "row 4")
	assert.False(t, types.IsRetryable(err), "a missing endpoint is a data defect, not a transient fault")

	assert.Equal(t, 2, res.RelationshipsCreated, "rows merged before the bad one stay counted")
}

func TestLoadRelationships_BadEndpointKeyAborts(t *testing.T) {
	dir := t.TempDir()
	paths := config.CSVConfig{Visits: writeExtract(t, dir, "visits.csv",
		"visit_id,hospital_id\n100,\n")}

	client := connectedMock(t)
	l := NewGraphLoader(client, paths, 500)
	_, err := l.LoadRelationships(context.Background(), relSpec(t, "AT"))

	require.Error(t, err)
	assert.Equal(t, types.DATA_COERCION_FAILED, types.CodeOf(err))
	assert.Empty(t, client.WriteCalls())
}
