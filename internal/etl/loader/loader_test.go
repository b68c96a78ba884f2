package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/config"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/graph"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/schema"
)

func writeExtract(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func connectedMock(t *testing.T) *graph.MockClient {
	t.Helper()
	client := graph.NewMockClient()
	require.NoError(t, client.Connect(context.Background()))
	return client
}

func nodeSpec(t *testing.T, label string) schema.NodeSpec {
	t.Helper()
	for _, spec := range schema.Nodes() {
		if spec.Label == label {
			return spec
		}
	}
	t.Fatalf("no node spec for label %s", label)
	return schema.NodeSpec{}
}

func relSpec(t *testing.T, relType string) schema.RelationshipSpec {
	t.Helper()
	for _, spec := range schema.Relationships() {
		if spec.Type == relType {
			return spec
		}
	}
	t.Fatalf("no relationship spec for type %s", relType)
	return schema.RelationshipSpec{}
}

func TestNewGraphLoader_DefaultsBatchSize(t *testing.T) {
	l := NewGraphLoader(graph.NewMockClient(), config.CSVConfig{}, 0)
	require.Equal(t, defaultBatchSize, l.batchSize)

	l = NewGraphLoader(graph.NewMockClient(), config.CSVConfig{}, 25)
	require.Equal(t, 25, l.batchSize)
}
