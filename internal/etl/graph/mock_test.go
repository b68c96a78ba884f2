package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

func TestMockClient_ConnectClose(t *testing.T) {
	t.Run("successful connect", func(t *testing.T) {
		mock := NewMockClient()
		ctx := context.Background()

		require.NoError(t, mock.Connect(ctx))
		assert.True(t, mock.IsConnected())
		assert.Len(t, mock.GetCallsByMethod("Connect"), 1)

		require.NoError(t, mock.Close(ctx))
		assert.False(t, mock.IsConnected())
	})

	t.Run("persistent connect error", func(t *testing.T) {
		mock := NewMockClient()
		expectedErr := errors.New("connection failed")
		mock.SetConnectError(expectedErr)

		err := mock.Connect(context.Background())

		require.Error(t, err)
		assert.Equal(t, expectedErr, err)
		assert.False(t, mock.IsConnected())
	})

	t.Run("queued connect outcomes", func(t *testing.T) {
		mock := NewMockClient()
		ctx := context.Background()

		transient := types.NewRetryableError(types.GRAPH_CONNECTION_FAILED, "down")
		mock.EnqueueConnectError(transient)
		mock.EnqueueConnectError(nil)

		require.Error(t, mock.Connect(ctx))
		assert.False(t, mock.IsConnected())

		require.NoError(t, mock.Connect(ctx))
		assert.True(t, mock.IsConnected())
	})

	t.Run("close error", func(t *testing.T) {
		mock := NewMockClient()
		expectedErr := errors.New("close failed")
		mock.SetCloseError(expectedErr)

		err := mock.Close(context.Background())

		require.Error(t, err)
		assert.Equal(t, expectedErr, err)
	})
}

func TestMockClient_Health(t *testing.T) {
	t.Run("healthy when connected", func(t *testing.T) {
		mock := NewMockClient()
		ctx := context.Background()

		_ = mock.Connect(ctx)

		status := mock.Health(ctx)

		assert.True(t, status.IsHealthy())
		assert.Equal(t, "mock graph client", status.Message)
	})

	t.Run("unhealthy when not connected", func(t *testing.T) {
		mock := NewMockClient()

		status := mock.Health(context.Background())

		assert.False(t, status.IsHealthy())
		assert.Equal(t, "not connected", status.Message)
	})

	t.Run("custom health status", func(t *testing.T) {
		mock := NewMockClient()
		ctx := context.Background()

		_ = mock.Connect(ctx)
		mock.SetHealthStatus(types.Unhealthy("degraded backend"))

		status := mock.Health(ctx)

		assert.False(t, status.IsHealthy())
		assert.Equal(t, "degraded backend", status.Message)
	})
}

func TestMockClient_Write(t *testing.T) {
	t.Run("default outcome counts one row per statement", func(t *testing.T) {
		mock := NewMockClient()
		ctx := context.Background()

		_ = mock.Connect(ctx)

		stmts := []Statement{
			{Cypher: "MERGE (n:Hospital {id: $id})", Params: map[string]any{"id": int64(1)}},
			{Cypher: "MERGE (n:Hospital {id: $id})", Params: map[string]any{"id": int64(2)}},
		}

		summary, err := mock.Write(ctx, stmts)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 1}, summary.RowCounts)

		writes := mock.WriteCalls()
		require.Len(t, writes, 1)
		assert.Equal(t, stmts, writes[0])
		assert.Len(t, mock.Statements(), 2)
	})

	t.Run("write when not connected", func(t *testing.T) {
		mock := NewMockClient()

		_, err := mock.Write(context.Background(), []Statement{{Cypher: "RETURN 1"}})

		require.Error(t, err)
		assert.Equal(t, types.GRAPH_NOT_CONNECTED, types.CodeOf(err))
	})

	t.Run("queued outcomes consumed FIFO", func(t *testing.T) {
		mock := NewMockClient()
		ctx := context.Background()

		_ = mock.Connect(ctx)

		transient := types.NewRetryableError(types.GRAPH_UNAVAILABLE, "down")
		mock.EnqueueWriteError(transient)
		mock.EnqueueWriteSummary(WriteSummary{NodesCreated: 5, RowCounts: []int{1}})

		_, err := mock.Write(ctx, []Statement{{Cypher: "Q1"}})
		require.Error(t, err)
		assert.True(t, types.IsRetryable(err))

		summary, err := mock.Write(ctx, []Statement{{Cypher: "Q2"}})
		require.NoError(t, err)
		assert.Equal(t, 5, summary.NodesCreated)

		// Queue exhausted, back to the default outcome.
		summary, err = mock.Write(ctx, []Statement{{Cypher: "Q3"}})
		require.NoError(t, err)
		assert.Equal(t, []int{1}, summary.RowCounts)
	})

	t.Run("persistent write error", func(t *testing.T) {
		mock := NewMockClient()
		ctx := context.Background()

		_ = mock.Connect(ctx)

		expectedErr := errors.New("write failed")
		mock.SetWriteError(expectedErr)

		_, err := mock.Write(ctx, []Statement{{Cypher: "Q"}})
		require.Error(t, err)
		assert.Equal(t, expectedErr, err)

		_, err = mock.Write(ctx, []Statement{{Cypher: "Q"}})
		require.Error(t, err)
	})
}

func TestMockClient_CallTracking(t *testing.T) {
	mock := NewMockClient()
	ctx := context.Background()

	_ = mock.Connect(ctx)
	_ = mock.Health(ctx)
	_, _ = mock.Write(ctx, []Statement{{Cypher: "RETURN 1"}})
	_ = mock.Close(ctx)

	assert.Equal(t, 4, mock.CallCount())
	assert.Len(t, mock.GetCallsByMethod("Write"), 1)

	for _, call := range mock.GetCalls() {
		assert.False(t, call.Timestamp.IsZero())
	}
}

func TestMockClient_Reset(t *testing.T) {
	mock := NewMockClient()
	ctx := context.Background()

	_ = mock.Connect(ctx)
	_, _ = mock.Write(ctx, []Statement{{Cypher: "RETURN 1"}})
	mock.SetWriteError(errors.New("boom"))

	mock.Reset()

	assert.False(t, mock.IsConnected())
	assert.Equal(t, 0, mock.CallCount())
	assert.Empty(t, mock.WriteCalls())

	// Usable again after reset.
	require.NoError(t, mock.Connect(ctx))
	_, err := mock.Write(ctx, []Statement{{Cypher: "RETURN 1"}})
	require.NoError(t, err)
}
