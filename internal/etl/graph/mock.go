package graph

import (
	"context"
	"sync"
	"time"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

// MockCall represents a recorded method call on the mock graph client.
type MockCall struct {
	Method    string
	Args      []interface{}
	Timestamp time.Time
}

// writeOutcome is a scripted response for a single Write call.
type writeOutcome struct {
	summary WriteSummary
	err     error
}

// MockClient is a mock implementation of Client for testing.
// It provides configurable responses and tracks all method calls for
// verification. Scripted outcomes are consumed FIFO, so tests can model
// sequences such as "fail twice, then succeed".
type MockClient struct {
	mu sync.RWMutex

	// State
	connected    bool
	healthStatus types.HealthStatus
	calls        []MockCall
	writes       [][]Statement

	// Scripted responses
	connectErrors []error
	connectError  error
	closeError    error
	writeOutcomes []writeOutcome
	writeError    error
}

// NewMockClient creates a new mock graph client for testing.
func NewMockClient() *MockClient {
	return &MockClient{
		healthStatus: types.Healthy("mock graph client"),
		calls:        make([]MockCall, 0),
		writes:       make([][]Statement, 0),
	}
}

// Connect records the call and simulates connection.
func (m *MockClient) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Connect")

	if len(m.connectErrors) > 0 {
		err := m.connectErrors[0]
		m.connectErrors = m.connectErrors[1:]
		if err != nil {
			return err
		}
		m.connected = true
		return nil
	}

	if m.connectError != nil {
		return m.connectError
	}

	m.connected = true
	return nil
}

// Close records the call and simulates disconnection.
func (m *MockClient) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Close")

	if m.closeError != nil {
		return m.closeError
	}

	m.connected = false
	return nil
}

// Health records the call and returns the configured health status.
func (m *MockClient) Health(ctx context.Context) types.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Health")

	if !m.connected {
		return types.Unhealthy("not connected")
	}

	return m.healthStatus
}

// Write records the statements and returns the next scripted outcome.
// With nothing scripted it succeeds, reporting one returned row per
// statement.
func (m *MockClient) Write(ctx context.Context, stmts []Statement) (WriteSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Write", stmts)

	if !m.connected {
		return WriteSummary{}, types.NewError(types.GRAPH_NOT_CONNECTED,
			"not connected")
	}

	m.writes = append(m.writes, append([]Statement(nil), stmts...))

	if len(m.writeOutcomes) > 0 {
		outcome := m.writeOutcomes[0]
		m.writeOutcomes = m.writeOutcomes[1:]
		return outcome.summary, outcome.err
	}

	if m.writeError != nil {
		return WriteSummary{}, m.writeError
	}

	rowCounts := make([]int, len(stmts))
	for i := range rowCounts {
		rowCounts[i] = 1
	}
	return WriteSummary{RowCounts: rowCounts}, nil
}

func (m *MockClient) record(method string, args ...interface{}) {
	m.calls = append(m.calls, MockCall{
		Method:    method,
		Args:      args,
		Timestamp: time.Now(),
	})
}

// EnqueueConnectError schedules an outcome for a future Connect call.
// A nil error schedules a successful connect.
func (m *MockClient) EnqueueConnectError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectErrors = append(m.connectErrors, err)
}

// SetConnectError configures every Connect() call to return an error.
func (m *MockClient) SetConnectError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectError = err
}

// SetCloseError configures Close() to return an error.
func (m *MockClient) SetCloseError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeError = err
}

// SetHealthStatus configures what Health() should return.
func (m *MockClient) SetHealthStatus(status types.HealthStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.healthStatus = status
}

// EnqueueWriteSummary schedules a successful Write outcome.
func (m *MockClient) EnqueueWriteSummary(summary WriteSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeOutcomes = append(m.writeOutcomes, writeOutcome{summary: summary})
}

// EnqueueWriteError schedules a failing Write outcome.
func (m *MockClient) EnqueueWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeOutcomes = append(m.writeOutcomes, writeOutcome{err: err})
}

// SetWriteError configures every unscripted Write() call to return an error.
func (m *MockClient) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeError = err
}

// WriteCalls returns the statement batches passed to Write, in order.
func (m *MockClient) WriteCalls() [][]Statement {
	m.mu.RLock()
	defer m.mu.RUnlock()

	writes := make([][]Statement, len(m.writes))
	copy(writes, m.writes)
	return writes
}

// Statements returns every statement passed to Write, flattened in order.
func (m *MockClient) Statements() []Statement {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var stmts []Statement
	for _, batch := range m.writes {
		stmts = append(stmts, batch...)
	}
	return stmts
}

// GetCalls returns all recorded method calls.
func (m *MockClient) GetCalls() []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// GetCallsByMethod returns all calls to a specific method.
func (m *MockClient) GetCallsByMethod(method string) []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]MockCall, 0)
	for _, call := range m.calls {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// CallCount returns the total number of method calls.
func (m *MockClient) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.calls)
}

// IsConnected returns whether the mock is in connected state.
func (m *MockClient) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// Reset clears all recorded calls and resets the mock to its initial state.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	m.healthStatus = types.Healthy("mock graph client")
	m.calls = make([]MockCall, 0)
	m.writes = make([][]Statement, 0)
	m.connectErrors = nil
	m.connectError = nil
	m.closeError = nil
	m.writeOutcomes = nil
	m.writeError = nil
}
