package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestETLError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ETLError
		contains []string
	}{
		{
			name: "simple error without cause",
			err:  NewError(CONFIG_MISSING_SETTING, "NEO4J_URI is not set"),
			contains: []string{
				"[CONFIG_MISSING_SETTING]",
				"NEO4J_URI is not set",
			},
		},
		{
			name: "error with cause",
			err:  WrapError(GRAPH_WRITE_FAILED, "merge statement failed", errors.New("connection reset")),
			contains: []string{
				"[GRAPH_WRITE_FAILED]",
				"merge statement failed",
				"connection reset",
			},
		},
		{
			name: "retryable error with cause",
			err:  WrapRetryableError(GRAPH_UNAVAILABLE, "store unreachable", errors.New("dial tcp: refused")),
			contains: []string{
				"[GRAPH_UNAVAILABLE]",
				"store unreachable",
				"dial tcp: refused",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want it to contain %q", msg, want)
				}
			}
		})
	}
}

func TestETLError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := WrapError(SOURCE_OPEN_FAILED, "cannot open csv", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if NewError(DATA_MALFORMED_ROW, "short row").Unwrap() != nil {
		t.Error("Unwrap() of an error without cause should be nil")
	}
}

func TestETLError_Is(t *testing.T) {
	err := fmt.Errorf("loading visits: %w",
		NewError(DATA_COERCION_FAILED, "room_number is not an integer"))

	if !errors.Is(err, NewError(DATA_COERCION_FAILED, "")) {
		t.Error("errors.Is should match ETLErrors by code through wrapping")
	}

	if errors.Is(err, NewError(DATA_MALFORMED_ROW, "")) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestConstructors_Retryability(t *testing.T) {
	tests := []struct {
		name      string
		err       *ETLError
		retryable bool
	}{
		{"NewError", NewError(GRAPH_CONSTRAINT_VIOLATION, "duplicate id"), false},
		{"NewRetryableError", NewRetryableError(GRAPH_UNAVAILABLE, "store down"), true},
		{"WrapError", WrapError(GRAPH_ENDPOINT_MISSING, "no such visit", errors.New("zero rows")), false},
		{"WrapRetryableError", WrapRetryableError(GRAPH_CONNECTION_FAILED, "dial failed", errors.New("refused")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Retryable != tt.retryable {
				t.Errorf("Retryable = %v, want %v", tt.err.Retryable, tt.retryable)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"plain error", errors.New("boom"), false},
		{"non-retryable", NewError(DATA_COERCION_FAILED, "bad float"), false},
		{"retryable", NewRetryableError(GRAPH_UNAVAILABLE, "down"), true},
		{
			"retryable wrapped in fmt.Errorf",
			fmt.Errorf("attempt 3: %w", NewRetryableError(GRAPH_CONNECTION_FAILED, "refused")),
			true,
		},
		{
			"non-retryable wrapping a retryable cause",
			WrapError(RUN_RETRIES_EXHAUSTED, "gave up", NewRetryableError(GRAPH_UNAVAILABLE, "down")),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if code := CodeOf(NewError(SOURCE_MISSING_COLUMN, "no visit_id")); code != SOURCE_MISSING_COLUMN {
		t.Errorf("CodeOf() = %v, want %v", code, SOURCE_MISSING_COLUMN)
	}

	wrapped := fmt.Errorf("step failed: %w", NewError(GRAPH_WRITE_FAILED, "merge failed"))
	if code := CodeOf(wrapped); code != GRAPH_WRITE_FAILED {
		t.Errorf("CodeOf(wrapped) = %v, want %v", code, GRAPH_WRITE_FAILED)
	}

	if code := CodeOf(errors.New("plain")); code != "" {
		t.Errorf("CodeOf(plain) = %v, want empty code", code)
	}

	if code := CodeOf(nil); code != "" {
		t.Errorf("CodeOf(nil) = %v, want empty code", code)
	}
}
