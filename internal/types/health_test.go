package types

import (
	"testing"
	"time"
)

func TestHealthStatus_Constructors(t *testing.T) {
	tests := []struct {
		name      string
		status    HealthStatus
		wantState HealthState
		healthy   bool
	}{
		{"healthy", Healthy("connected"), HealthStateHealthy, true},
		{"unhealthy", Unhealthy("driver not initialized"), HealthStateUnhealthy, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.status.State != tt.wantState {
				t.Errorf("State = %v, want %v", tt.status.State, tt.wantState)
			}
			if tt.status.IsHealthy() != tt.healthy {
				t.Errorf("IsHealthy() = %v, want %v", tt.status.IsHealthy(), tt.healthy)
			}
			if tt.status.Message == "" {
				t.Error("Message should carry the constructor argument")
			}
		})
	}
}

func TestHealthStatus_CheckedAt(t *testing.T) {
	before := time.Now()
	status := Healthy("ok")
	after := time.Now()

	if status.CheckedAt.Before(before) || status.CheckedAt.After(after) {
		t.Errorf("CheckedAt = %v, want between %v and %v", status.CheckedAt, before, after)
	}
}

func TestHealthState_String(t *testing.T) {
	if HealthStateHealthy.String() != "healthy" {
		t.Errorf("String() = %q, want %q", HealthStateHealthy.String(), "healthy")
	}
	if HealthStateUnhealthy.String() != "unhealthy" {
		t.Errorf("String() = %q, want %q", HealthStateUnhealthy.String(), "unhealthy")
	}
}
