package types

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewID(t *testing.T) {
	t.Run("generates valid UUID", func(t *testing.T) {
		id := NewID()

		if id.IsZero() {
			t.Error("NewID() returned zero value")
		}

		if _, err := uuid.Parse(string(id)); err != nil {
			t.Errorf("NewID() generated invalid UUID: %v", err)
		}
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		id1 := NewID()
		id2 := NewID()

		if id1 == id2 {
			t.Error("NewID() generated duplicate IDs")
		}
	})
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid UUID", "550e8400-e29b-41d4-a716-446655440000", false},
		{"valid uppercase UUID", "550E8400-E29B-41D4-A716-446655440000", false},
		{"empty string", "", true},
		{"not a UUID", "run-42", true},
		{"truncated UUID", "550e8400-e29b-41d4", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && id.IsZero() {
				t.Errorf("ParseID(%q) returned zero ID", tt.input)
			}
		})
	}
}

func TestID_String(t *testing.T) {
	id := ID("550e8400-e29b-41d4-a716-446655440000")
	if id.String() != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("String() = %q", id.String())
	}
}
