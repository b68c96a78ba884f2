package types_test

import (
	"fmt"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

// ExampleNewID demonstrates generating a new UUID-based run ID
func ExampleNewID() {
	id := types.NewID()
	fmt.Println("Generated ID length:", len(id.String()))
	// Output: Generated ID length: 36
}

// ExampleParseID demonstrates parsing a UUID string into an ID
func ExampleParseID() {
	id, err := types.ParseID("550e8400-e29b-41d4-a716-446655440000")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Parsed ID:", id.String())
	// Output: Parsed ID: 550e8400-e29b-41d4-a716-446655440000
}

// ExampleParseID_invalid demonstrates error handling for invalid UUIDs
func ExampleParseID_invalid() {
	_, err := types.ParseID("not-a-valid-uuid")
	if err != nil {
		fmt.Println("Error parsing invalid UUID")
	}
	// Output: Error parsing invalid UUID
}

// ExampleID_IsZero demonstrates checking for zero/empty IDs
func ExampleID_IsZero() {
	var emptyID types.ID
	runID := types.NewID()

	fmt.Println("Empty ID is zero:", emptyID.IsZero())
	fmt.Println("Fresh run ID is zero:", runID.IsZero())
	// Output:
	// Empty ID is zero: true
	// Fresh run ID is zero: false
}
