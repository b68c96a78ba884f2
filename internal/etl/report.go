package etl

import (
	"time"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/loader"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

// RunReport summarizes one call to Runner.Run. Step results reflect the
// final attempt; earlier attempts are discarded because every attempt
// starts over from scratch.
type RunReport struct {
	// RunID identifies the run across all of its log lines.
	RunID types.ID

	// State is the terminal state the run reached.
	State RunState

	// Attempts is the number of attempts consumed, including the last.
	Attempts int

	// Duration covers all attempts and the delays between them.
	Duration time.Duration

	// Constraints is the constraint step result.
	Constraints loader.Result

	// Nodes holds one result per node extract, in load order.
	Nodes []loader.Result

	// Relationships holds one result per relationship extract, in load order.
	Relationships []loader.Result
}

// Totals aggregates counters across every step of the final attempt.
func (r RunReport) Totals() loader.Result {
	var total loader.Result
	total.Add(r.Constraints)
	for _, res := range r.Nodes {
		total.Add(res)
	}
	for _, res := range r.Relationships {
		total.Add(res)
	}
	return total
}
