package schema

import (
	"fmt"
	"strings"
)

// ConstraintCypher returns the uniqueness constraint statement for a label.
// IF NOT EXISTS keeps the statement idempotent across reruns.
func ConstraintCypher(label string) string {
	return fmt.Sprintf("CREATE CONSTRAINT IF NOT EXISTS FOR (n:%s) REQUIRE n.id IS UNIQUE", label)
}

// MergeCypher returns the idempotent merge statement for the node spec.
// Every mapped property sits inside the merge pattern: a row whose key
// already exists with different non-key values matches nothing, and the
// attempted create then trips the uniqueness constraint instead of silently
// rewriting the stored node.
func (s NodeSpec) MergeCypher() string {
	clauses := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		clauses = append(clauses, fmt.Sprintf("%s: $%s", p.Property, p.Property))
	}
	return fmt.Sprintf("MERGE (n:%s {%s})", s.Label, strings.Join(clauses, ", "))
}

// MergeCypher returns the merge statement for the relationship spec. Both
// endpoints are matched by id before the merge, and the trailing RETURN lets
// callers detect a missing endpoint: a row whose endpoints both exist
// returns exactly one record, anything else returns none.
func (s RelationshipSpec) MergeCypher() string {
	var b strings.Builder

	fmt.Fprintf(&b, "MATCH (a:%s {id: $from_id})\n", s.From.Label)
	fmt.Fprintf(&b, "MATCH (b:%s {id: $to_id})\n", s.To.Label)
	fmt.Fprintf(&b, "MERGE (a)-[r:%s]->(b)", s.Type)

	if len(s.CreateOnly) > 0 {
		sets := make([]string, 0, len(s.CreateOnly))
		for _, p := range s.CreateOnly {
			sets = append(sets, fmt.Sprintf("r.%s = $%s", p.Property, p.Property))
		}
		fmt.Fprintf(&b, "\nON CREATE SET %s", strings.Join(sets, ", "))
	}

	b.WriteString("\nRETURN r")
	return b.String()
}
