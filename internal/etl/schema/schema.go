// Package schema declares the graph ontology the loader materializes: which
// CSV extract feeds which node label, how columns map onto properties, and
// which relationships tie the labels together.
//
// The catalog in this package is the single place the ontology lives. Node
// and relationship loaders are generic; they walk these specs instead of
// hard-coding per-label logic.
package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/source"
	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/types"
)

// PropertyType identifies how a raw CSV field is coerced before it is sent
// to the graph store.
type PropertyType string

const (
	String PropertyType = "string"
	Int    PropertyType = "int"
	Float  PropertyType = "float"
)

// PropertyMapping binds one CSV column to one graph property.
type PropertyMapping struct {
	Column   string
	Property string
	Type     PropertyType
}

// NodeSpec describes how rows of one extract become nodes of one label.
// Properties[0] is always the integer merge key "id".
type NodeSpec struct {
	Label      string
	Source     string
	Properties []PropertyMapping
}

// Columns returns the CSV columns the spec reads, in mapping order.
func (s NodeSpec) Columns() []string {
	cols := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		cols = append(cols, p.Column)
	}
	return cols
}

// Params coerces the row's mapped columns into statement parameters keyed by
// property name.
func (s NodeSpec) Params(row source.Row) (map[string]any, error) {
	params := make(map[string]any, len(s.Properties))
	for _, p := range s.Properties {
		v, err := coerce(row, p)
		if err != nil {
			return nil, err
		}
		params[p.Property] = v
	}
	return params, nil
}

// EndpointSpec names one end of a relationship: the node label and the CSV
// column carrying its integer key.
type EndpointSpec struct {
	Label  string
	Column string
}

// RelationshipSpec describes how rows of one extract become relationships.
type RelationshipSpec struct {
	Type   string
	Source string
	From   EndpointSpec
	To     EndpointSpec

	// CreateOnly properties are set when the relationship is first created
	// and never touched on a later merge of the same edge.
	CreateOnly []PropertyMapping
}

// Columns returns the CSV columns the spec reads.
func (s RelationshipSpec) Columns() []string {
	cols := []string{s.From.Column, s.To.Column}
	for _, p := range s.CreateOnly {
		cols = append(cols, p.Column)
	}
	return cols
}

// Params coerces the row's endpoint keys and create-only columns into
// statement parameters. Endpoint keys travel as from_id and to_id.
func (s RelationshipSpec) Params(row source.Row) (map[string]any, error) {
	params := make(map[string]any, 2+len(s.CreateOnly))

	fromID, err := coerce(row, PropertyMapping{Column: s.From.Column, Property: "from_id", Type: Int})
	if err != nil {
		return nil, err
	}
	params["from_id"] = fromID

	toID, err := coerce(row, PropertyMapping{Column: s.To.Column, Property: "to_id", Type: Int})
	if err != nil {
		return nil, err
	}
	params["to_id"] = toID

	for _, p := range s.CreateOnly {
		v, err := coerce(row, p)
		if err != nil {
			return nil, err
		}
		params[p.Property] = v
	}

	return params, nil
}

// coerce converts one raw field into its typed parameter value. Numeric
// parsing trims surrounding whitespace; string values pass through raw.
func coerce(row source.Row, m PropertyMapping) (any, error) {
	raw, ok := row.Get(m.Column)
	if !ok {
		return nil, types.NewError(types.SOURCE_MISSING_COLUMN,
			fmt.Sprintf("%s row %d has no %q column", row.Path(), row.Ordinal(), m.Column))
	}

	switch m.Type {
	case Int:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, types.WrapError(types.DATA_COERCION_FAILED,
				fmt.Sprintf("%s row %d: %s %q is not an integer", row.Path(), row.Ordinal(), m.Column, raw), err)
		}
		return n, nil
	case Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, types.WrapError(types.DATA_COERCION_FAILED,
				fmt.Sprintf("%s row %d: %s %q is not a number", row.Path(), row.Ordinal(), m.Column, raw), err)
		}
		return f, nil
	default:
		return raw, nil
	}
}
