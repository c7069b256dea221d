// Package graphio defines the external collaborators the translator in
// pkg/query reads from but never implements: schema lookup, label/type-name
// derivation, and the Neo4j driver surface used to run an already-compiled
// CypherQuery. Nothing in this package does translation; it only describes
// the contracts pkg/query is written against.
package graphio

import "reflect"

// PropertyInfo describes a single property of an entity type, as reported
// by the schema layer. A complex property is one whose value is itself
// another node, persisted behind a relationship rather than a native
// Cypher value.
type PropertyInfo struct {
	Name       string
	GoType     reflect.Type
	IsComplex  bool
	TargetType reflect.Type // set when IsComplex
}

// EntitySchema is the read-only shape of a node or relationship type as
// reported by the external schema layer.
type EntitySchema struct {
	Labels           []string
	IDPropertyName   string
	SimpleProperties map[string]bool
	ComplexProperties map[string]PropertyInfo
}

// HasComplexProperties reports whether this schema declares any
// relationship-backed properties.
func (s *EntitySchema) HasComplexProperties() bool {
	return s != nil && len(s.ComplexProperties) > 0
}

// EntityFactory is consumed by handlers to look up schema metadata and to
// decide whether a type is materializable. Result materialization itself —
// turning driver records into Go values — is out of scope; only these two
// read-only methods are used during translation.
type EntityFactory interface {
	// Schema returns the schema for t, if the factory knows one.
	Schema(t reflect.Type) (*EntitySchema, bool)
	// CanDeserialize reports whether t can be produced from a driver record.
	CanDeserialize(t reflect.Type) bool
}

// Labels derives the Cypher-visible names the translator stitches into
// patterns: node/relationship labels and the relationship type implied by
// a complex property's name.
type Labels interface {
	// LabelOfType returns the Cypher label (node) or relationship type name
	// used to match values of t.
	LabelOfType(t reflect.Type) string
	// LabelOfProperty returns the Cypher-visible name for a property.
	LabelOfProperty(p PropertyInfo) string
	// RelationshipTypeFromPropertyName derives the relationship type used
	// to traverse a complex property, e.g. "worksFor" -> "WORKS_FOR".
	RelationshipTypeFromPropertyName(name string) string
}
