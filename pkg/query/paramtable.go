package query

import "fmt"

// ParamTable is the builder's parameter store. Unlike
// pkg/cypher/core.Parameters (which numbers placeholders "param1",
// "param2", ...), the spec requires zero-indexed, $-prefixed placeholders
// ("$p0", "$p1", ...) assigned in first-appearance order, so this is a
// small sibling rather than a reuse of the teacher's Parameters type.
type ParamTable struct {
	values map[string]any
	order  []string
	next   int
}

// NewParamTable creates an empty parameter table.
func NewParamTable() *ParamTable {
	return &ParamTable{values: make(map[string]any)}
}

// Add registers value and returns its placeholder, e.g. "$p0". Each call
// allocates a fresh placeholder; de-duplicating identical values is
// permitted but not required by the spec, so this implementation does not
// attempt it — two equal parameter values on one call site are expected to
// be semantically distinct captures (e.g. two calls to the same closure).
func (t *ParamTable) Add(value any) string {
	name := fmt.Sprintf("p%d", t.next)
	t.next++
	t.values[name] = value
	t.order = append(t.order, name)
	return "$" + name
}

// Values returns a copy of the parameter map for the final CypherQuery.
func (t *ParamTable) Values() map[string]any {
	out := make(map[string]any, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

// Len reports how many parameters have been registered.
func (t *ParamTable) Len() int { return len(t.order) }
