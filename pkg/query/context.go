package query

import (
	"reflect"

	"github.com/nivohavi/graphquery/pkg/cypher/core"
	"github.com/nivohavi/graphquery/pkg/query/graphio"
)

// ResultShape hints the materialization layer about the cardinality and
// kind of rows a compiled query will produce.
type ResultShape struct {
	IsScalar       bool
	IsProjection   bool
	ProjectionType reflect.Type
	ResultType     reflect.Type
	QueryRootKind  RootKind
}

// PendingReturn is a RETURN item whose alias resolution (like WHERE) is
// deferred until the whole tree has been walked.
type PendingReturn struct {
	Expr  core.Expression
	Alias string
}

// PendingOrderBy is an ORDER BY key awaiting the same deferred resolution.
type PendingOrderBy struct {
	Expr core.Expression
	Desc bool
}

// Context is created once per top-level execution and threaded through
// every handler invocation. scope.RootType is set before any
// sub-expression is translated; ResultShape is finalized before Build()
// runs on the builder.
type Context struct {
	Scope       *Scope
	Builder     *CypherQueryBuilder
	Factory     graphio.EntityFactory
	Labels      graphio.Labels
	ResultShape ResultShape
	Transaction graphio.Transaction

	PendingReturns  []PendingReturn
	PendingOrderBys []PendingOrderBy
}

// NewContext creates an empty execution context.
func NewContext(factory graphio.EntityFactory, labels graphio.Labels) *Context {
	return &Context{
		Scope:   NewScope(),
		Builder: NewCypherQueryBuilder(),
		Factory: factory,
		Labels:  labels,
	}
}
