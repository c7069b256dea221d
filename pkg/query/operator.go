package query

import (
	"reflect"

	"github.com/nivohavi/graphquery/pkg/cypher/core"
	"github.com/nivohavi/graphquery/pkg/query/graphio"
)

// OperatorKind enumerates the operator-tree node variants. Dispatch on the
// tree happens by switching on this enum (see dispatch in visitor.go), not by
// reflecting over a generic operator type — the queryable surface stays
// polymorphic over element type, but is erased to this enum at the
// boundary the visitor operates on.
type OperatorKind int

const (
	// Root kinds: leaves of the tree.
	OpRootNode OperatorKind = iota
	OpRootRelationship
	OpRootTraversal
	OpRootPathSegment

	// Common chained operators.
	OpWhere
	OpSelect
	OpSelectMany
	OpOrderBy
	OpOrderByDesc
	OpThenBy
	OpThenByDesc
	OpTake
	OpSkip
	OpDistinct
	OpGroupBy
	OpJoin
	OpGroupJoin
	OpUnion
	OpConcat
	OpWithTransaction

	// Node-specific.
	OpTraverse
	OpPathSegments

	// Traversal-specific.
	OpInDirection
	OpWithDepth
	OpWithOptions
	OpThenTraverse
	OpRelationships
	OpTo

	// Terminal operators.
	OpToList
	OpToArray
	OpFirst
	OpFirstOrDefault
	OpSingle
	OpSingleOrDefault
	OpLast
	OpLastOrDefault
	OpAny
	OpAnyPred
	OpAllPred
	OpCount
	OpCountPred
	OpSum
	OpAverage
	OpMin
	OpMax
	OpContains
	OpElementAt
)

// RootKind tags the category of a root (leaf) queryable, matching spec's
// query_root_kind.
type RootKind int

const (
	RootNode RootKind = iota
	RootRelationship
	RootTraversal
	RootPathSegment
	RootCustom
)

// operatorNode is one record in the lazy operator tree. A queryable value
// is an immutable wrapper around a pointer to one of these; every chained
// operator builds a new node with Source pointing at the previous tree,
// never mutating an existing node.
type operatorNode struct {
	Kind   OperatorKind
	Source *operatorNode

	RootKind   RootKind
	RootType   reflect.Type // element type of a root node
	RelType    reflect.Type // traverse<Rel,_>/root relationship type
	TargetType reflect.Type // traverse<_,Tgt>/root path-segment target type

	// Literal arguments: take(n)/skip(n)/element_at(i) store an int;
	// with_depth stores (min, max) ints; in_direction stores a
	// TraversalDirection; relationship_type/traverse store string type
	// names when no reflect.Type is available.
	Args []any

	// Expression-valued arguments (predicate/selector/key/result selector),
	// in operator-specific order. Built eagerly at chain-construction time
	// from role-tagged combinators (see role.go) — no closures are stored.
	Exprs []core.Expression

	// Projection carries the anonymous-record shape for select()'s
	// constructor case.
	Projection *Projected

	// Second holds the other side of a join/group_join/union/concat.
	Second *operatorNode

	Transaction graphio.Transaction
}

// append returns a new node of kind, chained after n, carrying exprs.
func (n *operatorNode) append(kind OperatorKind, exprs ...core.Expression) *operatorNode {
	return &operatorNode{
		Kind:     kind,
		Source:   n,
		RootType: n.RootType,
		Exprs:    exprs,
	}
}

func (n *operatorNode) appendArgs(kind OperatorKind, args ...any) *operatorNode {
	return &operatorNode{
		Kind:     kind,
		Source:   n,
		RootType: n.RootType,
		Args:     args,
	}
}

// Member describes one field of an anonymous-record projection:
// `RETURN <expr> AS <alias>`.
type Member struct {
	Alias string
	Expr  core.Expression
}

// Projected is the typed anonymous-record shape select() builds when its
// selector constructs more than a single member access.
type Projected struct {
	Members []Member
}

// NewProjected builds a projection from named members.
func NewProjected(members ...Member) *Projected {
	return &Projected{Members: members}
}
