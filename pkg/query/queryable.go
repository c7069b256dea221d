package query

import (
	"reflect"

	"github.com/nivohavi/graphquery/pkg/cypher/core"
	"github.com/nivohavi/graphquery/pkg/query/graphio"
)

// Node is a queryable rooted at a node type. Every chained method returns
// a new Node value wrapping an enlarged operator tree; nothing here
// performs I/O.
type Node[T any] struct{ node *operatorNode }

// Nodes opens a node queryable for T.
func Nodes[T any]() Node[T] {
	var zero T
	return Node[T]{node: &operatorNode{
		Kind:     OpRootNode,
		RootKind: RootNode,
		RootType: reflect.TypeOf(zero),
	}}
}

func (q Node[T]) ref() NodeRef[T] { return NodeRef[T]{role: RoleCurrent} }

// Where appends a WHERE predicate.
func (q Node[T]) Where(pred func(NodeRef[T]) core.Expression) Node[T] {
	return Node[T]{node: q.node.append(OpWhere, pred(q.ref()))}
}

// OrderBy appends an ascending ORDER BY key.
func (q Node[T]) OrderBy(key func(NodeRef[T]) core.Expression) Node[T] {
	return Node[T]{node: q.node.append(OpOrderBy, key(q.ref()))}
}

// OrderByDesc appends a descending ORDER BY key.
func (q Node[T]) OrderByDesc(key func(NodeRef[T]) core.Expression) Node[T] {
	return Node[T]{node: q.node.append(OpOrderByDesc, key(q.ref()))}
}

// ThenBy appends a secondary ascending ORDER BY key.
func (q Node[T]) ThenBy(key func(NodeRef[T]) core.Expression) Node[T] {
	return Node[T]{node: q.node.append(OpThenBy, key(q.ref()))}
}

// ThenByDesc appends a secondary descending ORDER BY key.
func (q Node[T]) ThenByDesc(key func(NodeRef[T]) core.Expression) Node[T] {
	return Node[T]{node: q.node.append(OpThenByDesc, key(q.ref()))}
}

// Take sets LIMIT = n.
func (q Node[T]) Take(n int) Node[T] { return Node[T]{node: q.node.appendArgs(OpTake, n)} }

// Skip sets SKIP = n.
func (q Node[T]) Skip(n int) Node[T] { return Node[T]{node: q.node.appendArgs(OpSkip, n)} }

// Distinct marks the query DISTINCT.
func (q Node[T]) Distinct() Node[T] { return Node[T]{node: q.node.appendArgs(OpDistinct)} }

// WithTransaction pins this execution to an already-open transaction.
func (q Node[T]) WithTransaction(tx graphio.Transaction) Node[T] {
	n := q.node.appendArgs(OpWithTransaction)
	n.Transaction = tx
	return Node[T]{node: n}
}

// Select projects the node into an anonymous record or a single member.
func Select[T, R any](q Node[T], sel func(NodeRef[T]) *Projected) Generic[R] {
	proj := sel(q.ref())
	n := q.node.append(OpSelect)
	n.Projection = proj
	return Generic[R]{node: n}
}

// SelectExpr projects a single expression (identity or member access),
// e.g. n.Prop("Name").
func SelectExpr[T, R any](q Node[T], sel func(NodeRef[T]) core.Expression) Generic[R] {
	e := sel(q.ref())
	return Generic[R]{node: q.node.append(OpSelect, e)}
}

// GroupBy groups by a key selector, with an implicit `count` aggregate
// available via GroupRef.Count() in the follow-on Select.
func GroupBy[T, K any](q Node[T], key func(NodeRef[T]) core.Expression) Generic[GroupRef[K, T]] {
	return Generic[GroupRef[K, T]]{node: q.node.append(OpGroupBy, key(q.ref()))}
}

// Traverse opens a traversal from this node to Tgt via relationship Rel.
func Traverse[T, Rel, Tgt any](q Node[T]) Traversal[T, Rel, Tgt] {
	var rel Rel
	var tgt Tgt
	n := &operatorNode{
		Kind:       OpTraverse,
		Source:     q.node,
		RootKind:   RootTraversal,
		RootType:   q.node.RootType,
		RelType:    reflect.TypeOf(rel),
		TargetType: reflect.TypeOf(tgt),
	}
	return Traversal[T, Rel, Tgt]{node: n}
}

// PathSegments opens a path-segment queryable anchored at this node.
func PathSegments[Src, Rel, Tgt any](q Node[Src]) PathSegment[Src, Rel, Tgt] {
	var rel Rel
	var tgt Tgt
	n := &operatorNode{
		Kind:       OpPathSegments,
		Source:     q.node,
		RootKind:   RootPathSegment,
		RootType:   q.node.RootType,
		RelType:    reflect.TypeOf(rel),
		TargetType: reflect.TypeOf(tgt),
	}
	return PathSegment[Src, Rel, Tgt]{node: n}
}

// Terminal operators.

// ToList executes the query and returns every matching row.
func (q Node[T]) ToList(s *Session) ([]T, error) {
	return executeList[T](s, q.node.appendArgs(OpToList))
}

// First returns the first row, erroring if none exists.
func (q Node[T]) First(s *Session) (T, error) {
	return executeScalar[T](s, q.node.appendArgs(OpFirst))
}

// FirstOrDefault returns the first row, or the zero value if none exists.
func (q Node[T]) FirstOrDefault(s *Session) (T, error) {
	return executeScalar[T](s, q.node.appendArgs(OpFirstOrDefault))
}

// Single returns the one matching row, erroring if zero or more than one match.
func (q Node[T]) Single(s *Session) (T, error) {
	return executeScalar[T](s, q.node.appendArgs(OpSingle))
}

// Last returns the last row by the existing (or a synthesized) ordering.
func (q Node[T]) Last(s *Session) (T, error) {
	return executeScalar[T](s, q.node.appendArgs(OpLast))
}

// Any reports whether any row matches.
func (q Node[T]) Any(s *Session) (bool, error) {
	return executeBool(s, q.node.appendArgs(OpAny))
}

// AnyWhere reports whether any row matches pred.
func (q Node[T]) AnyWhere(s *Session, pred func(NodeRef[T]) core.Expression) (bool, error) {
	return executeBool(s, q.node.append(OpAnyPred, pred(q.ref())))
}

// AllWhere reports whether every row matches pred.
func (q Node[T]) AllWhere(s *Session, pred func(NodeRef[T]) core.Expression) (bool, error) {
	return executeBool(s, q.node.append(OpAllPred, pred(q.ref())))
}

// Count returns the number of matching rows.
func (q Node[T]) Count(s *Session) (int64, error) {
	return executeCount(s, q.node.appendArgs(OpCount))
}

// CountWhere returns the number of rows matching pred.
func (q Node[T]) CountWhere(s *Session, pred func(NodeRef[T]) core.Expression) (int64, error) {
	return executeCount(s, q.node.append(OpCountPred, pred(q.ref())))
}

// ElementAt returns the row at index i.
func (q Node[T]) ElementAt(s *Session, i int) (T, error) {
	return executeScalar[T](s, q.node.appendArgs(OpElementAt, i))
}

// ToArray executes the query and returns every matching row. Cypher has no
// fixed-size array result shape distinct from a list, so this is ToList
// under another name, matching spec's to_list/to_array pair.
func (q Node[T]) ToArray(s *Session) ([]T, error) {
	return executeList[T](s, q.node.appendArgs(OpToArray))
}

// SingleOrDefault returns the one matching row, the zero value if none
// exists, or an error if more than one row matches.
func (q Node[T]) SingleOrDefault(s *Session) (T, error) {
	return executeScalar[T](s, q.node.appendArgs(OpSingleOrDefault))
}

// LastOrDefault returns the last row by the existing (or a synthesized)
// ordering, or the zero value if none exists.
func (q Node[T]) LastOrDefault(s *Session) (T, error) {
	return executeScalar[T](s, q.node.appendArgs(OpLastOrDefault))
}

// Sum returns the sum of sel over every matching row.
func (q Node[T]) Sum(s *Session, sel func(NodeRef[T]) core.Expression) (float64, error) {
	return executeScalar[float64](s, q.node.append(OpSum, sel(q.ref())))
}

// Average returns the average of sel over every matching row.
func (q Node[T]) Average(s *Session, sel func(NodeRef[T]) core.Expression) (float64, error) {
	return executeScalar[float64](s, q.node.append(OpAverage, sel(q.ref())))
}

// Contains reports whether any matching row equals item.
func (q Node[T]) Contains(s *Session, item T) (bool, error) {
	return executeBool(s, q.node.append(OpContains, toExpr(item)))
}

// MinOf returns the minimum value of sel over every matching row. A
// package-level function rather than a Node[T] method because the result
// type R (the selected field's type) is independent of T, the same reason
// Select/GroupBy are package-level generics instead of methods.
func MinOf[T, R any](q Node[T], s *Session, sel func(NodeRef[T]) core.Expression) (R, error) {
	return executeScalar[R](s, q.node.append(OpMin, sel(q.ref())))
}

// MaxOf returns the maximum value of sel over every matching row.
func MaxOf[T, R any](q Node[T], s *Session, sel func(NodeRef[T]) core.Expression) (R, error) {
	return executeScalar[R](s, q.node.append(OpMax, sel(q.ref())))
}

// Generic is an untyped-shape queryable, the result of select()/group_by()
// and path-segment member projections.
type Generic[T any] struct{ node *operatorNode }

func (q Generic[T]) Take(n int) Generic[T]  { return Generic[T]{node: q.node.appendArgs(OpTake, n)} }
func (q Generic[T]) Skip(n int) Generic[T]  { return Generic[T]{node: q.node.appendArgs(OpSkip, n)} }
func (q Generic[T]) Distinct() Generic[T]   { return Generic[T]{node: q.node.appendArgs(OpDistinct)} }

func (q Generic[T]) ToList(s *Session) ([]T, error) {
	return executeList[T](s, q.node.appendArgs(OpToList))
}
func (q Generic[T]) First(s *Session) (T, error) {
	return executeScalar[T](s, q.node.appendArgs(OpFirst))
}
func (q Generic[T]) Count(s *Session) (int64, error) {
	return executeCount(s, q.node.appendArgs(OpCount))
}
func (q Generic[T]) Any(s *Session) (bool, error) {
	return executeBool(s, q.node.appendArgs(OpAny))
}

// GroupSelect finishes a group_by chain by describing the per-group
// projection (scenario 6: `new { City = g.Key, Count = g.Count() }`).
func GroupSelect[K, T, R any](q Generic[GroupRef[K, T]], sel func(GroupRef[K, T]) *Projected) Generic[R] {
	var g GroupRef[K, T]
	proj := sel(g)
	n := q.node.append(OpSelect)
	n.Projection = proj
	return Generic[R]{node: n}
}

// Relationship is a queryable rooted at a relationship type.
type Relationship[R any] struct{ node *operatorNode }

// Relationships opens a relationship queryable for R.
func Relationships[R any]() Relationship[R] {
	var zero R
	return Relationship[R]{node: &operatorNode{
		Kind:     OpRootRelationship,
		RootKind: RootRelationship,
		RootType: reflect.TypeOf(zero),
	}}
}

func (q Relationship[R]) ref() RelRef[R] { return RelRef[R]{role: RoleRelationship} }

func (q Relationship[R]) Where(pred func(RelRef[R]) core.Expression) Relationship[R] {
	return Relationship[R]{node: q.node.append(OpWhere, pred(q.ref()))}
}
func (q Relationship[R]) Take(n int) Relationship[R] {
	return Relationship[R]{node: q.node.appendArgs(OpTake, n)}
}
func (q Relationship[R]) Skip(n int) Relationship[R] {
	return Relationship[R]{node: q.node.appendArgs(OpSkip, n)}
}
func (q Relationship[R]) Distinct() Relationship[R] {
	return Relationship[R]{node: q.node.appendArgs(OpDistinct)}
}

func (q Relationship[R]) ToList(s *Session) ([]R, error) {
	return executeList[R](s, q.node.appendArgs(OpToList))
}
func (q Relationship[R]) Count(s *Session) (int64, error) {
	return executeCount(s, q.node.appendArgs(OpCount))
}

// TraverseRel opens a traversal from this relationship to Tgt.
func TraverseRel[R, Src, Tgt any](q Relationship[R]) Traversal[Src, R, Tgt] {
	var tgt Tgt
	n := &operatorNode{
		Kind:       OpTraverse,
		Source:     q.node,
		RootKind:   RootTraversal,
		RootType:   q.node.RootType,
		RelType:    q.node.RootType,
		TargetType: reflect.TypeOf(tgt),
	}
	return Traversal[Src, R, Tgt]{node: n}
}

// Traversal is the queryable produced by Traverse and TraverseRel.
type Traversal[Src, Rel, Tgt any] struct{ node *operatorNode }

func (q Traversal[Src, Rel, Tgt]) ref() NodeRef[Tgt] { return NodeRef[Tgt]{role: RoleCurrent} }

// InDirection sets the traversal direction; at most once per chain.
func (q Traversal[Src, Rel, Tgt]) InDirection(dir TraversalDirection) Traversal[Src, Rel, Tgt] {
	return Traversal[Src, Rel, Tgt]{node: q.node.appendArgs(OpInDirection, dir)}
}

// WithDepth sets a variable-length traversal's [min, max] depth bounds.
func (q Traversal[Src, Rel, Tgt]) WithDepth(min, max int) Traversal[Src, Rel, Tgt] {
	return Traversal[Src, Rel, Tgt]{node: q.node.appendArgs(OpWithDepth, min, max)}
}

// WithMaxDepth sets only the maximum depth (min defaults to 1).
func (q Traversal[Src, Rel, Tgt]) WithMaxDepth(max int) Traversal[Src, Rel, Tgt] {
	return Traversal[Src, Rel, Tgt]{node: q.node.appendArgs(OpWithDepth, 1, max)}
}

func (q Traversal[Src, Rel, Tgt]) Where(pred func(NodeRef[Tgt]) core.Expression) Traversal[Src, Rel, Tgt] {
	return Traversal[Src, Rel, Tgt]{node: q.node.append(OpWhere, pred(q.ref()))}
}
func (q Traversal[Src, Rel, Tgt]) Take(n int) Traversal[Src, Rel, Tgt] {
	return Traversal[Src, Rel, Tgt]{node: q.node.appendArgs(OpTake, n)}
}

// RelationshipsOf returns the relationships crossed by this traversal.
func (q Traversal[Src, Rel, Tgt]) RelationshipsOf() Generic[Rel] {
	return Generic[Rel]{node: q.node.appendArgs(OpRelationships)}
}

func (q Traversal[Src, Rel, Tgt]) ToList(s *Session) ([]Tgt, error) {
	return executeList[Tgt](s, q.node.appendArgs(OpToList))
}
func (q Traversal[Src, Rel, Tgt]) First(s *Session) (Tgt, error) {
	return executeScalar[Tgt](s, q.node.appendArgs(OpFirst))
}
func (q Traversal[Src, Rel, Tgt]) Count(s *Session) (int64, error) {
	return executeCount(s, q.node.appendArgs(OpCount))
}

// PathSegment is the queryable produced by PathSegments.
type PathSegment[Src, Rel, Tgt any] struct{ node *operatorNode }

func (q PathSegment[Src, Rel, Tgt]) ref() PathSegRef[Src, Rel, Tgt] {
	return PathSegRef[Src, Rel, Tgt]{}
}

func (q PathSegment[Src, Rel, Tgt]) Where(pred func(PathSegRef[Src, Rel, Tgt]) core.Expression) PathSegment[Src, Rel, Tgt] {
	return PathSegment[Src, Rel, Tgt]{node: q.node.append(OpWhere, pred(q.ref()))}
}

// SelectSegment projects a path segment into a single member expression, e.g.
// seg.Relationship.Since (scenario 4).
func SelectSegment[Src, Rel, Tgt, R any](q PathSegment[Src, Rel, Tgt], sel func(PathSegRef[Src, Rel, Tgt]) core.Expression) Generic[R] {
	e := sel(q.ref())
	return Generic[R]{node: q.node.append(OpSelect, e)}
}

func (q PathSegment[Src, Rel, Tgt]) Take(n int) PathSegment[Src, Rel, Tgt] {
	return PathSegment[Src, Rel, Tgt]{node: q.node.appendArgs(OpTake, n)}
}

func (q PathSegment[Src, Rel, Tgt]) ToList(s *Session) ([][3]any, error) {
	return executeList[[3]any](s, q.node.appendArgs(OpToList))
}
