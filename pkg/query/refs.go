package query

import (
	"github.com/nivohavi/graphquery/pkg/cypher/core"
	"github.com/nivohavi/graphquery/pkg/cypher/expr"
)

// NodeRef is the typed handle passed into a node queryable's
// predicate/selector/key combinators. It carries no data beyond the role
// its property accesses should resolve against.
type NodeRef[T any] struct{ role Role }

// Prop builds a property access on this node. chain, if given, names
// further member hops past name (e.g. Prop("Employer", "Name") for
// n.Employer.Name) — when name is a complex property, the translator
// resolves the chain against the node loaded through its OPTIONAL MATCH
// rather than dot-joining onto this node's own alias.
func (r NodeRef[T]) Prop(name string, chain ...string) *RoleProperty {
	return Prop(r.role, name, chain...)
}

// Self returns an expression that resolves to the node's own alias
// (used by select(p => p), the identity projection).
func (r NodeRef[T]) Self() core.Expression { return Prop(r.role, "") }

// RelRef is the typed handle for relationship-rooted combinators.
type RelRef[R any] struct{ role Role }

func (r RelRef[R]) Prop(name string) *RoleProperty { return Prop(r.role, name) }
func (r RelRef[R]) Self() core.Expression          { return Prop(r.role, "") }

// PathSegRef is the typed handle passed into path-segment combinators; its
// three sub-refs resolve to the segment's start node, end node, and
// relationship respectively.
type PathSegRef[Src, Rel, Tgt any] struct{}

func (PathSegRef[Src, Rel, Tgt]) StartNode() NodeRef[Src]     { return NodeRef[Src]{role: RoleSource} }
func (PathSegRef[Src, Rel, Tgt]) EndNode() NodeRef[Tgt]       { return NodeRef[Tgt]{role: RoleTarget} }
func (PathSegRef[Src, Rel, Tgt]) Relationship() RelRef[Rel]   { return RelRef[Rel]{role: RoleRelationship} }

// GroupRef is the typed handle passed into the selector that follows
// group_by: Key() resolves to the stored group-by expression, Count()
// resolves to count(<root alias>).
type GroupRef[K, T any] struct{}

func (GroupRef[K, T]) Key() core.Expression { return &groupKeyExpr{} }
func (GroupRef[K, T]) Count() core.Expression { return &groupCountExpr{} }

// groupKeyExpr resolves, at translation time, to the stored group-by
// expression fragment (scope.GroupByExpression).
type groupKeyExpr struct{}

func (g *groupKeyExpr) Accept(v core.ExpressionVisitor) any { return v.Visit(g) }
func (g *groupKeyExpr) String() string                      { return "<group-key>" }
func (g *groupKeyExpr) And(other core.Expression) core.Expression { return expr.And(g, other) }
func (g *groupKeyExpr) Or(other core.Expression) core.Expression  { return expr.Or(g, other) }
func (g *groupKeyExpr) Not() core.Expression                      { return expr.Not(g) }

// groupCountExpr resolves to count(<current alias>).
type groupCountExpr struct{}

func (g *groupCountExpr) Accept(v core.ExpressionVisitor) any { return v.Visit(g) }
func (g *groupCountExpr) String() string                      { return "<group-count>" }
func (g *groupCountExpr) And(other core.Expression) core.Expression { return expr.And(g, other) }
func (g *groupCountExpr) Or(other core.Expression) core.Expression  { return expr.Or(g, other) }
func (g *groupCountExpr) Not() core.Expression                      { return expr.Not(g) }
