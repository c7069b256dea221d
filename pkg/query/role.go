package query

import (
	"fmt"

	"github.com/nivohavi/graphquery/pkg/cypher/core"
	"github.com/nivohavi/graphquery/pkg/cypher/expr"
)

// Role names the position a property/member access is rooted at, before
// the scope has assigned it a concrete Cypher alias. Resolution to an
// alias happens at translation time via determineContextAlias, never at
// construction time — a RoleProperty built while chaining operators does
// not yet know whether it will end up against "n", "src", "tgt" or "r".
type Role int

const (
	// RoleCurrent is the root/current queryable alias (scope.CurrentAlias).
	RoleCurrent Role = iota
	// RoleSource is a path segment's start-node alias ("src").
	RoleSource
	// RoleTarget is a path segment's end-node alias ("tgt").
	RoleTarget
	// RoleRelationship is the relationship alias ("r").
	RoleRelationship
	// RoleGroupKey resolves to the stored group-by expression fragment.
	RoleGroupKey
)

// RoleProperty is a property access expression whose subject alias is
// resolved lazily, against the scope live at translation time, instead of
// a literal string baked in when the combinator was called. It satisfies
// core.PropertyExpression so it composes with every existing comparison
// combinator in pkg/cypher/expr.
type RoleProperty struct {
	Role  Role
	Name  string
	Chain []string
}

// Prop builds a property access rooted at role.
func Prop(role Role, name string, chain ...string) *RoleProperty {
	return &RoleProperty{Role: role, Name: name, Chain: chain}
}

// Accept implements core.Expression.
func (p *RoleProperty) Accept(visitor core.ExpressionVisitor) any {
	return visitor.Visit(p)
}

// String renders a best-effort, alias-free form. Real rendering always
// goes through translateExpr, which knows the live scope; this exists only
// so RoleProperty satisfies core.Expression when printed directly (e.g. in
// an error message).
func (p *RoleProperty) String() string {
	if len(p.Chain) == 0 {
		return fmt.Sprintf("<%d>.%s", p.Role, p.Name)
	}
	return fmt.Sprintf("<%d>.%s.%s", p.Role, p.Name, joinDot(p.Chain))
}

func joinDot(parts []string) string {
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += "."
		}
		s += p
	}
	return s
}

func (p *RoleProperty) And(other core.Expression) core.Expression { return expr.And(p, other) }
func (p *RoleProperty) Or(other core.Expression) core.Expression  { return expr.Or(p, other) }
func (p *RoleProperty) Not() core.Expression                      { return expr.Not(p) }

func (p *RoleProperty) Eq(value any) core.Expression  { return expr.Equals(p, toExpr(value)) }
func (p *RoleProperty) Gt(value any) core.Expression  { return expr.GreaterThan(p, toExpr(value)) }
func (p *RoleProperty) Lt(value any) core.Expression  { return expr.LessThan(p, toExpr(value)) }
func (p *RoleProperty) Gte(value any) core.Expression { return expr.GreaterThanEqual(p, toExpr(value)) }
func (p *RoleProperty) Lte(value any) core.Expression { return expr.LessThanEqual(p, toExpr(value)) }
func (p *RoleProperty) IsNull() core.Expression       { return expr.IsNull(p) }
func (p *RoleProperty) IsNotNull() core.Expression    { return expr.IsNotNull(p) }
func (p *RoleProperty) In(values ...any) core.Expression {
	return expr.In(p, values...)
}
// StartsWith/EndsWith/Contains register value as a parameter rather than
// inlining it as a string literal (unlike the teacher's expr.StartsWith/
// EndsWith/Contains), so every host-language-call value lands in the
// parameter table the same way Eq/Gt/... do.
func (p *RoleProperty) StartsWith(value string) core.Expression {
	return expr.CompareOp(p, "STARTS WITH", Param(value))
}
func (p *RoleProperty) EndsWith(value string) core.Expression {
	return expr.CompareOp(p, "ENDS WITH", Param(value))
}
func (p *RoleProperty) Contains(value string) core.Expression {
	return expr.CompareOp(p, "CONTAINS", Param(value))
}
func (p *RoleProperty) RegularExpression(pattern string) core.Expression {
	return expr.RegularExpression(p, pattern)
}

// toExpr converts a raw Go value into an expression, passing through
// values that are already expressions (e.g. the result of Param(x)).
func toExpr(value any) core.Expression {
	if e, ok := value.(core.Expression); ok {
		return e
	}
	return expr.LiteralFromValue(value)
}

// ParamPlaceholder wraps a host-captured value (a "closure constant") that
// must be registered into the CypherQueryBuilder's parameter table at
// translation time. Eval is set instead of Value for the "evaluable
// closure" case (spec's AddDays/Concat/Abs/NewGuid style calls): a thunk
// invoked once during translation, whose failure raises
// ExpressionCompilationFailed rather than silently producing wrong Cypher.
type ParamPlaceholder struct {
	Value any
	Eval  func() (any, error)
}

// Param captures a host value to be sent as a Cypher parameter.
func Param(value any) *ParamPlaceholder {
	return &ParamPlaceholder{Value: value}
}

// ParamFunc captures an evaluable closure constant: a thunk with no
// parameter references, invoked once during translation.
func ParamFunc(eval func() (any, error)) *ParamPlaceholder {
	return &ParamPlaceholder{Eval: eval}
}

func (p *ParamPlaceholder) Accept(visitor core.ExpressionVisitor) any { return visitor.Visit(p) }
func (p *ParamPlaceholder) String() string                           { return "$?" }
func (p *ParamPlaceholder) And(other core.Expression) core.Expression { return expr.And(p, other) }
func (p *ParamPlaceholder) Or(other core.Expression) core.Expression  { return expr.Or(p, other) }
func (p *ParamPlaceholder) Not() core.Expression                      { return expr.Not(p) }

// CaseWhenExpr is the ternary translation target: CASE WHEN t THEN a ELSE b END.
type CaseWhenExpr struct {
	When core.Expression
	Then core.Expression
	Else core.Expression
}

// CaseWhen builds a ternary conditional expression.
func CaseWhen(when, then, els core.Expression) *CaseWhenExpr {
	return &CaseWhenExpr{When: when, Then: then, Else: els}
}

func (c *CaseWhenExpr) Accept(visitor core.ExpressionVisitor) any { return visitor.Visit(c) }
func (c *CaseWhenExpr) String() string {
	return fmt.Sprintf("CASE WHEN %s THEN %s ELSE %s END", c.When.String(), c.Then.String(), c.Else.String())
}
func (c *CaseWhenExpr) And(other core.Expression) core.Expression { return expr.And(c, other) }
func (c *CaseWhenExpr) Or(other core.Expression) core.Expression  { return expr.Or(c, other) }
func (c *CaseWhenExpr) Not() core.Expression                      { return expr.Not(c) }
