package query

import (
	"github.com/nivohavi/graphquery/pkg/cypher/core"
	"github.com/nivohavi/graphquery/pkg/cypher/expr"
)

// This file supplies the host-language-call catalogue from spec §4.3.2:
// each combinator produces the exact Cypher fragment the call table names,
// by construction, rather than by detecting a call shape at translation
// time (see SPEC_FULL.md §0/§4.3). Most map straight onto combinators the
// teacher's pkg/cypher/expr package already exports; the rest (Math,
// DateTime, Enumerable) are new, grounded in that same package's style —
// thin constructors around expr.Function/expr.BinaryExpression.

// String operations.

func ToLower(e core.Expression) core.Expression { return expr.ToLower(e) }
func ToUpper(e core.Expression) core.Expression { return expr.ToUpper(e) }
func Trim(e core.Expression) core.Expression    { return expr.Trim(e) }
func TrimStart(e core.Expression) core.Expression { return expr.LTrim(e) }
func TrimEnd(e core.Expression) core.Expression   { return expr.RTrim(e) }

func Replace(e, search, replacement core.Expression) core.Expression {
	return expr.Replace(e, search, replacement)
}

func Substring(e, start core.Expression, length ...core.Expression) core.Expression {
	return expr.Substring(e, start, length...)
}

// Length maps the String.Length property to size(e).
func Length(e core.Expression) core.Expression { return expr.Function("size", e) }

// IsNullOrEmpty renders `(x IS NULL OR size(x) = 0)`.
func IsNullOrEmpty(e core.Expression) core.Expression {
	return expr.IsNull(e).Or(expr.Equals(expr.Function("size", e), expr.Integer(0)))
}

// IsNullOrWhiteSpace renders `(x IS NULL OR size(trim(x)) = 0)`.
func IsNullOrWhiteSpace(e core.Expression) core.Expression {
	return expr.IsNull(e).Or(expr.Equals(expr.Function("size", expr.Trim(e)), expr.Integer(0)))
}

// Math operations.

func Abs(e core.Expression) core.Expression    { return expr.Function("abs", e) }
func Floor(e core.Expression) core.Expression  { return expr.Function("floor", e) }
func Ceiling(e core.Expression) core.Expression { return expr.Function("ceil", e) }
func Round(e core.Expression) core.Expression  { return expr.Function("round", e) }
func Sqrt(e core.Expression) core.Expression   { return expr.Function("sqrt", e) }
func Sign(e core.Expression) core.Expression   { return expr.Function("sign", e) }
func Sin(e core.Expression) core.Expression    { return expr.Function("sin", e) }
func Cos(e core.Expression) core.Expression    { return expr.Function("cos", e) }
func Tan(e core.Expression) core.Expression    { return expr.Function("tan", e) }

// Pow renders `(a ^ b)`.
func Pow(a, b core.Expression) core.Expression {
	return &expr.BinaryExpression{Left: a, Right: b, Operator: "^"}
}

// DateTime operations.

func Now() core.Expression     { return expr.Function("datetime") }
func UtcNow() core.Expression  { return expr.Function("datetime.realtime") }
func Today() core.Expression   { return expr.Function("date") }

// dateAdd renders `x + duration({unit: n})` for AddYears/AddMonths/AddDays/...
func dateAdd(x core.Expression, unit string, n core.Expression) core.Expression {
	dur := expr.Map(map[string]core.Expression{unit: n})
	return &expr.BinaryExpression{Left: x, Right: expr.Function("duration", dur), Operator: "+"}
}

func AddYears(x, n core.Expression) core.Expression   { return dateAdd(x, "years", n) }
func AddMonths(x, n core.Expression) core.Expression  { return dateAdd(x, "months", n) }
func AddDays(x, n core.Expression) core.Expression    { return dateAdd(x, "days", n) }
func AddHours(x, n core.Expression) core.Expression   { return dateAdd(x, "hours", n) }
func AddMinutes(x, n core.Expression) core.Expression { return dateAdd(x, "minutes", n) }
func AddSeconds(x, n core.Expression) core.Expression { return dateAdd(x, "seconds", n) }

// DateField renders `datetime(x).field` (Year, Month, Day, Hour, ...).
func DateField(x core.Expression, field string) core.Expression {
	return &dotExpr{Subject: expr.Function("datetime", x), Member: field}
}

// dotExpr is a plain `<subject>.<member>` access on an already-translated
// Cypher expression (e.g. datetime(x).year), distinct from RoleProperty
// (which resolves a role to an alias) because the subject here is already
// a full expression rather than a bare alias.
type dotExpr struct {
	Subject core.Expression
	Member  string
}

func (d *dotExpr) Accept(v core.ExpressionVisitor) any { return v.Visit(d) }
func (d *dotExpr) String() string                      { return d.Subject.String() + "." + d.Member }
func (d *dotExpr) And(other core.Expression) core.Expression { return expr.And(d, other) }
func (d *dotExpr) Or(other core.Expression) core.Expression  { return expr.Or(d, other) }
func (d *dotExpr) Not() core.Expression                      { return expr.Not(d) }

// Conversions.

func ToInteger(e core.Expression) core.Expression { return expr.Function("toInteger", e) }
func ToFloat(e core.Expression) core.Expression   { return expr.Function("toFloat", e) }
func ToBoolean(e core.Expression) core.Expression { return expr.Function("toBoolean", e) }
func ToStringExpr(e core.Expression) core.Expression { return expr.Function("toString", e) }
func ToDateTime(e core.Expression) core.Expression { return expr.Function("datetime", e) }

// Collection / Enumerable operations.

// CollectionContains renders `item IN col`, where col is already a
// list-valued expression (e.g. a collection property) rather than a set of
// literal values — unlike expr.In, which wraps its variadic values into a
// freshly built Cypher list literal.
func CollectionContains(col, item core.Expression) core.Expression {
	return &collectionInExpr{Col: col, Item: item}
}

// collectionInExpr renders `item IN col`. A dedicated node (rather than
// expr.In, which wraps its right side into a fresh list literal) because
// col is already list-valued and both operands may contain RoleProperty/
// ParamPlaceholder nodes that only resolve through translateExpr, never
// through String().
type collectionInExpr struct{ Col, Item core.Expression }

func (e *collectionInExpr) Accept(v core.ExpressionVisitor) any { return v.Visit(e) }
func (e *collectionInExpr) String() string                      { return e.Item.String() + " IN " + e.Col.String() }
func (e *collectionInExpr) And(other core.Expression) core.Expression { return expr.And(e, other) }
func (e *collectionInExpr) Or(other core.Expression) core.Expression  { return expr.Or(e, other) }
func (e *collectionInExpr) Not() core.Expression                      { return expr.Not(e) }

// CollectionCount renders `size(col)`.
func CollectionCount(col core.Expression) core.Expression { return expr.Function("size", col) }

// predicateExpr renders `FN(x IN col WHERE pred)` for Any/All/None/Single.
// pred is itself translated with the loop variable bound via a
// VariableExpression RoleProperty would not resolve, so predicateExpr
// carries its operands untranslated and is handled as a unit by
// translateExpr.
type predicateExpr struct {
	Fn, Var   string
	Col, Pred core.Expression
}

func (e *predicateExpr) Accept(v core.ExpressionVisitor) any { return v.Visit(e) }
func (e *predicateExpr) String() string {
	return e.Fn + "(" + e.Var + " IN " + e.Col.String() + " WHERE " + e.Pred.String() + ")"
}
func (e *predicateExpr) And(other core.Expression) core.Expression { return expr.And(e, other) }
func (e *predicateExpr) Or(other core.Expression) core.Expression  { return expr.Or(e, other) }
func (e *predicateExpr) Not() core.Expression                      { return expr.Not(e) }

// Any renders `ANY(x IN col WHERE pred)`.
func Any(varName string, col, pred core.Expression) core.Expression {
	return &predicateExpr{Fn: "ANY", Var: varName, Col: col, Pred: pred}
}

// All renders `ALL(x IN col WHERE pred)`.
func All(varName string, col, pred core.Expression) core.Expression {
	return &predicateExpr{Fn: "ALL", Var: varName, Col: col, Pred: pred}
}

// NoneOf renders `NONE(x IN col WHERE pred)`.
func NoneOf(varName string, col, pred core.Expression) core.Expression {
	return &predicateExpr{Fn: "NONE", Var: varName, Col: col, Pred: pred}
}

// SingleOf renders `SINGLE(x IN col WHERE pred)`.
func SingleOf(varName string, col, pred core.Expression) core.Expression {
	return &predicateExpr{Fn: "SINGLE", Var: varName, Col: col, Pred: pred}
}

// Aggregations usable inside select().

func Sum(e core.Expression) core.Expression { return expr.Sum(e) }
func Avg(e core.Expression) core.Expression { return expr.Avg(ToFloat(e)) }
func Min(e core.Expression) core.Expression { return expr.Min(e) }
func Max(e core.Expression) core.Expression { return expr.Max(e) }

// CountPred renders `count(CASE WHEN pred THEN 1 ELSE NULL END)`.
func CountPred(pred core.Expression) core.Expression {
	return expr.Function("count", CaseWhen(pred, expr.Integer(1), expr.Null()))
}
