package query

import (
	"fmt"

	"github.com/nivohavi/graphquery/pkg/cypher/core"
	"github.com/nivohavi/graphquery/pkg/cypher/expr"
	"github.com/nivohavi/graphquery/pkg/query/qerrors"
)

// translateExpr is the single entry point for the expression translator
// (spec's ExpressionVisitorChain): it walks a core.Expression tree built
// from the combinators in role.go/functions.go and the teacher's own
// pkg/cypher/expr types, resolving RoleProperty aliases against the live
// scope and registering ParamPlaceholder values into the builder's
// parameter table. It is implemented as one type switch rather than a
// chain of interface-typed sub-visitors — each case below corresponds to
// one responsibility-chain link in the spec's description, tried in
// order. Shapes with no case of their own fall to the default, which
// renders them through their own String(); a RoleProperty or
// ParamPlaceholder nested inside such a shape is therefore not resolved.
func translateExpr(ctx *Context, e core.Expression) (string, error) {
	switch v := e.(type) {
	case nil:
		return "NULL", nil

	case *RoleProperty:
		return translateRoleProperty(ctx, v)

	case *ParamPlaceholder:
		return translateParam(ctx, v)

	case *CaseWhenExpr:
		when, err := translateExpr(ctx, v.When)
		if err != nil {
			return "", err
		}
		then, err := translateExpr(ctx, v.Then)
		if err != nil {
			return "", err
		}
		els, err := translateExpr(ctx, v.Else)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("CASE WHEN %s THEN %s ELSE %s END", when, then, els), nil

	case *groupKeyExpr:
		if ctx.Scope.GroupByExpression == "" {
			return ctx.Scope.determineContextAlias(), nil
		}
		return ctx.Scope.GroupByExpression, nil

	case *groupCountExpr:
		alias := ctx.Scope.CurrentAlias
		if alias == "" {
			alias = ctx.Scope.determineContextAlias()
		}
		return "count(" + alias + ")", nil

	case *expr.ComparisonExpression:
		return translateComparison(ctx, v)

	case *expr.LogicalExpression:
		left, err := translateExpr(ctx, v.Left())
		if err != nil {
			return "", err
		}
		right, err := translateExpr(ctx, v.Right())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s %s)", left, v.Operator(), right), nil

	case *expr.NotExpression:
		inner, err := translateExpr(ctx, v.Inner())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("NOT (%s)", inner), nil

	case *expr.FunctionExpression:
		args := make([]string, 0, len(v.Arguments))
		for _, a := range v.Arguments {
			s, err := translateExpr(ctx, a)
			if err != nil {
				return "", err
			}
			args = append(args, s)
		}
		return fmt.Sprintf("%s(%s)", v.Name, joinComma(args)), nil

	case *expr.DistinctExpression:
		inner, err := translateExpr(ctx, v.Expression)
		if err != nil {
			return "", err
		}
		return "DISTINCT " + inner, nil

	case *expr.BinaryExpression:
		left, err := translateExpr(ctx, v.Left)
		if err != nil {
			return "", err
		}
		right, err := translateExpr(ctx, v.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s %s)", left, v.Operator, right), nil

	case *expr.AliasExpression:
		inner, err := translateExpr(ctx, v.Expression)
		if err != nil {
			return "", err
		}
		return inner + " AS " + v.Alias, nil

	case *dotExpr:
		subject, err := translateExpr(ctx, v.Subject)
		if err != nil {
			return "", err
		}
		return subject + "." + v.Member, nil

	case *collectionInExpr:
		col, err := translateExpr(ctx, v.Col)
		if err != nil {
			return "", err
		}
		item, err := translateExpr(ctx, v.Item)
		if err != nil {
			return "", err
		}
		return item + " IN " + col, nil

	case *predicateExpr:
		col, err := translateExpr(ctx, v.Col)
		if err != nil {
			return "", err
		}
		pred, err := translateExpr(ctx, v.Pred)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s IN %s WHERE %s)", v.Fn, v.Var, col, pred), nil

	case *expr.OrderByExpression:
		// ORDER BY keys are carried as plain expressions in PendingOrderBys
		// and resolved by finalize in visitor.go; reaching here means an
		// order-by expression leaked into a general position.
		return "", qerrors.NewUnsupportedExpression("order-by expression used outside ORDER BY", exprContext(ctx))

	// Literals and anything else already safe to render as-is (string,
	// integer, float, boolean, null, list, map, raw Cypher, variable
	// references) fall through to their own String(), which never depends
	// on scope state.
	default:
		return e.String(), nil
	}
}

func translateComparison(ctx *Context, c *expr.ComparisonExpression) (string, error) {
	// Null-aware equality: x == nil was already built via Eq(nil) / Gt etc,
	// LiteralFromValue(nil) yields Null(), detectable here.
	if _, isNull := c.Right().(*expr.NullLiteral); isNull {
		switch c.Operator() {
		case string(expr.EQ):
			left, err := translateExpr(ctx, c.Left())
			if err != nil {
				return "", err
			}
			return left + " IS NULL", nil
		case string(expr.NE):
			left, err := translateExpr(ctx, c.Left())
			if err != nil {
				return "", err
			}
			return left + " IS NOT NULL", nil
		}
	}
	left, err := translateExpr(ctx, c.Left())
	if err != nil {
		return "", err
	}
	right, err := translateExpr(ctx, c.Right())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", left, c.Operator(), right), nil
}

func translateRoleProperty(ctx *Context, p *RoleProperty) (string, error) {
	var alias string
	switch p.Role {
	case RoleSource:
		alias = "src"
	case RoleTarget:
		alias = "tgt"
	case RoleRelationship:
		alias = "r"
	case RoleGroupKey:
		if ctx.Scope.GroupByExpression != "" {
			return ctx.Scope.GroupByExpression, nil
		}
		alias = ctx.Scope.determineContextAlias()
	default: // RoleCurrent
		alias = ctx.Scope.determineContextAlias()
	}

	if p.Name == "" {
		return alias, nil
	}
	if len(p.Chain) == 0 {
		return alias + "." + p.Name, nil
	}

	// Nested member access: if the first hop names a complex property
	// loaded via an OPTIONAL MATCH at root-open time (see
	// loadComplexProperties), resolve against the synthesized alias for
	// that relationship instead of dot-joining onto the root alias.
	if propAlias, ok := ctx.Scope.ComplexPropertyAliases[p.Name]; ok {
		return propAlias + "." + joinDot(p.Chain), nil
	}
	return alias + "." + p.Name + "." + joinDot(p.Chain), nil
}

func translateParam(ctx *Context, p *ParamPlaceholder) (string, error) {
	if p.Eval != nil {
		value, err := p.Eval()
		if err != nil {
			return "", qerrors.NewExpressionCompilationFailed("evaluating closure constant failed", exprContext(ctx), err)
		}
		return ctx.Builder.AddParameter(value), nil
	}
	if p.Value == nil {
		return "NULL", nil
	}
	return ctx.Builder.AddParameter(p.Value), nil
}

func exprContext(ctx *Context) string {
	root := "<unknown>"
	if ctx.Scope.RootType != nil {
		root = ctx.Scope.RootType.Name()
	}
	return fmt.Sprintf("alias=%s, root=%s", ctx.Scope.CurrentAlias, root)
}

func joinComma(parts []string) string {
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += ", "
		}
		s += p
	}
	return s
}
