package query

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/nivohavi/graphquery/pkg/cypher/core"
	"github.com/nivohavi/graphquery/pkg/cypher/expr"
	"github.com/nivohavi/graphquery/pkg/query/graphio"
	"github.com/nivohavi/graphquery/pkg/query/qerrors"
)

// terminalAction records which terminal operator closed a chain, so its
// RETURN/LIMIT shape can be assembled once every scope flag the chain set
// is final (see finalize).
type terminalAction int

const (
	terminalList terminalAction = iota
	terminalFirst
	terminalFirstOrDefault
	terminalSingle
	terminalSingleOrDefault
	terminalLast
	terminalLastOrDefault
	terminalAny
	terminalAnyPred
	terminalAllPred
	terminalCount
	terminalCountPred
	terminalElementAt
	terminalSum
	terminalAverage
	terminalMin
	terminalMax
	terminalContains
)

// pendingTraversal is the not-yet-rendered MATCH pattern for a traverse()
// chain: direction and depth may still arrive (in_direction/with_depth are
// themselves just more operator nodes further out in the chain), so the
// pattern text is only assembled in finalize, once the whole tree has been
// walked and scope.TraversalDirection/TraversalMinDepth/MaxDepth are final.
type pendingTraversal struct {
	SourceAlias string
	SourceType  reflect.Type
	RelType     reflect.Type
	TargetAlias string
	TargetType  reflect.Type
	RelAlias    string
}

// visitorState is the scratch space threaded through one tree walk, held
// alongside Context. It is not part of Context itself because none of it
// survives past compilation (unlike Scope/Builder, which a handler may
// legitimately want to inspect).
type visitorState struct {
	ctx *Context

	pendingTraversal *pendingTraversal
	needsRelAlias    bool

	terminal     terminalAction
	terminalPred core.Expression
	terminalArg  int
}

// CompileQuery walks tree in post-order (source sub-tree before the
// operator it feeds), dispatching on operator kind — the tree-walking
// counterpart to translateExpr's expression-level type switch — then
// resolves every deferred WHERE/RETURN/ORDER BY against the final scope
// and builds the statement.
func CompileQuery(tree *operatorNode, factory graphio.EntityFactory, labels graphio.Labels) (*CypherQuery, error) {
	ctx := NewContext(factory, labels)
	vs := &visitorState{ctx: ctx}

	if err := walk(vs, tree); err != nil {
		return nil, err
	}
	return finalize(vs)
}

func walk(vs *visitorState, n *operatorNode) error {
	if n.Source != nil {
		if err := walk(vs, n.Source); err != nil {
			return err
		}
	}
	return dispatch(vs, n)
}

func dispatch(vs *visitorState, n *operatorNode) error {
	ctx := vs.ctx
	switch n.Kind {

	case OpRootNode:
		alias := ctx.Scope.AliasFor(n.RootType, "n")
		ctx.Scope.RootType = n.RootType
		ctx.Scope.CurrentAlias = alias
		ctx.Scope.RootIsRelationship = false
		label := ctx.Labels.LabelOfType(n.RootType)
		ctx.Builder.AddMatch(fmt.Sprintf("(%s:%s)", alias, label), false)
		ctx.Builder.SetReturn(ReturnItem{Expr: alias})
		ctx.ResultShape = ResultShape{ResultType: n.RootType, QueryRootKind: RootNode}
		loadComplexProperties(ctx, alias, n.RootType)
		return nil

	case OpRootRelationship:
		alias := ctx.Scope.AliasFor(n.RootType, "r")
		ctx.Scope.RootType = n.RootType
		ctx.Scope.CurrentAlias = alias
		ctx.Scope.RootIsRelationship = true
		relType := ctx.Labels.LabelOfType(n.RootType)
		ctx.Builder.AddMatch(fmt.Sprintf("()-[%s:%s]->()", alias, relType), false)
		ctx.Builder.SetReturn(ReturnItem{Expr: alias})
		ctx.Builder.IsRelationshipQuery = true
		ctx.ResultShape = ResultShape{ResultType: n.RootType, QueryRootKind: RootRelationship}
		return nil

	case OpWhere:
		for _, e := range n.Exprs {
			ctx.Builder.AddPendingWhere(e, ctx.Scope.RootIsRelationship)
		}
		return nil

	case OpOrderBy:
		ctx.PendingOrderBys = append(ctx.PendingOrderBys, PendingOrderBy{Expr: n.Exprs[0], Desc: false})
		return nil
	case OpOrderByDesc:
		ctx.PendingOrderBys = append(ctx.PendingOrderBys, PendingOrderBy{Expr: n.Exprs[0], Desc: true})
		return nil
	case OpThenBy:
		ctx.PendingOrderBys = append(ctx.PendingOrderBys, PendingOrderBy{Expr: n.Exprs[0], Desc: false})
		return nil
	case OpThenByDesc:
		ctx.PendingOrderBys = append(ctx.PendingOrderBys, PendingOrderBy{Expr: n.Exprs[0], Desc: true})
		return nil

	case OpTake:
		ctx.Builder.SetLimit(n.Args[0].(int))
		return nil
	case OpSkip:
		ctx.Builder.SetSkip(n.Args[0].(int))
		return nil
	case OpDistinct:
		ctx.Builder.Distinct = true
		return nil
	case OpWithTransaction:
		ctx.Transaction = n.Transaction
		return nil

	case OpSelect:
		ctx.Builder.HasUserProjections = true
		ctx.Scope.HasUserProjections = true
		ctx.ResultShape.IsProjection = true
		if n.Projection != nil {
			ctx.PendingReturns = nil
			for _, m := range n.Projection.Members {
				ctx.PendingReturns = append(ctx.PendingReturns, PendingReturn{Expr: m.Expr, Alias: m.Alias})
			}
		} else if len(n.Exprs) == 1 {
			ctx.PendingReturns = []PendingReturn{{Expr: n.Exprs[0]}}
		}
		return nil

	case OpGroupBy:
		key, err := translateExpr(ctx, n.Exprs[0])
		if err != nil {
			return err
		}
		ctx.Scope.GroupByExpression = key
		return nil

	case OpTraverse:
		prevAlias := ctx.Scope.CurrentAlias
		targetAlias := ctx.Scope.NewAlias("n")
		vs.pendingTraversal = &pendingTraversal{
			SourceAlias: prevAlias,
			SourceType:  ctx.Scope.RootType,
			RelType:     n.RelType,
			TargetAlias: targetAlias,
			TargetType:  n.TargetType,
			RelAlias:    "r",
		}
		ctx.Scope.CurrentAlias = targetAlias
		return nil

	case OpInDirection:
		return ctx.Scope.SetDirection(n.Args[0].(TraversalDirection))
	case OpWithDepth:
		return ctx.Scope.SetDepth(n.Args[0].(int), n.Args[1].(int))

	case OpRelationships:
		vs.needsRelAlias = true
		ctx.PendingReturns = nil
		return nil

	case OpPathSegments:
		ctx.Builder.ClearMatches()
		srcLabel := ctx.Labels.LabelOfType(n.Source.RootType)
		relTypeName := ctx.Labels.LabelOfType(n.RelType)
		tgtLabel := ctx.Labels.LabelOfType(n.TargetType)
		pattern := fmt.Sprintf("(src:%s)-[r:%s]->(tgt:%s)", srcLabel, relTypeName, tgtLabel)
		ctx.Builder.AddMatch(pattern, false)
		ctx.Scope.IsPathSegmentContext = true
		ctx.Scope.RootIsRelationship = false
		ctx.Builder.SetReturn(
			ReturnItem{Expr: "src"},
			ReturnItem{Expr: "r"},
			ReturnItem{Expr: "tgt"},
		)
		return nil

	case OpToList, OpToArray:
		vs.terminal = terminalList
		return nil
	case OpFirst:
		vs.terminal = terminalFirst
		return nil
	case OpFirstOrDefault:
		vs.terminal = terminalFirstOrDefault
		return nil
	case OpSingle:
		vs.terminal = terminalSingle
		return nil
	case OpSingleOrDefault:
		vs.terminal = terminalSingleOrDefault
		return nil
	case OpLast:
		vs.terminal = terminalLast
		return nil
	case OpLastOrDefault:
		vs.terminal = terminalLastOrDefault
		return nil
	case OpAny:
		vs.terminal = terminalAny
		return nil
	case OpAnyPred:
		vs.terminal = terminalAnyPred
		vs.terminalPred = n.Exprs[0]
		return nil
	case OpAllPred:
		vs.terminal = terminalAllPred
		vs.terminalPred = n.Exprs[0]
		return nil
	case OpCount:
		vs.terminal = terminalCount
		return nil
	case OpCountPred:
		vs.terminal = terminalCountPred
		vs.terminalPred = n.Exprs[0]
		return nil
	case OpElementAt:
		vs.terminal = terminalElementAt
		vs.terminalArg = n.Args[0].(int)
		return nil
	case OpSum:
		vs.terminal = terminalSum
		vs.terminalPred = n.Exprs[0]
		return nil
	case OpAverage:
		vs.terminal = terminalAverage
		vs.terminalPred = n.Exprs[0]
		return nil
	case OpMin:
		vs.terminal = terminalMin
		vs.terminalPred = n.Exprs[0]
		return nil
	case OpMax:
		vs.terminal = terminalMax
		vs.terminalPred = n.Exprs[0]
		return nil
	case OpContains:
		vs.terminal = terminalContains
		vs.terminalPred = n.Exprs[0]
		return nil

	case OpSelectMany, OpJoin, OpGroupJoin, OpUnion, OpConcat, OpWithOptions, OpThenTraverse, OpTo:
		return qerrors.NewUnsupportedOperator(fmt.Sprintf("kind(%d)", n.Kind), exprContext(ctx))

	default:
		return qerrors.NewUnsupportedOperator(fmt.Sprintf("kind(%d) [unrecognized]", n.Kind), exprContext(ctx))
	}
}

// loadComplexProperties implements spec's root-queryable handler row: if T
// is a node type and its schema declares complex properties (properties
// backed by a relationship to another node rather than a native Cypher
// value), emit one OPTIONAL MATCH per property and register the
// synthesized alias so translateRoleProperty's nested-member-access case
// can resolve n.Employer.Name against it instead of dot-joining onto the
// root alias. Property names are sorted before iterating so the emitted
// OPTIONAL MATCH order is deterministic across runs (map iteration order
// is not), matching spec's "translating the same tree twice yields
// identical Cypher" invariant.
func loadComplexProperties(ctx *Context, alias string, rootType reflect.Type) {
	schema, ok := ctx.Factory.Schema(rootType)
	if !ok || !schema.HasComplexProperties() {
		return
	}
	ctx.Builder.NeedsComplexPropertyLoad = true

	names := make([]string, 0, len(schema.ComplexProperties))
	for name := range schema.ComplexProperties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prop := schema.ComplexProperties[name]
		propAlias := ctx.Scope.NewAlias(alias + "_" + name)
		relType := ctx.Labels.RelationshipTypeFromPropertyName(name)
		targetLabel := ctx.Labels.LabelOfType(prop.TargetType)
		pattern := fmt.Sprintf("(%s)-[:%s]->(%s:%s)", alias, relType, propAlias, targetLabel)
		ctx.Builder.AddMatch(pattern, true)
		ctx.Scope.ComplexPropertyAliases[name] = propAlias
	}
}

// finalize materializes any pending traversal pattern, resolves every
// deferred WHERE/RETURN/ORDER BY against the now-final scope, applies the
// terminal operator's RETURN/LIMIT shape, and builds the statement.
func finalize(vs *visitorState) (*CypherQuery, error) {
	ctx := vs.ctx

	if vs.pendingTraversal != nil {
		if err := materializeTraversal(vs); err != nil {
			return nil, err
		}
	}

	for i, w := range ctx.Builder.Wheres {
		text, err := translateExpr(ctx, w.Expr)
		if err != nil {
			return nil, err
		}
		ctx.Builder.Wheres[i].Expr = expr.RawCypher(text)
	}

	if len(ctx.PendingReturns) > 0 {
		items := make([]ReturnItem, 0, len(ctx.PendingReturns))
		for _, r := range ctx.PendingReturns {
			text, err := translateExpr(ctx, r.Expr)
			if err != nil {
				return nil, err
			}
			items = append(items, ReturnItem{Expr: text, Alias: r.Alias})
		}
		ctx.Builder.SetReturn(items...)
	}

	for _, o := range ctx.PendingOrderBys {
		text, err := translateExpr(ctx, o.Expr)
		if err != nil {
			return nil, err
		}
		ctx.Builder.AddOrderBy(text, o.Desc)
	}

	if err := applyTerminal(vs); err != nil {
		return nil, err
	}

	return ctx.Builder.Build(ctx.ResultShape)
}

func materializeTraversal(vs *visitorState) error {
	ctx := vs.ctx
	t := vs.pendingTraversal

	direction := ctx.Scope.TraversalDirection
	if direction == DirectionUnset {
		direction = DirectionOutgoing
	}

	depth := ""
	if ctx.Scope.TraversalDepthSet {
		depth = fmt.Sprintf("*%d..%d", ctx.Scope.TraversalMinDepth, ctx.Scope.TraversalMaxDepth)
	}

	relTypeName := ctx.Labels.LabelOfType(t.RelType)
	relPart := ":" + relTypeName
	if vs.needsRelAlias {
		relPart = t.RelAlias + ":" + relTypeName
	}

	srcLabel := ctx.Labels.LabelOfType(t.SourceType)
	tgtLabel := ctx.Labels.LabelOfType(t.TargetType)

	var pattern string
	switch direction {
	case DirectionIncoming:
		pattern = fmt.Sprintf("(%s:%s)<-[%s%s]-(%s:%s)", t.SourceAlias, srcLabel, relPart, depth, t.TargetAlias, tgtLabel)
	case DirectionBoth:
		pattern = fmt.Sprintf("(%s:%s)-[%s%s]-(%s:%s)", t.SourceAlias, srcLabel, relPart, depth, t.TargetAlias, tgtLabel)
	default:
		pattern = fmt.Sprintf("(%s:%s)-[%s%s]->(%s:%s)", t.SourceAlias, srcLabel, relPart, depth, t.TargetAlias, tgtLabel)
	}

	ctx.Builder.ClearMatches()
	ctx.Builder.AddMatch(pattern, false)

	if vs.needsRelAlias {
		ctx.Builder.SetReturn(ReturnItem{Expr: t.RelAlias})
		ctx.ResultShape.ResultType = t.RelType
	} else {
		ctx.Builder.SetReturn(ReturnItem{Expr: t.TargetAlias})
		ctx.ResultShape.ResultType = t.TargetType
	}
	return nil
}

func applyTerminal(vs *visitorState) error {
	ctx := vs.ctx
	alias := ctx.Scope.CurrentAlias

	switch vs.terminal {
	case terminalList:
		return nil

	case terminalFirst, terminalFirstOrDefault:
		ctx.Builder.SetLimit(1)
		return nil

	case terminalSingle, terminalSingleOrDefault:
		// Two rows are fetched so the caller can detect more than one match.
		ctx.Builder.SetLimit(2)
		return nil

	case terminalLast, terminalLastOrDefault:
		if len(ctx.Builder.OrderBy) == 0 {
			ctx.Builder.AddOrderBy(fmt.Sprintf("id(%s)", alias), true)
		} else {
			ctx.Builder.ReverseOrderBy()
		}
		ctx.Builder.SetLimit(1)
		return nil

	case terminalElementAt:
		ctx.Builder.SetSkip(vs.terminalArg)
		ctx.Builder.SetLimit(1)
		return nil

	case terminalAny:
		ctx.ResultShape.IsScalar = true
		ctx.Builder.IsExistsQuery = true
		ctx.Builder.SetReturn(ReturnItem{Expr: fmt.Sprintf("COUNT(%s) > 0", alias), Alias: "result"})
		ctx.Builder.SetLimit(1)
		return nil

	case terminalAnyPred:
		pred, err := translateExpr(ctx, vs.terminalPred)
		if err != nil {
			return err
		}
		ctx.ResultShape.IsScalar = true
		ctx.Builder.IsExistsQuery = true
		ctx.Builder.SetReturn(ReturnItem{
			Expr:  fmt.Sprintf("COUNT(CASE WHEN %s THEN %s END) > 0", pred, alias),
			Alias: "result",
		})
		ctx.Builder.SetLimit(1)
		return nil

	case terminalAllPred:
		pred, err := translateExpr(ctx, vs.terminalPred)
		if err != nil {
			return err
		}
		ctx.ResultShape.IsScalar = true
		ctx.Builder.IsExistsQuery = true
		ctx.Builder.SetReturn(ReturnItem{
			Expr:  fmt.Sprintf("COUNT(CASE WHEN NOT (%s) THEN %s END) = 0", pred, alias),
			Alias: "result",
		})
		ctx.Builder.SetLimit(1)
		return nil

	case terminalCount:
		ctx.ResultShape.IsScalar = true
		ctx.Builder.NeedsComplexPropertyLoad = false
		ctx.Builder.SetReturn(ReturnItem{Expr: fmt.Sprintf("count(%s)", alias), Alias: "result"})
		return nil

	case terminalCountPred:
		pred, err := translateExpr(ctx, vs.terminalPred)
		if err != nil {
			return err
		}
		ctx.ResultShape.IsScalar = true
		ctx.Builder.NeedsComplexPropertyLoad = false
		ctx.Builder.SetReturn(ReturnItem{
			Expr:  fmt.Sprintf("count(CASE WHEN %s THEN %s END)", pred, alias),
			Alias: "result",
		})
		return nil

	case terminalSum:
		sel, err := translateExpr(ctx, vs.terminalPred)
		if err != nil {
			return err
		}
		ctx.ResultShape.IsScalar = true
		ctx.Builder.SetReturn(ReturnItem{Expr: fmt.Sprintf("SUM(%s)", sel), Alias: "result"})
		return nil

	case terminalAverage:
		sel, err := translateExpr(ctx, vs.terminalPred)
		if err != nil {
			return err
		}
		ctx.ResultShape.IsScalar = true
		ctx.Builder.SetReturn(ReturnItem{Expr: fmt.Sprintf("AVG(toFloat(%s))", sel), Alias: "result"})
		return nil

	case terminalMin:
		sel, err := translateExpr(ctx, vs.terminalPred)
		if err != nil {
			return err
		}
		ctx.ResultShape.IsScalar = true
		ctx.Builder.SetReturn(ReturnItem{Expr: fmt.Sprintf("MIN(%s)", sel), Alias: "result"})
		return nil

	case terminalMax:
		sel, err := translateExpr(ctx, vs.terminalPred)
		if err != nil {
			return err
		}
		ctx.ResultShape.IsScalar = true
		ctx.Builder.SetReturn(ReturnItem{Expr: fmt.Sprintf("MAX(%s)", sel), Alias: "result"})
		return nil

	case terminalContains:
		item, err := translateExpr(ctx, vs.terminalPred)
		if err != nil {
			return err
		}
		ctx.ResultShape.IsScalar = true
		ctx.Builder.IsExistsQuery = true
		ctx.Builder.SetReturn(ReturnItem{
			Expr:  fmt.Sprintf("COUNT(CASE WHEN %s = %s THEN %s END) > 0", alias, item, alias),
			Alias: "result",
		})
		return nil
	}
	return nil
}
