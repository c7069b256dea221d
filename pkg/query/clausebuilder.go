package query

import (
	"fmt"
	"strings"

	"github.com/nivohavi/graphquery/pkg/cypher/core"
)

// MatchClause is one MATCH/OPTIONAL MATCH pattern accumulated while
// walking the operator tree.
type MatchClause struct {
	Pattern  string
	Optional bool
}

// ReturnItem is one `expr [AS alias]` entry in the final RETURN clause.
type ReturnItem struct {
	Expr  string
	Alias string
}

// OrderByItem is one ORDER BY entry.
type OrderByItem struct {
	Expr string
	Desc bool
}

// PendingPredicate is a WHERE-shaped conjunct whose alias resolution is
// deferred until the whole tree has been walked, so a later select()/
// path_segments() can still influence which alias a plain property access
// binds to (see Scope.determineContextAlias).
type PendingPredicate struct {
	Expr               core.Expression
	RootIsRelationship bool
}

// CypherQueryBuilder is the single mutable statement under construction,
// owned exclusively by the terminal operator that triggers execution (per
// spec §9: "one owning handle held by the terminal operator; handlers
// receive a mutable borrow; no reentrancy"). It replaces the teacher's
// immutable prev-chain builder (pkg/cypher/builder/match.go) because this
// translator needs to clear/rewrite MATCHes (path_segments) and defer
// WHERE resolution, neither of which fit an append-only rebuild-on-Build
// design.
type CypherQueryBuilder struct {
	Matches []MatchClause
	Wheres  []PendingPredicate
	With    []string
	Returns []ReturnItem
	OrderBy []OrderByItem
	Skip    *int
	Limit   *int

	Distinct                  bool
	HasReturnClause           bool
	HasAppliedRootWhere       bool
	HasUserProjections        bool
	NeedsComplexPropertyLoad  bool
	IsExistsQuery             bool
	IsNotExistsQuery          bool
	IsRelationshipQuery       bool

	PathSegmentSourceAlias       string
	PathSegmentRelationshipAlias string
	PathSegmentTargetAlias       string
	PathSegmentProjection        PathSegmentProjection

	Parameters *ParamTable

	finalized bool
}

// NewCypherQueryBuilder creates an empty builder.
func NewCypherQueryBuilder() *CypherQueryBuilder {
	return &CypherQueryBuilder{Parameters: NewParamTable()}
}

// AddMatch appends a MATCH (or OPTIONAL MATCH) pattern.
func (b *CypherQueryBuilder) AddMatch(pattern string, optional bool) {
	b.Matches = append(b.Matches, MatchClause{Pattern: pattern, Optional: optional})
}

// ClearMatches drops every MATCH accumulated so far. Used by
// path_segments(), which installs a single traversal pattern in place of
// whatever root MATCH preceded it (spec's own Open Questions flags this as
// an aggressive, predicate-losing rewrite — carried forward unchanged).
func (b *CypherQueryBuilder) ClearMatches() {
	b.Matches = nil
}

// AddPendingWhere records a predicate to be alias-resolved at Build time.
func (b *CypherQueryBuilder) AddPendingWhere(e core.Expression, rootIsRelationship bool) {
	b.Wheres = append(b.Wheres, PendingPredicate{Expr: e, RootIsRelationship: rootIsRelationship})
	b.HasAppliedRootWhere = true
}

// SetReturn replaces the RETURN item list.
func (b *CypherQueryBuilder) SetReturn(items ...ReturnItem) {
	b.Returns = items
	b.HasReturnClause = len(items) > 0
}

// AddReturn appends one RETURN item.
func (b *CypherQueryBuilder) AddReturn(item ReturnItem) {
	b.Returns = append(b.Returns, item)
	b.HasReturnClause = true
}

// AddOrderBy appends one ORDER BY item.
func (b *CypherQueryBuilder) AddOrderBy(expr string, desc bool) {
	b.OrderBy = append(b.OrderBy, OrderByItem{Expr: expr, Desc: desc})
}

// ReverseOrderBy flips every ORDER BY item's direction (used by last()).
func (b *CypherQueryBuilder) ReverseOrderBy() {
	for i := range b.OrderBy {
		b.OrderBy[i].Desc = !b.OrderBy[i].Desc
	}
}

// SetSkip sets SKIP = n.
func (b *CypherQueryBuilder) SetSkip(n int) { v := n; b.Skip = &v }

// SetLimit sets LIMIT = n.
func (b *CypherQueryBuilder) SetLimit(n int) { v := n; b.Limit = &v }

// AddParameter registers value and returns its placeholder.
func (b *CypherQueryBuilder) AddParameter(value any) string {
	return b.Parameters.Add(value)
}

// CypherQuery is the translator's output: a complete statement plus the
// hints the (external) materialization layer needs.
type CypherQuery struct {
	Text                  string
	Parameters            map[string]any
	ResultShape           ResultShape
	PathSegmentProjection PathSegmentProjection
}

// Cypher implements graphio.CompiledQuery.
func (q *CypherQuery) Cypher() string { return q.Text }

// Params implements graphio.CompiledQuery.
func (q *CypherQuery) Params() map[string]any { return q.Parameters }

// Build assembles the final Cypher text. Every WHERE conjunct must
// already have been resolved (see finalize in visitor.go)
// before Build runs; once it returns, the builder is read-only (spec's
// Finalized state).
func (b *CypherQueryBuilder) Build(shape ResultShape) (*CypherQuery, error) {
	if b.finalized {
		return nil, fmt.Errorf("query builder already finalized")
	}
	if len(b.Matches) == 0 {
		return nil, fmt.Errorf("invalid query: no root alias introduced")
	}
	if b.HasReturnClause && len(b.Returns) == 0 {
		return nil, fmt.Errorf("invalid query: has_return_clause set with no RETURN items")
	}

	var parts []string
	for _, m := range b.Matches {
		if m.Optional {
			parts = append(parts, "OPTIONAL MATCH "+m.Pattern)
		} else {
			parts = append(parts, "MATCH "+m.Pattern)
		}
	}

	if len(b.Wheres) > 0 {
		conjuncts := make([]string, 0, len(b.Wheres))
		for _, w := range b.Wheres {
			conjuncts = append(conjuncts, w.Expr.String())
		}
		parts = append(parts, "WHERE "+strings.Join(conjuncts, " AND "))
	}

	if len(b.With) > 0 {
		parts = append(parts, "WITH "+strings.Join(b.With, ", "))
	}

	if len(b.Returns) > 0 {
		items := make([]string, 0, len(b.Returns))
		for i, r := range b.Returns {
			text := r.Expr
			if b.Distinct && i == 0 && len(b.Returns) == 1 {
				text = "DISTINCT " + text
			}
			if r.Alias != "" {
				text = text + " AS " + r.Alias
			}
			items = append(items, text)
		}
		parts = append(parts, "RETURN "+strings.Join(items, ", "))
	}

	if len(b.OrderBy) > 0 {
		items := make([]string, 0, len(b.OrderBy))
		for _, o := range b.OrderBy {
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			items = append(items, o.Expr+" "+dir)
		}
		parts = append(parts, "ORDER BY "+strings.Join(items, ", "))
	}

	if b.Skip != nil {
		parts = append(parts, fmt.Sprintf("SKIP %d", *b.Skip))
	}
	if b.Limit != nil {
		parts = append(parts, fmt.Sprintf("LIMIT %d", *b.Limit))
	}

	b.finalized = true

	return &CypherQuery{
		Text:                  strings.Join(parts, " "),
		Parameters:            b.Parameters.Values(),
		ResultShape:           shape,
		PathSegmentProjection: b.PathSegmentProjection,
	}, nil
}
