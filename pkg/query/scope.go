package query

import (
	"fmt"
	"reflect"
)

// TraversalDirection is the direction a traverse()/path pattern walks.
type TraversalDirection int

const (
	// DirectionUnset means in_direction has not been called yet.
	DirectionUnset TraversalDirection = iota
	// DirectionOutgoing renders (a)-[:R]->(b).
	DirectionOutgoing
	// DirectionIncoming renders (a)<-[:R]-(b).
	DirectionIncoming
	// DirectionBoth renders (a)-[:R]-(b).
	DirectionBoth
)

// PathSegmentProjection names which leg of a path segment a user
// projection is rooted at.
type PathSegmentProjection int

const (
	// ProjectionNone means no path-segment projection has been chosen yet.
	ProjectionNone PathSegmentProjection = iota
	ProjectionStartNode
	ProjectionEndNode
	ProjectionRelationship
)

// TraversalInfo records a pending traverse<Rel,Tgt>() call, finalized into
// a concrete pattern only once the terminal operator fires (depth and
// direction may still be set after traverse() itself runs).
type TraversalInfo struct {
	RelType    reflect.Type
	TargetType reflect.Type
}

// Scope is the alias/type environment threaded through one query
// execution. Alias assignment is stable per (type, scope): the same type
// accessed twice in one query resolves to the same alias.
type Scope struct {
	CurrentAlias string
	RootType     reflect.Type

	aliases      map[reflect.Type]string
	aliasSerials map[string]int  // base alias -> next numeric suffix (2, 3, ...)
	usedAliases  map[string]bool // every alias handed out so far, type-cached or not

	IsPathSegmentContext  bool
	HasUserProjections    bool
	RootIsRelationship    bool
	PathSegmentProjection PathSegmentProjection

	Traversal          *TraversalInfo
	TraversalMinDepth  int
	TraversalMaxDepth  int
	TraversalDepthSet  bool
	TraversalDirection TraversalDirection
	directionSetOnce   bool

	GroupByExpression string

	// ComplexPropertyAliases maps a root node's complex property name to
	// the alias of the OPTIONAL MATCH-ed node it loads through, so a
	// nested member access (n.Employer.Name) resolves against the loaded
	// node's alias instead of dot-joining onto the root alias.
	ComplexPropertyAliases map[string]string
}

// NewScope creates an empty scope for a fresh query execution.
func NewScope() *Scope {
	return &Scope{
		aliases:                make(map[reflect.Type]string),
		aliasSerials:           make(map[string]int),
		usedAliases:            make(map[string]bool),
		ComplexPropertyAliases: make(map[string]string),
	}
}

// AliasFor returns the canonical alias for t, assigning one on first use
// with the given preferred base name ("n", "r", "src", "tgt", ...). A
// second distinct occurrence of the SAME type (e.g. a self-traversal,
// Person -> KNOWS -> Person) must still get its own alias, so this only
// caches the FIRST assignment per type; every later slot for that type
// goes through NewAlias instead.
func (s *Scope) AliasFor(t reflect.Type, base string) string {
	if alias, ok := s.aliases[t]; ok {
		return alias
	}
	alias := s.NewAlias(base)
	s.aliases[t] = alias
	return alias
}

// NewAlias always allocates a fresh alias, appending "2", "3", ... on
// collision with any alias already handed out (by AliasFor or NewAlias).
func (s *Scope) NewAlias(base string) string {
	if !s.aliasInUse(base) {
		s.usedAliases[base] = true
		return base
	}
	for {
		n := s.aliasSerials[base] + 2
		candidate := fmt.Sprintf("%s%d", base, n)
		s.aliasSerials[base] = n
		if !s.aliasInUse(candidate) {
			s.usedAliases[candidate] = true
			return candidate
		}
	}
}

func (s *Scope) aliasInUse(alias string) bool {
	return s.usedAliases[alias]
}

// SetDirection records in_direction(), rejecting a second call per the
// "at most one in_direction per traversal chain" invariant.
func (s *Scope) SetDirection(d TraversalDirection) error {
	if s.directionSetOnce {
		return fmt.Errorf("in_direction already set on this traversal")
	}
	s.TraversalDirection = d
	s.directionSetOnce = true
	return nil
}

// SetDepth records with_depth(min, max), rejecting non-positive or
// inverted ranges.
func (s *Scope) SetDepth(min, max int) error {
	if min <= 0 || max <= 0 {
		return fmt.Errorf("with_depth requires positive bounds, got (%d, %d)", min, max)
	}
	if min > max {
		return fmt.Errorf("with_depth min (%d) > max (%d)", min, max)
	}
	s.TraversalMinDepth = min
	s.TraversalMaxDepth = max
	s.TraversalDepthSet = true
	return nil
}

// determineContextAlias implements spec §4.2.1: given the current scope
// state and (for path-segment contexts) which leg a projection targets, it
// resolves the alias a predicate/projection should be rendered against.
func (s *Scope) determineContextAlias() string {
	if s.IsPathSegmentContext && s.HasUserProjections {
		if s.RootIsRelationship {
			return "r"
		}
		switch s.PathSegmentProjection {
		case ProjectionStartNode:
			return "src"
		case ProjectionEndNode:
			return "tgt"
		case ProjectionRelationship:
			return "r"
		default:
			return "src"
		}
	}
	if s.IsPathSegmentContext {
		if s.CurrentAlias != "" {
			return s.CurrentAlias
		}
		return "src"
	}
	if s.HasUserProjections && s.RootIsRelationship {
		return "r"
	}
	if s.CurrentAlias != "" {
		return s.CurrentAlias
	}
	return "src"
}
