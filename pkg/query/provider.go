package query

import (
	"context"
	"fmt"
	"reflect"

	"github.com/nivohavi/graphquery/pkg/query/graphio"
)

// Executor runs an already-compiled query against an already-resolved
// transaction. It is the only way pkg/query touches the driver, and the
// default implementation (driverExecutor) does nothing but call
// graphio.Run — kept as an interface so a test can substitute a fake
// driver result without standing up Neo4j.
type Executor interface {
	Execute(ctx context.Context, tx graphio.Transaction, q *CypherQuery) (graphio.Result, error)
}

// Materializer turns a raw driver result into the Go-typed value(s) a
// terminal operator promised its caller. Decoding driver records into
// entities is schema-dependent domain logic the translator never
// performs itself — it is reached only through this interface, supplied
// by the caller alongside the EntityFactory/Labels pair.
type Materializer interface {
	Materialize(result graphio.Result, shape ResultShape, target reflect.Type) (any, error)
}

type driverExecutor struct{}

func (driverExecutor) Execute(ctx context.Context, tx graphio.Transaction, q *CypherQuery) (graphio.Result, error) {
	return graphio.Run(ctx, tx, q)
}

// QueryProvider bundles the two read-only schema collaborators a
// compilation pass needs.
type QueryProvider struct {
	Factory graphio.EntityFactory
	Labels  graphio.Labels
}

// Compile translates tree into a statement, resolving every deferred alias
// and parameter against a fresh scope.
func (p *QueryProvider) Compile(tree *operatorNode) (*CypherQuery, error) {
	return CompileQuery(tree, p.Factory, p.Labels)
}

// Session is the single owning handle a terminal operator executes
// through: it compiles the tree, resolves the transaction policy, runs
// the statement, and hands the raw result to the materializer.
type Session struct {
	Ctx          context.Context
	Provider     *QueryProvider
	Executor     Executor
	Materializer Materializer
	Driver       graphio.Driver
}

// NewSession builds a Session with the default graphio-backed executor.
func NewSession(ctx context.Context, driver graphio.Driver, provider *QueryProvider, materializer Materializer) *Session {
	return &Session{
		Ctx:          ctx,
		Provider:     provider,
		Executor:     driverExecutor{},
		Materializer: materializer,
		Driver:       driver,
	}
}

func (s *Session) run(tree *operatorNode) (graphio.Result, *CypherQuery, error) {
	q, err := s.Provider.Compile(tree)
	if err != nil {
		return nil, nil, err
	}
	session, tx, owned, err := resolveTransaction(tree, s.Driver)
	if err != nil {
		return nil, nil, err
	}
	result, execErr := s.Executor.Execute(s.Ctx, tx, q)
	disposeErr := graphio.Dispose(session, tx, owned, execErr == nil)
	if execErr != nil {
		return nil, q, execErr
	}
	if disposeErr != nil {
		return nil, q, disposeErr
	}
	return result, q, nil
}

func executeList[T any](s *Session, tree *operatorNode) ([]T, error) {
	var zero T
	result, q, err := s.run(tree)
	if err != nil {
		return nil, err
	}
	materialized, err := s.Materializer.Materialize(result, q.ResultShape, reflect.TypeOf(zero))
	if err != nil {
		return nil, err
	}
	list, ok := materialized.([]T)
	if !ok {
		return nil, fmt.Errorf("materializer returned %T, want []%s", materialized, reflect.TypeOf(zero))
	}
	return list, nil
}

func executeScalar[T any](s *Session, tree *operatorNode) (T, error) {
	var zero T
	result, q, err := s.run(tree)
	if err != nil {
		return zero, err
	}
	materialized, err := s.Materializer.Materialize(result, q.ResultShape, reflect.TypeOf(zero))
	if err != nil {
		return zero, err
	}
	v, ok := materialized.(T)
	if !ok {
		return zero, fmt.Errorf("materializer returned %T, want %s", materialized, reflect.TypeOf(zero))
	}
	return v, nil
}

func executeBool(s *Session, tree *operatorNode) (bool, error) {
	return executeScalar[bool](s, tree)
}

func executeCount(s *Session, tree *operatorNode) (int64, error) {
	return executeScalar[int64](s, tree)
}
