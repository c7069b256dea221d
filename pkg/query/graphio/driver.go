package graphio

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
)

// Driver, Session, Transaction and Result are the real neo4j-go-driver
// types the execution path runs against. pkg/query never talks to the
// driver directly — every terminal operator receives these through a
// QueryContext and calls them only by way of the helpers below, keeping
// the translator itself free of driver I/O.
type (
	Driver      = neo4j.Driver
	Session     = neo4j.Session
	Transaction = neo4j.Transaction
	Result      = neo4j.Result
)

// CompiledQuery is the minimal shape the execution helpers need from a
// translated query: Cypher text plus its parameter table.
type CompiledQuery interface {
	Cypher() string
	Params() map[string]any
}

// OpenReadTransaction opens a disposable read-only transaction against the
// driver. Used by the transaction-extraction policy (see transaction.go)
// when an operator tree references no transaction of its own.
func OpenReadTransaction(driver Driver) (Session, Transaction, error) {
	session := driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	tx, err := session.BeginTransaction()
	if err != nil {
		session.Close()
		return nil, nil, err
	}
	return session, tx, nil
}

// Run executes a compiled query against an already-open transaction and
// returns the raw driver result. Result materialization into typed
// entities is out of scope; callers decode rows themselves or via an
// external materializer.
func Run(ctx context.Context, tx Transaction, q CompiledQuery) (Result, error) {
	return tx.Run(q.Cypher(), q.Params())
}

// Dispose closes a transaction/session pair this package opened. It is a
// no-op for transactions the caller supplied (owned=false), matching the
// failure-atomicity rule that only context-owned resources are disposed.
func Dispose(session Session, tx Transaction, owned bool, commit bool) error {
	if !owned || tx == nil {
		return nil
	}
	var err error
	if commit {
		err = tx.Commit()
	} else {
		err = tx.Rollback()
	}
	if session != nil {
		if closeErr := session.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
