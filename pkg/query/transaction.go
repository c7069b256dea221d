package query

import (
	"fmt"

	"github.com/nivohavi/graphquery/pkg/query/graphio"
	"github.com/nivohavi/graphquery/pkg/query/qerrors"
)

// collectTransactions walks the whole operator tree — both the Source
// chain and any Second sub-tree a join/group_join/union/concat carries —
// gathering every distinct transaction a with_transaction() call pinned
// into the chain.
func collectTransactions(n *operatorNode, seen map[graphio.Transaction]bool, order *[]graphio.Transaction) {
	if n == nil {
		return
	}
	if n.Transaction != nil && !seen[n.Transaction] {
		seen[n.Transaction] = true
		*order = append(*order, n.Transaction)
	}
	collectTransactions(n.Source, seen, order)
	collectTransactions(n.Second, seen, order)
}

// resolveTransaction implements the 0/1/>1 transaction policy: zero
// references opens a fresh disposable transaction (owned=true, caller must
// Dispose it); exactly one reference reuses it as-is (owned=false, the
// caller that opened it is responsible for its lifetime); more than one
// distinct transaction in a single query is rejected outright rather than
// silently picking one.
func resolveTransaction(tree *operatorNode, driver graphio.Driver) (session graphio.Session, tx graphio.Transaction, owned bool, err error) {
	seen := make(map[graphio.Transaction]bool)
	var found []graphio.Transaction
	collectTransactions(tree, seen, &found)

	switch len(found) {
	case 0:
		session, tx, err = graphio.OpenReadTransaction(driver)
		if err != nil {
			return nil, nil, false, err
		}
		return session, tx, true, nil
	case 1:
		return nil, found[0], false, nil
	default:
		return nil, nil, false, qerrors.NewAmbiguousTransaction(len(found), fmt.Sprintf("%d with_transaction() calls reached one query", len(found)))
	}
}
