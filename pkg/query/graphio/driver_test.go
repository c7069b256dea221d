package graphio

import "testing"

func TestOpenReadTransaction(t *testing.T) {
	t.Skip("requires a live neo4j.Driver - exercised against a running Neo4j instance")
}

func TestDisposeNotOwnedIsNoop(t *testing.T) {
	if err := Dispose(nil, nil, false, true); err != nil {
		t.Errorf("Dispose(owned=false) = %v, want nil", err)
	}
}

func TestDisposeNilTransactionIsNoop(t *testing.T) {
	if err := Dispose(nil, nil, true, true); err != nil {
		t.Errorf("Dispose(tx=nil) = %v, want nil", err)
	}
}
