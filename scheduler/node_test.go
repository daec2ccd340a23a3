package scheduler

import "testing"

func TestNodeRefValidWhileQueued(t *testing.T) {
	var q queue
	n := &node{executeAtUs: 10}
	q.insert(n)
	ref := NodeRef{n: n}

	if !ref.Valid() {
		t.Fatal("expected a freshly queued node's ref to be valid")
	}

	q.remove(n)
	if ref.Valid() {
		t.Fatal("expected the ref to become invalid once its node is removed")
	}
}

func TestNodeRefZeroValueIsInvalid(t *testing.T) {
	var ref NodeRef
	if ref.Valid() {
		t.Fatal("expected the zero-value NodeRef to be invalid")
	}
}
