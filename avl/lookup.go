package avl

import "bytes"

// Get returns a live view of the value stored under key. Mutations
// through the view land directly in the backing region; the key bytes of
// a stored node must never be altered this way.
func (t *Tree) Get(key []byte) ([]byte, bool) {
	t.checkKey(key)
	ref := t.find(key)
	if ref == NilRef {
		return nil, false
	}
	return t.nodeValue(ref), true
}

// Contains reports whether key is present in the tree.
func (t *Tree) Contains(key []byte) bool {
	t.checkKey(key)
	return t.find(key) != NilRef
}

// Lowest returns a copy of the minimum key, descending left children
// only.
func (t *Tree) Lowest() ([]byte, bool) {
	ref := t.field(fieldRoot)
	if ref == NilRef {
		return nil, false
	}
	t.mustUsed(ref)
	for t.reg(ref, regLeft) != NilRef {
		ref = t.reg(ref, regLeft)
		t.mustUsed(ref)
	}
	key := make([]byte, t.layout.KeyBytes)
	copy(key, t.nodeKey(ref))
	return key, true
}

// find descends from the root comparing key at each visited node,
// returning the matching reference or NilRef.
func (t *Tree) find(key []byte) uint64 {
	ref := t.field(fieldRoot)
	for ref != NilRef {
		t.mustUsed(ref)
		switch bytes.Compare(key, t.nodeKey(ref)) {
		case -1:
			ref = t.reg(ref, regLeft)
		case 1:
			ref = t.reg(ref, regRight)
		default:
			return ref
		}
	}
	return NilRef
}
