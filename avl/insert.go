package avl

import (
	"bytes"
	"math/bits"
)

// Insert stores value under key, returning the allocated node reference.
// It returns false without modifying the tree when the key is already
// present or the tree is full; callers needing to tell the two apart use
// TryInsert.
func (t *TreeMut) Insert(key, value []byte) (uint64, bool) {
	ref, err := t.TryInsert(key, value)
	return ref, err == nil
}

// TryInsert stores value under key, returning the allocated node
// reference, ErrDuplicateKey when the key is already present, or
// ErrTreeFull when no slot is free.
func (t *TreeMut) TryInsert(key, value []byte) (uint64, error) {
	t.checkKey(key)
	t.checkValue(value)

	ref := t.field(fieldRoot)
	if ref == NilRef {
		if t.IsFull() {
			return NilRef, ErrTreeFull
		}
		root := t.allocate(key, value)
		t.setField(fieldRoot, root)
		return root, nil
	}

	path := t.newPath()
	path = append(path, ancestor{NilRef, branchNone, ref})

	for {
		t.mustUsed(ref)
		parent := ref
		var branch branchKind

		switch bytes.Compare(key, t.nodeKey(parent)) {
		case -1:
			ref = t.reg(parent, regLeft)
			branch = branchLeft
		case 1:
			ref = t.reg(parent, regRight)
			branch = branchRight
		default:
			return NilRef, ErrDuplicateKey
		}

		if ref == NilRef {
			if t.IsFull() {
				return NilRef, ErrTreeFull
			}
			ref = t.allocate(key, value)
			t.updateChild(parent, branch, ref)
			break
		}

		path = append(path, ancestor{parent, branch, ref})
	}

	t.rebalance(path)

	return ref, nil
}

// allocate hands out a node slot for key/value: the head of the free list
// when one is available, otherwise the next never-used slot by bumping
// sequence. Calling it with a full allocator is a precondition violation.
func (t *TreeMut) allocate(key, value []byte) uint64 {
	free := t.field(fieldFreeListHead)
	sequence := t.field(fieldSequence)

	if free == sequence {
		if sequence-1 == t.field(fieldCapacity) {
			panic("avl: allocator full")
		}
		t.setField(fieldSequence, sequence+1)
		t.setField(fieldFreeListHead, sequence+1)
	} else {
		// Pop the head; the height register of a free slot holds the
		// next free index.
		t.setField(fieldFreeListHead, t.reg(free, regHeight))
	}

	rec := t.node(free)
	clear(rec[:4*t.layout.IndexBytes])
	t.setReg(free, regState, stateUsed)
	copy(t.nodeKey(free), key)
	copy(t.nodeValue(free), value)

	t.setField(fieldSize, t.field(fieldSize)+1)

	return free
}

// newPath sizes a descent scratch path for the AVL height bound.
func (t *Tree) newPath() []ancestor {
	return make([]ancestor, 0, 2*bits.Len64(t.field(fieldSize))+2)
}
