package avl

import (
	"fmt"

	"github.com/nifty-oss/stevia/pod"
)

// Tree is a read-only, zero-allocation view over a tree region.
//
// A Tree never mutates the backing bytes. Re-viewing an enlarged region
// read-only leaves the recorded capacity untouched; only a TreeMut
// absorbs growth.
type Tree struct {
	layout Layout
	header []byte
	nodes  []byte
	// slots is the observed node-slot count, which may exceed the
	// header's recorded capacity after the caller enlarged the region.
	slots uint64
}

// TreeMut is a writable view over a tree region.
type TreeMut struct {
	Tree
}

// NewTree views data as a read-only tree, validating the layout and the
// region shape.
func NewTree(layout Layout, data []byte) (*Tree, error) {
	if err := layout.Check(); err != nil {
		return nil, err
	}
	header, nodes, slots, err := pod.Split(data, layout.HeaderBytes(), layout.NodeBytes())
	if err != nil {
		return nil, err
	}
	if slots > layout.MaxCapacity() {
		return nil, fmt.Errorf("%w: %d slots, width allows %d", ErrTooManyNodes, slots, layout.MaxCapacity())
	}
	return &Tree{layout: layout, header: header, nodes: nodes, slots: slots}, nil
}

// NewTreeUnchecked views data as a read-only tree without validating the
// region shape. The caller must guarantee what NewTree verifies.
func NewTreeUnchecked(layout Layout, data []byte) *Tree {
	header, nodes, slots := pod.SplitUnchecked(data, layout.HeaderBytes(), layout.NodeBytes())
	return &Tree{layout: layout, header: header, nodes: nodes, slots: slots}
}

// NewTreeMut views data as a writable tree, validating the layout and the
// region shape, then absorbing any region growth.
func NewTreeMut(layout Layout, data []byte) (*TreeMut, error) {
	tree, err := NewTree(layout, data)
	if err != nil {
		return nil, err
	}
	t := &TreeMut{Tree: *tree}
	t.absorb()
	return t, nil
}

// NewTreeMutUnchecked views data as a writable tree without validating
// the region shape. Growth absorption still runs: it is part of the view
// semantics, not of validation.
func NewTreeMutUnchecked(layout Layout, data []byte) *TreeMut {
	t := &TreeMut{Tree: *NewTreeUnchecked(layout, data)}
	t.absorb()
	return t
}

// absorb folds node slots beyond the recorded capacity into the
// allocator. When the tree is packed (freeListHead == sequence) raising
// the capacity is enough: allocation reaches the new slots by bumping
// sequence. Otherwise the new slots are pushed onto the free list so that
// allocation stays O(1). Idempotent: the capacity comparison
// short-circuits a re-view of an already-absorbed region.
func (t *TreeMut) absorb() {
	current := t.field(fieldCapacity)
	if t.slots <= current {
		return
	}
	t.setField(fieldCapacity, t.slots)

	if t.field(fieldSequence) != t.field(fieldFreeListHead) {
		for ref := current + 1; ref <= t.slots; ref++ {
			t.setReg(ref, regHeight, t.field(fieldFreeListHead))
			t.setField(fieldFreeListHead, ref)
		}
		t.setField(fieldSequence, t.slots+1)
	}
}

// Initialize writes the initial allocator header for a tree of the given
// capacity. It must be called exactly once, on a zeroed region, before
// any other operation.
func (t *TreeMut) Initialize(capacity uint64) error {
	// freeListHead and sequence are zero only before first
	// initialization; afterwards they live in [1, capacity+1].
	if t.field(fieldFreeListHead) != 0 || t.field(fieldSequence) != 0 {
		return ErrInitialized
	}
	if capacity == 0 || capacity > t.slots {
		return fmt.Errorf("%w: capacity %d, region holds %d slots", ErrBadCapacity, capacity, t.slots)
	}
	t.setField(fieldRoot, NilRef)
	t.setField(fieldSize, 0)
	t.setField(fieldCapacity, capacity)
	t.setField(fieldFreeListHead, 1)
	t.setField(fieldSequence, 1)
	return nil
}

// Layout returns the view's byte geometry.
func (t *Tree) Layout() Layout {
	return t.layout
}

// Len returns the number of live nodes in the tree.
func (t *Tree) Len() uint64 {
	return t.field(fieldSize)
}

// Capacity returns the recorded node capacity.
func (t *Tree) Capacity() uint64 {
	return t.field(fieldCapacity)
}

// IsEmpty reports whether the tree holds no nodes.
func (t *Tree) IsEmpty() bool {
	return t.field(fieldSize) == 0
}

// IsFull reports whether the tree has reached its capacity.
func (t *Tree) IsFull() bool {
	return t.field(fieldSize) >= t.field(fieldCapacity)
}

func (t *Tree) field(i int) uint64 {
	return pod.Uint(t.header[i*t.layout.IndexBytes:], t.layout.IndexBytes)
}

func (t *TreeMut) setField(i int, v uint64) {
	pod.PutUint(t.header[i*t.layout.IndexBytes:], t.layout.IndexBytes, v)
}
