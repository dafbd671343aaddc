package avl

import "bytes"

// Remove deletes the node stored under key, returning a copy of its value
// and freeing its slot for reuse. It returns false if the key is not
// present.
func (t *TreeMut) Remove(key []byte) ([]byte, bool) {
	t.checkKey(key)

	ref := t.field(fieldRoot)
	if ref == NilRef {
		return nil, false
	}

	path := t.newPath()
	path = append(path, ancestor{NilRef, branchNone, ref})

	for {
		t.mustUsed(ref)
		cmp := bytes.Compare(key, t.nodeKey(ref))
		if cmp == 0 {
			break
		}

		parent := ref
		var branch branchKind
		if cmp < 0 {
			ref = t.reg(parent, regLeft)
			branch = branchLeft
		} else {
			ref = t.reg(parent, regRight)
			branch = branchRight
		}
		if ref == NilRef {
			return nil, false
		}
		path = append(path, ancestor{parent, branch, ref})
	}

	left := t.reg(ref, regLeft)
	right := t.reg(ref, regRight)

	var replacement uint64
	if left != NilRef && right != NilRef {
		replacement = t.spliceSuccessor(&path, left, right)
	} else {
		// At most one child: it (or nil) takes the removed node's place
		// in the parent's branch.
		child := uint64(NilRef)
		if left != NilRef {
			child = left
		} else if right != NilRef {
			child = right
		}

		last := path[len(path)-1]
		path = path[:len(path)-1]
		if last.parent != NilRef {
			t.updateChild(last.parent, last.branch, child)
			if child != NilRef {
				path = append(path, ancestor{last.parent, last.branch, child})
			}
		}

		replacement = child
	}

	if ref == t.field(fieldRoot) {
		t.setField(fieldRoot, replacement)
	}

	t.rebalance(path)

	return t.release(ref), true
}

// spliceSuccessor relocates the in-order successor (leftmost descendant
// of the right subtree) into the removed node's structural slot and
// rewrites the recorded path accordingly: the removed node's entry is
// replaced by the successor and the residual successor sub-path (minus
// its final self-reference) is appended, so rebalancing starts at the
// deepest affected node. Keys and values never move.
func (t *TreeMut) spliceSuccessor(path *[]ancestor, left, right uint64) uint64 {
	leftmost := right
	leftmostParent := uint64(NilRef)
	var inner []ancestor

	t.mustUsed(leftmost)
	for t.reg(leftmost, regLeft) != NilRef {
		leftmostParent = leftmost
		leftmost = t.reg(leftmost, regLeft)
		t.mustUsed(leftmost)
		inner = append(inner, ancestor{leftmostParent, branchLeft, leftmost})
	}

	// Splice the successor out of its original position: its right child
	// takes its place under its parent.
	if leftmostParent != NilRef {
		t.updateChild(leftmostParent, branchLeft, t.reg(leftmost, regRight))
	}

	// The successor absorbs the removed node's children.
	t.updateChild(leftmost, branchLeft, left)
	if right != leftmost {
		t.updateChild(leftmost, branchRight, right)
	}

	last := (*path)[len(*path)-1]
	*path = (*path)[:len(*path)-1]

	if last.parent != NilRef {
		t.updateChild(last.parent, last.branch, leftmost)
	}

	*path = append(*path, ancestor{last.parent, last.branch, leftmost})
	if right != leftmost {
		*path = append(*path, ancestor{leftmost, branchRight, right})
	}
	// The final inner entry references the successor itself, which just
	// moved; drop it before appending the residue.
	if len(inner) > 0 {
		inner = inner[:len(inner)-1]
	}
	*path = append(*path, inner...)

	return leftmost
}

// release clears the node's payload, pushes its slot onto the free list
// and returns a copy of the stored value.
func (t *TreeMut) release(ref uint64) []byte {
	value := make([]byte, t.layout.ValueBytes)
	copy(value, t.nodeValue(ref))

	clear(t.node(ref))
	// The cleared state register tags the slot free; the height register
	// is overlaid with the old free list head.
	t.setReg(ref, regHeight, t.field(fieldFreeListHead))
	t.setField(fieldFreeListHead, ref)
	t.setField(fieldSize, t.field(fieldSize)-1)

	return value
}
