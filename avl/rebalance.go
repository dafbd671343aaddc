package avl

// rebalance walks a recorded descent path leaf to root, restoring the AVL
// rule at every step. A node out of balance by more than one is rotated
// (with a pre-rotation of the heavy child in the double-rotation cases);
// anything else just refreshes the cached height. A rotation rewires the
// affected parent's branch, or the header's root when the rotated node
// had no parent.
func (t *TreeMut) rebalance(path []ancestor) {
	for i := len(path) - 1; i >= 0; i-- {
		step := path[i]
		left := t.reg(step.ref, regLeft)
		right := t.reg(step.ref, regRight)

		balance := t.balanceFactor(left, right)

		rotated := uint64(NilRef)
		switch {
		case balance > 1:
			if t.balanceFactor(t.reg(left, regLeft), t.reg(left, regRight)) < 0 {
				t.updateChild(step.ref, branchLeft, t.leftRotate(left))
			}
			rotated = t.rightRotate(step.ref)
		case balance < -1:
			if t.balanceFactor(t.reg(right, regLeft), t.reg(right, regRight)) > 0 {
				t.updateChild(step.ref, branchRight, t.rightRotate(right))
			}
			rotated = t.leftRotate(step.ref)
		default:
			t.updateHeight(step.ref)
		}

		if rotated != NilRef {
			if step.parent != NilRef {
				t.updateChild(step.parent, step.branch, rotated)
			} else {
				t.setField(fieldRoot, rotated)
				t.updateHeight(rotated)
			}
		}
	}
}

// balanceFactor returns height(left) - height(right) for a node's child
// references, counting a nil child as height zero.
func (t *Tree) balanceFactor(left, right uint64) int {
	var lh, rh int
	if left != NilRef {
		lh = int(t.reg(left, regHeight)) + 1
	}
	if right != NilRef {
		rh = int(t.reg(right, regHeight)) + 1
	}
	return lh - rh
}

// leftRotate makes ref's right child the subtree root: ref takes the
// child's former left subtree as its new right child and becomes the
// child's left child. Heights refresh child before parent through
// updateChild. Returns the new subtree root.
func (t *TreeMut) leftRotate(ref uint64) uint64 {
	right := t.reg(ref, regRight)
	rightLeft := t.reg(right, regLeft)

	t.updateChild(ref, branchRight, rightLeft)
	t.updateChild(right, branchLeft, ref)

	return right
}

// rightRotate mirrors leftRotate.
func (t *TreeMut) rightRotate(ref uint64) uint64 {
	left := t.reg(ref, regLeft)
	leftRight := t.reg(left, regRight)

	t.updateChild(ref, branchLeft, leftRight)
	t.updateChild(left, branchRight, ref)

	return left
}

// updateChild rewires parent's branch to child and refreshes the parent's
// cached height, since the new child may carry the taller subtree.
func (t *TreeMut) updateChild(parent uint64, branch branchKind, child uint64) {
	switch branch {
	case branchLeft:
		t.setReg(parent, regLeft, child)
	case branchRight:
		t.setReg(parent, regRight, child)
	default:
		panic("avl: invalid branch")
	}
	t.updateHeight(parent)
}

// updateHeight refreshes a node's cached subtree height from its
// children: zero for a leaf, otherwise the taller child's height plus
// one.
func (t *TreeMut) updateHeight(ref uint64) {
	left := t.reg(ref, regLeft)
	right := t.reg(ref, regRight)

	var height uint64
	if left != NilRef || right != NilRef {
		var lh, rh uint64
		if left != NilRef {
			lh = t.reg(left, regHeight)
		}
		if right != NilRef {
			rh = t.reg(right, regHeight)
		}
		height = max(lh, rh) + 1
	}

	t.setReg(ref, regHeight, height)
}
