// Package avl implements a self-balancing binary search tree that lives
// entirely inside a caller-supplied byte region.
//
// The region is `[allocator header][node 0]...[node capacity-1]`. The
// header tracks five fields (root, size, capacity, freeListHead,
// sequence), each an unsigned index of the configured width. A node
// record is four index-width registers (left, right, height, state)
// followed by a fixed-width key and value. There are no pointers anywhere:
// parent/child relationships are integer indices into the node array,
// with index 0 reserved as the nil reference and real indices biased by
// one.
//
// Freed node slots form a singly linked free list threaded through the
// height register, rooted at the header's freeListHead. The state
// register tags each slot free or occupied so that a dangling index is
// detected instead of silently followed.
//
// Every write lands directly in the backing bytes; there is no shadow
// state to flush, and a region can be re-viewed at any time. If the
// caller enlarges the region, mutable view construction absorbs the new
// slots without rewriting existing state.
//
// # Core invariants
//
// 1. size <= capacity, and capacity never exceeds what the index width
// can address
// 2. freeListHead and sequence are in [1, capacity+1]; they are equal
// exactly when no freed slot is awaiting reuse
// 3. for every occupied node, left and right subtree heights differ by
// one at most (AVL), and keys order left < node < right (BST)
//
// The package is not safe for concurrent use of one region; the caller
// must enforce an exclusive-writer discipline over the backing bytes for
// the duration of a call.
package avl
