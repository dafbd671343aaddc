package avl

import (
	"testing"

	"github.com/nifty-oss/stevia/pod"
	"github.com/stretchr/testify/require"
)

func TestLayoutSizing(t *testing.T) {
	l := Layout{IndexBytes: 1, KeyBytes: 8, ValueBytes: 8}
	require.Equal(t, 8, l.HeaderBytes())
	require.Equal(t, 20, l.NodeBytes())
	require.Equal(t, uint64(254), l.MaxCapacity())
	require.Equal(t, 8+10*20, l.DataLen(10))

	l = Layout{IndexBytes: 4, KeyBytes: 32, ValueBytes: 32}
	require.Equal(t, 32, l.HeaderBytes())
	require.Equal(t, 16+64, l.NodeBytes())
	require.Equal(t, uint64(1)<<32-2, l.MaxCapacity())
}

func TestLayoutCheck(t *testing.T) {
	require.ErrorIs(t, Layout{IndexBytes: 3, KeyBytes: 8, ValueBytes: 8}.Check(), ErrBadLayout)
	require.ErrorIs(t, Layout{IndexBytes: 1, KeyBytes: 0, ValueBytes: 8}.Check(), ErrBadLayout)
	require.ErrorIs(t, Layout{IndexBytes: 1, KeyBytes: 8, ValueBytes: 0}.Check(), ErrBadLayout)
	require.NoError(t, Layout{IndexBytes: 8, KeyBytes: 1, ValueBytes: 1}.Check())
}

func TestViewErrors(t *testing.T) {
	_, err := NewTree(testLayout, make([]byte, 4))
	require.ErrorIs(t, err, pod.ErrRegionTooSmall)

	_, err = NewTree(testLayout, make([]byte, testLayout.DataLen(2)+1))
	require.ErrorIs(t, err, pod.ErrMisaligned)

	_, err = NewTreeMut(Layout{IndexBytes: 5, KeyBytes: 8, ValueBytes: 8}, make([]byte, 64))
	require.ErrorIs(t, err, ErrBadLayout)

	// 255 slots cannot be addressed at width 8: the sequence field must
	// reach capacity+1.
	_, err = NewTree(testLayout, make([]byte, testLayout.DataLen(255)))
	require.ErrorIs(t, err, ErrTooManyNodes)
	_, err = NewTreeMut(testLayout, make([]byte, testLayout.DataLen(255)))
	require.ErrorIs(t, err, ErrTooManyNodes)
}

func TestUncheckedViews(t *testing.T) {
	data := make([]byte, testLayout.DataLen(8))

	tree := NewTreeMutUnchecked(testLayout, data)
	require.NoError(t, tree.Initialize(8))
	_, ok := tree.Insert(u64b(1), u64b(1))
	require.True(t, ok)

	// The checked and unchecked views agree on the same bytes.
	checked, err := NewTree(testLayout, data)
	require.NoError(t, err)
	require.Equal(t, uint64(1), checked.Len())
	require.Equal(t, uint64(8), NewTreeUnchecked(testLayout, data).Capacity())
}

func TestInitialize(t *testing.T) {
	data := make([]byte, testLayout.DataLen(10))
	tree, err := NewTreeMut(testLayout, data)
	require.NoError(t, err)

	require.ErrorIs(t, tree.Initialize(0), ErrBadCapacity)
	require.ErrorIs(t, tree.Initialize(11), ErrBadCapacity)

	require.NoError(t, tree.Initialize(10))
	require.Equal(t, uint64(10), tree.Capacity())
	require.Equal(t, uint64(0), tree.Len())
	require.True(t, tree.IsEmpty())

	// Exactly once.
	require.ErrorIs(t, tree.Initialize(10), ErrInitialized)

	// A region larger than the requested capacity is allowed; the
	// surplus stays unreachable until a mutable re-view absorbs it.
	data = make([]byte, testLayout.DataLen(10))
	tree, err = NewTreeMut(testLayout, data)
	require.NoError(t, err)
	require.NoError(t, tree.Initialize(6))
	require.Equal(t, uint64(6), tree.Capacity())
}

func TestResize(t *testing.T) {
	const capacity = 10

	tree, data := newTestTree(t, testLayout, capacity)

	for i := uint64(0); i < capacity; i++ {
		tree.Insert(u64b(i), u64b(i))
	}
	require.Equal(t, uint64(capacity), tree.Len())

	// Extend the region by one node slot. The tree is packed
	// (freeListHead == sequence), so absorption only raises capacity.
	resized := append(append([]byte{}, data...), make([]byte, testLayout.NodeBytes())...)
	grown, err := NewTreeMut(testLayout, resized)
	require.NoError(t, err)
	require.Equal(t, uint64(capacity), grown.Len())
	require.Equal(t, uint64(capacity+1), grown.Capacity())

	_, ok := grown.Insert(u64b(11), u64b(11))
	require.True(t, ok)
	require.Equal(t, uint64(capacity+1), grown.Len())
	require.True(t, grown.IsFull())
	checkTree(t, &grown.Tree)
}

func TestResizeNotPacked(t *testing.T) {
	const capacity = 10

	tree, data := newTestTree(t, testLayout, capacity)

	for i := uint64(0); i < capacity; i++ {
		tree.Insert(u64b(i), u64b(i))
	}
	for _, k := range []uint64{2, 5, 8} {
		_, ok := tree.Remove(u64b(k))
		require.True(t, ok)
	}

	// Not packed: three freed slots await reuse. Growth must fold the
	// five new slots into the free list and advance sequence past them.
	resized := append(append([]byte{}, data...), make([]byte, 5*testLayout.NodeBytes())...)
	grown, err := NewTreeMut(testLayout, resized)
	require.NoError(t, err)
	require.Equal(t, uint64(capacity+5), grown.Capacity())
	require.Equal(t, uint64(capacity+5+1), grown.field(fieldSequence))

	// 3 freed + 5 absorbed slots are insertable before full.
	for i := uint64(0); i < 8; i++ {
		_, ok := grown.Insert(u64b(100+i), u64b(i))
		require.True(t, ok, "insert %d", i)
	}
	require.True(t, grown.IsFull())
	_, ok := grown.Insert(u64b(200), u64b(0))
	require.False(t, ok)
	checkTree(t, &grown.Tree)
}

func TestGrowthAbsorption(t *testing.T) {
	const capacity = 10
	const extra = 4

	tree, data := newTestTree(t, testLayout, capacity)
	for i := uint64(0); i < capacity; i++ {
		tree.Insert(u64b(i), u64b(i))
	}

	resized := append(append([]byte{}, data...), make([]byte, extra*testLayout.NodeBytes())...)
	grown, err := NewTreeMut(testLayout, resized)
	require.NoError(t, err)
	require.Equal(t, uint64(capacity+extra), grown.Capacity())

	for i := uint64(0); i < extra; i++ {
		_, ok := grown.Insert(u64b(capacity+i), u64b(capacity+i))
		require.True(t, ok)
	}
	require.True(t, grown.IsFull())

	// The original entries are undisturbed.
	for i := uint64(0); i < capacity; i++ {
		value, ok := grown.Get(u64b(i))
		require.True(t, ok)
		require.Equal(t, u64b(i), value)
	}
	checkTree(t, &grown.Tree)
}

func TestAbsorbIdempotent(t *testing.T) {
	const capacity = 6

	tree, data := newTestTree(t, testLayout, capacity)
	for i := uint64(0); i < capacity; i++ {
		tree.Insert(u64b(i), u64b(i))
	}
	tree.Remove(u64b(3))

	resized := append(append([]byte{}, data...), make([]byte, 2*testLayout.NodeBytes())...)

	first, err := NewTreeMut(testLayout, resized)
	require.NoError(t, err)
	seq := first.field(fieldSequence)
	free := first.field(fieldFreeListHead)

	// Re-viewing an already-absorbed region changes nothing.
	second, err := NewTreeMut(testLayout, resized)
	require.NoError(t, err)
	require.Equal(t, seq, second.field(fieldSequence))
	require.Equal(t, free, second.field(fieldFreeListHead))
	require.Equal(t, uint64(capacity+2), second.Capacity())
	checkTree(t, &second.Tree)
}

func TestReadonlyResize(t *testing.T) {
	const capacity = 10

	tree, data := newTestTree(t, testLayout, capacity)
	for i := uint64(0); i < capacity; i++ {
		tree.Insert(u64b(i), u64b(i))
	}

	resized := append(append([]byte{}, data...), make([]byte, testLayout.NodeBytes())...)

	// A read-only view never mutates: the recorded capacity stands.
	readonly, err := NewTree(testLayout, resized)
	require.NoError(t, err)
	require.Equal(t, uint64(capacity), readonly.Len())
	require.Equal(t, uint64(capacity), readonly.Capacity())
}

func TestIndexWidths(t *testing.T) {
	for _, width := range []int{pod.Width8, pod.Width16, pod.Width32, pod.Width64} {
		layout := Layout{IndexBytes: width, KeyBytes: 8, ValueBytes: 4}
		tree, _ := newTestTree(t, layout, 50)

		for i := uint64(0); i < 50; i++ {
			_, ok := tree.Insert(u64b(i*7%50), []byte{byte(i), 0, 0, 1})
			require.True(t, ok, "width %d insert %d", width, i)
		}
		require.True(t, tree.IsFull())
		checkTree(t, &tree.Tree)

		for i := uint64(0); i < 50; i += 2 {
			_, ok := tree.Remove(u64b(i))
			require.True(t, ok)
		}
		require.Equal(t, uint64(25), tree.Len())
		checkTree(t, &tree.Tree)
	}
}
