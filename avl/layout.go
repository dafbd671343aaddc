package avl

import (
	"fmt"

	"github.com/nifty-oss/stevia/pod"
)

// Layout fixes the byte geometry of a tree region: the width of index
// fields and the embedded key and value sizes. Keys are fixed-width byte
// strings ordered by bytes.Compare; big-endian encoded integers order
// numerically.
type Layout struct {
	// IndexBytes is the width of header fields and node registers:
	// pod.Width8, Width16, Width32 or Width64.
	IndexBytes int

	// KeyBytes is the embedded key size. Must be at least 1.
	KeyBytes int

	// ValueBytes is the embedded value size. Must be at least 1.
	ValueBytes int
}

// Check validates the layout.
func (l Layout) Check() error {
	if !pod.ValidWidth(l.IndexBytes) {
		return fmt.Errorf("%w: index width %d", ErrBadLayout, l.IndexBytes)
	}
	if l.KeyBytes < 1 {
		return fmt.Errorf("%w: key bytes %d", ErrBadLayout, l.KeyBytes)
	}
	if l.ValueBytes < 1 {
		return fmt.Errorf("%w: value bytes %d", ErrBadLayout, l.ValueBytes)
	}
	return nil
}

// HeaderBytes returns the allocator header size: five index-width fields
// padded to eight.
func (l Layout) HeaderBytes() int {
	return headerFields * l.IndexBytes
}

// NodeBytes returns the fixed node record stride: four registers plus the
// embedded key and value.
func (l Layout) NodeBytes() int {
	return 4*l.IndexBytes + l.KeyBytes + l.ValueBytes
}

// MaxCapacity returns the largest node count the layout can address.
//
// Index 0 is reserved as NilRef and the sequence field must be able to
// hold capacity+1, so one further value is reserved at the top of the
// index range.
func (l Layout) MaxCapacity() uint64 {
	return pod.MaxUint(l.IndexBytes) - 1
}

// DataLen returns the region size required for a tree with the given
// capacity.
func (l Layout) DataLen(capacity uint64) int {
	return l.HeaderBytes() + int(capacity)*l.NodeBytes()
}
