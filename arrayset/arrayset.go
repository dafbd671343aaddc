// Package arrayset implements an ordered set stored as a sorted array of
// fixed-width elements inside a caller-supplied byte region.
//
// The region is `[length prefix][elem 0]...[elem n-1]`. Lookup is a
// binary search; insert and remove shift the tail by one stride, so
// writes are O(n) while the representation stays a single relocatable
// blob with no pointers. Elements are ordered by bytes.Compare.
//
// Like every stevia container, the set holds no storage of its own and
// is not safe for concurrent mutation of the same region.
package arrayset

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/nifty-oss/stevia/pod"
)

var ErrBadLayout = errors.New("arrayset: invalid layout")

// Set is a view over a sorted-array set region. The zero Set is not
// usable; construct one with New or NewUnchecked.
type Set struct {
	prefixBytes int
	elemBytes   int
	length      []byte
	values      []byte
	slots       uint64
}

// New views data as a set of fixed elemBytes elements with a length
// prefix of prefixBytes (1, 2, 4 or 8), validating the region shape.
// A zeroed region is a valid empty set.
func New(elemBytes, prefixBytes int, data []byte) (*Set, error) {
	if !pod.ValidWidth(prefixBytes) || elemBytes < 1 {
		return nil, fmt.Errorf("%w: elem=%d prefix=%d", ErrBadLayout, elemBytes, prefixBytes)
	}
	length, values, slots, err := pod.Split(data, prefixBytes, elemBytes)
	if err != nil {
		return nil, err
	}
	if slots > pod.MaxUint(prefixBytes) {
		return nil, fmt.Errorf("%w: %d slots exceed prefix width", ErrBadLayout, slots)
	}
	return &Set{prefixBytes: prefixBytes, elemBytes: elemBytes, length: length, values: values, slots: slots}, nil
}

// NewUnchecked views data without validating the region shape.
func NewUnchecked(elemBytes, prefixBytes int, data []byte) *Set {
	length, values, slots := pod.SplitUnchecked(data, prefixBytes, elemBytes)
	return &Set{prefixBytes: prefixBytes, elemBytes: elemBytes, length: length, values: values, slots: slots}
}

// Len returns the number of elements in the set.
func (s *Set) Len() uint64 {
	return pod.Uint(s.length, s.prefixBytes)
}

// Capacity returns the number of element slots the region holds.
func (s *Set) Capacity() uint64 {
	return s.slots
}

// IsEmpty reports whether the set holds no elements.
func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// IsFull reports whether every slot is occupied.
func (s *Set) IsFull() bool {
	return s.Len() == s.slots
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value []byte) bool {
	_, found := s.search(value)
	return found
}

// Get returns a live view of the stored element equal to value. Mutating
// the view in a way that changes its ordering corrupts the set.
func (s *Set) Get(value []byte) ([]byte, bool) {
	i, found := s.search(value)
	if !found {
		return nil, false
	}
	return s.at(i), true
}

// At returns a live view of the i-th element in sorted order. Bounds are
// the caller's burden.
func (s *Set) At(i uint64) []byte {
	return s.at(i)
}

// Insert adds value to the set, keeping the array sorted. It returns
// false, leaving the region untouched, when the value is already present
// or the set is full.
func (s *Set) Insert(value []byte) bool {
	s.checkElem(value)
	if s.IsFull() {
		return false
	}

	i, found := s.search(value)
	if found {
		return false
	}

	n := s.Len()
	// Shift the tail one stride right to open the slot.
	copy(s.values[(i+1)*uint64(s.elemBytes):], s.values[i*uint64(s.elemBytes):n*uint64(s.elemBytes)])
	copy(s.at(i), value)
	pod.PutUint(s.length, s.prefixBytes, n+1)
	return true
}

// Remove deletes value from the set, reporting whether it was present.
func (s *Set) Remove(value []byte) bool {
	_, ok := s.Take(value)
	return ok
}

// Take deletes value from the set, returning a copy of the stored
// element.
func (s *Set) Take(value []byte) ([]byte, bool) {
	s.checkElem(value)
	if s.IsEmpty() {
		return nil, false
	}

	i, found := s.search(value)
	if !found {
		return nil, false
	}

	taken := make([]byte, s.elemBytes)
	copy(taken, s.at(i))

	n := s.Len()
	// Shift the tail one stride left over the removed element.
	copy(s.values[i*uint64(s.elemBytes):], s.values[(i+1)*uint64(s.elemBytes):n*uint64(s.elemBytes)])
	pod.PutUint(s.length, s.prefixBytes, n-1)
	return taken, true
}

// search returns the index of value when found, or the index where it
// belongs when not.
func (s *Set) search(value []byte) (uint64, bool) {
	s.checkElem(value)

	lo, hi := uint64(0), s.Len()
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch bytes.Compare(value, s.at(mid)) {
		case -1:
			hi = mid
		case 1:
			lo = mid + 1
		default:
			return mid, true
		}
	}
	return lo, false
}

func (s *Set) at(i uint64) []byte {
	return pod.Record(s.values, i, s.elemBytes)
}

func (s *Set) checkElem(value []byte) {
	if len(value) != s.elemBytes {
		panic(fmt.Sprintf("arrayset: bad element length %d, set fixes %d", len(value), s.elemBytes))
	}
}
