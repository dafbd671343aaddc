// Package hashset implements a flat, open-addressed membership set over a
// caller-supplied byte region.
//
// The region is `[16-byte header][slot 0]...[slot n-1]`, each slot one
// fixed-width element. A slot holding the all-zero element is empty, so
// the all-zero element itself cannot be stored; that convention keeps the
// per-slot byte cost at exactly the element width, with no discriminant.
//
// Lookup probes linearly from the element's hash slot. Removal uses
// backward-shift deletion so probe chains stay intact without
// tombstones. The caller chooses the capacity (and thereby the load
// factor) by sizing the region; operations stay correct at any load,
// degrading to O(n) probes as the set approaches full.
package hashset

import (
	"bytes"
	"fmt"

	"github.com/nifty-oss/stevia/pod"
)

// Init initializes a zero-filled region for elements of elemBytes.
//
// The region must hold the header plus a whole number of at least one
// element slot.
func Init(region []byte, elemBytes uint8) error {
	if elemBytes == 0 {
		return ErrBadElemBytes
	}
	_, _, slots, err := pod.Split(region, HeaderBytes, int(elemBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadRegionSize, err)
	}
	if slots == 0 {
		return ErrBadRegionSize
	}

	// Clean re-initialization of a reused region.
	clear(region)

	return EncodeHeader(region, Header{ElemBytes: elemBytes, Count: 0})
}

// Len returns the number of elements in the set.
func Len(region []byte) (uint32, error) {
	h, _, err := view(region)
	if err != nil {
		return 0, err
	}
	return h.Count, nil
}

// Capacity returns the number of element slots the region holds.
func Capacity(region []byte) (uint64, error) {
	_, slots, err := view(region)
	if err != nil {
		return 0, err
	}
	return slots, nil
}

// IsFull reports whether every slot is occupied.
func IsFull(region []byte) (bool, error) {
	h, slots, err := view(region)
	if err != nil {
		return false, err
	}
	return uint64(h.Count) == slots, nil
}

// Contains reports whether elem is in the set.
func Contains(region []byte, elem []byte) (bool, error) {
	h, slots, err := view(region)
	if err != nil {
		return false, err
	}
	if err := checkElem(h, elem); err != nil {
		return false, err
	}

	_, found := probe(region, h, slots, elem)
	return found, nil
}

// Insert adds elem to the set, reporting whether it was newly inserted.
// It returns false without an error when elem is already present or the
// set is full.
func Insert(region []byte, elem []byte) (bool, error) {
	h, slots, err := view(region)
	if err != nil {
		return false, err
	}
	if err := checkElem(h, elem); err != nil {
		return false, err
	}

	if uint64(h.Count) == slots {
		return false, nil
	}

	i, found := probe(region, h, slots, elem)
	if found {
		return false, nil
	}

	copy(slot(region, h, i), elem)
	h.Count++
	return true, EncodeHeader(region, h)
}

// Remove deletes elem from the set, reporting whether it was present.
// Slots after the removed element are shifted back over it where their
// probe chains allow, so no tombstones are left behind.
func Remove(region []byte, elem []byte) (bool, error) {
	h, slots, err := view(region)
	if err != nil {
		return false, err
	}
	if err := checkElem(h, elem); err != nil {
		return false, err
	}

	i, found := probe(region, h, slots, elem)
	if !found {
		return false, nil
	}

	for {
		clear(slot(region, h, i))

		// Find the next displaced element that may legally move into
		// the hole.
		j := i
		for {
			j = (j + 1) % slots
			s := slot(region, h, j)
			if isZero(s) {
				h.Count--
				return true, EncodeHeader(region, h)
			}
			k := hashElem(s) % slots
			// s may move to i unless its home slot k lies cyclically
			// within (i, j].
			if j > i && (k <= i || k > j) {
				break
			}
			if j < i && (k <= i && k > j) {
				break
			}
		}

		copy(slot(region, h, i), slot(region, h, j))
		i = j
	}
}

// view decodes the header and derives the slot count from the region
// length, so a re-hydrated region always probes consistently.
func view(region []byte) (Header, uint64, error) {
	h, ok, err := DecodeHeader(region)
	if err != nil {
		return Header{}, 0, err
	}
	if !ok {
		return Header{}, 0, ErrNotInitialized
	}
	_, _, slots, err := pod.Split(region, HeaderBytes, int(h.ElemBytes))
	if err != nil {
		return Header{}, 0, fmt.Errorf("%w: %v", ErrBadRegionSize, err)
	}
	if slots == 0 {
		return Header{}, 0, ErrBadRegionSize
	}
	return h, slots, nil
}

// probe walks the linear probe chain for elem, returning the matching
// slot, or the first empty slot when elem is absent. With a full set and
// elem absent it returns the home slot, found=false, after one lap.
func probe(region []byte, h Header, slots uint64, elem []byte) (uint64, bool) {
	i := hashElem(elem) % slots
	for n := uint64(0); n < slots; n++ {
		s := slot(region, h, i)
		if isZero(s) {
			return i, false
		}
		if bytes.Equal(s, elem) {
			return i, true
		}
		i = (i + 1) % slots
	}
	return i, false
}

func slot(region []byte, h Header, i uint64) []byte {
	return pod.Record(region[HeaderBytes:], i, int(h.ElemBytes))
}

func checkElem(h Header, elem []byte) error {
	if len(elem) != int(h.ElemBytes) {
		return fmt.Errorf("%w: got %d, header fixes %d", ErrBadElemSize, len(elem), h.ElemBytes)
	}
	if isZero(elem) {
		return ErrNullElement
	}
	return nil
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// FNV-1a 64-bit.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

func hashElem(elem []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range elem {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}
