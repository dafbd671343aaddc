package avl

import (
	"fmt"

	"github.com/nifty-oss/stevia/pod"
)

// node returns the record bytes for ref. References are 1-based; an index
// outside the observed slot range is structural corruption and aborts.
func (t *Tree) node(ref uint64) []byte {
	if ref == NilRef || ref > t.slots {
		panic(fmt.Sprintf("avl: node reference %d outside region (%d slots)", ref, t.slots))
	}
	return pod.Record(t.nodes, ref-1, t.layout.NodeBytes())
}

// mustUsed aborts if ref addresses a free slot. Every non-nil branch must
// address an occupied node; anything else means the region was corrupted.
func (t *Tree) mustUsed(ref uint64) {
	if t.reg(ref, regState) != stateUsed {
		panic(fmt.Sprintf("avl: node reference %d addresses a free slot", ref))
	}
}

func (t *Tree) reg(ref uint64, r int) uint64 {
	return pod.Uint(t.node(ref)[r*t.layout.IndexBytes:], t.layout.IndexBytes)
}

func (t *TreeMut) setReg(ref uint64, r int, v uint64) {
	pod.PutUint(t.node(ref)[r*t.layout.IndexBytes:], t.layout.IndexBytes, v)
}

// nodeKey returns the embedded key view for ref.
func (t *Tree) nodeKey(ref uint64) []byte {
	off := 4 * t.layout.IndexBytes
	return t.node(ref)[off : off+t.layout.KeyBytes]
}

// nodeValue returns the embedded value view for ref.
func (t *Tree) nodeValue(ref uint64) []byte {
	off := 4*t.layout.IndexBytes + t.layout.KeyBytes
	return t.node(ref)[off : off+t.layout.ValueBytes]
}

func (t *Tree) checkKey(key []byte) {
	if len(key) != t.layout.KeyBytes {
		panic(fmt.Sprintf("avl: bad key length %d, layout fixes %d", len(key), t.layout.KeyBytes))
	}
}

func (t *Tree) checkValue(value []byte) {
	if len(value) != t.layout.ValueBytes {
		panic(fmt.Sprintf("avl: bad value length %d, layout fixes %d", len(value), t.layout.ValueBytes))
	}
}
