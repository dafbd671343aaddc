package avl

import (
	"encoding/hex"
	"strings"
)

// Walk visits every live node in key order, passing live key and value
// views. The visitor returns false to stop early. The tree must not be
// mutated during the walk.
func (t *Tree) Walk(visit func(key, value []byte) bool) {
	t.walk(t.field(fieldRoot), visit)
}

func (t *Tree) walk(ref uint64, visit func(key, value []byte) bool) bool {
	if ref == NilRef {
		return true
	}
	t.mustUsed(ref)
	if !t.walk(t.reg(ref, regLeft), visit) {
		return false
	}
	if !visit(t.nodeKey(ref), t.nodeValue(ref)) {
		return false
	}
	return t.walk(t.reg(ref, regRight), visit)
}

// Dump renders the live entries in key order as hex "key=value" lines,
// for debugging.
func (t *Tree) Dump() string {
	var sb strings.Builder
	t.Walk(func(key, value []byte) bool {
		sb.WriteString(hex.EncodeToString(key))
		sb.WriteByte('=')
		sb.WriteString(hex.EncodeToString(value))
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}
