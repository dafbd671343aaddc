package pod

// Bool is a one-byte boolean view: zero is false, any non-zero value is
// true. It matches the representation used for boolean payloads embedded
// in container records.
type Bool byte

// Value returns the boolean value.
func (b Bool) Value() bool {
	return b != 0
}

// BoolFrom converts a Go bool to its byte representation.
func BoolFrom(v bool) Bool {
	if v {
		return 1
	}
	return 0
}
