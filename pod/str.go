package pod

import (
	"unicode/utf8"
)

// Str is a fixed-capacity string view over a byte region.
//
// The backing bytes represent a string of up to len(Str) bytes; a NUL
// byte terminates shorter values. Mutations through Set are reflected
// directly in the backing region.
type Str []byte

// Value returns the value as a Go string, validating UTF-8.
func (s Str) Value() (string, error) {
	b := s.valueBytes()
	if !utf8.Valid(b) {
		return "", ErrInvalidValue
	}
	return string(b), nil
}

// Bytes returns the value bytes up to the terminating NUL.
func (s Str) Bytes() []byte {
	return s.valueBytes()
}

// IsEmpty reports whether the value is the empty string.
func (s Str) IsEmpty() bool {
	return len(s) == 0 || s[0] == 0
}

// Set copies value into the backing region, truncating to capacity and
// zero-filling the tail.
func (s Str) Set(value []byte) {
	n := copy(s, value)
	clear(s[n:])
}

func (s Str) valueBytes() []byte {
	for i, c := range s {
		if c == 0 {
			return s[:i]
		}
	}
	return s
}
