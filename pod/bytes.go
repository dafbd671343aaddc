package pod

import "encoding/binary"

// Uint reads a big-endian unsigned field of width bytes from b.
//
// The width must be one of Width8/Width16/Width32/Width64 and b must hold
// at least width bytes; violating either is a caller error.
func Uint(b []byte, width int) uint64 {
	switch width {
	case Width8:
		return uint64(b[0])
	case Width16:
		return uint64(binary.BigEndian.Uint16(b))
	case Width32:
		return uint64(binary.BigEndian.Uint32(b))
	case Width64:
		return binary.BigEndian.Uint64(b)
	default:
		panic("pod: unsupported field width")
	}
}

// PutUint writes v as a big-endian unsigned field of width bytes into b.
//
// The value must fit the width; the caller bounds values by construction
// (capacities are checked against MaxUint at view construction).
func PutUint(b []byte, width int, v uint64) {
	switch width {
	case Width8:
		b[0] = byte(v)
	case Width16:
		binary.BigEndian.PutUint16(b, uint16(v))
	case Width32:
		binary.BigEndian.PutUint32(b, uint32(v))
	case Width64:
		binary.BigEndian.PutUint64(b, v)
	default:
		panic("pod: unsupported field width")
	}
}
