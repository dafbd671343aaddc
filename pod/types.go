package pod

import "errors"

// Supported field widths, in bytes.
const (
	Width8  = 1
	Width16 = 2
	Width32 = 4
	Width64 = 8
)

var (
	ErrRegionTooSmall = errors.New("pod: region buffer too small")
	ErrMisaligned     = errors.New("pod: region size misaligned for record stride")
	ErrBadWidth       = errors.New("pod: unsupported field width")
	ErrInvalidValue   = errors.New("pod: invalid value found for type")
)

// ValidWidth reports whether width is a supported field width.
func ValidWidth(width int) bool {
	switch width {
	case Width8, Width16, Width32, Width64:
		return true
	}
	return false
}

// MaxUint returns the largest value representable in a field of width bytes.
func MaxUint(width int) uint64 {
	if width == Width64 {
		return ^uint64(0)
	}
	return (uint64(1) << (8 * width)) - 1
}
