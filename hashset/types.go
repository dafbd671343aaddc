package hashset

import "errors"

const (
	// HeaderBytes is the fixed header size for a set region.
	HeaderBytes = 16

	Magic           = "HSET"
	Version   uint8 = 1
)

var (
	ErrBadRegionSize  = errors.New("hashset: region buffer size invalid")
	ErrNotInitialized = errors.New("hashset: header not initialized")
	ErrBadMagic       = errors.New("hashset: header magic invalid")
	ErrBadVersion     = errors.New("hashset: header version invalid")
	ErrBadElemBytes   = errors.New("hashset: header element width invalid")
	ErrBadElemSize    = errors.New("hashset: element width does not match the header")
	ErrNullElement    = errors.New("hashset: the all-zero element is reserved as the empty marker")
)

// Header describes an initialized set region.
type Header struct {
	ElemBytes uint8
	Count     uint32
}
