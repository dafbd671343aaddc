package hashset

import (
	"bytes"
	"encoding/binary"
)

// DecodeHeader decodes the set header from region.
//
// ok=false indicates the region is zero-filled / uninitialized.
func DecodeHeader(region []byte) (h Header, ok bool, err error) {
	if len(region) < HeaderBytes {
		return Header{}, false, ErrBadRegionSize
	}

	if bytes.Equal(region[0:4], []byte{0, 0, 0, 0}) {
		return Header{}, false, nil
	}

	if string(region[0:4]) != Magic {
		return Header{}, false, ErrBadMagic
	}
	if region[4] != Version {
		return Header{}, false, ErrBadVersion
	}

	h.ElemBytes = region[5]
	h.Count = binary.BigEndian.Uint32(region[8:12])

	if h.ElemBytes == 0 {
		return Header{}, false, ErrBadElemBytes
	}

	return h, true, nil
}

// EncodeHeader writes the set header into region.
func EncodeHeader(region []byte, h Header) error {
	if len(region) < HeaderBytes {
		return ErrBadRegionSize
	}
	if h.ElemBytes == 0 {
		return ErrBadElemBytes
	}

	copy(region[0:4], Magic)
	region[4] = Version
	region[5] = h.ElemBytes
	region[6] = 0
	region[7] = 0
	binary.BigEndian.PutUint32(region[8:12], h.Count)
	clear(region[12:HeaderBytes])
	return nil
}
