package pod

import "fmt"

// Split slices data into a header view of headerBytes and a record-array
// view of fixed recordBytes stride, returning the number of whole records
// the array holds.
//
// It fails with ErrRegionTooSmall if data cannot hold the header, and with
// ErrMisaligned if the remainder is not a whole multiple of the record
// stride. Surplus records beyond what a caller expects are not an error;
// growth-aware containers absorb them.
func Split(data []byte, headerBytes, recordBytes int) (header, records []byte, count uint64, err error) {
	if recordBytes <= 0 || headerBytes < 0 {
		return nil, nil, 0, fmt.Errorf("%w: header=%d record=%d", ErrBadWidth, headerBytes, recordBytes)
	}
	if len(data) < headerBytes {
		return nil, nil, 0, fmt.Errorf("%w: want >= %d, got %d", ErrRegionTooSmall, headerBytes, len(data))
	}
	rest := len(data) - headerBytes
	if rest%recordBytes != 0 {
		return nil, nil, 0, fmt.Errorf("%w: %d trailing bytes over stride %d", ErrMisaligned, rest%recordBytes, recordBytes)
	}
	header, records, count = SplitUnchecked(data, headerBytes, recordBytes)
	return header, records, count, nil
}

// SplitUnchecked slices data without validating the region shape.
//
// The caller must guarantee what Split verifies: data holds the header and
// the remainder is stride-aligned. Trailing bytes short of a whole record
// are excluded from the record view.
func SplitUnchecked(data []byte, headerBytes, recordBytes int) (header, records []byte, count uint64) {
	header = data[:headerBytes]
	rest := data[headerBytes:]
	count = uint64(len(rest) / recordBytes)
	return header, rest[:count*uint64(recordBytes)], count
}

// Record returns the i-th fixed-stride record in records.
//
// Bounds are the caller's burden, consistent with the container hot paths.
func Record(records []byte, i uint64, recordBytes int) []byte {
	off := i * uint64(recordBytes)
	return records[off : off+uint64(recordBytes)]
}
