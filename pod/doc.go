// Package pod provides the byte-reinterpretation primitives shared by the
// stevia containers.
//
// Every stevia structure lives entirely inside a caller-supplied byte
// region and is re-hydrated by slicing that region into typed views, with
// no decode pass. This package owns the two pieces every container needs:
//
//   - a fixed-width unsigned field codec (1, 2, 4 or 8 byte big-endian
//     fields), used for header fields and node registers
//   - region splitting: validated (and unchecked) slicing of a region
//     into a fixed header view and a fixed-stride record array view
//
// It also carries the small fixed-size wrapper views Str and Bool for
// payloads embedded in container records.
//
// Validation is confined to view construction. The per-field accessors
// place the burden of knowledge on the caller, as the hot paths of the
// containers do.
package pod
