package avl

import "errors"

// NilRef is the reserved index value meaning "no node". Node references
// handed out by Insert are 1-based.
const NilRef = 0

// Node registers, in record order. The height register of a free slot is
// overlaid with the index of the next free slot.
const (
	regLeft = iota
	regRight
	regHeight
	regState
)

// Allocator header fields, in record order.
const (
	fieldRoot = iota
	fieldSize
	fieldCapacity
	fieldFreeListHead
	fieldSequence

	headerFields = 8 // five live fields plus padding slots
)

// Slot states held in the state register. A zeroed region is all free.
const (
	stateFree = 0
	stateUsed = 1
)

type branchKind uint8

const (
	branchNone branchKind = iota
	branchLeft
	branchRight
)

// ancestor is one step of a recorded descent: the parent the step came
// from, which branch was taken, and the node arrived at.
type ancestor struct {
	parent uint64
	branch branchKind
	ref    uint64
}

var (
	ErrBadLayout    = errors.New("avl: invalid layout")
	ErrTooManyNodes = errors.New("avl: node slots exceed the index width range")
	ErrBadCapacity  = errors.New("avl: capacity invalid for region and layout")
	ErrInitialized  = errors.New("avl: header already initialized")
	ErrDuplicateKey = errors.New("avl: duplicate key")
	ErrTreeFull     = errors.New("avl: tree full")
)
