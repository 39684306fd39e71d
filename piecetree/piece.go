package piecetree

import (
	"errors"
	"fmt"
)

// ErrInvariantViolated is returned by Check for every detected corruption of
// the tree structure or its size caches.
var ErrInvariantViolated = errors.New("piecetree: invariant violated")

// BufferKind tells which backing buffer a piece references.
type BufferKind uint8

const (
	// Initial is the read-only buffer holding the document as loaded.
	Initial BufferKind = iota
	// Change is the append-only buffer holding all inserted text.
	Change
)

func (k BufferKind) String() string {
	switch k {
	case Initial:
		return "initial"
	case Change:
		return "change"
	}
	return fmt.Sprintf("BufferKind(%d)", uint8(k))
}

// Piece describes a contiguous run of document text: Length bytes, starting
// at Offset within the buffer denoted by Kind.
type Piece struct {
	Kind   BufferKind
	Offset uint64
	Length uint64
}

// End returns the buffer offset right after the last byte of p.
func (p Piece) End() uint64 {
	return p.Offset + p.Length
}

func (p Piece) String() string {
	return fmt.Sprintf("%s[%d:%d]", p.Kind, p.Offset, p.End())
}
