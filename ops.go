package piecetable

import (
	"fmt"
	"strings"

	"github.com/npillmayer/piecetable/piecetree"
)

// Insert inserts text at document position pos. If pos is greater than the
// length of the document, ErrIndexOutOfBounds is returned and the table is
// left unchanged.
//
// The text is copied into the table's change buffer; clients may re-use it.
func (pt *PieceTable) Insert(pos uint64, text []byte) error {
	return pt.insert(pos, text)
}

// InsertString inserts s at document position pos (see Insert).
func (pt *PieceTable) InsertString(pos uint64, s string) error {
	return pt.insert(pos, []byte(s))
}

// Delete removes the bytes [pos...pos+n) from the document. If the range
// exceeds the document, ErrIndexOutOfBounds is returned and the table is left
// unchanged.
func (pt *PieceTable) Delete(pos, n uint64) error {
	if !pt.inRange(pos, n) {
		return ErrIndexOutOfBounds
	}
	if n > 0 {
		pt.delete(pos, n)
	}
	return nil
}

// Report outputs a substring: Report(i,l) => outputs the bytes bi,...,bi+l-1.
func (pt *PieceTable) Report(pos, n uint64) (string, error) {
	if !pt.inRange(pos, n) {
		return "", ErrIndexOutOfBounds
	}
	var b strings.Builder
	b.Grow(int(n))
	err := pt.each(pos, func(chunk []byte) bool {
		k := min(uint64(len(chunk)), n)
		b.Write(chunk[:k])
		n -= k
		return n > 0
	})
	return b.String(), err
}

// String returns the complete document as a string.
func (pt *PieceTable) String() string {
	s, err := pt.Report(0, pt.Size())
	if err != nil {
		T().Errorf("piece table: %s", err.Error())
	}
	return s
}

// EachPiece calls f for every piece in document order, together with the
// document position of the piece. Iteration stops at the first error
// returned by f, and this error is returned.
func (pt *PieceTable) EachPiece(f func(Piece, uint64) error) error {
	return pt.tree.Each(f)
}

// PieceCount returns the number of pieces the document is internally split
// into.
func (pt *PieceTable) PieceCount() int {
	return pt.tree.Len()
}

// Check validates the invariants of the table's piece tree and verifies that
// every piece references a valid range of its buffer. It is meant for tests
// and debugging.
func (pt *PieceTable) Check() error {
	if err := pt.tree.Check(); err != nil {
		return err
	}
	return pt.tree.Each(func(p Piece, pos uint64) error {
		if p.End() > uint64(len(pt.buffer(p.Kind))) {
			return fmt.Errorf("%w: piece %v at %d exceeds %s buffer of length %d",
				piecetree.ErrInvariantViolated, p, pos, p.Kind, len(pt.buffer(p.Kind)))
		}
		return nil
	})
}

// --- Helpers ---------------------------------------------------------------

func (pt *PieceTable) inRange(pos, n uint64) bool {
	size := pt.Size()
	return pos <= size && n <= size-pos
}

// each calls f with the bytes of the document starting at pos, piece by
// piece, until f returns false or the end of the document is reached.
func (pt *PieceTable) each(pos uint64, f func([]byte) bool) error {
	if pos > pt.Size() {
		return ErrIndexOutOfBounds
	}
	if pos == pt.Size() {
		return nil
	}
	it := pt.tree.Find(pos)
	assert(it.Valid(), "no piece covering document position")
	inner := pos - pt.tree.DocumentPosition(it)
	for ; it.Valid(); it = it.Next() {
		if !f(pt.bytes(it.Piece())[inner:]) {
			break
		}
		inner = 0
	}
	return nil
}
