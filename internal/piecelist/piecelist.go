/*
Package piecelist is a plain, slice-based piece table. It is the reference
model the tree-based piece table is tested against: it applies the same
splitting and merging rules to an ordered slice of pieces, searching it
linearly.

Package piecelist is not meant for production use; every operation is O(n).
*/
package piecelist

import (
	"errors"

	"github.com/npillmayer/piecetable/piecetree"
)

// ErrIndexOutOfBounds is returned for positions outside the document.
var ErrIndexOutOfBounds = errors.New("piecelist: index out of bounds")

// List is a piece table holding its pieces in document order in a slice.
type List struct {
	initial []byte
	change  []byte
	pieces  []piecetree.Piece
	size    uint64
}

// New creates a list for a document with content initial.
func New(initial []byte) *List {
	l := &List{initial: initial}
	if len(initial) > 0 {
		l.pieces = []piecetree.Piece{{Kind: piecetree.Initial, Length: uint64(len(initial))}}
		l.size = uint64(len(initial))
	}
	return l
}

// Size returns the length of the document.
func (l *List) Size() uint64 {
	return l.size
}

// Pieces returns the pieces in document order.
func (l *List) Pieces() []piecetree.Piece {
	return l.pieces
}

// Insert inserts text at pos.
func (l *List) Insert(pos uint64, text []byte) error {
	if pos > l.size {
		return ErrIndexOutOfBounds
	}
	if len(text) == 0 {
		return nil
	}
	n := uint64(len(text))
	tail := uint64(len(l.change))
	l.change = append(l.change, text...)
	np := piecetree.Piece{Kind: piecetree.Change, Offset: tail, Length: n}
	if len(l.pieces) == 0 {
		l.pieces = []piecetree.Piece{np}
		l.size = n
		return nil
	}
	target := pos
	if pos == l.size {
		target--
	}
	i, start := l.find(target)
	p := l.pieces[i]
	inner := pos - start
	l.size += n
	switch {
	case p.Kind == piecetree.Change && inner == p.Length && p.End() == tail:
		l.pieces[i].Length += n
	case inner == 0:
		l.insertAt(i, np)
	case inner == p.Length:
		l.insertAt(i+1, np)
	default:
		right := piecetree.Piece{Kind: p.Kind, Offset: p.Offset + inner, Length: p.Length - inner}
		l.pieces[i].Length = inner
		l.insertAt(i+1, np)
		l.insertAt(i+2, right)
	}
	return nil
}

// Delete removes [pos, pos+n) from the document.
func (l *List) Delete(pos, n uint64) error {
	if pos > l.size || n > l.size-pos {
		return ErrIndexOutOfBounds
	}
	l.size -= n
	for n > 0 {
		i, start := l.find(pos)
		p := l.pieces[i]
		inner := pos - start
		k := min(n, p.Length-inner)
		switch {
		case inner == 0 && k == p.Length:
			l.pieces = append(l.pieces[:i], l.pieces[i+1:]...)
		case inner == 0:
			l.pieces[i].Offset += k
			l.pieces[i].Length -= k
		case inner+k == p.Length:
			l.pieces[i].Length = inner
		default:
			right := piecetree.Piece{Kind: p.Kind, Offset: p.Offset + inner + k, Length: p.Length - inner - k}
			l.pieces[i].Length = inner
			l.insertAt(i+1, right)
		}
		n -= k
	}
	return nil
}

// String returns the document.
func (l *List) String() string {
	b := make([]byte, 0, l.size)
	for _, p := range l.pieces {
		buf := l.change
		if p.Kind == piecetree.Initial {
			buf = l.initial
		}
		b = append(b, buf[p.Offset:p.End()]...)
	}
	return string(b)
}

// find returns the index and document position of the piece covering pos.
func (l *List) find(pos uint64) (int, uint64) {
	var start uint64
	for i, p := range l.pieces {
		if pos < start+p.Length {
			return i, start
		}
		start += p.Length
	}
	panic("piecelist: position not covered by any piece")
}

func (l *List) insertAt(i int, p piecetree.Piece) {
	l.pieces = append(l.pieces, piecetree.Piece{})
	copy(l.pieces[i+1:], l.pieces[i:])
	l.pieces[i] = p
}
