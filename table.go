package piecetable

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/piecetable/piecetree"
)

// Piece is re-exported for clients iterating over the pieces of a table.
type Piece = piecetree.Piece

// PieceTable is a text buffer for editing. It combines an immutable initial
// buffer, an append-only change buffer and a tree of pieces referencing
// both of them.
//
// Create piece tables with New.
type PieceTable struct {
	initial []byte          // document as loaded, never modified
	change  []byte          // inserted text, append-only
	tree    *piecetree.Tree // pieces in document order
}

// New creates a piece table for a document with content initial. initial is
// borrowed and must not be modified by the client for the lifetime of the
// table. A nil or empty initial buffer creates an empty document.
func New(initial []byte) *PieceTable {
	pt := &PieceTable{
		initial: initial,
		tree:    piecetree.New(),
	}
	if len(initial) > 0 {
		pt.tree.InsertAsRoot(Piece{
			Kind:   piecetree.Initial,
			Offset: 0,
			Length: uint64(len(initial)),
		})
	}
	return pt
}

// Size returns the length of the document in bytes.
func (pt *PieceTable) Size() uint64 {
	return pt.tree.SizeDocument()
}

// InsertCharacter inserts byte ch at document position pos, shifting the
// following text to the right. pos may equal Size(), appending ch.
//
// If pos is beyond the end of the document, ErrIndexOutOfBounds is returned
// and the table is left unchanged.
func (pt *PieceTable) InsertCharacter(pos uint64, ch byte) error {
	return pt.insert(pos, []byte{ch})
}

// DeleteCharacter removes the byte at document position pos.
//
// If pos is not a position within the document, ErrIndexOutOfBounds is
// returned and the table is left unchanged.
func (pt *PieceTable) DeleteCharacter(pos uint64) error {
	if pos >= pt.Size() {
		return ErrIndexOutOfBounds
	}
	pt.delete(pos, 1)
	return nil
}

// LookupCharacter returns the byte at document position pos.
// pos must be less than Size(); violating this is a programming error and
// will panic.
func (pt *PieceTable) LookupCharacter(pos uint64) byte {
	assert(pos < pt.Size(), "lookup beyond end of document")
	it := pt.tree.Find(pos)
	assert(it.Valid(), "no piece covering document position")
	p := it.Piece()
	return pt.buffer(p.Kind)[p.Offset+pos-pt.tree.DocumentPosition(it)]
}

// --- Internal edit operations ----------------------------------------------

// insert inserts text at pos. It is the common implementation for inserting
// single bytes and byte runs.
func (pt *PieceTable) insert(pos uint64, text []byte) error {
	if pos > pt.Size() {
		return ErrIndexOutOfBounds
	}
	if len(text) == 0 {
		return nil
	}
	n := uint64(len(text))
	tail := uint64(len(pt.change))
	if pt.tree.IsEmpty() {
		pt.change = append(pt.change, text...)
		pt.tree.InsertAsRoot(Piece{Kind: piecetree.Change, Offset: tail, Length: n})
		return nil
	}
	target := pos
	if pos == pt.Size() {
		target = pos - 1 // append to the last piece
	}
	it := pt.tree.Find(target)
	assert(it.Valid(), "no piece covering insert position")
	p := it.Piece()
	start := pt.tree.DocumentPosition(it)
	assert(start <= pos && pos <= start+p.Length, "found piece does not cover insert position")
	inner := pos - start
	pt.change = append(pt.change, text...)
	if p.Kind == piecetree.Change && inner == p.Length && p.End() == tail {
		// typing sequentially: extend the piece
		pt.tree.Resize(it, p.Offset, p.Length+n)
		return nil
	}
	np := Piece{Kind: piecetree.Change, Offset: tail, Length: n}
	switch inner {
	case 0:
		pt.tree.InsertLeftOf(np, it)
	case p.Length:
		pt.tree.InsertRightOf(np, it)
	default:
		right := Piece{Kind: p.Kind, Offset: p.Offset + inner, Length: p.Length - inner}
		pt.tree.InsertRightOf(right, it)
		pt.tree.InsertRightOf(np, it)
		pt.tree.Resize(it, p.Offset, inner)
	}
	T().P("pos", pos).Debugf("inserted %d bytes, %d pieces", n, pt.tree.Len())
	return nil
}

// delete removes the n bytes at [pos, pos+n). The range must have been
// validated by the caller.
func (pt *PieceTable) delete(pos, n uint64) {
	for n > 0 {
		it := pt.tree.Find(pos)
		assert(it.Valid(), "no piece covering delete position")
		p := it.Piece()
		inner := pos - pt.tree.DocumentPosition(it)
		assert(inner < p.Length, "found piece does not cover delete position")
		k := min(n, p.Length-inner)
		switch {
		case inner == 0 && k == p.Length:
			pt.tree.Erase(it)
		case inner == 0:
			pt.tree.Resize(it, p.Offset+k, p.Length-k)
		case inner+k == p.Length:
			pt.tree.Resize(it, p.Offset, inner)
		default:
			right := Piece{Kind: p.Kind, Offset: p.Offset + inner + k, Length: p.Length - inner - k}
			pt.tree.InsertRightOf(right, it)
			pt.tree.Resize(it, p.Offset, inner)
		}
		n -= k
	}
	T().P("pos", pos).Debugf("deleted, %d pieces", pt.tree.Len())
}

func (pt *PieceTable) buffer(kind piecetree.BufferKind) []byte {
	if kind == piecetree.Initial {
		return pt.initial
	}
	return pt.change
}

// bytes returns the bytes a piece references.
func (pt *PieceTable) bytes(p Piece) []byte {
	return pt.buffer(p.Kind)[p.Offset:p.End()]
}
