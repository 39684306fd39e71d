package piecetable

import (
	"github.com/npillmayer/piecetable/piecetree"
)

// Cursor navigates the document of a piece table byte by byte.
//
// The cursor is bound to the state of the table at the time of the cursor's
// creation. Modifying the table invalidates all of its cursors. Moving along
// a piece is O(1), stepping into a neighbouring piece is O(log n) worst case.
type Cursor struct {
	pt    *PieceTable
	it    piecetree.Iterator // piece containing pos, invalid at end of document
	inner uint64             // offset of pos within the piece
	pos   uint64
}

// NewCursor creates a cursor at document position pos. pos may equal Size(),
// placing the cursor at the end of the document.
func (pt *PieceTable) NewCursor(pos uint64) (*Cursor, error) {
	if pos > pt.Size() {
		return nil, ErrIndexOutOfBounds
	}
	c := &Cursor{pt: pt, pos: pos}
	if pos < pt.Size() {
		c.it = pt.tree.Find(pos)
		c.inner = pos - pt.tree.DocumentPosition(c.it)
	}
	return c, nil
}

// Pos returns the current cursor position.
func (c *Cursor) Pos() uint64 {
	if c == nil {
		return 0
	}
	return c.pos
}

// Next returns the byte at the current cursor position and advances by one
// byte.
//
// If the cursor is at the end of the document, ok is false.
func (c *Cursor) Next() (b byte, ok bool) {
	if c == nil || !c.it.Valid() {
		return 0, false
	}
	p := c.it.Piece()
	b = c.pt.buffer(p.Kind)[p.Offset+c.inner]
	c.pos++
	c.inner++
	if c.inner == p.Length {
		c.it = c.it.Next()
		c.inner = 0
	}
	return b, true
}

// Prev returns the byte before the current cursor position and moves back by
// one byte.
//
// If the cursor is at the start of the document, ok is false.
func (c *Cursor) Prev() (b byte, ok bool) {
	if c == nil || c.pos == 0 {
		return 0, false
	}
	if c.inner == 0 {
		if c.it.Valid() {
			c.it = c.it.Prev()
		} else {
			c.it = c.pt.tree.Last()
		}
		c.inner = c.it.Piece().Length
	}
	c.inner--
	c.pos--
	p := c.it.Piece()
	return c.pt.buffer(p.Kind)[p.Offset+c.inner], true
}
