package piecetree

// Iterator is a handle to a node of a tree. The zero value is an invalid
// iterator.
//
// Iterators stay valid across insertions. Erasing a node invalidates
// iterators to the node removed from the tree (see Tree.Erase).
type Iterator struct {
	n *node
}

// Valid is true if it denotes a node.
func (it Iterator) Valid() bool {
	return it.n != nil && it.n != leaf
}

// Piece returns the piece at it, or the zero Piece for an invalid iterator.
func (it Iterator) Piece() Piece {
	if !it.Valid() {
		return Piece{}
	}
	return it.n.piece
}

// Next returns the iterator of the following piece in document order.
func (it Iterator) Next() Iterator {
	if !it.Valid() {
		return Iterator{}
	}
	n := it.n
	if n.right != leaf {
		return Iterator{n: minimum(n.right)}
	}
	p := n.parent
	for p != leaf && n == p.right {
		n, p = p, p.parent
	}
	return Iterator{n: p}
}

// Prev returns the iterator of the preceding piece in document order.
func (it Iterator) Prev() Iterator {
	if !it.Valid() {
		return Iterator{}
	}
	n := it.n
	if n.left != leaf {
		return Iterator{n: maximum(n.left)}
	}
	p := n.parent
	for p != leaf && n == p.left {
		n, p = p, p.parent
	}
	return Iterator{n: p}
}

// First returns the iterator of the first piece of the document.
func (t *Tree) First() Iterator {
	if t.IsEmpty() {
		return Iterator{}
	}
	return Iterator{n: minimum(t.root)}
}

// Last returns the iterator of the last piece of the document.
func (t *Tree) Last() Iterator {
	if t.IsEmpty() {
		return Iterator{}
	}
	return Iterator{n: maximum(t.root)}
}

// Each calls f for every piece in document order, together with the document
// position of the piece. Iteration stops at the first error returned by f.
func (t *Tree) Each(f func(p Piece, pos uint64) error) error {
	var pos uint64
	for it := t.First(); it.Valid(); it = it.Next() {
		if err := f(it.n.piece, pos); err != nil {
			return err
		}
		pos += it.n.piece.Length
	}
	return nil
}
