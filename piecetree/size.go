package piecetree

// propagate adds delta to the left-size cache of every ancestor of n which
// has n in its left subtree.
func (t *Tree) propagate(n *node, delta int64) {
	if delta == 0 {
		return
	}
	for n != t.root {
		p := n.parent
		if n == p.left {
			p.leftSize = addDelta(p.leftSize, delta)
		}
		n = p
	}
}

// subtreeSize sums the lengths of all pieces below and including n, following
// the right spine. Caches within n's subtree must be valid along that spine.
func subtreeSize(n *node) uint64 {
	var size uint64
	for ; n != leaf; n = n.right {
		size += n.leftSize + n.piece.Length
	}
	return size
}

// FixSize repairs the left-size caches after the length of the piece at it
// has been changed without a structural edit.
//
// All caches have to be correct, except for the ones of ancestors having the
// changed node in their left subtree. The nearest such ancestor gets its cache
// recomputed from its left subtree, which contains the changed node on its
// right spine; the resulting delta is then added to every further ancestor
// reached over a left-child edge.
func (t *Tree) FixSize(it Iterator) {
	if !it.Valid() {
		return
	}
	n := it.n
	for n != t.root && n == n.parent.right {
		n = n.parent
	}
	if n == t.root {
		return // no ancestor has the piece in its left subtree
	}
	p := n.parent
	size := subtreeSize(p.left)
	delta := int64(size) - int64(p.leftSize)
	p.leftSize = size
	t.propagate(p, delta)
}

// Resize sets offset and length of the piece at it and repairs the tree's
// size bookkeeping. length must be positive; pieces shrinking to zero have to
// be erased instead.
func (t *Tree) Resize(it Iterator, offset, length uint64) {
	assert(it.Valid(), "resize of invalid iterator")
	assert(length > 0, "resize to zero length")
	n := it.n
	delta := int64(length) - int64(n.piece.Length)
	n.piece.Offset = offset
	n.piece.Length = length
	t.ChangeSize(delta)
	t.FixSize(it)
}

// Find returns an iterator to the piece covering document position pos.
// If pos is beyond the end of the document, an invalid iterator is returned.
func (t *Tree) Find(pos uint64) Iterator {
	if pos >= t.size {
		return Iterator{}
	}
	n := t.root
	for n != leaf {
		if pos < n.leftSize {
			n = n.left
		} else if pos < n.leftSize+n.piece.Length {
			return Iterator{n: n}
		} else {
			pos -= n.leftSize + n.piece.Length
			n = n.right
		}
	}
	return Iterator{}
}

// DocumentPosition returns the document position of the first byte of the
// piece at it.
func (t *Tree) DocumentPosition(it Iterator) uint64 {
	assert(it.Valid(), "document position of invalid iterator")
	n := it.n
	pos := n.leftSize
	for n != t.root {
		p := n.parent
		if n == p.right {
			pos += p.leftSize + p.piece.Length
		}
		n = p
	}
	return pos
}
