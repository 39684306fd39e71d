package piecetree

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

type color uint8

const (
	black color = iota
	red
)

// node is a tree node carrying a piece. leftSize caches the sum of the
// lengths of all pieces in the node's left subtree.
type node struct {
	piece    Piece
	leftSize uint64
	color    color
	left     *node
	right    *node
	parent   *node
}

// leaf is the sentinel terminating every absent link. It is black and its
// fields are never written.
var leaf = &node{color: black}

func newNode(p Piece) *node {
	return &node{
		piece:  p,
		color:  red,
		left:   leaf,
		right:  leaf,
		parent: leaf,
	}
}

// Tree is an augmented red-black tree of pieces, ordered by document position.
//
// Create trees with New. A Tree owns all of its nodes; erasing a node drops
// its piece.
type Tree struct {
	root  *node
	count int
	size  uint64 // sum of all piece lengths
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{root: leaf}
}

// Len returns the number of pieces in the tree.
func (t *Tree) Len() int {
	return t.count
}

// IsEmpty is true for a tree without pieces.
func (t *Tree) IsEmpty() bool {
	return t.root == leaf
}

// SizeDocument returns the sum of the lengths of all pieces, i.e. the length
// of the document the tree describes.
func (t *Tree) SizeDocument() uint64 {
	return t.size
}

// ChangeSize adjusts the cached document size by delta. Clients call it after
// a piece's length changed in place. The resulting size must not be negative.
func (t *Tree) ChangeSize(delta int64) {
	assert(delta >= 0 || uint64(-delta) <= t.size, "document size must not become negative")
	t.size = addDelta(t.size, delta)
}

// --- Insertion -------------------------------------------------------------

// InsertAsRoot inserts p into an empty tree. Calling it for a non-empty tree
// is a programming error.
func (t *Tree) InsertAsRoot(p Piece) Iterator {
	assert(t.IsEmpty(), "insert as root called for non-empty tree")
	z := newNode(p)
	z.color = black
	t.root = z
	t.count = 1
	t.size = p.Length
	return Iterator{n: z}
}

// InsertLeftOf inserts p immediately before the piece at it, in document order.
// For an empty tree, it must be the zero Iterator and p becomes the root.
func (t *Tree) InsertLeftOf(p Piece, it Iterator) Iterator {
	if t.IsEmpty() {
		return t.InsertAsRoot(p)
	}
	assert(it.Valid(), "insert left of invalid iterator")
	z := newNode(p)
	n := it.n
	if n.left == leaf {
		n.left = z
		z.parent = n
	} else {
		m := maximum(n.left) // predecessor, right slot is free
		m.right = z
		z.parent = m
	}
	t.linked(z)
	return Iterator{n: z}
}

// InsertRightOf inserts p immediately after the piece at it, in document order.
// For an empty tree, it must be the zero Iterator and p becomes the root.
func (t *Tree) InsertRightOf(p Piece, it Iterator) Iterator {
	if t.IsEmpty() {
		return t.InsertAsRoot(p)
	}
	assert(it.Valid(), "insert right of invalid iterator")
	z := newNode(p)
	n := it.n
	if n.right == leaf {
		n.right = z
		z.parent = n
	} else {
		m := minimum(n.right) // successor, left slot is free
		m.left = z
		z.parent = m
	}
	t.linked(z)
	return Iterator{n: z}
}

// linked finishes the insertion of a freshly linked red node z.
func (t *Tree) linked(z *node) {
	t.count++
	t.size += z.piece.Length
	t.propagate(z, int64(z.piece.Length))
	t.insertFixup(z)
}

func (t *Tree) insertFixup(z *node) {
	for z.parent.color == red {
		gp := z.parent.parent
		if z.parent == gp.left {
			y := gp.right
			if y.color == red {
				z.parent.color = black
				y.color = black
				gp.color = red
				z = gp
				continue
			}
			if z == z.parent.right {
				z = z.parent
				t.rotateLeft(z)
			}
			z.parent.color = black
			z.parent.parent.color = red
			t.rotateRight(z.parent.parent)
		} else {
			y := gp.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				gp.color = red
				z = gp
				continue
			}
			if z == z.parent.left {
				z = z.parent
				t.rotateRight(z)
			}
			z.parent.color = black
			z.parent.parent.color = red
			t.rotateLeft(z.parent.parent)
		}
	}
	t.root.color = black
}

// --- Erasure ---------------------------------------------------------------

// Erase removes the piece at it from the tree. Erase is a no-op for an invalid
// iterator.
//
// If the node at it has two children, the piece of its in-order successor is
// moved into it and the successor's node is removed instead. Iterators
// pointing to the successor are invalid afterwards, while it denotes the
// successor's piece.
func (t *Tree) Erase(it Iterator) {
	if !it.Valid() {
		return
	}
	z := it.n
	removed := z.piece.Length
	y := z
	if z.left != leaf && z.right != leaf {
		y = minimum(z.right)
		t.propagate(y, -int64(y.piece.Length))
		t.propagate(z, int64(y.piece.Length)-int64(z.piece.Length))
		z.piece = y.piece
	} else {
		t.propagate(y, -int64(y.piece.Length))
	}
	// y has at most one child
	x := y.left
	if x == leaf {
		x = y.right
	}
	xParent := y.parent
	if x != leaf {
		x.parent = xParent
	}
	if xParent == leaf {
		t.root = x
	} else if y == xParent.left {
		xParent.left = x
	} else {
		xParent.right = x
	}
	t.count--
	t.size -= removed
	if y.color == black {
		t.eraseFixup(x, xParent)
	}
	y.left, y.right, y.parent = nil, nil, nil
}

// eraseFixup restores the red-black properties after a black node has been
// spliced out. x may be the sentinel, therefore its parent is tracked
// separately.
func (t *Tree) eraseFixup(x, parent *node) {
	for x != t.root && x.color == black {
		if x == parent.left {
			w := parent.right
			if w.color == red {
				w.color = black
				parent.color = red
				t.rotateLeft(parent)
				w = parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x, parent = parent, parent.parent
				continue
			}
			if w.right.color == black {
				w.left.color = black
				w.color = red
				t.rotateRight(w)
				w = parent.right
			}
			w.color = parent.color
			parent.color = black
			w.right.color = black
			t.rotateLeft(parent)
			x = t.root
		} else {
			w := parent.left
			if w.color == red {
				w.color = black
				parent.color = red
				t.rotateRight(parent)
				w = parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x, parent = parent, parent.parent
				continue
			}
			if w.left.color == black {
				w.right.color = black
				w.color = red
				t.rotateLeft(w)
				w = parent.left
			}
			w.color = parent.color
			parent.color = black
			w.left.color = black
			t.rotateRight(parent)
			x = t.root
		}
	}
	if x != leaf {
		x.color = black
	}
}

// Clear drops all pieces. Nodes are released iteratively.
func (t *Tree) Clear() {
	stack := make([]*node, 0, 64)
	if t.root != leaf {
		stack = append(stack, t.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != leaf {
			stack = append(stack, n.left)
		}
		if n.right != leaf {
			stack = append(stack, n.right)
		}
		n.left, n.right, n.parent = nil, nil, nil
	}
	t.root = leaf
	t.count = 0
	t.size = 0
}

// --- Rotations -------------------------------------------------------------

// rotateLeft rotates around x with right child y. Everything left of x,
// including x itself, ends up left of y.
func (t *Tree) rotateLeft(x *node) {
	y := x.right
	y.leftSize += x.piece.Length + x.leftSize
	x.right = y.left
	if y.left != leaf {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == leaf {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight rotates around x with left child y. y and its left subtree
// leave the left subtree of x.
func (t *Tree) rotateRight(x *node) {
	y := x.left
	x.leftSize -= y.piece.Length + y.leftSize
	x.left = y.right
	if y.right != leaf {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == leaf {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// --- Helpers ---------------------------------------------------------------

func minimum(n *node) *node {
	for n.left != leaf {
		n = n.left
	}
	return n
}

func maximum(n *node) *node {
	for n.right != leaf {
		n = n.right
	}
	return n
}

func addDelta(v uint64, delta int64) uint64 {
	if delta < 0 {
		return v - uint64(-delta)
	}
	return v + uint64(delta)
}
