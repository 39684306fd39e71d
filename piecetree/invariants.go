package piecetree

import "fmt"

// Check validates the structural invariants of the tree:
// parent links, red-black coloring, left-size caches, the cached document size,
// the node count, and the absence of empty pieces.
//
// Check is meant to be used by tests and debugging tools.
func (t *Tree) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: tree not initialized", ErrInvariantViolated)
	}
	if leaf.color != black || leaf.leftSize != 0 || leaf.piece != (Piece{}) {
		return fmt.Errorf("%w: sentinel has been modified", ErrInvariantViolated)
	}
	if t.root == leaf {
		if t.count != 0 || t.size != 0 {
			return fmt.Errorf("%w: empty tree with count=%d, size=%d",
				ErrInvariantViolated, t.count, t.size)
		}
		return nil
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root is red", ErrInvariantViolated)
	}
	if t.root.parent != leaf {
		return fmt.Errorf("%w: root has a parent", ErrInvariantViolated)
	}
	count, size, _, err := checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: node count mismatch (%d != %d)", ErrInvariantViolated, count, t.count)
	}
	if size != t.size {
		return fmt.Errorf("%w: document size mismatch (%d != %d)", ErrInvariantViolated, size, t.size)
	}
	return nil
}

// checkNode returns node count, total piece length and black height of the
// subtree at n.
func checkNode(n *node) (count int, size uint64, blackHeight int, err error) {
	if n == leaf {
		return 0, 0, 1, nil
	}
	if n.piece.Length == 0 {
		return 0, 0, 0, fmt.Errorf("%w: empty piece %v", ErrInvariantViolated, n.piece)
	}
	for _, ch := range [...]*node{n.left, n.right} {
		if ch == nil {
			return 0, 0, 0, fmt.Errorf("%w: nil link at piece %v", ErrInvariantViolated, n.piece)
		}
		if ch != leaf && ch.parent != n {
			return 0, 0, 0, fmt.Errorf("%w: broken parent link below piece %v",
				ErrInvariantViolated, n.piece)
		}
		if n.color == red && ch.color == red {
			return 0, 0, 0, fmt.Errorf("%w: red piece %v has red child", ErrInvariantViolated, n.piece)
		}
	}
	lcount, lsize, lheight, err := checkNode(n.left)
	if err != nil {
		return 0, 0, 0, err
	}
	rcount, rsize, rheight, err := checkNode(n.right)
	if err != nil {
		return 0, 0, 0, err
	}
	if lheight != rheight {
		return 0, 0, 0, fmt.Errorf("%w: black heights differ at piece %v (%d != %d)",
			ErrInvariantViolated, n.piece, lheight, rheight)
	}
	if lsize != n.leftSize {
		return 0, 0, 0, fmt.Errorf("%w: left size of piece %v is %d, should be %d",
			ErrInvariantViolated, n.piece, n.leftSize, lsize)
	}
	if n.color == black {
		lheight++
	}
	return lcount + rcount + 1, lsize + n.piece.Length + rsize, lheight, nil
}
