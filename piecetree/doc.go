/*
Package piecetree implements the position index of a piece table: a red-black
tree holding one Piece per node, ordered by document position.

Every node caches the total length of the pieces in its left subtree. This
makes locating the piece covering a document position an O(log n) descent,
and lets the tree report the document position of any node by climbing to the
root. Rotations and the structural operations keep the caches exact; after a
piece has changed its length in place, clients call Resize (or FixSize) to
repair the caches of the node's ancestors.

All absent child and parent links point to one shared sentinel leaf, which is
black and carries no piece. The sentinel is never written to.

Trees are not safe for concurrent use. Clients have to serialize access.

Invariant checking (Check) and printing (Dump) are diagnostics for tests and
debugging tools; the editing path never calls them.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package piecetree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'piecetable'
func tracer() tracing.Trace {
	return tracing.Select("piecetable")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
