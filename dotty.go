package piecetable

import (
	"fmt"
	"io"

	"github.com/npillmayer/piecetable/piecetree"
)

// Table2Dot outputs the internal structure of a piece table in Graphviz DOT
// format (for debugging purposes). Every node of the piece tree is labelled
// with the start of the text its piece references.
//
func Table2Dot(pt *PieceTable, w io.Writer) {
	piecetree.Tree2Dot(pt.tree, w, func(p Piece) string {
		return strstart(pt.bytes(p))
	})
	T().Debugf("piece table DOT: %d pieces", pt.PieceCount())
}

// strstart returns the first few bytes of a piece's text.
func strstart(b []byte) string {
	if len(b) > 10 {
		return string(b[:10]) + "…"
	}
	return string(b)
}

// DumpTable writes the piece tree of pt to w, one node per line, followed by
// a summary of the buffer sizes. If w is a terminal, red and black nodes are
// colored.
func DumpTable(pt *PieceTable, w io.Writer) {
	pt.tree.Dump(w, piecetree.TerminalFormat(w))
	fmt.Fprintf(w, "%d pieces, %d bytes: initial buffer %d, change buffer %d\n",
		pt.PieceCount(), pt.Size(), len(pt.initial), len(pt.change))
}
