package piecetable

import (
	"io"

	"github.com/npillmayer/piecetable/piecetree"
)

// Reader returns a reader for the bytes of the document. The reader reads
// the state of the document at the time of its creation; the table must not
// be modified while reading.
func (pt *PieceTable) Reader() io.Reader {
	return &tableReader{pt: pt, it: pt.tree.First()}
}

type tableReader struct {
	pt    *PieceTable
	it    piecetree.Iterator // piece to read next
	inner uint64             // read position within the piece
}

func (tr *tableReader) Read(p []byte) (n int, err error) {
	for n < len(p) && tr.it.Valid() {
		chunk := tr.pt.bytes(tr.it.Piece())[tr.inner:]
		k := copy(p[n:], chunk)
		n += k
		tr.inner += uint64(k)
		if k == len(chunk) {
			tr.it = tr.it.Next()
			tr.inner = 0
		}
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}
