/*
Package piecetable implements a piece-table text buffer, the storage engine
beneath the edit model of a text editor.

Piece Tables

A piece table never copies or rewrites document content. It holds two byte
buffers: the initial buffer with the document as it was loaded, which is never
modified, and an append-only change buffer receiving every byte inserted
since. The document is described by a sequence of pieces, each referencing a
contiguous run of bytes within one of the two buffers. Inserting text appends
it to the change buffer and splices a new piece into the sequence; deleting
text shrinks, splits or drops pieces. Bytes deleted from the document stay in
their buffer, unreferenced.

The sequence of pieces is kept in a red-black tree (package piecetree), which
caches for every node the length of the text to its left. Locating, inserting
and deleting at an arbitrary document position are O(log n) in the number of
pieces. Typing sequentially extends the most recent piece in place and does
not allocate at all.

Positions are zero-based byte offsets into the logical document. Operations
work on bytes; piece tables do not interpret UTF-8 or grapheme clusters.

A PieceTable is not safe for concurrent use. Clients have to serialize
access, e.g. by having one edit session own the table.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package piecetable

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the tracer selected by key 'piecetable'.
func T() tracing.Trace {
	return tracing.Select("piecetable")
}

// TableError is an error type for the piecetable module.
type TableError string

func (e TableError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a document position is
// beyond the bounds of the document.
const ErrIndexOutOfBounds = TableError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TableError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
