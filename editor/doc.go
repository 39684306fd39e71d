/*
Package editor implements a small clipboard editor on top of a piece table.

An Editor owns a piece table and serializes all operations on it. Besides
inserting and deleting text, it supports cut, copy and paste with a single
clipboard, and counts misspelled words against a Dictionary.

Edits may be scripted: Replay reads an edit script, one command per line,
and applies it to an editor:

	# comments start with a hash sign
	insert 0 "Hello World"
	copy 0 5
	paste 11
	delete 5 6
	cut 0 6

Positions are byte offsets into the document. Ranges [i,j) are half-open.

# BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package editor
