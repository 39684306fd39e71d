/*
Command ptedit applies edit scripts to text files, using a piece table as
the document buffer. It is a tool for exercising and inspecting piece
tables:

	ptedit apply notes.txt edits.txt     # print the edited document
	ptedit dot --empty edits.txt | dot -Tsvg > tree.svg
	ptedit dump notes.txt < edits.txt    # print the piece tree
	ptedit spell --dict /usr/share/dict/words notes.txt

Configuration is read from a NestedText file `ptedit.nt` at the standard
configuration locations of the OS. Recognized keys are

	tracing.adapter        (default: go)
	tracelevel.root        trace level of the root tracer
	tracelevel.piecetable  trace level of the piece table packages
	textfile.fragsize      fragment size for loading files
	editor.dictionary      word list for spell checking

Command line flags override configuration values.

# BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
