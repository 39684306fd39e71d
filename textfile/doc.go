/*
Package textfile loads text files as piece tables.

The content of a file becomes the initial buffer of a piece table. Files are
read in fragments by a background goroutine, starting with the fragment
containing an initial position of interest. Every loaded fragment is
broadcast to all subscribers, including the loading call itself, which
returns the piece table as soon as all fragments have arrived.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile
