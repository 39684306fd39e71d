package piecetree

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
	"golang.org/x/term"
)

// DumpFormat controls the appearance of a tree dump. Nil colors print
// without escape sequences.
type DumpFormat struct {
	Red    *fcolor.Color
	Black  *fcolor.Color
	Indent string
}

// PlainFormat is a dump format without colors.
var PlainFormat = DumpFormat{Indent: "  "}

// TerminalFormat returns a colored dump format if w is a terminal, and
// PlainFormat otherwise.
func TerminalFormat(w io.Writer) DumpFormat {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return PlainFormat
	}
	format := DumpFormat{
		Red:    fcolor.New(fcolor.FgRed, fcolor.Bold),
		Black:  fcolor.New(fcolor.FgBlue),
		Indent: "  ",
	}
	format.Red.EnableColor()
	format.Black.EnableColor()
	return format
}

// Dump writes a human readable picture of the tree to w, one node per line in
// pre-order, indented by depth. Every line shows color, the left-size cache,
// the piece length and the piece itself:
//
//	B (12, 5) change[3:8]
//
// Dump is a debugging aid.
func (t *Tree) Dump(w io.Writer, format DumpFormat) {
	if t.IsEmpty() {
		io.WriteString(w, "<empty>\n")
		return
	}
	type frame struct {
		n     *node
		depth int
	}
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := fr.n
		io.WriteString(w, strings.Repeat(format.Indent, fr.depth))
		tag, c := "B", format.Black
		if n.color == red {
			tag, c = "R", format.Red
		}
		if c != nil {
			c.Fprint(w, tag)
		} else {
			io.WriteString(w, tag)
		}
		fmt.Fprintf(w, " (%d, %d) %s\n", n.leftSize, n.piece.Length, n.piece)
		if n.right != leaf {
			stack = append(stack, frame{n.right, fr.depth + 1})
		}
		if n.left != leaf {
			stack = append(stack, frame{n.left, fr.depth + 1})
		}
	}
	tracer().P("tree", "dump").Debugf("dumped %d pieces", t.count)
}
