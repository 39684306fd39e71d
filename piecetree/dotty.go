package piecetree

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[*node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*node]int),
		max:     1,
	}
}

func (ids *nodeids) alloc(n *node) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). label, if non-nil, adds a line of text to the
// label of each node, e.g. the text the piece references.
//
func Tree2Dot(t *Tree, w io.Writer, label func(Piece) string) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	stack := make([]*node, 0, 32)
	if !t.IsEmpty() {
		stack = append(stack, t.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ID := ids.alloc(n)
		text := fmt.Sprintf("%d | %d\\n%s", n.leftSize, n.piece.Length, n.piece)
		if label != nil {
			text += "\\n“" + dotEscape(label(n.piece)) + "”"
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, text, nodeDotStyles(n))
		for i, ch := range [...]*node{n.left, n.right} {
			if ch == leaf {
				nilid := ID*2 + i + 100000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(ch))
			stack = append(stack, ch)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",style=filled,fillcolor=black,shape=box,fixedsize=true,width=.2,height=.2]"
}

func nodeDotStyles(n *node) string {
	s := ",style=filled,shape=box,fontcolor=white"
	if n.color == red {
		s += ",color=\"#cc0000\",fillcolor=\"#cc0000\""
	} else {
		s += ",color=black,fillcolor=black"
	}
	return s
}

func dotEscape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			out = append(out, '\\', c)
		case '\n':
			out = append(out, '\\', 'n')
		default:
			if c < ' ' {
				out = append(out, '.')
			} else {
				out = append(out, c)
			}
		}
	}
	return string(out)
}
