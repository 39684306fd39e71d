/*
Package html creates piece tables from the textual content of HTML.
*/
package html

import (
	"bytes"
	"io"

	"github.com/npillmayer/piecetable"
	"golang.org/x/net/html"
)

// InnerText creates a piece table for the textual content of an HTML element
// and all its descendents. It resembles the text produced by
//
//      document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
//
// The text becomes the initial buffer of the piece table.
//
func InnerText(n *html.Node) (*piecetable.PieceTable, error) {
	if n == nil {
		return nil, piecetable.ErrIllegalArguments
	}
	var b bytes.Buffer
	collectText(n, &b)
	return piecetable.New(b.Bytes()), nil
}

func collectText(n *html.Node, b *bytes.Buffer) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		switch n.Data {
		case "script", "style":
			return
		case "br":
			b.WriteByte('\n')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML creates a piece table from the textual content of an HTML
// fragment. It does not interpret layout and styling, but extracts the pure
// text.
func TextFromHTML(input io.Reader) (*piecetable.PieceTable, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	for _, n := range nodes {
		collectText(n, &b)
	}
	piecetable.T().Debugf("extracted %d bytes of text from %d HTML nodes", b.Len(), len(nodes))
	return piecetable.New(b.Bytes()), nil
}
