package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w.
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeGroup:
		fmt.Fprintf(w, "%d\n", n.Len())
		for i := range n.list {
			printLevel(w, n.list[i], level+1)
		}

	case NodeTypeSymbol:
		fmt.Fprintf(w, "%q\n", n.Text())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its canonical text representation: groups
// are enclosed in parentheses and their children separated by a single space.
func Encode(n *Node) []byte {
	return EncodeDelimited(n, '(', ')')
}

// EncodeDelimited works like Encode but encloses groups in the given
// delimiters.
func EncodeDelimited(n *Node, open, close rune) []byte {
	var b strings.Builder
	encodeNode(&b, n, open, close)
	return []byte(b.String())
}

func encodeNode(b *strings.Builder, n *Node, open, close rune) {
	switch n.Type() {
	case NodeTypeGroup:
		b.WriteRune(open)
		for i := range n.list {
			if i > 0 {
				b.WriteByte(' ')
			}
			encodeNode(b, n.list[i], open, close)
		}
		b.WriteRune(close)

	case NodeTypeSymbol:
		b.WriteString(n.text)

	default:
		panic("unknown node type")
	}
}
