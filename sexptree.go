// Package sexptree parses text into symbolic expression trees.
//
// Text is split into tokens: parentheses are tokens of their own, any other
// run of non-whitespace characters is a lower-cased symbol. The tree of the
// first form is then built by recursive descent:
//
//	root, err := sexptree.Parse(`(+ (* 2 3) (- 5 4))`)
//
// Callers that need lower-level control, for instance to read flat and
// nested forms from the same input, can use a Cursor instead.
package sexptree

import (
	"github.com/xiam/sexptree/ast"
	"github.com/xiam/sexptree/lexer"
	"github.com/xiam/sexptree/parser"
)

type (
	// Node is a symbol or a group of nodes.
	Node = ast.Node
	// Cursor is a read position over the tokens of a text.
	Cursor = parser.Cursor
)

// Parse returns the tree of the first form in src. Empty or blank input
// produces an empty group.
func Parse(src string) (*Node, error) {
	return parser.Parse(src)
}

// Tokenize returns the tokens of src.
func Tokenize(src string) []string {
	return lexer.Texts(lexer.Tokenize(src))
}

// NewCursor returns a cursor at the first token of src.
func NewCursor(src string) *Cursor {
	return parser.NewCursor(src)
}
