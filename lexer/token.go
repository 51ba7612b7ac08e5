package lexer

import (
	"fmt"
)

// Position is the place of a token in the source text. Lines and columns
// start at 1, columns count runes. The zero value means the position is
// unknown, as with tokens built by hand.
type Position struct {
	Line int
	Col  int
}

// IsValid reports whether the position refers to an actual place in the
// source.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Col > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a lexical unit: a delimiter or a symbol, with the place it was
// read from. The position is for error reporting only, it never takes part
// in the tree built from the tokens.
type Token struct {
	typ  TokenType
	text string
	pos  Position
}

// NewToken returns a token of the given type found at line and col.
func NewToken(typ TokenType, text string, line int, col int) Token {
	return Token{typ: typ, text: text, pos: Position{Line: line, Col: col}}
}

func (t Token) Type() TokenType {
	return t.typ
}

func (t Token) Text() string {
	return t.text
}

// Position returns where the token starts.
func (t Token) Position() Position {
	return t.pos
}

// Pos returns the line and column where the token starts.
func (t Token) Pos() (int, int) {
	return t.pos.Line, t.pos.Col
}

// Is returns true if the token is of the given type.
func (t Token) Is(typ TokenType) bool {
	return t.typ == typ
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q at %v", t.typ, t.text, t.pos)
}

// Texts returns the text of every token, in order.
func Texts(tokens []Token) []string {
	texts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		texts = append(texts, tok.text)
	}
	return texts
}
