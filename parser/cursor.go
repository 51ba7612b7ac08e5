package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/xiam/sexptree/lexer"
)

// Cursor is a read position over a sequence of tokens. It supports
// lookahead, expectations and consumption, and it only moves forward.
type Cursor struct {
	tokens []lexer.Token
	pos    int

	open  string
	close string

	log logrus.FieldLogger
}

// NewCursor tokenizes src and returns a cursor at its first token.
func NewCursor(src string, opts ...Option) *Cursor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newCursor(o.tokenizer().Tokenize(src), o)
}

// NewTokenCursor returns a cursor over the given tokens.
func NewTokenCursor(tokens []lexer.Token, opts ...Option) *Cursor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newCursor(tokens, o)
}

func newCursor(tokens []lexer.Token, o options) *Cursor {
	return &Cursor{
		tokens: tokens,
		open:   string(o.open),
		close:  string(o.close),
		log:    o.log,
	}
}

// Finished returns true if all tokens were consumed.
func (c *Cursor) Finished() bool {
	return c.pos == len(c.tokens)
}

// Pos returns the index of the current token.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the number of tokens.
func (c *Cursor) Len() int {
	return len(c.tokens)
}

// Open returns the token that opens a group.
func (c *Cursor) Open() string {
	return c.open
}

// Close returns the token that closes a group.
func (c *Cursor) Close() string {
	return c.close
}

// Token returns the token at the given distance from the current position.
func (c *Cursor) Token(offset int) (lexer.Token, error) {
	index := c.pos + offset
	if index < 0 || index >= len(c.tokens) {
		return lexer.Token{}, &OutOfRangeError{Index: index, Count: len(c.tokens)}
	}
	return c.tokens[index], nil
}

// Peek returns the text of the token at the given distance from the current
// position, without consuming it.
func (c *Cursor) Peek(offset int) (string, error) {
	tok, err := c.Token(offset)
	if err != nil {
		return "", err
	}
	return tok.Text(), nil
}

// Current returns the text of the current token.
func (c *Cursor) Current() (string, error) {
	return c.Peek(0)
}

// IsClose returns true if the current token closes a group.
func (c *Cursor) IsClose() (bool, error) {
	tok, err := c.Current()
	if err != nil {
		return false, err
	}
	return tok == c.close, nil
}

// Advance moves the cursor to the next token.
func (c *Cursor) Advance() {
	c.AdvanceBy(1)
}

// AdvanceBy moves the cursor n tokens forward. Moving past the last token is
// allowed, any read after that fails. The cursor never moves backwards: a
// non-positive n leaves it where it is.
func (c *Cursor) AdvanceBy(n int) {
	if n <= 0 {
		return
	}
	c.pos += n
}

// Expect consumes the current token if it matches tok, otherwise it returns
// an *UnexpectedTokenError.
func (c *Cursor) Expect(tok string) error {
	curr, err := c.Token(0)
	if err != nil {
		return err
	}
	if curr.Text() != tok {
		line, col := curr.Pos()
		return &UnexpectedTokenError{
			Expected: tok,
			Actual:   curr.Text(),
			Pos:      c.pos,
			Line:     line,
			Col:      col,
		}
	}
	c.Advance()
	return nil
}

// Consume returns the current token and moves to the next one.
func (c *Cursor) Consume() (string, error) {
	tok, err := c.Current()
	if err != nil {
		return "", err
	}
	c.Advance()
	return tok, nil
}

// ConsumeGroupOfSymbols reads a group that is known to contain no nested
// groups and returns its tokens. Nested delimiters are not interpreted: an
// open delimiter is returned as a plain symbol and the first close delimiter
// ends the group.
func (c *Cursor) ConsumeGroupOfSymbols() ([]string, error) {
	if err := c.Expect(c.open); err != nil {
		return nil, err
	}

	symbols := []string{}
	for {
		isClose, err := c.IsClose()
		if err != nil {
			return nil, err
		}
		if isClose {
			break
		}
		tok, err := c.Consume()
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, tok)
	}

	if err := c.Expect(c.close); err != nil {
		return nil, err
	}
	return symbols, nil
}
