package lexer

import (
	"strings"
	"unicode"
)

var defaultTokenizer = New(DefaultSymbols)

type lexState func(*scanState) lexState

// Tokenizer splits text into tokens. Every character of its symbol set is
// emitted as a token of its own, runs of other non-whitespace characters are
// emitted lower-cased.
type Tokenizer struct {
	symbols map[rune]struct{}
}

// New creates a Tokenizer that uses the characters in symbols as delimiters.
func New(symbols string) *Tokenizer {
	tz := &Tokenizer{
		symbols: make(map[rune]struct{}, len(symbols)),
	}
	for _, r := range symbols {
		tz.symbols[r] = struct{}{}
	}
	return tz
}

func (tz *Tokenizer) isSymbol(r rune) bool {
	_, ok := tz.symbols[r]
	return ok
}

// Tokenize returns all the tokens within the given text. It never fails, an
// empty or blank input produces no tokens.
func (tz *Tokenizer) Tokenize(in string) []Token {
	st := &scanState{
		tz:     tz,
		in:     []rune(in),
		buf:    []rune{},
		tokens: []Token{},
		line:   1,
	}

	for state := lexDefaultState; state != nil; {
		state = state(st)
	}

	return st.tokens
}

// Tokenize splits the given text using DefaultSymbols as delimiters.
func Tokenize(in string) []Token {
	return defaultTokenizer.Tokenize(in)
}

type scanState struct {
	tz *Tokenizer

	in     []rune
	offset int

	buf    []rune
	tokens []Token

	// position of the last rune read
	line    int
	col     int
	newline bool

	// position of the first rune in buf
	startLine int
	startCol  int
}

func (st *scanState) next() (rune, bool) {
	if st.offset >= len(st.in) {
		return rune(0), false
	}

	r := st.in[st.offset]
	st.offset++

	if st.newline {
		st.line++
		st.col = 0
		st.newline = false
	}
	st.col++

	if r == '\n' {
		st.newline = true
	}

	return r, true
}

func (st *scanState) emit(tt TokenType, lexeme string, line int, col int) {
	st.tokens = append(st.tokens, NewToken(tt, lexeme, line, col))
}

func (st *scanState) flush() {
	if len(st.buf) == 0 {
		return
	}
	st.emit(TokenSymbol, strings.ToLower(string(st.buf)), st.startLine, st.startCol)
	st.buf = st.buf[0:0]
}

func lexDefaultState(st *scanState) lexState {
	r, ok := st.next()
	if !ok {
		return lexEOF
	}

	switch {
	case unicode.IsSpace(r):
		return lexWhitespace
	case st.tz.isSymbol(r):
		return lexDelimiter(r)
	default:
		return lexCollect(r)
	}
}

func lexWhitespace(st *scanState) lexState {
	st.flush()
	return lexDefaultState
}

func lexDelimiter(r rune) lexState {
	return func(st *scanState) lexState {
		st.flush()
		st.emit(TokenDelimiter, string(r), st.line, st.col)
		return lexDefaultState
	}
}

func lexCollect(r rune) lexState {
	return func(st *scanState) lexState {
		if len(st.buf) == 0 {
			st.startLine, st.startCol = st.line, st.col
		}
		st.buf = append(st.buf, r)
		return lexDefaultState
	}
}

func lexEOF(st *scanState) lexState {
	st.flush()
	return nil
}
