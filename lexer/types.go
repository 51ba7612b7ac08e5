package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenSymbol              // Run of non-delimiter, non-whitespace characters
	TokenDelimiter           // Single character from the tokenizer's symbol set
)

// DefaultSymbols is the symbol set used to tokenize s-expressions.
const DefaultSymbols = "()"

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenSymbol:    "symbol",
	TokenDelimiter: "delimiter",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}
