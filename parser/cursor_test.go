package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sexptree/lexer"
)

const testExpr = `(+ (* 2 3) (- 5 4))`

var testExprTokens = []string{"(", "+", "(", "*", "2", "3", ")", "(", "-", "5", "4", ")", ")"}

func TestCursorConsume(t *testing.T) {
	c := NewCursor(testExpr)
	assert.Equal(t, len(testExprTokens), c.Len())

	for _, tok := range testExprTokens {
		assert.False(t, c.Finished())

		got, err := c.Consume()
		require.NoError(t, err)
		assert.Equal(t, tok, got)
	}
	assert.True(t, c.Finished())

	_, err := c.Consume()
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestCursorExpect(t *testing.T) {
	c := NewCursor(testExpr)

	for _, tok := range testExprTokens {
		require.NoError(t, c.Expect(tok))
	}
	assert.True(t, c.Finished())
}

func TestCursorPeek(t *testing.T) {
	c := NewCursor(testExpr)

	for i := 0; i < len(testExprTokens)-1; i++ {
		curr, err := c.Current()
		require.NoError(t, err)
		assert.Equal(t, testExprTokens[i], curr)

		next, err := c.Peek(1)
		require.NoError(t, err)
		assert.Equal(t, testExprTokens[i+1], next)

		assert.Equal(t, i, c.Pos())
		c.Advance()
	}

	require.NoError(t, c.Expect(")"))
	assert.True(t, c.Finished())
}

func TestCursorPeekOutOfRange(t *testing.T) {
	testCases := []struct {
		In     string
		Offset int
		Index  int
		Count  int
	}{
		{``, 0, 0, 0},
		{`a`, 1, 1, 1},
		{`(a b)`, 7, 7, 4},
		{`(a b)`, -1, -1, 4},
	}

	for i := range testCases {
		c := NewCursor(testCases[i].In)

		_, err := c.Peek(testCases[i].Offset)
		require.Error(t, err)

		var rangeErr *OutOfRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, testCases[i].Index, rangeErr.Index)
		assert.Equal(t, testCases[i].Count, rangeErr.Count)
		assert.True(t, errors.Is(err, ErrOutOfRange))
		assert.False(t, errors.Is(err, ErrUnexpectedToken))
	}
}

func TestCursorAdvancePastEnd(t *testing.T) {
	c := NewCursor(`(a)`)
	c.AdvanceBy(5)

	assert.False(t, c.Finished())
	assert.Equal(t, 5, c.Pos())

	_, err := c.Current()
	assert.EqualError(t, err, "token index 5; 3 tokens available")

	_, err = c.IsClose()
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestCursorAdvanceByNonPositive(t *testing.T) {
	testCases := []int{0, -1, -10}

	for _, n := range testCases {
		c := NewCursor(testExpr)
		c.Advance()
		c.AdvanceBy(n)

		assert.Equal(t, 1, c.Pos(), "n: %d", n)
		tok, err := c.Current()
		require.NoError(t, err)
		assert.Equal(t, "+", tok)
	}
}

func TestCursorIsClose(t *testing.T) {
	c := NewCursor(`(a)`)

	for _, expected := range []bool{false, false, true} {
		isClose, err := c.IsClose()
		require.NoError(t, err)
		assert.Equal(t, expected, isClose)
		c.Advance()
	}

	_, err := c.IsClose()
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestCursorExpectMismatch(t *testing.T) {
	c := NewCursor(testExpr)
	require.NoError(t, c.Expect("("))

	err := c.Expect(")")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))

	var tokErr *UnexpectedTokenError
	require.True(t, errors.As(err, &tokErr))
	assert.Equal(t, ")", tokErr.Expected)
	assert.Equal(t, "+", tokErr.Actual)
	assert.Equal(t, 1, tokErr.Pos)
	assert.Equal(t, 1, tokErr.Line)
	assert.Equal(t, 2, tokErr.Col)
	assert.EqualError(t, err, `token ")" expected, token "+" encountered at position 1`)

	// a failed expectation does not consume
	assert.Equal(t, 1, c.Pos())
	curr, err := c.Current()
	require.NoError(t, err)
	assert.Equal(t, "+", curr)
}

func TestCursorExpectExhausted(t *testing.T) {
	c := NewCursor(``)
	err := c.Expect("(")
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestCursorConsumeGroupOfSymbols(t *testing.T) {
	c := NewCursor(testExpr)
	require.NoError(t, c.Expect("("))
	require.NoError(t, c.Expect("+"))

	symbols, err := c.ConsumeGroupOfSymbols()
	require.NoError(t, err)
	assert.Equal(t, []string{"*", "2", "3"}, symbols)

	symbols, err = c.ConsumeGroupOfSymbols()
	require.NoError(t, err)
	assert.Equal(t, []string{"-", "5", "4"}, symbols)

	isClose, err := c.IsClose()
	require.NoError(t, err)
	assert.True(t, isClose)

	require.NoError(t, c.Expect(")"))
	assert.True(t, c.Finished())
}

func TestCursorConsumeGroupOfSymbolsFlat(t *testing.T) {
	{
		c := NewCursor(`(* 2 3)`)
		symbols, err := c.ConsumeGroupOfSymbols()
		require.NoError(t, err)
		assert.Equal(t, []string{"*", "2", "3"}, symbols)
		assert.True(t, c.Finished())
	}

	{
		c := NewCursor(`()`)
		symbols, err := c.ConsumeGroupOfSymbols()
		require.NoError(t, err)
		assert.Equal(t, []string{}, symbols)
		assert.True(t, c.Finished())
	}

	{
		// nested delimiters are opaque, the first close ends the group
		c := NewCursor(`(+ (* 2 3))`)
		require.NoError(t, c.Expect("("))
		require.NoError(t, c.Expect("+"))

		symbols, err := c.ConsumeGroupOfSymbols()
		require.NoError(t, err)
		assert.Equal(t, []string{"*", "2", "3"}, symbols)
		assert.False(t, c.Finished())
		require.NoError(t, c.Expect(")"))
		assert.True(t, c.Finished())
	}

	{
		c := NewCursor(`((a) b)`)
		symbols, err := c.ConsumeGroupOfSymbols()
		require.NoError(t, err)
		assert.Equal(t, []string{"(", "a"}, symbols)
		assert.Equal(t, 4, c.Pos())
	}
}

func TestCursorConsumeGroupOfSymbolsErrors(t *testing.T) {
	{
		c := NewCursor(`a b)`)
		_, err := c.ConsumeGroupOfSymbols()
		assert.True(t, errors.Is(err, ErrUnexpectedToken))
	}

	{
		c := NewCursor(`(a b`)
		_, err := c.ConsumeGroupOfSymbols()
		assert.True(t, errors.Is(err, ErrOutOfRange))
	}

	{
		c := NewCursor(``)
		_, err := c.ConsumeGroupOfSymbols()
		assert.True(t, errors.Is(err, ErrOutOfRange))
	}
}

func TestCursorToken(t *testing.T) {
	c := NewCursor("(foo\n  bar)")
	c.AdvanceBy(2)

	tok, err := c.Token(0)
	require.NoError(t, err)
	assert.Equal(t, "bar", tok.Text())
	assert.True(t, tok.Is(lexer.TokenSymbol))

	line, col := tok.Pos()
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, col)

	tok, err = c.Token(-2)
	require.NoError(t, err)
	assert.True(t, tok.Is(lexer.TokenDelimiter))
}

func TestCursorDelimiters(t *testing.T) {
	c := NewCursor(`[a [B c]]`, WithDelimiters('[', ']'))
	assert.Equal(t, "[", c.Open())
	assert.Equal(t, "]", c.Close())

	require.NoError(t, c.Expect("["))
	require.NoError(t, c.Expect("a"))

	symbols, err := c.ConsumeGroupOfSymbols()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, symbols)
	require.NoError(t, c.Expect("]"))
	assert.True(t, c.Finished())
}

func TestNewTokenCursor(t *testing.T) {
	tokens := lexer.New("<>").Tokenize(`<a b>`)
	c := NewTokenCursor(tokens, WithDelimiters('<', '>'))

	symbols, err := c.ConsumeGroupOfSymbols()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, symbols)
}
