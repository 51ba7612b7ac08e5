// Package report formats parse errors for humans: the location of the error,
// the offending source line and a caret pointing at the token.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/xiam/sexptree/parser"
)

// Locate returns the 1-based line and column that err refers to within src.
// Errors caused by running out of tokens point right after the end of the
// input.
func Locate(src string, err error) (int, int, bool) {
	var tokErr *parser.UnexpectedTokenError
	if errors.As(err, &tokErr) {
		return tokErr.Line, tokErr.Col, true
	}

	if errors.Is(err, parser.ErrOutOfRange) {
		lines := strings.Split(src, "\n")
		last := lines[len(lines)-1]
		return len(lines), len([]rune(last)) + 1, true
	}

	return 0, 0, false
}

// Write describes err to w. The name identifies the input, usually a file
// name.
func Write(w io.Writer, name string, src string, err error) error {
	line, col, ok := Locate(src, err)
	if !ok {
		_, werr := fmt.Fprintf(w, "%s: %v\n", name, err)
		return werr
	}

	if _, werr := fmt.Fprintf(w, "%s:%d:%d: %v\n", name, line, col, err); werr != nil {
		return werr
	}

	text := sourceLine(src, line)
	_, werr := fmt.Fprintf(w, "    %s\n    %s^\n", text, padding(text, col))
	return werr
}

func sourceLine(src string, line int) string {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], "\r")
}

// padding returns the whitespace that aligns a caret under the given column,
// taking wide characters and tabs into account. Tokens built by hand may
// carry no position, those get no padding.
func padding(text string, col int) string {
	if col < 1 {
		return ""
	}
	runes := []rune(text)
	if col-1 < len(runes) {
		runes = runes[:col-1]
	}

	var b strings.Builder
	gr := uniseg.NewGraphemes(string(runes))
	for gr.Next() {
		g := gr.Str()
		if g == "\t" {
			b.WriteString("\t")
			continue
		}
		b.WriteString(strings.Repeat(" ", uniseg.StringWidth(g)))
	}
	return b.String()
}
