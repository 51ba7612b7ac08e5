// Package render writes trees and tokens in the output formats supported by
// the sexpr command.
package render

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xiam/sexptree/ast"
	"github.com/xiam/sexptree/internal/config"
	"github.com/xiam/sexptree/lexer"
)

// Renderer writes trees in one output format.
type Renderer struct {
	format string
	open   rune
	close  rune
}

// New returns a Renderer for the given output format. Groups are written
// with parentheses unless other delimiters are set.
func New(format string) *Renderer {
	return &Renderer{
		format: format,
		open:   '(',
		close:  ')',
	}
}

// WithDelimiters sets the delimiters used by the sexpr format.
func (r *Renderer) WithDelimiters(open, close rune) *Renderer {
	r.open, r.close = open, close
	return r
}

// Tree writes n to w.
func (r *Renderer) Tree(w io.Writer, n *ast.Node) error {
	switch r.format {
	case config.OutputSexpr:
		_, err := fmt.Fprintf(w, "%s\n", ast.EncodeDelimited(n, r.open, r.close))
		return err

	case config.OutputTree:
		ast.Fprint(w, n)
		return nil

	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(n)

	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(n); err != nil {
			return err
		}
		return enc.Close()

	case config.OutputXML:
		return writeXML(w, n, 0)
	}

	return fmt.Errorf("unknown output format %q", r.format)
}

func writeXML(w io.Writer, n *ast.Node, level int) error {
	indent := strings.Repeat("  ", level)

	if n.IsGroup() {
		if n.Len() == 0 {
			_, err := fmt.Fprintf(w, "%s<%s/>\n", indent, n.Type())
			return err
		}
		if _, err := fmt.Fprintf(w, "%s<%s>\n", indent, n.Type()); err != nil {
			return err
		}
		for _, child := range n.List() {
			if err := writeXML(w, child, level+1); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s</%s>\n", indent, n.Type())
		return err
	}

	var text strings.Builder
	if err := xml.EscapeText(&text, []byte(n.Text())); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s<%s>%s</%s>\n", indent, n.Type(), text.String(), n.Type())
	return err
}

// Tokens writes one token per line, with its position and type. Tokens
// without a position are marked with a dash.
func Tokens(w io.Writer, tokens []lexer.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%v\t%s\t%q\n", tok.Position(), tok.Type(), tok.Text()); err != nil {
			return err
		}
	}
	return nil
}
