package parser

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/xiam/sexptree/ast"
)

// Parse tokenizes src and builds the tree of its first form. An empty or
// blank input produces an empty group.
func Parse(src string, opts ...Option) (*ast.Node, error) {
	return NewCursor(src, opts...).Tree()
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader, opts ...Option) (*ast.Node, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(buf), opts...)
}

// Tree builds a tree starting at the current token. If the cursor is already
// finished the result is an empty group.
func (c *Cursor) Tree() (*ast.Node, error) {
	return c.tree(0)
}

func (c *Cursor) tree(depth int) (*ast.Node, error) {
	if c.Finished() {
		return ast.NewGroup(), nil
	}

	tok, err := c.Current()
	if err != nil {
		return nil, err
	}

	if tok != c.open {
		sym, err := c.Consume()
		if err != nil {
			return nil, err
		}
		c.trace(depth, sym, "symbol")
		return ast.NewSymbol(sym), nil
	}

	c.trace(depth, tok, "open group")
	c.Advance()

	children := []*ast.Node{}
	for {
		isClose, err := c.IsClose()
		if err != nil {
			return nil, err
		}
		if isClose {
			break
		}
		child, err := c.tree(depth + 1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	c.trace(depth, c.close, "close group")
	c.Advance()

	return ast.NewGroup(children...), nil
}

func (c *Cursor) trace(depth int, tok string, msg string) {
	if c.log == nil {
		return
	}
	c.log.WithFields(logrus.Fields{
		"pos":   c.pos,
		"token": tok,
		"depth": depth,
	}).Debug(msg)
}
