package ast

import (
	"fmt"
)

// Node represents a symbolic expression, it is either a symbol or a group of
// nodes. Nodes are immutable once created.
type Node struct {
	nt   NodeType
	text string
	list []*Node
}

// NewSymbol creates and returns a node of type "symbol"
func NewSymbol(text string) *Node {
	return &Node{
		nt:   NodeTypeSymbol,
		text: text,
	}
}

// NewGroup creates and returns a node of type "group" holding the given
// children, in order.
func NewGroup(children ...*Node) *Node {
	list := make([]*Node, len(children))
	copy(list, children)
	return &Node{
		nt:   NodeTypeGroup,
		list: list,
	}
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// IsSymbol returns true if the node is of type symbol
func (n *Node) IsSymbol() bool {
	return n.nt == NodeTypeSymbol
}

// IsGroup returns true if the node is of type group
func (n *Node) IsGroup() bool {
	return n.nt == NodeTypeGroup
}

// Text returns the text of a symbol, groups have no text.
func (n *Node) Text() string {
	return n.text
}

// List returns a copy of the children of a group.
func (n *Node) List() []*Node {
	if n.nt != NodeTypeGroup {
		return nil
	}
	list := make([]*Node, len(n.list))
	copy(list, n.list)
	return list
}

// Len returns the number of children of a group.
func (n *Node) Len() int {
	return len(n.list)
}

// Is returns true if the node is a symbol with the given text.
func (n *Node) Is(target string) bool {
	return n.nt == NodeTypeSymbol && n.text == target
}

// Head returns the leftmost symbol of the tree, following the first child of
// every group. It returns false if an empty group is found on the way.
func (n *Node) Head() (string, bool) {
	for n.nt == NodeTypeGroup {
		if len(n.list) == 0 {
			return "", false
		}
		n = n.list[0]
	}
	return n.text, true
}

// Flatten returns the text of every symbol in the tree, depth-first and from
// left to right.
func (n *Node) Flatten() []string {
	return flatten(n, []string{})
}

func flatten(n *Node, out []string) []string {
	if n.nt == NodeTypeSymbol {
		return append(out, n.text)
	}
	for i := range n.list {
		out = flatten(n.list[i], out)
	}
	return out
}

// Equal reports whether two trees have the same shape and symbols.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.nt != o.nt || n.text != o.text || len(n.list) != len(o.list) {
		return false
	}
	for i := range n.list {
		if !n.list[i].Equal(o.list[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return string(Encode(n))
}

// GoString returns a compact description of the node, useful for debugging.
func (n *Node) GoString() string {
	switch n.nt {
	case NodeTypeGroup:
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.list))
	}
	return fmt.Sprintf("(%v): %q", n.nt, n.text)
}
