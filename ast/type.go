package ast

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeSymbol NodeType = iota + 1
	NodeTypeGroup
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeSymbol: "symbol",
	NodeTypeGroup:  "group",
}
