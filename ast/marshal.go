package ast

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes a symbol as a JSON string and a group as a JSON array.
// Symbols are written verbatim, characters such as < or & are not escaped.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.nt == NodeTypeGroup {
		return marshalJSON(n.list)
	}
	return marshalJSON(n.text)
}

func marshalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalYAML encodes a symbol as a YAML string and a group as a YAML
// sequence.
func (n *Node) MarshalYAML() (interface{}, error) {
	if n.nt == NodeTypeGroup {
		return n.list, nil
	}
	return n.text, nil
}
