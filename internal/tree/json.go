// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const jsonIndent = "  "

// ToJSON renders the tree as a JSON document with two-space indentation.
// Map keys are emitted in insertion order, so the output is byte-for-byte
// deterministic for a given tree. The document ends with a newline.
func ToJSON(n *Node) ([]byte, error) {
	if n == nil {
		return nil, ErrNilTree
	}

	var buf bytes.Buffer
	if err := writeJSON(&buf, n, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *Node, depth int) error {
	switch n.kind {
	case KindString:
		return writeJSONString(buf, n.str)
	case KindInt:
		buf.WriteString(strconv.FormatInt(n.num, 10))
	case KindFloat:
		buf.WriteString(formatJSONFloat(n.float))
	case KindBool:
		buf.WriteString(strconv.FormatBool(n.boolv))
	case KindList:
		return writeJSONList(buf, n, depth)
	case KindMap:
		return writeJSONMap(buf, n, depth)
	default:
		return fmt.Errorf("%w: kind %d", ErrUnsupportedNode, n.kind)
	}

	return nil
}

func writeJSONList(buf *bytes.Buffer, n *Node, depth int) error {
	if len(n.list) == 0 {
		buf.WriteString("[]")
		return nil
	}

	buf.WriteString("[\n")
	for i, item := range n.list {
		buf.WriteString(strings.Repeat(jsonIndent, depth+1))
		if err := writeJSON(buf, item, depth+1); err != nil {
			return err
		}
		if i < len(n.list)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(strings.Repeat(jsonIndent, depth))
	buf.WriteByte(']')

	return nil
}

func writeJSONMap(buf *bytes.Buffer, n *Node, depth int) error {
	if len(n.keys) == 0 {
		buf.WriteString("{}")
		return nil
	}

	buf.WriteString("{\n")
	for i, key := range n.keys {
		buf.WriteString(strings.Repeat(jsonIndent, depth+1))
		if err := writeJSONString(buf, key); err != nil {
			return err
		}
		buf.WriteString(": ")
		if err := writeJSON(buf, n.children[key], depth+1); err != nil {
			return err
		}
		if i < len(n.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(strings.Repeat(jsonIndent, depth))
	buf.WriteByte('}')

	return nil
}

// writeJSONString delegates escaping to encoding/json so that quoting rules
// match the standard library exactly.
func writeJSONString(buf *bytes.Buffer, s string) error {
	quoted, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding string: %w", err)
	}
	buf.Write(quoted)
	return nil
}

// formatJSONFloat keeps a decimal point in the output so a float node
// never renders as an integer literal: FromJSON decodes dotless numbers
// as integer nodes, and the kinds must survive a round trip.
func formatJSONFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// FromJSON decodes a JSON document produced by ToJSON back into a tree,
// preserving object key order. Numbers without a fractional part decode as
// integer nodes so that FromJSON(ToJSON(t)) reproduces t for any tree
// holding JSON-representable values.
func FromJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	n, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding json tree: %w", err)
	}

	return n, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeMap(dec)
		case '[':
			return decodeList(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", v)
		}
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case json.Number:
		if i, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	case nil:
		return nil, ErrUnsupportedNode
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeMap(dec *json.Decoder) (*Node, error) {
	m := Map()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		child, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		m.Set(key, child)
	}

	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeList(dec *json.Decoder) (*Node, error) {
	items := make([]*Node, 0)
	for dec.More() {
		child, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, child)
	}

	// consume closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return List(items...), nil
}
