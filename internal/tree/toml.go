// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var bareTOMLKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ToTOML renders the tree as a TOML document. The root node must be a map.
//
// Scalar and list entries of a map are written as "key = value" assignments
// before any nested section. Each nested map becomes a bracketed
// "[dotted.path]" section, emitted in the order its key was declared, and a
// header is written only for branches carrying at least one assignment of
// their own — empty branches and pure intermediate nodes never produce a
// dangling header (the deeper dotted headers carry the full path). A blank
// line separates a section's own assignments from its subsections, and
// sibling sections from each other.
//
// Lists may hold scalars only; a list containing maps or further lists
// cannot be expressed in this format and is rejected with
// ErrUnsupportedNode. Callers must flatten such shapes before serializing.
func ToTOML(n *Node) ([]byte, error) {
	if n == nil {
		return nil, ErrNilTree
	}
	if n.kind != KindMap {
		return nil, fmt.Errorf("%w: TOML root must be a map", ErrUnsupportedNode)
	}

	var buf bytes.Buffer
	if err := writeTOMLTable(&buf, n, nil); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeTOMLTable(buf *bytes.Buffer, m *Node, path []string) error {
	for _, key := range m.keys {
		child := m.children[key]
		if child.kind == KindMap {
			continue
		}

		buf.WriteString(tomlKey(key))
		buf.WriteString(" = ")
		if err := writeTOMLValue(buf, child); err != nil {
			return fmt.Errorf("value of %q: %w", strings.Join(append(path, key), "."), err)
		}
		buf.WriteByte('\n')
	}

	for _, key := range m.keys {
		child := m.children[key]
		if child.kind != KindMap || !hasRenderableContent(child) {
			continue
		}

		childPath := append(append([]string(nil), path...), key)
		if hasDirectAssignments(child) {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString("[" + tomlPath(childPath) + "]\n")
		}
		if err := writeTOMLTable(buf, child, childPath); err != nil {
			return err
		}
	}

	return nil
}

// hasDirectAssignments reports whether the map carries at least one scalar
// or list entry of its own.
func hasDirectAssignments(m *Node) bool {
	for _, key := range m.keys {
		if m.children[key].kind != KindMap {
			return true
		}
	}
	return false
}

func writeTOMLValue(buf *bytes.Buffer, n *Node) error {
	switch n.kind {
	case KindString:
		buf.WriteString(quoteTOMLString(n.str))
	case KindInt:
		buf.WriteString(strconv.FormatInt(n.num, 10))
	case KindFloat:
		buf.WriteString(formatTOMLFloat(n.float))
	case KindBool:
		buf.WriteString(strconv.FormatBool(n.boolv))
	case KindList:
		buf.WriteByte('[')
		for i, item := range n.list {
			if !item.IsScalar() {
				return fmt.Errorf("%w: TOML lists may hold scalars only", ErrUnsupportedNode)
			}
			if i > 0 {
				buf.WriteString(", ")
			}
			if err := writeTOMLValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("%w: kind %d is not a TOML value", ErrUnsupportedNode, n.kind)
	}

	return nil
}

// hasRenderableContent reports whether the branch contains at least one
// scalar or list, directly or through nested maps. Branches without any
// renderable value produce no section header.
func hasRenderableContent(m *Node) bool {
	for _, key := range m.keys {
		child := m.children[key]
		if child.kind != KindMap {
			return true
		}
		if hasRenderableContent(child) {
			return true
		}
	}
	return false
}

func tomlPath(path []string) string {
	parts := make([]string, 0, len(path))
	for _, p := range path {
		parts = append(parts, tomlKey(p))
	}
	return strings.Join(parts, ".")
}

func tomlKey(key string) string {
	if bareTOMLKey.MatchString(key) {
		return key
	}
	return quoteTOMLString(key)
}

func quoteTOMLString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// formatTOMLFloat keeps a decimal point in the output: TOML floats are a
// distinct type from integers and must not collapse to "1".
func formatTOMLFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
