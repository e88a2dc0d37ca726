// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tree defines the value tree that configuration builders hand to
// the serializers. A node is a scalar (string, integer, float or boolean),
// a list of nodes, or a map of name→node that preserves insertion order.
//
// Trees are built fresh for every synthesis run and are treated as
// immutable once passed to ToJSON or ToTOML.
package tree

// Kind identifies the variant stored in a Node.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindList
	KindMap
)

// Node is one element of a value tree. Exactly one of the value fields is
// meaningful, selected by Kind. Use the constructors instead of building
// Node values by hand.
type Node struct {
	kind Kind

	str   string
	num   int64
	float float64
	boolv bool
	list  []*Node

	keys     []string
	children map[string]*Node
}

// String returns a string scalar node.
func String(v string) *Node {
	return &Node{kind: KindString, str: v}
}

// Int returns an integer scalar node.
func Int(v int64) *Node {
	return &Node{kind: KindInt, num: v}
}

// Float returns a floating-point scalar node.
func Float(v float64) *Node {
	return &Node{kind: KindFloat, float: v}
}

// Bool returns a boolean scalar node.
func Bool(v bool) *Node {
	return &Node{kind: KindBool, boolv: v}
}

// List returns a list node holding the given items. Nil items are dropped,
// so absent values never occupy a list slot.
func List(items ...*Node) *Node {
	n := &Node{kind: KindList}
	for _, item := range items {
		if item != nil {
			n.list = append(n.list, item)
		}
	}
	return n
}

// Strings returns a list node of string scalars.
func Strings(values ...string) *Node {
	items := make([]*Node, 0, len(values))
	for _, v := range values {
		items = append(items, String(v))
	}
	return List(items...)
}

// Map returns an empty ordered map node.
func Map() *Node {
	return &Node{
		kind:     KindMap,
		children: make(map[string]*Node),
	}
}

// Kind reports the variant of the node.
func (n *Node) Kind() Kind { return n.kind }

// StringValue returns the string payload of a KindString node.
func (n *Node) StringValue() string { return n.str }

// IntValue returns the integer payload of a KindInt node.
func (n *Node) IntValue() int64 { return n.num }

// FloatValue returns the float payload of a KindFloat node.
func (n *Node) FloatValue() float64 { return n.float }

// BoolValue returns the boolean payload of a KindBool node.
func (n *Node) BoolValue() bool { return n.boolv }

// Items returns the elements of a KindList node.
func (n *Node) Items() []*Node { return n.list }

// Set stores child under key, preserving first-insertion order. Setting a
// nil child is a no-op: an absent value never materializes a key, which is
// how "field omitted" propagates through the builders. Re-setting an
// existing key replaces the value but keeps its original position.
func (n *Node) Set(key string, child *Node) *Node {
	if n.kind != KindMap || child == nil {
		return n
	}
	if _, ok := n.children[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.children[key] = child
	return n
}

// Get returns the child stored under key, or nil.
func (n *Node) Get(key string) *Node {
	if n.kind != KindMap {
		return nil
	}
	return n.children[key]
}

// Keys returns the map keys in insertion order.
func (n *Node) Keys() []string {
	return n.keys
}

// Len returns the number of entries of a map or list node.
func (n *Node) Len() int {
	switch n.kind {
	case KindMap:
		return len(n.keys)
	case KindList:
		return len(n.list)
	default:
		return 0
	}
}

// IsScalar reports whether the node is a scalar variant.
func (n *Node) IsScalar() bool {
	switch n.kind {
	case KindString, KindInt, KindFloat, KindBool:
		return true
	default:
		return false
	}
}

// Equal reports deep equality of two trees, including map key order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindString:
		return a.str == b.str
	case KindInt:
		return a.num == b.num
	case KindFloat:
		return a.float == b.float
	case KindBool:
		return a.boolv == b.boolv
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i, key := range a.keys {
			if b.keys[i] != key {
				return false
			}
			if !Equal(a.children[key], b.children[key]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
