package tree

import "errors"

var (
	// ErrNilTree is returned when a serializer receives a nil root node.
	ErrNilTree = errors.New("nil tree")

	// ErrUnsupportedNode is returned when a node cannot be expressed in
	// the requested output format.
	ErrUnsupportedNode = errors.New("unsupported node")
)
