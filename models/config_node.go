// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// NodeKind tells whether a [Node] is a leaf value or a nested mapping.
type NodeKind uint8

const (
	// KindLeaf marks a node holding a scalar JSON value (string, bool,
	// json.Number, nil) or an opaque JSON array.
	KindLeaf NodeKind = iota

	// KindMap marks a node holding named child nodes.
	KindMap
)

// String returns a human-readable name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Node is a tagged union over {leaf, map} used to represent the user
// preferences tree. Traversal and creation of intermediate nodes are
// type-checked through the Kind tag instead of relying on type assertions
// scattered over map[string]any values.
//
// The zero value is not usable; build nodes with [NewLeaf], [NewMap] or
// [NodeFromValue].
type Node struct {
	kind     NodeKind
	value    any
	children map[string]*Node
}

// Config is the root of a preferences tree. A Config is always a map node.
type Config = Node

// NewLeaf wraps v into a leaf node. Nested map[string]any values are not
// expanded; use [NodeFromValue] for arbitrary decoded JSON.
func NewLeaf(v any) *Node {
	return &Node{kind: KindLeaf, value: v}
}

// NewMap returns an empty map node.
func NewMap() *Node {
	return &Node{kind: KindMap, children: make(map[string]*Node)}
}

// NodeFromValue converts a decoded JSON value into a tree. Objects become
// map nodes, everything else becomes a leaf.
func NodeFromValue(v any) *Node {
	switch typed := v.(type) {
	case *Node:
		return typed.Clone()
	case map[string]any:
		n := NewMap()
		for key, child := range typed {
			n.children[key] = NodeFromValue(child)
		}
		return n
	default:
		return NewLeaf(typed)
	}
}

// Kind returns the node tag.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// IsMap reports whether n is a map node.
func (n *Node) IsMap() bool {
	return n != nil && n.kind == KindMap
}

// Value returns the leaf payload. For map nodes it returns the plain
// map[string]any representation of the subtree.
func (n *Node) Value() any {
	if n.kind == KindMap {
		return n.Interface()
	}
	return n.value
}

// Keys returns the child keys of a map node in sorted order.
func (n *Node) Keys() []string {
	if n.kind != KindMap {
		return nil
	}
	return slices.Sorted(maps.Keys(n.children))
}

// Child returns the direct child stored under key.
func (n *Node) Child(key string) (*Node, bool) {
	if n.kind != KindMap {
		return nil, false
	}
	child, ok := n.children[key]
	return child, ok
}

// Len returns the number of children of a map node, zero for leaves.
func (n *Node) Len() int {
	return len(n.children)
}

// Clone returns a deep structural copy of n. The copy shares no maps with
// the original, so either side may be mutated freely.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	if n.kind == KindLeaf {
		return &Node{kind: KindLeaf, value: cloneLeafValue(n.value)}
	}

	out := NewMap()
	for key, child := range n.children {
		out.children[key] = child.Clone()
	}
	return out
}

// Equal reports whether n and other describe the same JSON structure.
// Leaves are compared by their JSON encoding, so json.Number("1") and
// float64(1) are considered equal.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind {
		return false
	}

	if n.kind == KindLeaf {
		left, errL := json.Marshal(n.value)
		right, errR := json.Marshal(other.value)
		if errL != nil || errR != nil {
			return false
		}
		return bytes.Equal(left, right)
	}

	if len(n.children) != len(other.children) {
		return false
	}
	for key, child := range n.children {
		otherChild, ok := other.children[key]
		if !ok || !child.Equal(otherChild) {
			return false
		}
	}
	return true
}

// Get walks path and returns the node stored at its end.
//
// Returns [ErrInvalidPath] for an empty path and [ErrVariableNotFound] when
// any segment is missing or traverses a leaf.
func (n *Node) Get(path VariablePath) (*Node, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}

	current := n
	for i, segment := range path {
		child, ok := current.Child(segment)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrVariableNotFound, path[:i+1])
		}
		current = child
	}
	return current, nil
}

// Set assigns value at path, creating missing intermediate map nodes.
// The tree is modified in place.
//
// Returns [ErrInvalidPath] when the path is empty, contains an empty segment,
// or when a non-terminal segment points at an existing leaf. In the latter
// case the tree is left untouched.
func (n *Node) Set(path VariablePath, value *Node) error {
	if err := path.Validate(); err != nil {
		return err
	}
	if n.kind != KindMap {
		return fmt.Errorf("%w: root is not an object", ErrInvalidPath)
	}

	current := n
	for i, segment := range path[:len(path)-1] {
		child, ok := current.children[segment]
		if !ok {
			child = NewMap()
			current.children[segment] = child
		} else if child.kind != KindMap {
			return fmt.Errorf("%w: %s is not an object", ErrInvalidPath, path[:i+1])
		}
		current = child
	}

	current.children[path[len(path)-1]] = value
	return nil
}

// Interface converts the tree back into plain Go values
// (map[string]any for map nodes).
func (n *Node) Interface() any {
	if n.kind == KindLeaf {
		return n.value
	}
	out := make(map[string]any, len(n.children))
	for key, child := range n.children {
		out[key] = child.Interface()
	}
	return out
}

// Flatten returns every leaf of the tree keyed by its dot-path.
func (n *Node) Flatten() map[string]any {
	flat := make(map[string]any)
	n.flattenInto(flat, "")
	return flat
}

func (n *Node) flattenInto(flat map[string]any, prefix string) {
	if n.kind == KindLeaf {
		flat[prefix] = n.value
		return
	}
	for key, child := range n.children {
		childPath := key
		if prefix != "" {
			childPath = prefix + "." + key
		}
		child.flattenInto(flat, childPath)
	}
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Interface())
}

// UnmarshalJSON implements json.Unmarshaler. Numbers are kept as
// json.Number so that values survive a load/persist cycle unchanged.
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after top-level value")
	}

	*n = *NodeFromValue(raw)
	return nil
}

func cloneLeafValue(v any) any {
	arr, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]any, len(arr))
	for i, item := range arr {
		switch typed := item.(type) {
		case map[string]any:
			out[i] = NodeFromValue(typed).Interface()
		case []any:
			out[i] = cloneLeafValue(typed)
		default:
			out[i] = typed
		}
	}
	return out
}
