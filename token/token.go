/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the raw design token tree and key handling.
package token

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Tree is a node of the raw token tree as authored by designers.
// A node is either a group (string keys mapping to child nodes) or a
// token leaf (a group-shaped node carrying a "value" key, optionally a
// "type" and "description"). Key order is preserved from the source
// document and drives output order everywhere downstream.
type Tree = *orderedmap.OrderedMap[string, any]

// NewTree creates an empty tree node.
func NewTree() Tree {
	return orderedmap.New[string, any]()
}

// reserved keys never name a child token or group.
var reserved = map[string]bool{
	"value":       true,
	"type":        true,
	"description": true,
}

// IsReserved reports whether key is token metadata rather than a child name.
func IsReserved(key string) bool {
	return reserved[key]
}

// AsTree returns v as a Tree if it is group-shaped.
func AsTree(v any) (Tree, bool) {
	t, ok := v.(Tree)
	if !ok || t == nil {
		return nil, false
	}
	return t, true
}

// IsLeaf reports whether t is a token leaf, i.e. carries a value.
func IsLeaf(t Tree) bool {
	if t == nil {
		return false
	}
	_, ok := t.Get("value")
	return ok
}

// LeafValue returns the leaf's raw value, which may still be an alias.
func LeafValue(t Tree) any {
	if t == nil {
		return nil
	}
	v, _ := t.Get("value")
	return v
}

// LeafType returns the leaf's declared type tag, or "" when untyped.
func LeafType(t Tree) string {
	if t == nil {
		return ""
	}
	v, ok := t.Get("type")
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
