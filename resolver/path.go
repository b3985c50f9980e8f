/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides token reference resolution.
package resolver

import (
	"strings"

	"bennypowers.dev/motiv/token"
)

// CollectRoots returns every group-shaped subtree reachable from tree:
// the tree itself first, then all descendant groups in pre-order.
// Descent stops at token leaves. Alias paths in real-world exports are
// anchored ambiguously (the document root, a primitives set, a semantic
// set), so path resolution tries each of these roots in this fixed
// order. The order is part of the resolution contract.
func CollectRoots(tree token.Tree) []token.Tree {
	if tree == nil {
		return nil
	}
	roots := []token.Tree{tree}
	for pair := tree.Oldest(); pair != nil; pair = pair.Next() {
		child, ok := token.AsTree(pair.Value)
		if !ok || token.IsLeaf(child) {
			continue
		}
		roots = append(roots, CollectRoots(child)...)
	}
	return roots
}

// FindByPath locates the value referenced by a dotted alias path. Each
// candidate root gets exactly one attempt to satisfy the full path; the
// first root that resolves to a token leaf or literal wins. Partial
// matches in earlier roots never block later roots. Returns false when
// no candidate satisfies the path.
func FindByPath(path string, tree token.Tree) (any, bool) {
	segments := strings.Split(path, ".")
	for _, root := range CollectRoots(tree) {
		if v, ok := walkPath(root, segments); ok {
			return v, true
		}
	}
	return nil, false
}

// walkPath descends root segment by segment. At each step an exact key
// match is preferred; otherwise a key whose loose form equals the loose
// segment matches, tolerating spacing and case drift between alias
// text and actual key names.
func walkPath(root token.Tree, segments []string) (any, bool) {
	var current any = root
	for _, segment := range segments {
		group, ok := token.AsTree(current)
		if !ok {
			return nil, false
		}
		child, ok := lookupKey(group, segment)
		if !ok {
			return nil, false
		}
		current = child
	}

	if node, ok := token.AsTree(current); ok {
		if token.IsLeaf(node) {
			return token.LeafValue(node), true
		}
		// A bare group is not a resolvable target.
		return nil, false
	}
	return current, true
}

func lookupKey(group token.Tree, segment string) (any, bool) {
	if v, ok := group.Get(segment); ok {
		return v, true
	}
	want := token.LooseKey(segment)
	for pair := group.Oldest(); pair != nil; pair = pair.Next() {
		if token.LooseKey(pair.Key) == want {
			return pair.Value, true
		}
	}
	return nil, false
}
