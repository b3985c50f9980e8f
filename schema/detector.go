/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "bennypowers.dev/motiv/token"

// Detect inspects the top-level set names of a raw token tree and
// returns the naming convention it follows. Detection is duck-typed on
// loosely matched set names; the current convention wins when both
// could apply.
func Detect(tree token.Tree) Convention {
	if tree == nil {
		return Unknown
	}
	if hasTopLevelSet(tree, "primitives") || hasTopLevelSet(tree, "semantic") {
		return Current
	}
	if hasTopLevelSet(tree, "primitive") || hasTopLevelSet(tree, "alias") {
		return Legacy
	}
	return Unknown
}

func hasTopLevelSet(tree token.Tree, name string) bool {
	want := token.LooseKey(name)
	for pair := tree.Oldest(); pair != nil; pair = pair.Next() {
		if token.LooseKey(pair.Key) != want {
			continue
		}
		if child, ok := token.AsTree(pair.Value); ok && !token.IsLeaf(child) {
			return true
		}
	}
	return false
}
