/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import "bennypowers.dev/motiv/token"

// Merge deep-merges b into a copy of a. When both sides hold a branch
// under the same key the branches merge recursively; otherwise b's
// value overwrites. Keys only in a are preserved, and merged keys keep
// a's position so output order stays stable.
func Merge(a, b ColorMap) ColorMap {
	out := NewColorMap()
	if a != nil {
		for pair := a.Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, pair.Value)
		}
	}
	if b == nil {
		return out
	}
	for pair := b.Oldest(); pair != nil; pair = pair.Next() {
		existing, ok := out.Get(pair.Key)
		if ok {
			ea, aBranch := branch(existing)
			eb, bBranch := branch(pair.Value)
			if aBranch && bBranch {
				out.Set(pair.Key, Merge(ea, eb))
				continue
			}
		}
		out.Set(pair.Key, pair.Value)
	}
	return out
}

// MergeFlat merges two flat dimension maps; b's entries overwrite a's,
// keeping a's key positions.
func MergeFlat(a, b DimensionMap) DimensionMap {
	out := NewDimensionMap()
	if a != nil {
		for pair := a.Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, pair.Value)
		}
	}
	if b != nil {
		for pair := b.Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, pair.Value)
		}
	}
	return out
}

func branch(v any) (ColorMap, bool) {
	t, ok := token.AsTree(v)
	if !ok {
		return nil, false
	}
	return t, true
}
