/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package extract walks raw token subtrees and assembles typed output maps.
package extract

import (
	"strconv"

	"bennypowers.dev/motiv/token"
)

// stringify renders a resolved value for output. Numbers use the
// shortest representation that round-trips.
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		return ""
	}
}

// looseChild finds a direct child of group by loose key match.
func looseChild(group token.Tree, name string) (any, bool) {
	if group == nil {
		return nil, false
	}
	want := token.LooseKey(name)
	for pair := group.Oldest(); pair != nil; pair = pair.Next() {
		if token.LooseKey(pair.Key) == want {
			return pair.Value, true
		}
	}
	return nil, false
}

// looseChildLeaf finds a direct child token leaf of group by loose key match.
func looseChildLeaf(group token.Tree, name string) (token.Tree, bool) {
	v, ok := looseChild(group, name)
	if !ok {
		return nil, false
	}
	leaf, ok := token.AsTree(v)
	if !ok || !token.IsLeaf(leaf) {
		return nil, false
	}
	return leaf, true
}

func isLooseKey(key, name string) bool {
	return token.LooseKey(key) == token.LooseKey(name)
}
