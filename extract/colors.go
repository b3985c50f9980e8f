/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"github.com/mazznoer/csscolorparser"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"bennypowers.dev/motiv/resolver"
	"bennypowers.dev/motiv/token"
)

// ColorMap is a nested mapping from normalized key to either a resolved
// color string (leaf) or another *ColorMap branch.
type ColorMap = *orderedmap.OrderedMap[string, any]

// NewColorMap creates an empty color map.
func NewColorMap() ColorMap {
	return orderedmap.New[string, any]()
}

// Colors extracts color-typed leaves from a raw group into a nested
// map keyed by normalized names. Leaves of other types are ignored and
// branches with no extracted descendants are omitted. A nil group
// yields an empty map.
func Colors(group token.Tree, res *resolver.Resolver) ColorMap {
	out := NewColorMap()
	if group == nil {
		return out
	}

	for pair := group.Oldest(); pair != nil; pair = pair.Next() {
		if token.IsReserved(pair.Key) {
			continue
		}
		child, ok := token.AsTree(pair.Value)
		if !ok {
			continue
		}
		key := token.NormalizeKey(pair.Key)

		if token.IsLeaf(child) {
			if token.LeafType(child) != "color" {
				continue
			}
			value := stringify(res.Resolve(token.LeafValue(child)))
			warnUnparseableColor(res.Report(), key, value)
			out.Set(key, value)
			continue
		}

		if sub := Colors(child, res); sub.Len() > 0 {
			out.Set(key, sub)
		}
	}
	return out
}

// warnUnparseableColor records a diagnostic for resolved color values
// that no CSS parser would accept. Alias passthrough text is exempt:
// unresolved references are already reported separately.
func warnUnparseableColor(report *resolver.Report, key, value string) {
	if value == "" || token.IsAlias(value) {
		return
	}
	if _, err := csscolorparser.Parse(value); err != nil {
		report.Warnf("color %q has unparseable value %q", key, value)
	}
}
