/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"regexp"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"bennypowers.dev/motiv/resolver"
	"bennypowers.dev/motiv/token"
)

// DimensionMap is a single-level mapping from hyphen-joined normalized
// path to formatted dimension value.
type DimensionMap = *orderedmap.OrderedMap[string, string]

// NewDimensionMap creates an empty dimension map.
func NewDimensionMap() DimensionMap {
	return orderedmap.New[string, string]()
}

// DimensionOptions configures dimension value formatting.
type DimensionOptions struct {
	// Unit is the suffix appended to bare numeric values. Empty means px.
	Unit string

	// Bare suppresses unit suffixing entirely, passing numeric values
	// through as-is. Used for unitless scales like font weights.
	Bare bool
}

// numericPattern matches a whole integer-or-decimal string.
var numericPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// FormatDimensionValue renders a resolved dimension value. Numbers get
// the unit suffix; strings get it only when the whole trimmed string is
// purely numeric, so values like "auto" or "1fr" pass through verbatim.
func FormatDimensionValue(v any, opts DimensionOptions) string {
	unit := opts.Unit
	if unit == "" {
		unit = "px"
	}
	if opts.Bare {
		unit = ""
	}

	s, isString := v.(string)
	if !isString {
		n := stringify(v)
		if n == "" {
			return ""
		}
		return n + unit
	}
	if trimmed := strings.TrimSpace(s); numericPattern.MatchString(trimmed) {
		return trimmed + unit
	}
	return s
}

// Dimensions flattens a raw group into a single-level map keyed by the
// hyphen-joined normalized path. Only leaves declared "dimension" or
// "number" are extracted. A nil group yields an empty map.
func Dimensions(group token.Tree, res *resolver.Resolver, opts DimensionOptions) DimensionMap {
	out := NewDimensionMap()
	dimensionsInto(group, res, opts, "", out)
	return out
}

func dimensionsInto(group token.Tree, res *resolver.Resolver, opts DimensionOptions, prefix string, out DimensionMap) {
	if group == nil {
		return
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
		if prefix != "" {
			key = prefix + "-" + key
		}

		if token.IsLeaf(child) {
			switch token.LeafType(child) {
			case "dimension", "number":
				resolved := res.Resolve(token.LeafValue(child))
				out.Set(key, FormatDimensionValue(resolved, opts))
			}
			continue
		}

		dimensionsInto(child, res, opts, key, out)
	}
}
