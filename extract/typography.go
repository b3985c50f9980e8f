/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"bennypowers.dev/motiv/resolver"
	"bennypowers.dev/motiv/token"
)

// Preset is a named bundle of typography fields. All fields are
// resolved strings; absent fields stay empty and are omitted from
// serialized output.
type Preset struct {
	FontSize      string `json:"fontSize,omitempty"`
	LineHeight    string `json:"lineHeight,omitempty"`
	LetterSpacing string `json:"letterSpacing,omitempty"`
	FontWeight    string `json:"fontWeight,omitempty"`
}

// PresetMap maps composite normalized keys (preset name, optionally
// suffixed with a weight slug) to presets.
type PresetMap = *orderedmap.OrderedMap[string, *Preset]

// NewPresetMap creates an empty preset map.
func NewPresetMap() PresetMap {
	return orderedmap.New[string, *Preset]()
}

// weightSlugs normalizes common font weight names to canonical slugs.
var weightSlugs = map[string]string{
	"hairline":    "thin",
	"ultra light": "extralight",
	"extra light": "extralight",
	"normal":      "regular",
	"book":        "regular",
	"demi bold":   "semibold",
	"semi bold":   "semibold",
	"extra bold":  "extrabold",
	"ultra bold":  "extrabold",
	"heavy":       "black",
}

// WeightSlug computes the suffix distinguishing font-weight variants of
// the same preset. Known names map through a lookup table; anything
// else falls back to the normalized, hyphen-stripped name.
func WeightSlug(name string) string {
	if slug, ok := weightSlugs[strings.ToLower(strings.TrimSpace(name))]; ok {
		return slug
	}
	return strings.ReplaceAll(token.NormalizeKey(name), "-", "")
}

// Typography extracts a group of named presets. Two optional
// group-level overrides apply to every preset unless the preset
// supplies its own: "letter spacing" (a single leaf) and "font weight"
// (a single leaf, or a group of weight-name leaves signalling that each
// preset fans out into one variant per weight). Fan-out preserves
// preset declaration order, then weight declaration order.
func Typography(group token.Tree, res *resolver.Resolver) PresetMap {
	out := NewPresetMap()
	if group == nil {
		return out
	}

	groupLetterSpacing := ""
	if leaf, ok := looseChildLeaf(group, "letter spacing"); ok {
		groupLetterSpacing = stringify(res.Resolve(token.LeafValue(leaf)))
	}

	singleWeight, weights := groupWeight(group, res)

	for pair := group.Oldest(); pair != nil; pair = pair.Next() {
		if token.IsReserved(pair.Key) ||
			isLooseKey(pair.Key, "letter spacing") ||
			isLooseKey(pair.Key, "font weight") {
			continue
		}
		preset, ok := token.AsTree(pair.Value)
		if !ok || token.IsLeaf(preset) {
			continue
		}
		key := token.NormalizeKey(pair.Key)

		base := Preset{}
		if leaf, ok := looseChildLeaf(preset, "font size"); ok {
			base.FontSize = stringify(res.Resolve(token.LeafValue(leaf)))
		}
		if leaf, ok := looseChildLeaf(preset, "line height"); ok {
			base.LineHeight = stringify(res.Resolve(token.LeafValue(leaf)))
		}
		if leaf, ok := looseChildLeaf(preset, "letter spacing"); ok {
			base.LetterSpacing = stringify(res.Resolve(token.LeafValue(leaf)))
		} else {
			base.LetterSpacing = groupLetterSpacing
		}
		if base.FontSize == "" && base.LineHeight == "" && base.LetterSpacing == "" {
			continue
		}

		// A preset's own weight wins over any group-level declaration.
		if leaf, ok := looseChildLeaf(preset, "font weight"); ok {
			base.FontWeight = stringify(res.Resolve(token.LeafValue(leaf)))
			out.Set(key, &base)
			continue
		}

		switch {
		case weights != nil && weights.Len() > 0:
			for wp := weights.Oldest(); wp != nil; wp = wp.Next() {
				slug := WeightSlug(wp.Key)
				variantKey := key
				// Heuristic: a preset named after a weight ("Display Bold")
				// keeps its key for that variant rather than doubling the
				// suffix. Names that merely end in a weight-like word also
				// trigger this.
				if !strings.HasSuffix(key, slug) {
					variantKey = key + "-" + slug
				}
				variant := base
				variant.FontWeight = wp.Value
				out.Set(variantKey, &variant)
			}
		case singleWeight != "":
			variant := base
			variant.FontWeight = singleWeight
			out.Set(key, &variant)
		default:
			out.Set(key, &base)
		}
	}
	return out
}

// groupWeight reads the group-level "font weight" override: either one
// value, or a group of weight-name leaves in declaration order.
func groupWeight(group token.Tree, res *resolver.Resolver) (string, *orderedmap.OrderedMap[string, string]) {
	v, ok := looseChild(group, "font weight")
	if !ok {
		return "", nil
	}
	t, ok := token.AsTree(v)
	if !ok {
		return "", nil
	}
	if token.IsLeaf(t) {
		return stringify(res.Resolve(token.LeafValue(t))), nil
	}

	weights := orderedmap.New[string, string]()
	for pair := t.Oldest(); pair != nil; pair = pair.Next() {
		if token.IsReserved(pair.Key) {
			continue
		}
		if leaf, ok := token.AsTree(pair.Value); ok && token.IsLeaf(leaf) {
			weights.Set(pair.Key, stringify(res.Resolve(token.LeafValue(leaf))))
		}
	}
	return "", weights
}
