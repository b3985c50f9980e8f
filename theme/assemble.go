/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import (
	"bennypowers.dev/motiv/extract"
	"bennypowers.dev/motiv/resolver"
	"bennypowers.dev/motiv/schema"
	"bennypowers.dev/motiv/token"
)

// Options configures assembly.
type Options struct {
	// Unit is the suffix for bare numeric dimension values. Empty means px.
	Unit string

	// BareUnits suppresses unit suffixing for all dimension buckets
	// except font weights, which are always bare.
	BareUnits bool

	// Convention forces the naming convention, skipping detection.
	// Unknown means detect from the document.
	Convention schema.Convention
}

// layout names the set and group keys of one naming convention. All
// lookups are loose-matched, so spacing and case drift in the export
// do not matter.
type layout struct {
	primitiveSet string
	semanticSet  string
	colors       string
	size         string
	typography   string
}

var layouts = map[schema.Convention]layout{
	schema.Current: {
		primitiveSet: "primitives",
		semanticSet:  "semantic",
		colors:       "colors",
		size:         "size",
		typography:   "typography",
	},
	schema.Legacy: {
		primitiveSet: "primitive",
		semanticSet:  "alias",
		colors:       "color",
		size:         "sizing",
		typography:   "type",
	},
}

// Assemble builds the unified token model from a raw tree, returning
// it together with the run's resolution report. Absent subtrees leave
// their buckets empty; nothing here fails.
func Assemble(tree token.Tree, opts Options) (*Theme, *resolver.Report) {
	report := resolver.NewReport()
	th := New()
	if tree == nil {
		return th, report
	}

	convention := opts.Convention
	if convention == schema.Unknown {
		convention = schema.Detect(tree)
	}
	lay, ok := layouts[convention]
	if !ok {
		report.Warnf("no recognizable token sets at document root")
		return th, report
	}

	res := resolver.New(tree, report)
	dims := extract.DimensionOptions{Unit: opts.Unit, Bare: opts.BareUnits}

	primitive := findGroup(tree, lay.primitiveSet)
	semantic := findGroup(tree, lay.semanticSet)

	// Colors: primitive palette plus semantic usage maps. The semantic
	// "etc" bucket holds colors that fit no usage; it merges into the
	// primitive palette rather than getting a bucket of its own.
	th.Colors.Primitive = extract.Colors(findGroup(primitive, lay.colors), res)
	semanticColors := findGroup(semantic, lay.colors)
	th.Colors.Text = extract.Colors(findGroup(semanticColors, "text"), res)
	th.Colors.Background = extract.Colors(findGroup(semanticColors, "background"), res)
	th.Colors.Border = extract.Colors(findGroup(semanticColors, "border"), res)
	th.Colors.Icon = extract.Colors(findGroup(semanticColors, "icon"), res)
	if etc := extract.Colors(findGroup(semanticColors, "etc"), res); etc.Len() > 0 {
		th.Colors.Primitive = extract.Merge(th.Colors.Primitive, etc)
	}

	// Spacing: the primitive size scale is the base, with semantic
	// spacing entries layered over it.
	sizeScale := extract.Dimensions(findGroup(primitive, lay.size), res, dims)
	semanticSize := findGroup(semantic, lay.size)
	th.Dimensions.Spacing = extract.MergeFlat(sizeScale,
		extract.Dimensions(findGroup(semanticSize, "spacing"), res, dims))
	th.Dimensions.Container = extract.Dimensions(findGroup(semanticSize, "container"), res, dims)
	th.Dimensions.BorderRadius = extract.Dimensions(findGroup(semanticSize, "border radius"), res, dims)
	th.Dimensions.BorderWidth = extract.Dimensions(findGroup(semanticSize, "border width"), res, dims)

	// Primitive typography metric scales. Font weights are unitless.
	metrics := findGroup(primitive, lay.typography)
	th.Dimensions.FontSize = extract.Dimensions(findGroup(metrics, "font size"), res, dims)
	th.Dimensions.LineHeight = extract.Dimensions(findGroup(metrics, "line height"), res, dims)
	th.Dimensions.LetterSpacing = extract.Dimensions(findGroup(metrics, "letter spacing"), res, dims)
	th.Dimensions.FontWeight = extract.Dimensions(findGroup(metrics, "font weight"), res,
		extract.DimensionOptions{Bare: true})

	// Semantic typography presets.
	presets := findGroup(semantic, lay.typography)
	th.Typography.Heading = extract.Typography(findGroup(presets, "heading"), res)
	th.Typography.Body = extract.Typography(findGroup(presets, "body"), res)

	return th, report
}

// findGroup returns the direct child group of parent whose key loosely
// matches name, or nil when parent is nil or no such group exists.
func findGroup(parent token.Tree, name string) token.Tree {
	if parent == nil {
		return nil
	}
	want := token.LooseKey(name)
	for pair := parent.Oldest(); pair != nil; pair = pair.Next() {
		if token.LooseKey(pair.Key) != want {
			continue
		}
		if child, ok := token.AsTree(pair.Value); ok && !token.IsLeaf(child) {
			return child
		}
	}
	return nil
}
