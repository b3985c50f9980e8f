/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract_test

import (
	"testing"

	"bennypowers.dev/motiv/extract"
	"bennypowers.dev/motiv/resolver"
	"bennypowers.dev/motiv/token"
)

func TestColors_NestedExtraction(t *testing.T) {
	tree := parseTree(t, `{
		"colors": {
			"Base": {
				"White": { "value": "#ffffff", "type": "color" },
				"Black": { "value": "#000000", "type": "color" }
			},
			"Brand": {
				"Primary": { "value": "{base.white}", "type": "color" }
			},
			"sizes": {
				"big": { "value": "100", "type": "dimension" }
			}
		}
	}`)
	res := resolver.New(tree, resolver.NewReport())
	group, _ := tree.Get("colors")
	colors, _ := token.AsTree(group)

	got := extract.Colors(colors, res)

	// "sizes" has no color descendants and must be omitted entirely.
	if got.Len() != 2 {
		t.Fatalf("expected 2 branches, got %d", got.Len())
	}

	baseAny, ok := got.Get("base")
	if !ok {
		t.Fatal("expected base branch")
	}
	base := baseAny.(extract.ColorMap)
	if v, _ := base.Get("white"); v != "#ffffff" {
		t.Errorf("base.white = %v", v)
	}

	brandAny, _ := got.Get("brand")
	brand := brandAny.(extract.ColorMap)
	if v, _ := brand.Get("primary"); v != "#ffffff" {
		t.Errorf("expected alias to resolve, got %v", v)
	}
}

func TestColors_NonColorLeavesIgnored(t *testing.T) {
	tree := parseTree(t, `{
		"colors": {
			"gap": { "value": "8", "type": "dimension" }
		}
	}`)
	res := resolver.New(tree, resolver.NewReport())
	group, _ := tree.Get("colors")
	colors, _ := token.AsTree(group)

	if got := extract.Colors(colors, res); got.Len() != 0 {
		t.Errorf("expected empty map, got %d entries", got.Len())
	}
}

func TestColors_UnresolvedPassthrough(t *testing.T) {
	tree := parseTree(t, `{
		"colors": {
			"broken": { "value": "{missing.ref}", "type": "color" }
		}
	}`)
	report := resolver.NewReport()
	res := resolver.New(tree, report)
	group, _ := tree.Get("colors")
	colors, _ := token.AsTree(group)

	got := extract.Colors(colors, res)

	if v, _ := got.Get("broken"); v != "{missing.ref}" {
		t.Errorf("expected alias passthrough, got %v", v)
	}
	if len(report.Unresolved) != 1 || report.Unresolved[0] != "missing.ref" {
		t.Errorf("expected unresolved diagnostic, got %v", report.Unresolved)
	}
}

func TestColors_UnparseableValueWarns(t *testing.T) {
	tree := parseTree(t, `{
		"colors": {
			"odd": { "value": "#gggggg", "type": "color" }
		}
	}`)
	report := resolver.NewReport()
	res := resolver.New(tree, report)
	group, _ := tree.Get("colors")
	colors, _ := token.AsTree(group)

	got := extract.Colors(colors, res)

	// The value still passes through; the warning is advisory.
	if v, _ := got.Get("odd"); v != "#gggggg" {
		t.Errorf("expected value passthrough, got %v", v)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", report.Warnings)
	}
}
