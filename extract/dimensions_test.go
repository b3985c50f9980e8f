/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract_test

import (
	"testing"

	"bennypowers.dev/motiv/extract"
	"bennypowers.dev/motiv/parser"
	"bennypowers.dev/motiv/resolver"
	"bennypowers.dev/motiv/token"
)

func parseTree(t *testing.T, src string) token.Tree {
	t.Helper()
	tree, err := parser.New().Parse([]byte(src))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return tree
}

func TestFormatDimensionValue(t *testing.T) {
	tests := []struct {
		value any
		opts  extract.DimensionOptions
		want  string
	}{
		{"8", extract.DimensionOptions{}, "8px"},
		{float64(8), extract.DimensionOptions{}, "8px"},
		{"auto", extract.DimensionOptions{}, "auto"},
		{"8", extract.DimensionOptions{Bare: true}, "8"},
		{"1fr", extract.DimensionOptions{}, "1fr"},
		{"0.5", extract.DimensionOptions{}, "0.5px"},
		{"-4", extract.DimensionOptions{}, "-4px"},
		{" 12 ", extract.DimensionOptions{}, "12px"},
		{"100%", extract.DimensionOptions{}, "100%"},
		{float64(1.25), extract.DimensionOptions{Unit: "rem"}, "1.25rem"},
	}

	for _, tt := range tests {
		if got := extract.FormatDimensionValue(tt.value, tt.opts); got != tt.want {
			t.Errorf("FormatDimensionValue(%v, %+v) = %q, want %q", tt.value, tt.opts, got, tt.want)
		}
	}
}

func TestDimensions_FlattensPaths(t *testing.T) {
	src := `{
		"spacing": {
			"Size: 4": { "value": 4, "type": "dimension" },
			"inset": {
				"Compact": { "value": "8", "type": "dimension" }
			},
			"label": { "value": "auto", "type": "dimension" },
			"name": { "value": "ignored", "type": "string" }
		}
	}`
	tree := parseTree(t, src)
	res := resolver.New(tree, resolver.NewReport())
	group, _ := tree.Get("spacing")
	spacing, _ := token.AsTree(group)

	got := extract.Dimensions(spacing, res, extract.DimensionOptions{})

	wantKeys := []string{"size-4", "inset-compact", "label"}
	wantValues := map[string]string{
		"size-4":        "4px",
		"inset-compact": "8px",
		"label":         "auto",
	}
	if got.Len() != len(wantKeys) {
		t.Fatalf("expected %d entries, got %d", len(wantKeys), got.Len())
	}
	i := 0
	for pair := got.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key != wantKeys[i] {
			t.Errorf("entry %d: key %q, want %q", i, pair.Key, wantKeys[i])
		}
		if pair.Value != wantValues[pair.Key] {
			t.Errorf("key %q: value %q, want %q", pair.Key, pair.Value, wantValues[pair.Key])
		}
		i++
	}
}

func TestDimensions_ResolvesAliases(t *testing.T) {
	src := `{
		"primitives": {
			"size": {
				"4": { "value": 16, "type": "number" }
			}
		},
		"semantic": {
			"spacing": {
				"gutter": { "value": "{size.4}", "type": "dimension" }
			}
		}
	}`
	tree := parseTree(t, src)
	res := resolver.New(tree, resolver.NewReport())
	sem, _ := tree.Get("semantic")
	semTree, _ := token.AsTree(sem)
	spacingAny, _ := semTree.Get("spacing")
	spacing, _ := token.AsTree(spacingAny)

	got := extract.Dimensions(spacing, res, extract.DimensionOptions{})

	if v, _ := got.Get("gutter"); v != "16px" {
		t.Errorf("expected gutter=16px, got %q", v)
	}
}
