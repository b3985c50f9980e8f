/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract_test

import (
	"testing"

	"bennypowers.dev/motiv/extract"
)

func TestMerge_NonOverlappingBranches(t *testing.T) {
	a := extract.NewColorMap()
	ax := extract.NewColorMap()
	ax.Set("x", "#111111")
	a.Set("a", ax)

	b := extract.NewColorMap()
	by := extract.NewColorMap()
	by.Set("y", "#222222")
	b.Set("a", by)

	got := extract.Merge(a, b)

	branchAny, ok := got.Get("a")
	if !ok {
		t.Fatal("expected branch a")
	}
	branch := branchAny.(extract.ColorMap)
	if v, _ := branch.Get("x"); v != "#111111" {
		t.Errorf("expected x preserved, got %v", v)
	}
	if v, _ := branch.Get("y"); v != "#222222" {
		t.Errorf("expected y merged, got %v", v)
	}
}

func TestMerge_LeafOverwrites(t *testing.T) {
	a := extract.NewColorMap()
	a.Set("white", "#fffffe")
	a.Set("only-a", "#aaaaaa")

	b := extract.NewColorMap()
	b.Set("white", "#ffffff")

	got := extract.Merge(a, b)

	if v, _ := got.Get("white"); v != "#ffffff" {
		t.Errorf("expected b to overwrite, got %v", v)
	}
	if v, _ := got.Get("only-a"); v != "#aaaaaa" {
		t.Errorf("expected key only in a preserved, got %v", v)
	}
	// Overwritten keys keep their original position.
	if got.Oldest().Key != "white" {
		t.Errorf("expected white first, got %q", got.Oldest().Key)
	}
}

func TestMerge_BranchOverwritesLeaf(t *testing.T) {
	a := extract.NewColorMap()
	a.Set("surface", "#ffffff")

	b := extract.NewColorMap()
	sub := extract.NewColorMap()
	sub.Set("raised", "#fafafa")
	b.Set("surface", sub)

	got := extract.Merge(a, b)

	branchAny, _ := got.Get("surface")
	branch, ok := branchAny.(extract.ColorMap)
	if !ok {
		t.Fatal("expected branch to replace leaf")
	}
	if v, _ := branch.Get("raised"); v != "#fafafa" {
		t.Errorf("expected raised, got %v", v)
	}
}

func TestMerge_NilInputs(t *testing.T) {
	b := extract.NewColorMap()
	b.Set("k", "#000000")

	if got := extract.Merge(nil, b); got.Len() != 1 {
		t.Errorf("Merge(nil, b) len = %d", got.Len())
	}
	if got := extract.Merge(b, nil); got.Len() != 1 {
		t.Errorf("Merge(b, nil) len = %d", got.Len())
	}
}

func TestMergeFlat(t *testing.T) {
	a := extract.NewDimensionMap()
	a.Set("4", "16px")
	a.Set("8", "32px")

	b := extract.NewDimensionMap()
	b.Set("8", "30px")
	b.Set("gutter", "24px")

	got := extract.MergeFlat(a, b)

	want := map[string]string{"4": "16px", "8": "30px", "gutter": "24px"}
	if got.Len() != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), got.Len())
	}
	for k, v := range want {
		if actual, _ := got.Get(k); actual != v {
			t.Errorf("key %q = %q, want %q", k, actual, v)
		}
	}
}
