/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema_test

import (
	"testing"

	"bennypowers.dev/motiv/parser"
	"bennypowers.dev/motiv/schema"
	"bennypowers.dev/motiv/token"
)

func parseTree(t *testing.T, src string) token.Tree {
	t.Helper()
	tree, err := parser.New().Parse([]byte(src))
	if err != nil {
		t.Fatalf("fixture parse failed: %v", err)
	}
	return tree
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want schema.Convention
	}{
		{
			"current layout",
			`{"primitives": {"colors": {}}, "semantic": {"spacing": {}}}`,
			schema.Current,
		},
		{
			"current with only primitives",
			`{"primitives": {"colors": {}}}`,
			schema.Current,
		},
		{
			"legacy layout",
			`{"primitive": {"color": {}}, "alias": {"color": {}}}`,
			schema.Legacy,
		},
		{
			"loose set names",
			`{"Primitives ": {"colors": {}}}`,
			schema.Current,
		},
		{
			"current wins over legacy",
			`{"primitives": {"colors": {}}, "alias": {"color": {}}}`,
			schema.Current,
		},
		{
			"unrecognized sets",
			`{"foo": {"bar": {}}}`,
			schema.Unknown,
		},
		{
			"set name on a leaf does not count",
			`{"primitives": {"value": "#fff", "type": "color"}}`,
			schema.Unknown,
		},
		{
			"empty document",
			`{}`,
			schema.Unknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := schema.Detect(parseTree(t, tt.src)); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetect_NilTree(t *testing.T) {
	if got := schema.Detect(nil); got != schema.Unknown {
		t.Errorf("Detect(nil) = %v, want Unknown", got)
	}
}

func TestConventionString(t *testing.T) {
	tests := []struct {
		c    schema.Convention
		want string
	}{
		{schema.Current, "current"},
		{schema.Legacy, "legacy"},
		{schema.Unknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestFromString(t *testing.T) {
	if c, err := schema.FromString("current"); err != nil || c != schema.Current {
		t.Errorf("FromString(current) = %v, %v", c, err)
	}
	if c, err := schema.FromString("legacy"); err != nil || c != schema.Legacy {
		t.Errorf("FromString(legacy) = %v, %v", c, err)
	}
	if _, err := schema.FromString("modern"); err == nil {
		t.Error("expected error for unrecognized convention")
	}
}
