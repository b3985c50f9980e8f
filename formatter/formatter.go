/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for
// theme artifact emitters.
package formatter

import (
	"bennypowers.dev/motiv/extract"
	"bennypowers.dev/motiv/theme"
)

// Formatter defines the interface for artifact emitters. Emitters are
// pure functions of the theme and options: identical input and a fixed
// GeneratedAt produce byte-identical output.
type Formatter interface {
	Format(th *theme.Theme, opts Options) ([]byte, error)
}

// Options configures emission.
type Options struct {
	// Prefix is prepended to output variable names, if set.
	Prefix string

	// GeneratedAt is the generation timestamp recorded in the artifact
	// header. Callers pass a fixed value; emitters never read the clock.
	GeneratedAt string
}

// Entry is one flattened leaf of a nested color map.
type Entry struct {
	Key   string
	Value string
}

// FlattenColors walks a nested color map depth-first and returns its
// leaves with hyphen-joined keys, preserving map order.
func FlattenColors(m extract.ColorMap) []Entry {
	var entries []Entry
	flattenInto(m, "", &entries)
	return entries
}

func flattenInto(m extract.ColorMap, prefix string, entries *[]Entry) {
	if m == nil {
		return
	}
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key
		if prefix != "" {
			key = prefix + "-" + key
		}
		switch v := pair.Value.(type) {
		case string:
			*entries = append(*entries, Entry{Key: key, Value: v})
		case extract.ColorMap:
			flattenInto(v, key, entries)
		}
	}
}

// FlattenDimensions returns a flat dimension map's entries in order.
func FlattenDimensions(m extract.DimensionMap) []Entry {
	if m == nil {
		return nil
	}
	entries := make([]Entry, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, Entry{Key: pair.Key, Value: pair.Value})
	}
	return entries
}

// PresetField is one populated field of a typography preset, named by
// its CSS property.
type PresetField struct {
	Property string
	Value    string
}

// FieldsOf lists the populated fields of a typography preset in
// declaration order.
func FieldsOf(p *extract.Preset) []PresetField {
	var fields []PresetField
	if p == nil {
		return fields
	}
	if p.FontSize != "" {
		fields = append(fields, PresetField{"font-size", p.FontSize})
	}
	if p.LineHeight != "" {
		fields = append(fields, PresetField{"line-height", p.LineHeight})
	}
	if p.LetterSpacing != "" {
		fields = append(fields, PresetField{"letter-spacing", p.LetterSpacing})
	}
	if p.FontWeight != "" {
		fields = append(fields, PresetField{"font-weight", p.FontWeight})
	}
	return fields
}
