/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package theme assembles the unified token model from a raw tree.
package theme

import "bennypowers.dev/motiv/extract"

// Colors holds the color buckets of the unified model: one primitive
// palette plus the semantic usage maps.
type Colors struct {
	Primitive  extract.ColorMap `json:"primitive"`
	Text       extract.ColorMap `json:"text"`
	Background extract.ColorMap `json:"background"`
	Border     extract.ColorMap `json:"border"`
	Icon       extract.ColorMap `json:"icon"`
}

// Dimensions holds the flat dimension buckets of the unified model.
type Dimensions struct {
	Spacing       extract.DimensionMap `json:"spacing"`
	Container     extract.DimensionMap `json:"container"`
	FontSize      extract.DimensionMap `json:"fontSize"`
	LineHeight    extract.DimensionMap `json:"lineHeight"`
	FontWeight    extract.DimensionMap `json:"fontWeight"`
	LetterSpacing extract.DimensionMap `json:"letterSpacing"`
	BorderRadius  extract.DimensionMap `json:"borderRadius"`
	BorderWidth   extract.DimensionMap `json:"borderWidth"`
}

// Typography holds the composed preset buckets.
type Typography struct {
	Heading extract.PresetMap `json:"heading"`
	Body    extract.PresetMap `json:"body"`
}

// Theme is the unified token model: the single value handed to the
// artifact emitters. Built once per run, then discarded.
type Theme struct {
	Colors     Colors     `json:"colors"`
	Dimensions Dimensions `json:"dimensions"`
	Typography Typography `json:"typography"`
}

// New creates a theme with every bucket initialized and empty.
func New() *Theme {
	return &Theme{
		Colors: Colors{
			Primitive:  extract.NewColorMap(),
			Text:       extract.NewColorMap(),
			Background: extract.NewColorMap(),
			Border:     extract.NewColorMap(),
			Icon:       extract.NewColorMap(),
		},
		Dimensions: Dimensions{
			Spacing:       extract.NewDimensionMap(),
			Container:     extract.NewDimensionMap(),
			FontSize:      extract.NewDimensionMap(),
			LineHeight:    extract.NewDimensionMap(),
			FontWeight:    extract.NewDimensionMap(),
			LetterSpacing: extract.NewDimensionMap(),
			BorderRadius:  extract.NewDimensionMap(),
			BorderWidth:   extract.NewDimensionMap(),
		},
		Typography: Typography{
			Heading: extract.NewPresetMap(),
			Body:    extract.NewPresetMap(),
		},
	}
}
