/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css emits the theme as an @theme variable block plus utility classes.
package css

import (
	"fmt"
	"strings"

	"bennypowers.dev/motiv/extract"
	"bennypowers.dev/motiv/formatter"
	"bennypowers.dev/motiv/theme"
)

// Formatter emits CSS custom properties and utility classes.
type Formatter struct{}

// New creates a new CSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// dimensionVars pairs each dimension bucket with its variable prefix.
type dimensionBucket struct {
	prefix  string
	entries []formatter.Entry
}

// Format serializes the theme to CSS. Output is fully determined by
// the theme and options.
func (f *Formatter) Format(th *theme.Theme, opts formatter.Options) ([]byte, error) {
	var b strings.Builder
	if opts.GeneratedAt != "" {
		fmt.Fprintf(&b, "/* Generated by motiv at %s. Do not edit. */\n\n", opts.GeneratedAt)
	}

	primitive := formatter.FlattenColors(th.Colors.Primitive)
	text := formatter.FlattenColors(th.Colors.Text)
	background := formatter.FlattenColors(th.Colors.Background)
	border := formatter.FlattenColors(th.Colors.Border)
	icon := formatter.FlattenColors(th.Colors.Icon)

	dimensions := []dimensionBucket{
		{"spacing", formatter.FlattenDimensions(th.Dimensions.Spacing)},
		{"container", formatter.FlattenDimensions(th.Dimensions.Container)},
		{"font-size", formatter.FlattenDimensions(th.Dimensions.FontSize)},
		{"line-height", formatter.FlattenDimensions(th.Dimensions.LineHeight)},
		{"font-weight", formatter.FlattenDimensions(th.Dimensions.FontWeight)},
		{"letter-spacing", formatter.FlattenDimensions(th.Dimensions.LetterSpacing)},
		{"radius", formatter.FlattenDimensions(th.Dimensions.BorderRadius)},
		{"border-width", formatter.FlattenDimensions(th.Dimensions.BorderWidth)},
	}

	b.WriteString("@theme {\n")
	writeColorVars(&b, opts, "color", primitive)
	writeColorVars(&b, opts, "color-text", text)
	writeColorVars(&b, opts, "color-bg", background)
	writeColorVars(&b, opts, "color-border", border)
	writeColorVars(&b, opts, "color-icon", icon)
	for _, bucket := range dimensions {
		for _, e := range bucket.entries {
			fmt.Fprintf(&b, "  %s: %s;\n", varName(opts, bucket.prefix, e.Key), e.Value)
		}
	}
	writePresetVars(&b, opts, "heading", th.Typography.Heading)
	writePresetVars(&b, opts, "body", th.Typography.Body)
	b.WriteString("}\n")

	// Utility classes, each referencing its custom property.
	for _, e := range text {
		fmt.Fprintf(&b, "\n.text-%s { color: var(%s); }\n", e.Key, varName(opts, "color-text", e.Key))
	}
	for _, e := range background {
		fmt.Fprintf(&b, "\n.bg-%s { background-color: var(%s); }\n", e.Key, varName(opts, "color-bg", e.Key))
	}
	for _, e := range border {
		fmt.Fprintf(&b, "\n.border-%s { border-color: var(%s); }\n", e.Key, varName(opts, "color-border", e.Key))
	}
	for _, e := range formatter.FlattenDimensions(th.Dimensions.Spacing) {
		fmt.Fprintf(&b, "\n.%s { gap: var(%s); }\n", e.Key, varName(opts, "spacing", e.Key))
	}
	for _, e := range formatter.FlattenDimensions(th.Dimensions.Container) {
		fmt.Fprintf(&b, "\n.container-%s { max-width: var(%s); }\n", e.Key, varName(opts, "container", e.Key))
	}
	writePresetClasses(&b, opts, "heading", th.Typography.Heading)
	writePresetClasses(&b, opts, "body", th.Typography.Body)

	return []byte(b.String()), nil
}

func writeColorVars(b *strings.Builder, opts formatter.Options, prefix string, entries []formatter.Entry) {
	for _, e := range entries {
		fmt.Fprintf(b, "  %s: %s;\n", varName(opts, prefix, e.Key), e.Value)
	}
}

func writePresetVars(b *strings.Builder, opts formatter.Options, bucket string, presets extract.PresetMap) {
	if presets == nil {
		return
	}
	for pair := presets.Oldest(); pair != nil; pair = pair.Next() {
		for _, field := range formatter.FieldsOf(pair.Value) {
			name := varName(opts, "typography-"+bucket, pair.Key+"-"+field.Property)
			fmt.Fprintf(b, "  %s: %s;\n", name, field.Value)
		}
	}
}

func writePresetClasses(b *strings.Builder, opts formatter.Options, bucket string, presets extract.PresetMap) {
	if presets == nil {
		return
	}
	for pair := presets.Oldest(); pair != nil; pair = pair.Next() {
		fields := formatter.FieldsOf(pair.Value)
		if len(fields) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n.text-%s-%s {\n", bucket, pair.Key)
		for _, field := range fields {
			name := varName(opts, "typography-"+bucket, pair.Key+"-"+field.Property)
			fmt.Fprintf(b, "  %s: var(%s);\n", field.Property, name)
		}
		b.WriteString("}\n")
	}
}

// varName builds a custom property name, honoring the optional prefix.
func varName(opts formatter.Options, bucket, key string) string {
	if opts.Prefix != "" {
		return "--" + opts.Prefix + "-" + bucket + "-" + key
	}
	return "--" + bucket + "-" + key
}
