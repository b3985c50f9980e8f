/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package typescript emits the theme as a TypeScript constant module.
package typescript

import (
	"encoding/json"
	"fmt"
	"strings"

	"bennypowers.dev/motiv/formatter"
	"bennypowers.dev/motiv/theme"
)

// Formatter emits a TypeScript module holding the unified token model.
type Formatter struct{}

// New creates a new TypeScript formatter.
func New() *Formatter {
	return &Formatter{}
}

// reexports maps convenience export names to paths inside the tokens
// constant, in emission order.
var reexports = [][2]string{
	{"primitiveColors", "tokens.colors.primitive"},
	{"textColors", "tokens.colors.text"},
	{"bgColors", "tokens.colors.background"},
	{"borderColors", "tokens.colors.border"},
	{"iconColors", "tokens.colors.icon"},
	{"spacing", "tokens.dimensions.spacing"},
	{"container", "tokens.dimensions.container"},
	{"fontSize", "tokens.dimensions.fontSize"},
	{"lineHeight", "tokens.dimensions.lineHeight"},
	{"fontWeight", "tokens.dimensions.fontWeight"},
	{"letterSpacing", "tokens.dimensions.letterSpacing"},
	{"borderRadius", "tokens.dimensions.borderRadius"},
	{"borderWidth", "tokens.dimensions.borderWidth"},
	{"headingTypography", "tokens.typography.heading"},
	{"bodyTypography", "tokens.typography.body"},
}

// Format serializes the theme to a TypeScript module: the full model
// as one `as const` literal, a re-export per bucket, and a composite
// color object merging the primitive palette with the usage maps.
func (f *Formatter) Format(th *theme.Theme, opts formatter.Options) ([]byte, error) {
	literal, err := json.MarshalIndent(th, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize theme: %w", err)
	}

	var b strings.Builder
	if opts.GeneratedAt != "" {
		fmt.Fprintf(&b, "/* Generated by motiv at %s. Do not edit. */\n\n", opts.GeneratedAt)
	}

	fmt.Fprintf(&b, "export const tokens = %s as const;\n\n", literal)

	for _, re := range reexports {
		fmt.Fprintf(&b, "export const %s = %s;\n", re[0], re[1])
	}

	b.WriteString(`
export const color = {
  ...primitiveColors,
  ...textColors,
  ...bgColors,
  ...borderColors,
  ...iconColors,
};
`)

	return []byte(b.String()), nil
}
