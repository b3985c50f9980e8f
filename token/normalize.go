/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	separatorReplacer = strings.NewReplacer("/", "-", ":", "-", "(", "", ")", "")
	whitespaceRun     = regexp.MustCompile(`\s+`)
	hyphenRun         = regexp.MustCompile(`-{2,}`)
)

// NormalizeKey canonicalizes a raw group or token name into the stable
// identifier alphabet used for CSS variables, class names, and constant
// keys: lowercase, hyphen-separated. Normalization is idempotent.
func NormalizeKey(raw string) string {
	s := whitespaceRun.ReplaceAllString(raw, "-")
	s = separatorReplacer.Replace(s)
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return strings.ToLower(s)
}

// LooseKey reduces a key to its lowercased form with separators and
// whitespace stripped. Two keys with the same loose form are treated as
// the same name when alias text drifts from the actual key spelling
// (e.g. "font weight" vs "fontWeight").
func LooseKey(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
		case r == '-' || r == '_' || r == '/' || r == ':' || r == '(' || r == ')':
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
