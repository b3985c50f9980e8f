/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "regexp"

// aliasPattern matches a value that is exactly one {token.path} reference.
// Strings that merely contain braces are literals, not aliases.
var aliasPattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

// ParseAlias extracts the dotted path from an alias value.
// Returns the path and true if value is shaped as {path.to.token}.
func ParseAlias(value string) (string, bool) {
	matches := aliasPattern.FindStringSubmatch(value)
	if len(matches) != 2 {
		return "", false
	}
	return matches[1], true
}

// IsAlias reports whether value is an alias reference.
func IsAlias(value string) bool {
	return aliasPattern.MatchString(value)
}
