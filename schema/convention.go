/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema provides token tree naming convention handling.
package schema

import "fmt"

// Convention represents the naming convention of a raw token tree.
// Designer exports have shipped under two layouts over time; the
// assembler reads exactly one of them, never both.
type Convention int

const (
	// Unknown represents an undetected or unrecognized convention.
	Unknown Convention = iota

	// Current represents the current export layout: top-level
	// "primitives" and "semantic" sets.
	Current

	// Legacy represents the older export layout: top-level
	// "primitive" and "alias" sets.
	Legacy
)

// String returns the string representation of the convention.
func (c Convention) String() string {
	switch c {
	case Current:
		return "current"
	case Legacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// FromString returns the convention from a string representation.
func FromString(s string) (Convention, error) {
	switch s {
	case "current":
		return Current, nil
	case "legacy":
		return Legacy, nil
	default:
		return Unknown, fmt.Errorf("unrecognized naming convention: %s", s)
	}
}
