/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "fmt"

// Report collects the non-fatal diagnostics of a single compile run:
// free-text warnings (reference cycles, suspicious values) and the
// deduplicated list of alias paths that never resolved. A Report is
// run-local state threaded through the engine, never ambient, so
// independent runs cannot interfere.
type Report struct {
	// Warnings are human-readable diagnostics in detection order.
	Warnings []string

	// Unresolved lists alias paths that resolved to nothing, each once,
	// in first-encountered order.
	Unresolved []string

	cycleSeen      map[string]bool
	unresolvedSeen map[string]bool
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		cycleSeen:      make(map[string]bool),
		unresolvedSeen: make(map[string]bool),
	}
}

// AddCycle records a reference cycle detected at path.
func (r *Report) AddCycle(path string) {
	if r.cycleSeen[path] {
		return
	}
	r.cycleSeen[path] = true
	r.Warnings = append(r.Warnings, fmt.Sprintf("circular reference: {%s}", path))
}

// AddUnresolved records an alias path that resolved to nothing.
func (r *Report) AddUnresolved(path string) {
	if r.unresolvedSeen[path] {
		return
	}
	r.unresolvedSeen[path] = true
	r.Unresolved = append(r.Unresolved, path)
}

// Warnf records a free-text warning.
func (r *Report) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// HasCycle reports whether a cycle was recorded at path.
func (r *Report) HasCycle(path string) bool {
	return r.cycleSeen[path]
}

// Empty reports whether the run produced no diagnostics.
func (r *Report) Empty() bool {
	return len(r.Warnings) == 0 && len(r.Unresolved) == 0
}
