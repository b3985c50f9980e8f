/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "bennypowers.dev/motiv/token"

// Resolver dereferences alias values against a raw token tree.
// Unresolvable and cyclic references degrade to passthrough of the
// original alias text plus a report entry; resolution never fails.
type Resolver struct {
	tree   token.Tree
	report *Report
}

// New creates a resolver over tree, recording diagnostics into report.
func New(tree token.Tree, report *Report) *Resolver {
	return &Resolver{tree: tree, report: report}
}

// Report returns the diagnostics collected so far.
func (r *Resolver) Report() *Report {
	return r.report
}

// Resolve dereferences value transitively until it reaches a literal.
// Non-strings and strings not shaped as {path} are returned unchanged.
func (r *Resolver) Resolve(value any) any {
	return r.resolve(value, make(map[string]bool))
}

// resolve walks the implicit reference graph depth-first. The visited
// set grows per call chain, guaranteeing termination: revisiting a path
// means a cycle, which breaks resolution and returns the alias text.
func (r *Resolver) resolve(value any, visited map[string]bool) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	path, ok := token.ParseAlias(s)
	if !ok {
		return s
	}

	if visited[path] {
		r.report.AddCycle(path)
		return s
	}
	visited[path] = true

	next, ok := FindByPath(path, r.tree)
	if !ok {
		r.report.AddUnresolved(path)
		return s
	}
	return r.resolve(next, visited)
}
