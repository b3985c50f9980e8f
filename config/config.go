/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the theme compiler.
package config

import "bennypowers.dev/motiv/theme"

// Config represents the motiv configuration.
type Config struct {
	// Input lists candidate token files, as paths or globs. The first
	// match wins.
	Input []string `yaml:"input" json:"input"`

	// CSS is the output path for the CSS artifact.
	CSS string `yaml:"css" json:"css"`

	// TypeScript is the output path for the TypeScript artifact.
	TypeScript string `yaml:"typescript" json:"typescript"`

	// Prefix is the CSS variable prefix.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Unit is the suffix for bare numeric dimension values. The
	// value "none" suppresses suffixing; empty means px.
	Unit string `yaml:"unit" json:"unit"`
}

// DefaultInputs are the token file candidates tried when no input is
// configured, in priority order.
var DefaultInputs = []string{
	"tokens.json",
	"design-tokens.json",
	"tokens/tokens.json",
	"*.tokens.json",
	"tokens.yaml",
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		CSS:        "theme.css",
		TypeScript: "tokens.ts",
	}
}

// ThemeOptions translates the config into assembly options.
func (c *Config) ThemeOptions() theme.Options {
	if c.Unit == "none" {
		return theme.Options{BareUnits: true}
	}
	return theme.Options{Unit: c.Unit}
}

// InputCandidates returns the configured input patterns, falling back
// to the defaults.
func (c *Config) InputCandidates() []string {
	if len(c.Input) > 0 {
		return c.Input
	}
	return DefaultInputs
}
