/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"testing"

	"bennypowers.dev/motiv/config"
	"bennypowers.dev/motiv/internal/mapfs"
)

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("project/.config/motiv.yaml", `
input:
  - design/tokens.json
css: src/theme.css
typescript: src/tokens.ts
prefix: ds
unit: rem
`, 0o644)

	cfg, err := config.Load(mfs, "project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config")
	}
	if cfg.CSS != "src/theme.css" || cfg.TypeScript != "src/tokens.ts" {
		t.Errorf("unexpected output paths: %+v", cfg)
	}
	if cfg.Prefix != "ds" {
		t.Errorf("prefix = %q", cfg.Prefix)
	}
	if opts := cfg.ThemeOptions(); opts.Unit != "rem" || opts.BareUnits {
		t.Errorf("unexpected theme options: %+v", opts)
	}
}

func TestLoad_JSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("project/.config/motiv.json", `{"unit": "none"}`, 0o644)

	cfg, err := config.Load(mfs, "project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts := cfg.ThemeOptions(); !opts.BareUnits {
		t.Errorf("expected unit none to suppress suffixing, got %+v", opts)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := config.Load(mapfs.New(), "project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
}

func TestResolveInput_FirstExistingWins(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("project/design-tokens.json", `{}`, 0o644)
	mfs.AddFile("project/tokens/tokens.json", `{}`, 0o644)

	cfg := config.Default()
	got, err := cfg.ResolveInput(mfs, "project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "project/design-tokens.json" {
		t.Errorf("expected design-tokens.json to win, got %q", got)
	}
}

func TestResolveInput_Glob(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("project/brand.tokens.json", `{}`, 0o644)

	cfg := config.Default()
	got, err := cfg.ResolveInput(mfs, "project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "project/brand.tokens.json" {
		t.Errorf("expected glob match, got %q", got)
	}
}

func TestResolveInput_NoneFound(t *testing.T) {
	cfg := config.Default()
	if _, err := cfg.ResolveInput(mapfs.New(), "project"); err == nil {
		t.Error("expected error when no candidate exists")
	}
}
