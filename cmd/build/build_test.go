/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build

import (
	"testing"

	"github.com/spf13/viper"

	"bennypowers.dev/motiv/config"
	"bennypowers.dev/motiv/internal/mapfs"
)

func TestApplyFlags(t *testing.T) {
	viper.Set("css", "dist/theme.css")
	viper.Set("prefix", "ds")
	viper.Set("typescript", "")
	viper.Set("unit", "")
	t.Cleanup(viper.Reset)

	cfg := config.Default()
	cfg.Unit = "rem"
	applyFlags(cfg)

	if cfg.CSS != "dist/theme.css" {
		t.Errorf("CSS = %q, want flag value", cfg.CSS)
	}
	if cfg.Prefix != "ds" {
		t.Errorf("Prefix = %q, want ds", cfg.Prefix)
	}
	if cfg.TypeScript != "tokens.ts" {
		t.Errorf("TypeScript = %q, want config default kept", cfg.TypeScript)
	}
	if cfg.Unit != "rem" {
		t.Errorf("Unit = %q, want config value kept", cfg.Unit)
	}
}

func TestWriteArtifact(t *testing.T) {
	mfs := mapfs.New()
	if err := writeArtifact(mfs, "dist/css/theme.css", []byte("@theme {\n}\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := mfs.ReadFile("dist/css/theme.css")
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if string(data) != "@theme {\n}\n" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestWriteArtifact_CurrentDir(t *testing.T) {
	mfs := mapfs.New()
	if err := writeArtifact(mfs, "theme.css", []byte("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mfs.Exists("theme.css") {
		t.Error("artifact missing")
	}
}
