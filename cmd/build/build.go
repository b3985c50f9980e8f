/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for motiv.
package build

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/motiv/config"
	"bennypowers.dev/motiv/formatter"
	"bennypowers.dev/motiv/formatter/css"
	"bennypowers.dev/motiv/formatter/typescript"
	"bennypowers.dev/motiv/fs"
	"bennypowers.dev/motiv/internal/logger"
	"bennypowers.dev/motiv/parser"
	"bennypowers.dev/motiv/resolver"
	"bennypowers.dev/motiv/schema"
	"bennypowers.dev/motiv/theme"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Compile raw design tokens into CSS and TypeScript artifacts",
	Long: `Compile a raw token tree export into theme artifacts.

The input file is the first that exists of: the file argument, the
configured inputs, or the default candidates (tokens.json,
design-tokens.json, tokens/tokens.json, *.tokens.json, tokens.yaml).
Both artifacts are written on every run.

Examples:
  # Compile with defaults: theme.css and tokens.ts in the current directory
  motiv build

  # Compile a specific export with a variable prefix
  motiv build design/tokens.json --prefix ds

  # Emit bare numeric dimensions instead of px
  motiv build --unit none`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("css", "", "Output path for the CSS artifact")
	Cmd.Flags().String("typescript", "", "Output path for the TypeScript artifact")
	Cmd.Flags().StringP("prefix", "p", "", "CSS variable prefix")
	Cmd.Flags().StringP("unit", "u", "", "Unit suffix for bare numeric dimensions (default px; \"none\" disables)")
	Cmd.Flags().BoolP("quiet", "q", false, "Suppress progress output")

	viper.BindPFlag("css", Cmd.Flags().Lookup("css"))
	viper.BindPFlag("typescript", Cmd.Flags().Lookup("typescript"))
	viper.BindPFlag("prefix", Cmd.Flags().Lookup("prefix"))
	viper.BindPFlag("unit", Cmd.Flags().Lookup("unit"))
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	if quiet {
		logger.SetOutput(io.Discard)
	}

	filesystem := fs.NewOSFileSystem()

	cfg, err := config.Load(filesystem, ".")
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	applyFlags(cfg)

	var input string
	if len(args) > 0 {
		input = args[0]
		if !filesystem.Exists(input) {
			return fmt.Errorf("token file not found: %s", input)
		}
	} else {
		input, err = cfg.ResolveInput(filesystem, ".")
		if err != nil {
			return err
		}
	}

	logger.Info("reading %s", input)
	tree, err := parser.New().ParseFile(filesystem, input)
	if err != nil {
		return err
	}

	themeOpts := cfg.ThemeOptions()
	if conventionFlag, _ := cmd.Flags().GetString("convention"); conventionFlag != "" {
		themeOpts.Convention, err = schema.FromString(conventionFlag)
		if err != nil {
			return err
		}
	}
	th, report := theme.Assemble(tree, themeOpts)
	printReport(report)

	opts := formatter.Options{
		Prefix:      cfg.Prefix,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	outputs := []struct {
		path      string
		formatter formatter.Formatter
	}{
		{cfg.CSS, css.New()},
		{cfg.TypeScript, typescript.New()},
	}
	for _, out := range outputs {
		data, err := out.formatter.Format(th, opts)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", out.path, err)
		}
		if err := writeArtifact(filesystem, out.path, data); err != nil {
			return err
		}
		logger.Info("wrote %s", out.path)
	}

	if report.Empty() {
		color.Green("Compiled %s", input)
	} else {
		color.Green("Compiled %s with %d warning(s)", input, len(report.Warnings)+len(report.Unresolved))
	}
	return nil
}

// applyFlags overlays viper-bound flag values onto the loaded config.
// Flags win over the config file.
func applyFlags(cfg *config.Config) {
	if v := viper.GetString("css"); v != "" {
		cfg.CSS = v
	}
	if v := viper.GetString("typescript"); v != "" {
		cfg.TypeScript = v
	}
	if v := viper.GetString("prefix"); v != "" {
		cfg.Prefix = v
	}
	if v := viper.GetString("unit"); v != "" {
		cfg.Unit = v
	}
}

func printReport(report *resolver.Report) {
	yellow := color.New(color.FgYellow)
	for _, warning := range report.Warnings {
		yellow.Fprintf(color.Error, "warning: %s\n", warning)
	}
	for _, path := range report.Unresolved {
		yellow.Fprintf(color.Error, "warning: unresolved reference: {%s}\n", path)
	}
}

func writeArtifact(filesystem fs.FileSystem, path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory for %s: %w", path, err)
		}
	}
	if err := filesystem.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing to %s: %w", path, err)
	}
	return nil
}
