/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for motiv.
package list

import (
	"fmt"

	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/motiv/config"
	"bennypowers.dev/motiv/extract"
	"bennypowers.dev/motiv/formatter"
	"bennypowers.dev/motiv/fs"
	"bennypowers.dev/motiv/internal/logger"
	"bennypowers.dev/motiv/parser"
	"bennypowers.dev/motiv/schema"
	"bennypowers.dev/motiv/theme"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List the compiled theme model",
	Long:  `List every bucket of the compiled theme model as a table, with color swatches on terminals that support them.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("no-swatch", false, "Disable color swatches")
	Cmd.Flags().StringP("unit", "u", "", "Unit suffix for bare numeric dimensions (default px; \"none\" disables)")
}

func run(cmd *cobra.Command, args []string) error {
	noSwatch, _ := cmd.Flags().GetBool("no-swatch")
	unit, _ := cmd.Flags().GetString("unit")

	filesystem := fs.NewOSFileSystem()

	cfg, err := config.Load(filesystem, ".")
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if unit != "" {
		cfg.Unit = unit
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	} else {
		input, err = cfg.ResolveInput(filesystem, ".")
		if err != nil {
			return err
		}
	}

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
	for _, warning := range report.Warnings {
		logger.Warn("%s", warning)
	}
	for _, path := range report.Unresolved {
		logger.Warn("unresolved reference: {%s}", path)
	}

	printTheme(th, !noSwatch)
	return nil
}

// section is one printable bucket of the model.
type section struct {
	name    string
	entries []formatter.Entry
	color   bool
}

func printTheme(th *theme.Theme, swatches bool) {
	sections := []section{
		{"primitive", formatter.FlattenColors(th.Colors.Primitive), true},
		{"text", formatter.FlattenColors(th.Colors.Text), true},
		{"background", formatter.FlattenColors(th.Colors.Background), true},
		{"border", formatter.FlattenColors(th.Colors.Border), true},
		{"icon", formatter.FlattenColors(th.Colors.Icon), true},
		{"spacing", formatter.FlattenDimensions(th.Dimensions.Spacing), false},
		{"container", formatter.FlattenDimensions(th.Dimensions.Container), false},
		{"font size", formatter.FlattenDimensions(th.Dimensions.FontSize), false},
		{"line height", formatter.FlattenDimensions(th.Dimensions.LineHeight), false},
		{"font weight", formatter.FlattenDimensions(th.Dimensions.FontWeight), false},
		{"letter spacing", formatter.FlattenDimensions(th.Dimensions.LetterSpacing), false},
		{"border radius", formatter.FlattenDimensions(th.Dimensions.BorderRadius), false},
		{"border width", formatter.FlattenDimensions(th.Dimensions.BorderWidth), false},
	}

	title := cases.Title(language.English)
	first := true
	for _, s := range sections {
		if len(s.entries) == 0 {
			continue
		}
		if !first {
			fmt.Println()
		}
		first = false

		fmt.Printf("%s\n", title.String(s.name))
		keyW := columnWidth(s.entries)
		for _, e := range s.entries {
			swatch := ""
			if swatches && s.color {
				swatch = colorSwatch(e.Value)
			}
			fmt.Printf("  %-*s  %s%s\n", keyW, e.Key, swatch, e.Value)
		}
	}

	printPresets(title.String("heading"), th.Typography.Heading, &first)
	printPresets(title.String("body"), th.Typography.Body, &first)
}

func printPresets(heading string, presets extract.PresetMap, first *bool) {
	for pair := presets.Oldest(); pair != nil; pair = pair.Next() {
		if !*first {
			fmt.Println()
		}
		*first = false

		fmt.Printf("%s %s\n", heading, pair.Key)
		for _, field := range formatter.FieldsOf(pair.Value) {
			fmt.Printf("  %-14s  %s\n", field.Property, field.Value)
		}
	}
}

func columnWidth(entries []formatter.Entry) int {
	w := 0
	for _, e := range entries {
		if len(e.Key) > w {
			w = len(e.Key)
		}
	}
	return w
}

// colorSwatch returns a 24-bit ANSI color block for the given value,
// or an empty string if the value is not a parseable color.
func colorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}
