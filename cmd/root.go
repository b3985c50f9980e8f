/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for motiv.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/motiv/cmd/build"
	"bennypowers.dev/motiv/cmd/list"
	"bennypowers.dev/motiv/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "motiv",
	Short: "Compile design token exports into theme artifacts",
	Long:  `motiv compiles raw design token trees, as exported by design tools, into CSS custom properties and TypeScript constants.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("convention", "c", "", "Force naming convention (current, legacy)")

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
